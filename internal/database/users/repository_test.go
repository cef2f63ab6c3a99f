package users

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordseed/internal/database/dberr"
	"github.com/mrlokans/wordseed/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB) {
	dbPath := filepath.Join(t.TempDir(), "users.db")

	db, err := gorm.Open(sqlite.Open(dbPath+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.PartOfSpeech{}, &entities.Category{}, &entities.Word{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db), db
}

func TestRepository_CreateUser(t *testing.T) {
	repo, _ := setupTestDB(t)

	user, err := repo.CreateUser("test@example.com", "hashed_password")

	require.NoError(t, err)
	assert.Len(t, user.ID, 36) // generated uuid
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRepository_CreateUser_UniqueIDs(t *testing.T) {
	repo, _ := setupTestDB(t)

	a, err := repo.CreateUser("a@example.com", "x")
	require.NoError(t, err)
	b, err := repo.CreateUser("b@example.com", "x")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestRepository_CreateUser_DuplicateEmail(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.CreateUser("test@example.com", "x")
	require.NoError(t, err)

	_, err = repo.CreateUser("test@example.com", "y")

	assert.ErrorIs(t, err, dberr.ErrConstraintViolation)
}

func TestRepository_HasUsers(t *testing.T) {
	repo, _ := setupTestDB(t)

	has, err := repo.HasUsers()
	require.NoError(t, err)
	assert.False(t, has)

	_, err = repo.CreateUser("test@example.com", "x")
	require.NoError(t, err)

	has, err = repo.HasUsers()
	require.NoError(t, err)
	assert.True(t, has)
}

func TestRepository_GetUserByID(t *testing.T) {
	repo, _ := setupTestDB(t)

	created, err := repo.CreateUser("test@example.com", "x")
	require.NoError(t, err)

	user, err := repo.GetUserByID(created.ID)

	require.NoError(t, err)
	assert.Equal(t, "test@example.com", user.Email)
}

func TestRepository_GetUserByID_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.GetUserByID("00000000-0000-0000-0000-000000000000")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_GetUserByEmail_NotFound(t *testing.T) {
	repo, _ := setupTestDB(t)

	_, err := repo.GetUserByEmail("nobody@example.com")

	assert.Error(t, err)
}

func TestRepository_DeleteUser_Cascades(t *testing.T) {
	repo, db := setupTestDB(t)

	user, err := repo.CreateUser("test@example.com", "x")
	require.NoError(t, err)
	pos := &entities.PartOfSpeech{Name: "noun"}
	require.NoError(t, db.Create(pos).Error)
	category := &entities.Category{Name: "animals", UserID: user.ID}
	require.NoError(t, db.Create(category).Error)
	word := &entities.Word{Text: "cat", Language: "en", UserID: user.ID, PartOfSpeechID: pos.ID}
	require.NoError(t, db.Omit("PartOfSpeech", "Categories").Create(word).Error)
	require.NoError(t, db.Create(&entities.WordCategory{WordID: word.ID, CategoryID: category.ID}).Error)

	require.NoError(t, repo.DeleteUser(user.ID))

	var words, categories, links, parts int64
	require.NoError(t, db.Model(&entities.Word{}).Count(&words).Error)
	require.NoError(t, db.Model(&entities.Category{}).Count(&categories).Error)
	require.NoError(t, db.Model(&entities.WordCategory{}).Count(&links).Error)
	require.NoError(t, db.Model(&entities.PartOfSpeech{}).Count(&parts).Error)
	assert.Zero(t, words)
	assert.Zero(t, categories)
	assert.Zero(t, links)
	assert.Equal(t, int64(1), parts)
}
