// Package categories provides database operations for user-owned word
// categories.
//
// # Usage
//
//	repo := categories.NewRepository(db)
//	animals, err := repo.CreateCategory("animals", userID)
//	words, err := repo.GetWordsInCategory(animals.ID)
package categories

import (
	"gorm.io/gorm"

	"github.com/mrlokans/wordseed/internal/database/dberr"
	"github.com/mrlokans/wordseed/internal/entities"
)

// Repository handles all category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateCategory creates a category owned by userID.
func (r *Repository) CreateCategory(name, userID string) (*entities.Category, error) {
	category := &entities.Category{
		Name:   name,
		UserID: userID,
	}
	if err := r.db.Create(category).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return category, nil
}

// GetCategoriesForUser returns the user's categories in insertion order.
func (r *Repository) GetCategoriesForUser(userID string) ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.Where("user_id = ?", userID).Order("rowid ASC").Find(&categories).Error
	return categories, err
}

func (r *Repository) GetCategoryByName(name, userID string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.Where("name = ? AND user_id = ?", name, userID).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// GetWordsInCategory returns the words linked to a category, in word insertion order.
func (r *Repository) GetWordsInCategory(categoryID string) ([]entities.Word, error) {
	var words []entities.Word
	err := r.db.
		Joins("JOIN word_categories ON word_categories.word_id = words.id").
		Where("word_categories.category_id = ?", categoryID).
		Preload("PartOfSpeech").
		Order("words.rowid ASC").
		Find(&words).Error
	return words, err
}
