// Package users provides database operations for user accounts.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetUserByEmail("test@example.com")
package users

import (
	"gorm.io/gorm"

	"github.com/mrlokans/wordseed/internal/database/dberr"
	"github.com/mrlokans/wordseed/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a user. The password hash is stored as given.
func (r *Repository) CreateUser(email, passwordHash string) (*entities.User, error) {
	user := &entities.User{
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := r.db.Create(user).Error; err != nil {
		return nil, dberr.Classify(err)
	}

	return user, nil
}

// HasUsers reports whether at least one user exists.
func (r *Repository) HasUsers() (bool, error) {
	var user entities.User
	err := r.db.Select("id").Limit(1).Find(&user).Error
	if err != nil {
		return false, dberr.Classify(err)
	}
	return user.ID != "", nil
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (r *Repository) GetUserByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user. Their words and categories go with them.
func (r *Repository) DeleteUser(id string) error {
	return dberr.Classify(r.db.Where("id = ?", id).Delete(&entities.User{}).Error)
}
