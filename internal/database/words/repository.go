// Package words provides database operations for vocabulary words and their
// category memberships.
package words

import (
	"gorm.io/gorm"

	"github.com/mrlokans/wordseed/internal/database/dberr"
	"github.com/mrlokans/wordseed/internal/entities"
)

// Repository handles all word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new words repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateWord inserts a word for userID tagged with the given part of speech.
func (r *Repository) CreateWord(text, language, userID, partOfSpeechID string) (*entities.Word, error) {
	word := &entities.Word{
		Text:           text,
		Language:       language,
		UserID:         userID,
		PartOfSpeechID: partOfSpeechID,
	}
	if err := r.db.Omit("PartOfSpeech", "Categories").Create(word).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return word, nil
}

// GetWordsForUser returns the user's words in insertion order with their part
// of speech loaded.
func (r *Repository) GetWordsForUser(userID string) ([]entities.Word, error) {
	var words []entities.Word
	err := r.db.Preload("PartOfSpeech").
		Where("user_id = ?", userID).
		Order("rowid ASC").
		Find(&words).Error
	return words, err
}

func (r *Repository) GetWordByID(id string) (*entities.Word, error) {
	var word entities.Word
	err := r.db.Preload("PartOfSpeech").Preload("Categories").Where("id = ?", id).First(&word).Error
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// AssignCategory links a word to a category. Linking the same pair twice is an
// ErrConstraintViolation.
func (r *Repository) AssignCategory(wordID, categoryID string) error {
	link := &entities.WordCategory{
		WordID:     wordID,
		CategoryID: categoryID,
	}
	return dberr.Classify(r.db.Create(link).Error)
}

// GetCategoriesForWord returns the categories a word belongs to.
func (r *Repository) GetCategoriesForWord(wordID string) ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.
		Joins("JOIN word_categories ON word_categories.category_id = categories.id").
		Where("word_categories.word_id = ?", wordID).
		Order("categories.rowid ASC").
		Find(&categories).Error
	return categories, err
}

// CountWordsForUser returns how many words the user owns.
func (r *Repository) CountWordsForUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Word{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
