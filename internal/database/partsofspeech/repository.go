// Package partsofspeech provides database operations for the shared
// part-of-speech lookup table.
package partsofspeech

import (
	"gorm.io/gorm"

	"github.com/mrlokans/wordseed/internal/database/dberr"
	"github.com/mrlokans/wordseed/internal/entities"
)

// Repository handles all part-of-speech database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new parts of speech repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreatePartOfSpeech inserts a part of speech. Names are unique.
func (r *Repository) CreatePartOfSpeech(name string) (*entities.PartOfSpeech, error) {
	pos := &entities.PartOfSpeech{Name: name}
	if err := r.db.Create(pos).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return pos, nil
}

// CreatePartsOfSpeech inserts several parts of speech in one statement,
// preserving the order of names.
func (r *Repository) CreatePartsOfSpeech(names ...string) ([]entities.PartOfSpeech, error) {
	parts := make([]entities.PartOfSpeech, len(names))
	for i, name := range names {
		parts[i].Name = name
	}
	if err := r.db.Create(&parts).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return parts, nil
}

func (r *Repository) GetByName(name string) (*entities.PartOfSpeech, error) {
	var pos entities.PartOfSpeech
	err := r.db.Where("name = ?", name).First(&pos).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *Repository) ListPartsOfSpeech() ([]entities.PartOfSpeech, error) {
	var parts []entities.PartOfSpeech
	err := r.db.Order("name ASC").Find(&parts).Error
	return parts, err
}

// DeletePartOfSpeech fails with dberr.ErrConstraintViolation while any word
// still references the part of speech.
func (r *Repository) DeletePartOfSpeech(id string) error {
	return dberr.Classify(r.db.Where("id = ?", id).Delete(&entities.PartOfSpeech{}).Error)
}
