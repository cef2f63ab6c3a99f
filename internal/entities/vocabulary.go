package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string     `gorm:"size:128;not null" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	Words        []Word     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"words,omitempty"`
	Categories   []Category `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}

type PartOfSpeech struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"uniqueIndex;size:20;not null" json:"name"` // e.g., "noun", "verb"
	Words []Word `gorm:"foreignKey:PartOfSpeechID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (PartOfSpeech) TableName() string {
	return "parts_of_speech"
}

type Category struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	Name   string `gorm:"size:50;not null" json:"name"`
	UserID string `gorm:"index;size:36;not null" json:"user_id"`
	Words  []Word `gorm:"many2many:word_categories;constraint:OnDelete:CASCADE" json:"words,omitempty"`
}

type Word struct {
	ID             string       `gorm:"primaryKey;size:36" json:"id"`
	Text           string       `gorm:"size:100;not null" json:"text"`
	Language       string       `gorm:"size:10;not null" json:"language"` // ISO code, e.g. "en"
	UserID         string       `gorm:"index;size:36;not null" json:"user_id"`
	PartOfSpeechID string       `gorm:"index;size:36;not null" json:"part_of_speech_id"`
	PartOfSpeech   PartOfSpeech `gorm:"foreignKey:PartOfSpeechID" json:"part_of_speech,omitempty"`
	Categories     []Category   `gorm:"many2many:word_categories;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
}

// WordCategory is the join row between words and categories. The table itself is
// created from the many2many relations above; this type only reads it.
type WordCategory struct {
	WordID     string `gorm:"primaryKey;size:36" json:"word_id"`
	CategoryID string `gorm:"primaryKey;size:36" json:"category_id"`
}

func (WordCategory) TableName() string {
	return "word_categories"
}

// Identifiers are assigned here rather than by the database.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.ID = ensureID(u.ID)
	return nil
}

func (p *PartOfSpeech) BeforeCreate(tx *gorm.DB) error {
	p.ID = ensureID(p.ID)
	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	c.ID = ensureID(c.ID)
	return nil
}

func (w *Word) BeforeCreate(tx *gorm.DB) error {
	w.ID = ensureID(w.ID)
	return nil
}

func ensureID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
