package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mrlokans/wordseed/internal/database/categories"
	"github.com/mrlokans/wordseed/internal/database/partsofspeech"
	"github.com/mrlokans/wordseed/internal/database/users"
	"github.com/mrlokans/wordseed/internal/database/words"
)

const (
	SampleUserEmail        = "test@example.com"
	SampleUserPasswordHash = "hashed_password"
	SampleLanguage         = "en"
)

type sampleWord struct {
	Text         string
	PartOfSpeech string
	Category     string
}

var (
	samplePartsOfSpeech = []string{"noun", "verb", "adjective"}
	sampleCategories    = []string{"animals", "colors"}
	sampleWords         = []sampleWord{
		{Text: "run", PartOfSpeech: "verb", Category: "animals"},
		{Text: "cat", PartOfSpeech: "noun", Category: "animals"},
		{Text: "red", PartOfSpeech: "adjective", Category: "colors"},
	}
)

// SeedResult describes what EnsureSchemaAndSeed did.
type SeedResult struct {
	Seeded bool      `json:"seeded"`
	Counts RowCounts `json:"counts"`
}

// EnsureSchemaAndSeed creates the schema if needed and inserts the sample
// dataset when no user exists yet. On a populated store it writes nothing.
//
// The emptiness check and the inserts are not atomic together: two processes
// running this against the same empty file may both try to seed, and the
// loser fails on the unique email.
func (d *Database) EnsureSchemaAndSeed() (*SeedResult, error) {
	if err := d.EnsureSchema(); err != nil {
		return nil, err
	}

	seeded, err := d.SeedIfEmpty()
	if err != nil {
		return nil, err
	}

	counts, err := d.Counts()
	if err != nil {
		return nil, err
	}

	return &SeedResult{Seeded: seeded, Counts: counts}, nil
}

// HasUsers reports whether the users table has at least one row.
func (d *Database) HasUsers() (bool, error) {
	return users.NewRepository(d.DB).HasUsers()
}

// SeedIfEmpty seeds the sample dataset if there are no users and reports
// whether it did.
func (d *Database) SeedIfEmpty() (bool, error) {
	hasUsers, err := d.HasUsers()
	if err != nil {
		return false, fmt.Errorf("failed to check for existing users: %w", err)
	}
	if hasUsers {
		zap.L().Info("Users already present, skipping seed")
		return false, nil
	}

	if err := d.SeedSampleData(); err != nil {
		return false, err
	}
	return true, nil
}

// SeedSampleData inserts the fixed sample dataset in one transaction. Each step
// needs the IDs produced by the ones before it.
func (d *Database) SeedSampleData() error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		user, err := users.NewRepository(tx).CreateUser(SampleUserEmail, SampleUserPasswordHash)
		if err != nil {
			return fmt.Errorf("failed to create sample user: %w", err)
		}
		zap.L().Info("Created user", zap.String("email", user.Email), zap.String("id", user.ID))

		parts, err := partsofspeech.NewRepository(tx).CreatePartsOfSpeech(samplePartsOfSpeech...)
		if err != nil {
			return fmt.Errorf("failed to create parts of speech: %w", err)
		}
		posIDs := make(map[string]string, len(parts))
		for _, p := range parts {
			posIDs[p.Name] = p.ID
		}

		categoryRepo := categories.NewRepository(tx)
		categoryIDs := make(map[string]string, len(sampleCategories))
		for _, name := range sampleCategories {
			category, err := categoryRepo.CreateCategory(name, user.ID)
			if err != nil {
				return fmt.Errorf("failed to create category %s: %w", name, err)
			}
			categoryIDs[name] = category.ID
		}

		wordRepo := words.NewRepository(tx)
		wordIDs := make([]string, 0, len(sampleWords))
		for _, sw := range sampleWords {
			word, err := wordRepo.CreateWord(sw.Text, SampleLanguage, user.ID, posIDs[sw.PartOfSpeech])
			if err != nil {
				return fmt.Errorf("failed to create word %s: %w", sw.Text, err)
			}
			wordIDs = append(wordIDs, word.ID)
		}

		for i, sw := range sampleWords {
			if err := wordRepo.AssignCategory(wordIDs[i], categoryIDs[sw.Category]); err != nil {
				return fmt.Errorf("failed to assign %s to %s: %w", sw.Text, sw.Category, err)
			}
		}

		zap.L().Info("Seeded sample data",
			zap.Int("parts_of_speech", len(parts)),
			zap.Int("categories", len(categoryIDs)),
			zap.Int("words", len(wordIDs)),
		)
		return nil
	})
}
