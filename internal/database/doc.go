// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, schema migration, row counts
//	├── seed.go          # Sample dataset, inserted once into an empty store
//	├── dberr/           # SQLite error classification
//	├── users/           # User accounts
//	├── partsofspeech/   # Shared part-of-speech lookup
//	├── categories/      # User-owned categories
//	└── words/           # Words and their category links
//
// # Schema
//
// Deleting a user cascades to its words and categories, and from there to the
// word_categories join rows. A part of speech cannot be deleted while a word
// references it. SQLite only enforces these rules with foreign keys switched
// on, which Open does through the connection string.
//
// # Seeding
//
//	db, err := database.Open("./words.db", database.Options{})
//	result, err := db.EnsureSchemaAndSeed()
//
// The sample dataset is written only when the users table is empty. Seeding
// is meant to run once per process start and is not safe to run from several
// processes against the same empty store at once.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Pass write errors through dberr.Classify
package database
