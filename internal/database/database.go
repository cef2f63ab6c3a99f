package database

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordseed/internal/entities"
)

// schemaModels lists the entities in dependency order. The word_categories join
// table is created from the many2many relations on Word and Category.
var schemaModels = []interface{}{
	&entities.User{},
	&entities.PartOfSpeech{},
	&entities.Category{},
	&entities.Word{},
}

type Database struct {
	DB *gorm.DB
}

// Options tune how the connection is opened.
type Options struct {
	LogLevel logger.LogLevel
}

// Open connects to the SQLite file at dbPath with foreign key enforcement on.
// It does not touch the schema.
func Open(dbPath string, opts Options) (*Database, error) {
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}

	db, err := gorm.Open(sqlite.Open(dsn(dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w: %w", dbPath, ErrStorageUnreachable, err)
	}

	return &Database{DB: db}, nil
}

// NewDatabase opens the database and makes sure the schema exists.
func NewDatabase(dbPath string) (*Database, error) {
	database, err := Open(dbPath, Options{})
	if err != nil {
		return nil, err
	}

	if err := database.EnsureSchema(); err != nil {
		database.Close()
		return nil, err
	}

	zap.L().Info("Database initialized", zap.String("path", dbPath))

	return database, nil
}

// EnsureSchema creates every table and constraint that is missing. Safe to call
// on every start.
func (d *Database) EnsureSchema() error {
	if err := d.DB.AutoMigrate(schemaModels...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", classify(err))
	}
	return nil
}

func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnreachable, err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnreachable, err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// RowCounts is the number of rows in each table.
type RowCounts struct {
	Users          int64 `json:"users"`
	PartsOfSpeech  int64 `json:"parts_of_speech"`
	Categories     int64 `json:"categories"`
	Words          int64 `json:"words"`
	WordCategories int64 `json:"word_categories"`
}

func (d *Database) Counts() (RowCounts, error) {
	var counts RowCounts
	targets := []struct {
		model interface{}
		dest  *int64
	}{
		{&entities.User{}, &counts.Users},
		{&entities.PartOfSpeech{}, &counts.PartsOfSpeech},
		{&entities.Category{}, &counts.Categories},
		{&entities.Word{}, &counts.Words},
		{&entities.WordCategory{}, &counts.WordCategories},
	}
	for _, t := range targets {
		if err := d.DB.Model(t.model).Count(t.dest).Error; err != nil {
			return RowCounts{}, fmt.Errorf("failed to count rows: %w", classify(err))
		}
	}
	return counts, nil
}

// ParseLogLevel maps a config value to a GORM log level, defaulting to warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func dsn(dbPath string) string {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + "_foreign_keys=on"
}
