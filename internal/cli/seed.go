package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/wordseed/internal/config"
	"github.com/mrlokans/wordseed/internal/database"
	"github.com/mrlokans/wordseed/internal/database/users"
	"github.com/mrlokans/wordseed/internal/database/words"
)

// SeedCommand creates the schema and inserts the sample dataset into an empty database.
type SeedCommand struct {
	DatabasePath string
	LogLevel     string
	Verbose      bool

	Out io.Writer
}

// NewSeedCommand returns a command whose defaults come from cfg.
func NewSeedCommand(cfg *config.Config) *SeedCommand {
	return &SeedCommand{
		DatabasePath: cfg.Database.Path,
		LogLevel:     cfg.Database.LogLevel,
		Out:          os.Stdout,
	}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the SQLite database file")
	fs.StringVar(&cmd.LogLevel, "sql-log", cmd.LogLevel, "SQL log level: silent, error, warn, info")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "List the sample user's words after seeding")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create the vocabulary schema and insert sample data if no user exists.\n")
		fmt.Fprintf(os.Stderr, "Running it again on a populated database changes nothing.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.DatabasePath == "" {
		return fmt.Errorf("database path must not be empty")
	}

	return nil
}

func (cmd *SeedCommand) Run() error {
	if cmd.Out == nil {
		cmd.Out = os.Stdout
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	fmt.Fprintf(cmd.Out, "Database: %s\n", cmd.DatabasePath)

	db, err := database.Open(cmd.DatabasePath, database.Options{LogLevel: database.ParseLogLevel(cmd.LogLevel)})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	result, err := db.EnsureSchemaAndSeed()
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	if result.Seeded {
		fmt.Fprintln(cmd.Out, "Sample data inserted")
	} else {
		fmt.Fprintln(cmd.Out, "Users already present, nothing to do")
	}

	c := result.Counts
	fmt.Fprintln(cmd.Out, "\n=== Row Counts ===")
	fmt.Fprintf(cmd.Out, "Users: %d\n", c.Users)
	fmt.Fprintf(cmd.Out, "Parts of speech: %d\n", c.PartsOfSpeech)
	fmt.Fprintf(cmd.Out, "Categories: %d\n", c.Categories)
	fmt.Fprintf(cmd.Out, "Words: %d\n", c.Words)
	fmt.Fprintf(cmd.Out, "Word categories: %d\n", c.WordCategories)

	if cmd.Verbose {
		return cmd.printSampleWords(db)
	}
	return nil
}

func (cmd *SeedCommand) printSampleWords(db *database.Database) error {
	user, err := users.NewRepository(db.DB).GetUserByEmail(database.SampleUserEmail)
	if err != nil {
		fmt.Fprintf(cmd.Out, "\nSample user %s not found\n", database.SampleUserEmail)
		return nil
	}

	wordRepo := words.NewRepository(db.DB)
	list, err := wordRepo.GetWordsForUser(user.ID)
	if err != nil {
		return fmt.Errorf("failed to list words: %w", err)
	}

	fmt.Fprintf(cmd.Out, "\n=== Words for %s ===\n", user.Email)
	for i, w := range list {
		categories, err := wordRepo.GetCategoriesForWord(w.ID)
		if err != nil {
			return fmt.Errorf("failed to list categories for %s: %w", w.Text, err)
		}
		names := make([]string, 0, len(categories))
		for _, c := range categories {
			names = append(names, c.Name)
		}
		fmt.Fprintf(cmd.Out, "%d. %s (%s, %s) %v\n", i+1, w.Text, w.PartOfSpeech.Name, w.Language, names)
	}
	return nil
}
