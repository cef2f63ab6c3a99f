// Package dberr maps SQLite driver errors onto sentinel errors shared by the
// database package and its repositories.
package dberr

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrStorageUnreachable means the database file could not be opened or pinged.
	ErrStorageUnreachable = errors.New("storage unreachable")
	// ErrConstraintViolation means a write broke a unique, primary key or foreign key rule.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Classify tags SQLite errors with the sentinels above. Anything it does not
// recognise is returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
		case sqlite3.ErrCantOpen, sqlite3.ErrNotADB:
			return fmt.Errorf("%w: %w", ErrStorageUnreachable, err)
		}
	}

	return err
}
