package database

import "github.com/mrlokans/wordseed/internal/database/dberr"

var (
	ErrStorageUnreachable  = dberr.ErrStorageUnreachable
	ErrConstraintViolation = dberr.ErrConstraintViolation
)

func classify(err error) error {
	return dberr.Classify(err)
}
