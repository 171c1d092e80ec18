package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned by update/delete operations that reference an id
// with no stored record. Storage I/O failures propagate unmodified.
var ErrNotFound = errors.New("record not found")

// IsNotFound reports whether err is the repository's not-found condition,
// including the underlying store's own variant of it.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// translateErr maps store-level not-found onto ErrNotFound and leaves every
// other storage error untouched.
func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w", ErrNotFound)
	}
	return err
}
