package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrSiteNotFound is returned when a site name or id does not resolve.
	ErrSiteNotFound = errors.New("site not found")
	// ErrSectionNotFound is returned when a section name or id does not resolve.
	ErrSectionNotFound = errors.New("section not found")
	// ErrPageNotFound is returned when a page name or id does not resolve.
	ErrPageNotFound = errors.New("page not found")
	// ErrRefNotFound is returned when a ref id does not resolve.
	ErrRefNotFound = errors.New("ref not found")
	// ErrNoteNotFound is returned when a note id does not resolve.
	ErrNoteNotFound = errors.New("note not found")

	// ErrSiteExists is returned when a site name is already taken.
	ErrSiteExists = errors.New("site already exists")
	// ErrSectionExists is returned when a section name is already taken within its site.
	ErrSectionExists = errors.New("section already exists")
	// ErrPageExists is returned when a page name is already taken.
	ErrPageExists = errors.New("page already exists")
)

// asNotFound translates a missing-row error into the entity's not-found
// sentinel; anything else propagates uninterpreted.
func asNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// asConflict translates a unique-constraint violation into the entity's
// conflict sentinel; anything else propagates uninterpreted.
func asConflict(err, sentinel error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return sentinel
	}
	return err
}
