package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateShortLink = errors.New("duplicate short link")
	ErrInvalidShortLink   = errors.New("invalid short link")
	ErrInvalidDate        = errors.New("invalid date")
)

// DuplicateShortLinkError is returned when a second entry claims a slug
// already used in the same build.
type DuplicateShortLinkError struct {
	Slug      string
	Directory string // entry that claimed the slug first
	Conflict  string // entry that claimed it again
}

func (e *DuplicateShortLinkError) Error() string {
	return fmt.Sprintf("short link %q already exists (claimed by %s and %s)", e.Slug, e.Directory, e.Conflict)
}

func (e *DuplicateShortLinkError) Is(target error) bool {
	return target == ErrDuplicateShortLink
}

// InvalidShortLinkError is returned for slugs that cannot be used as a file name.
type InvalidShortLinkError struct {
	Slug      string
	Directory string
}

func (e *InvalidShortLinkError) Error() string {
	return fmt.Sprintf("short link %q in %s is not a valid file name", e.Slug, e.Directory)
}

func (e *InvalidShortLinkError) Is(target error) bool {
	return target == ErrInvalidShortLink
}

// InvalidDateError is returned when a date field is present but cannot be parsed.
type InvalidDateError struct {
	Directory string
	Key       string
	Value     string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: cannot parse %s %q", e.Directory, e.Key, e.Value)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}
