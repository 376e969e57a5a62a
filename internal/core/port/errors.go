package port

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput wraps user input that fails validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrClientMismatch is returned when linking records owned by different
	// clients.
	ErrClientMismatch = errors.New("records belong to different clients")
	// ErrAlreadyExists is returned when creating a record whose key is taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrImportNotFound is returned for unknown or expired import tokens.
	ErrImportNotFound = errors.New("import not found or expired")
	// ErrImportInvalid is returned when committing an import that failed
	// validation.
	ErrImportInvalid = errors.New("import has validation errors")
	// ErrImportKindMismatch is returned when a token is used with another
	// upload kind than it was created for.
	ErrImportKindMismatch = errors.New("import belongs to another upload")
)
