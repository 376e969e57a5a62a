package csvimport

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes attached to every RowError.
const (
	CodeInvalidFile        = "ERR_IMPORT_INVALID_FILE"
	CodeEmptyFile          = "ERR_IMPORT_EMPTY_FILE"
	CodeFileTooLarge       = "ERR_IMPORT_FILE_TOO_LARGE"
	CodeTooManyRows        = "ERR_IMPORT_TOO_MANY_ROWS"
	CodeInvalidEncoding    = "ERR_IMPORT_INVALID_ENCODING"
	CodeCSVParsing         = "ERR_IMPORT_CSV_PARSING"
	CodeMissingHeader      = "ERR_IMPORT_MISSING_HEADER"
	CodeRequiredField      = "ERR_IMPORT_REQUIRED_FIELD"
	CodeInvalidType        = "ERR_IMPORT_INVALID_TYPE"
	CodeInvalidFormat      = "ERR_IMPORT_INVALID_FORMAT"
	CodeInvalidLength      = "ERR_IMPORT_INVALID_LENGTH"
	CodeInvalidRange       = "ERR_IMPORT_INVALID_RANGE"
	CodeDuplicateInFile    = "ERR_IMPORT_DUPLICATE_IN_FILE"
	CodeReferenceNotFound  = "ERR_IMPORT_REFERENCE_NOT_FOUND"
	CodeAmbiguousReference = "ERR_IMPORT_AMBIGUOUS_REFERENCE"
)

var (
	ErrEmptyFile       = errors.New("CSV file is empty")
	ErrInvalidEncoding = errors.New("CSV file is not valid UTF-8")
	ErrMissingHeader   = errors.New("CSV file has no header row")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrTooManyRows     = errors.New("file exceeds maximum number of rows")
)

// CodeOf maps a parser error to its error code.
func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrEmptyFile):
		return CodeEmptyFile
	case errors.Is(err, ErrInvalidEncoding):
		return CodeInvalidEncoding
	case errors.Is(err, ErrMissingHeader):
		return CodeMissingHeader
	case errors.Is(err, ErrFileTooLarge):
		return CodeFileTooLarge
	case errors.Is(err, ErrTooManyRows):
		return CodeTooManyRows
	}
	return CodeCSVParsing
}

// RowError is a problem in one cell or row. Row 0 means the whole file.
type RowError struct {
	Row     int
	Column  string
	Code    string
	Message string
	Value   string
}

func (e RowError) Error() string {
	switch {
	case e.Row == 0:
		return e.Message
	case e.Column != "":
		return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// ErrorCollection gathers row errors up to a limit while still counting
// every error and every failing row.
type ErrorCollection struct {
	errors    []RowError
	maxErrors int
	total     int
	rows      map[int]struct{}
}

// NewErrorCollection keeps at most maxErrors errors (100 when not positive).
func NewErrorCollection(maxErrors int) *ErrorCollection {
	if maxErrors <= 0 {
		maxErrors = 100
	}
	return &ErrorCollection{
		errors:    make([]RowError, 0),
		maxErrors: maxErrors,
		rows:      make(map[int]struct{}),
	}
}

func (ec *ErrorCollection) Add(err RowError) {
	ec.total++
	ec.rows[err.Row] = struct{}{}
	if len(ec.errors) < ec.maxErrors {
		ec.errors = append(ec.errors, err)
	}
}

// FileError records a problem that concerns the whole file.
func (ec *ErrorCollection) FileError(code, message string) {
	ec.Add(RowError{Code: code, Message: message})
}

// MissingHeaders records a single file error listing every missing column.
func (ec *ErrorCollection) MissingHeaders(missing []string) {
	ec.FileError(CodeMissingHeader, "missing required columns: "+strings.Join(missing, ", "))
}

func (ec *ErrorCollection) Errors() []RowError { return ec.errors }

// TotalCount includes errors dropped past the limit.
func (ec *ErrorCollection) TotalCount() int { return ec.total }

func (ec *ErrorCollection) HasErrors() bool { return ec.total > 0 }

// FailedRows counts the distinct data rows with at least one error.
func (ec *ErrorCollection) FailedRows() int {
	n := len(ec.rows)
	if _, ok := ec.rows[0]; ok {
		n--
	}
	return n
}

// IsTruncated reports whether errors were dropped past the limit.
func (ec *ErrorCollection) IsTruncated() bool {
	return ec.total > ec.maxErrors
}
