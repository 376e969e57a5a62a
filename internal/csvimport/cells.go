package csvimport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cells reads typed values out of a row, recording every failure in the
// shared collection. Callers check OK once all columns have been read.
type Cells struct {
	row    *Row
	errs   *ErrorCollection
	failed bool
}

func NewCells(row *Row, errs *ErrorCollection) *Cells {
	return &Cells{row: row, errs: errs}
}

func (c *Cells) Line() int { return c.row.Line }

// OK reports whether every read so far succeeded.
func (c *Cells) OK() bool { return !c.failed }

// Fail records an error against column.
func (c *Cells) Fail(column, code, message, value string) {
	c.failed = true
	c.errs.Add(RowError{Row: c.row.Line, Column: column, Code: code, Message: message, Value: value})
}

// Optional returns the cell of column; blank cells are "".
func (c *Cells) Optional(column string) string {
	return c.row.Get(column)
}

// Required returns the cell of column, failing when it is blank.
func (c *Cells) Required(column string) (string, bool) {
	v := c.row.Get(column)
	if v == "" {
		c.Fail(column, CodeRequiredField, fmt.Sprintf("field '%s' is required", column), "")
		return "", false
	}
	return v, true
}

// MaxLength fails when value is longer than n characters.
func (c *Cells) MaxLength(column, value string, n int) bool {
	if len([]rune(value)) > n {
		c.Fail(column, CodeInvalidLength, fmt.Sprintf("length must be at most %d", n), value)
		return false
	}
	return true
}

// Int parses a required integer.
func (c *Cells) Int(column string) (int64, bool) {
	v, ok := c.Required(column)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		c.Fail(column, CodeInvalidType, "expected integer", v)
		return 0, false
	}
	return n, true
}

// OptionalInt parses an integer that may be blank, returning nil for blank.
func (c *Cells) OptionalInt(column string) (*int, bool) {
	v := c.row.Get(column)
	if v == "" {
		return nil, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		c.Fail(column, CodeInvalidType, "expected integer", v)
		return nil, false
	}
	return &n, true
}

// IntRange parses a required integer within [lo, hi].
func (c *Cells) IntRange(column string, lo, hi int64) (int64, bool) {
	n, ok := c.Int(column)
	if !ok {
		return 0, false
	}
	if n < lo || n > hi {
		c.Fail(column, CodeInvalidRange, fmt.Sprintf("value must be between %d and %d", lo, hi), strconv.FormatInt(n, 10))
		return 0, false
	}
	return n, true
}

// Float parses a required non-negative number.
func (c *Cells) Float(column string) (float64, bool) {
	v, ok := c.Required(column)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		c.Fail(column, CodeInvalidType, "expected number", v)
		return 0, false
	}
	if f < 0 {
		c.Fail(column, CodeInvalidRange, "value must not be negative", v)
		return 0, false
	}
	return f, true
}

// Decimal parses a required non-negative decimal.
func (c *Cells) Decimal(column string) (decimal.Decimal, bool) {
	v, ok := c.Required(column)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		c.Fail(column, CodeInvalidType, "expected decimal", v)
		return decimal.Zero, false
	}
	if d.IsNegative() {
		c.Fail(column, CodeInvalidRange, "value must not be negative", v)
		return decimal.Zero, false
	}
	return d, true
}

// Date parses a required date in the first of layouts that accepts it.
func (c *Cells) Date(column string, layouts ...string) (time.Time, bool) {
	v, ok := c.Required(column)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	c.Fail(column, CodeInvalidFormat, "invalid date, expected "+strings.Join(layouts, " or "), v)
	return time.Time{}, false
}
