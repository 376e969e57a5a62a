package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Limits bound what a Parser accepts. Zero values disable a limit.
type Limits struct {
	MaxFileSize int64
	MaxRows     int
}

// Parser reads a CSV upload whose first row names the columns. Header names
// are matched case-insensitively.
type Parser struct {
	reader    *csv.Reader
	size      int64
	limits    Limits
	headerMap map[string]int
	line      int
	rows      int
}

// Row is one data row keyed by lower-cased header name.
type Row struct {
	Line int
	Data map[string]string
}

// Get returns the trimmed cell of column, or "" when the column is absent.
func (r *Row) Get(column string) string {
	return r.Data[column]
}

// IsEmpty reports whether every cell of the row is blank.
func (r *Row) IsEmpty() bool {
	for _, v := range r.Data {
		if v != "" {
			return false
		}
	}
	return true
}

// NewParser buffers r, enforcing the size limit, strips a UTF-8 BOM and
// rejects content that is empty or not UTF-8.
func NewParser(r io.Reader, limits Limits) (*Parser, error) {
	src := r
	if limits.MaxFileSize > 0 {
		src = io.LimitReader(r, limits.MaxFileSize+1)
	}
	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	size := int64(len(content))
	if limits.MaxFileSize > 0 && size > limits.MaxFileSize {
		return nil, ErrFileTooLarge
	}

	content = bytes.TrimPrefix(content, utf8BOM)
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyFile
	}
	if !utf8.Valid(content) {
		return nil, ErrInvalidEncoding
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	return &Parser{
		reader:    reader,
		size:      size,
		limits:    limits,
		headerMap: make(map[string]int),
	}, nil
}

// Size is the number of bytes received, BOM included.
func (p *Parser) Size() int64 { return p.size }

// ParseHeader reads the header row.
func (p *Parser) ParseHeader() error {
	record, err := p.reader.Read()
	if errors.Is(err, io.EOF) {
		return ErrMissingHeader
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	p.line = 1

	for i, h := range record {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if _, dup := p.headerMap[h]; !dup {
			p.headerMap[h] = i
		}
	}
	if len(p.headerMap) == 0 {
		return ErrMissingHeader
	}
	return nil
}

func (p *Parser) HasHeader(name string) bool {
	_, ok := p.headerMap[name]
	return ok
}

// Missing returns the required columns absent from the header, in order.
func (p *Parser) Missing(required ...string) []string {
	var missing []string
	for _, h := range required {
		if !p.HasHeader(h) {
			missing = append(missing, h)
		}
	}
	return missing
}

// ReadRow returns the next row, io.EOF at the end of the file.
func (p *Parser) ReadRow() (*Row, error) {
	record, err := p.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	p.line++
	if err != nil {
		return nil, RowError{Row: p.line, Code: CodeCSVParsing, Message: err.Error()}
	}

	row := &Row{Line: p.line, Data: make(map[string]string, len(p.headerMap))}
	for name, i := range p.headerMap {
		if i < len(record) {
			row.Data[name] = strings.TrimSpace(record[i])
		} else {
			row.Data[name] = ""
		}
	}
	return row, nil
}

// ReadAll reads every remaining non-blank row. Malformed rows are recorded
// in errs and skipped; exceeding the row limit aborts with ErrTooManyRows.
func (p *Parser) ReadAll(errs *ErrorCollection) ([]*Row, error) {
	var rows []*Row
	for {
		row, err := p.ReadRow()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		var rowErr RowError
		if errors.As(err, &rowErr) {
			errs.Add(rowErr)
			p.rows++
			continue
		}
		if err != nil {
			return nil, err
		}
		if row.IsEmpty() {
			continue
		}
		p.rows++
		if p.limits.MaxRows > 0 && p.rows > p.limits.MaxRows {
			return nil, ErrTooManyRows
		}
		rows = append(rows, row)
	}
}

// TotalRows counts the data rows read so far, malformed ones included.
func (p *Parser) TotalRows() int { return p.rows }
