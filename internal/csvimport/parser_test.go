package csvimport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserStripsBOMAndLowercasesHeaders(t *testing.T) {
	p, err := NewParser(strings.NewReader("\xEF\xBB\xBFStation_Name, Cost\nITV1 , 12.5\n"), Limits{})
	require.NoError(t, err)
	require.NoError(t, p.ParseHeader())

	assert.True(t, p.HasHeader("station_name"))
	assert.Empty(t, p.Missing("station_name", "cost"))
	assert.Equal(t, []string{"duration"}, p.Missing("cost", "duration"))

	rows, err := p.ReadAll(NewErrorCollection(10))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "ITV1", rows[0].Get("station_name"))
	assert.Equal(t, "12.5", rows[0].Get("cost"))
}

func TestParserSkipsBlankRowsAndPadsShortOnes(t *testing.T) {
	p, err := NewParser(strings.NewReader("a,b\n1,2\n,\n3\n"), Limits{})
	require.NoError(t, err)
	require.NoError(t, p.ParseHeader())

	rows, err := p.ReadAll(NewErrorCollection(10))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "", rows[1].Get("b"))
	assert.Equal(t, 2, p.TotalRows())
}

func TestParserRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limits  Limits
		wantErr error
	}{
		{"empty", "", Limits{}, ErrEmptyFile},
		{"only bom", "\xEF\xBB\xBF \n", Limits{}, ErrEmptyFile},
		{"latin1", "name\ncaf\xe9\n", Limits{}, ErrInvalidEncoding},
		{"too large", "a,b\n1,2\n", Limits{MaxFileSize: 4}, ErrFileTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(strings.NewReader(tt.input), tt.limits)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParserRowLimit(t *testing.T) {
	p, err := NewParser(strings.NewReader("a\n1\n2\n3\n"), Limits{MaxRows: 2})
	require.NoError(t, err)
	require.NoError(t, p.ParseHeader())

	_, err = p.ReadAll(NewErrorCollection(10))
	assert.ErrorIs(t, err, ErrTooManyRows)
	assert.Equal(t, CodeTooManyRows, CodeOf(err))
}

func TestErrorCollectionLimit(t *testing.T) {
	errs := NewErrorCollection(2)
	errs.Add(RowError{Row: 2, Column: "a", Code: CodeRequiredField, Message: "x"})
	errs.Add(RowError{Row: 2, Column: "b", Code: CodeRequiredField, Message: "y"})
	errs.Add(RowError{Row: 3, Column: "a", Code: CodeRequiredField, Message: "z"})
	errs.MissingHeaders([]string{"c", "d"})

	assert.Len(t, errs.Errors(), 2)
	assert.Equal(t, 4, errs.TotalCount())
	assert.True(t, errs.IsTruncated())
	assert.Equal(t, 2, errs.FailedRows())
	assert.Equal(t, "row 2, column 'a': x", errs.Errors()[0].Error())
}
