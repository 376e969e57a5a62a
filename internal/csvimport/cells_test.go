package csvimport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cellsOf(data map[string]string) (*Cells, *ErrorCollection) {
	errs := NewErrorCollection(10)
	return NewCells(&Row{Line: 7, Data: data}, errs), errs
}

func TestCellsValidValues(t *testing.T) {
	c, errs := cellsOf(map[string]string{
		"hour":  "23",
		"cost":  "10.50",
		"sales": "3.25",
		"date":  "01/08/2025",
		"dur":   "",
	})

	h, _ := c.IntRange("hour", 0, 23)
	cost, _ := c.Decimal("cost")
	sales, _ := c.Float("sales")
	date, _ := c.Date("date", "2006-01-02", "02/01/2006")
	dur, _ := c.OptionalInt("dur")

	require.True(t, c.OK())
	assert.False(t, errs.HasErrors())
	assert.Equal(t, int64(23), h)
	assert.Equal(t, "10.5", cost.String())
	assert.Equal(t, 3.25, sales)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), date)
	assert.Nil(t, dur)
}

func TestCellsCollectEveryFailure(t *testing.T) {
	c, errs := cellsOf(map[string]string{
		"hour":      "24",
		"cost":      "-1",
		"date":      "2025/08/01",
		"cost_type": "ABCD",
		"dur":       "x",
	})

	c.IntRange("hour", 0, 23)
	c.Decimal("cost")
	c.Date("date", "2006-01-02")
	c.MaxLength("cost_type", c.Optional("cost_type"), 3)
	c.OptionalInt("dur")
	c.Required("missing")

	assert.False(t, c.OK())
	codes := make([]string, 0)
	for _, e := range errs.Errors() {
		assert.Equal(t, 7, e.Row)
		codes = append(codes, e.Code)
	}
	assert.Equal(t, []string{
		CodeInvalidRange,
		CodeInvalidRange,
		CodeInvalidFormat,
		CodeInvalidLength,
		CodeInvalidType,
		CodeRequiredField,
	}, codes)
	assert.Equal(t, 1, errs.FailedRows())
}
