package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDayOfWeek(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Mon", "Mon", true},
		{"tue", "Tue", true},
		{" WED ", "Wed", true},
		{"Thursday", "Thu", true},
		{"sat", "Sat", true},
		{"Sunnyday", "", false},
		{"Mo", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeDayOfWeek(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestBaselineKinds(t *testing.T) {
	kind, ok := BaselineKindByName("Page")
	assert.True(t, ok)
	assert.Equal(t, PageBaselines, kind)
	assert.Equal(t, []string{"ga_page_id", "day_of_week", "hour_of_day", "baseline_session", "baseline_sales"}, kind.ExportColumns())

	_, ok = BaselineKindByName("station")
	assert.False(t, ok)

	bk, ok := ImportProductBaselines.BaselineKind()
	assert.True(t, ok)
	assert.Equal(t, "product_baselines", bk.Table)

	_, ok = ImportStationPrices.BaselineKind()
	assert.False(t, ok)
}

func TestBaselineKey(t *testing.T) {
	b := Baseline{EntityID: 12, DayOfWeek: "Fri", HourOfDay: 7}
	assert.Equal(t, "12/Fri/07", b.Key())
}
