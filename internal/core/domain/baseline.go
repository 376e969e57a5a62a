package domain

import (
	"fmt"
	"strings"
)

// BaselineKind describes one family of baseline rows: the table that holds
// them, the entity table they point at and the CSV columns that identify the
// entity. Product and page baselines share every operation and differ only
// in these names.
type BaselineKind struct {
	Name        string
	Table       string
	EntityTable string
	IDColumn    string
	NameColumn  string
}

var (
	ProductBaselines = BaselineKind{
		Name:        "product",
		Table:       "product_baselines",
		EntityTable: "ga_products",
		IDColumn:    "ga_product_id",
		NameColumn:  "item_name",
	}
	PageBaselines = BaselineKind{
		Name:        "page",
		Table:       "page_baselines",
		EntityTable: "ga_pages",
		IDColumn:    "ga_page_id",
		NameColumn:  "url",
	}
)

// BaselineKindByName returns the kind registered under name ("product" or
// "page").
func BaselineKindByName(name string) (BaselineKind, bool) {
	switch strings.ToLower(name) {
	case ProductBaselines.Name:
		return ProductBaselines, true
	case PageBaselines.Name:
		return PageBaselines, true
	}
	return BaselineKind{}, false
}

// ExportColumns is the header of a baseline extract.
func (k BaselineKind) ExportColumns() []string {
	return []string{k.IDColumn, "day_of_week", "hour_of_day", "baseline_session", "baseline_sales"}
}

// BaselineEntity is the product or page a baseline row belongs to.
type BaselineEntity struct {
	ID       int64  `json:"id"`
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
}

// Baseline is the expected session and sales volume of an entity for one
// hour of one weekday. Rows are unique per (EntityID, DayOfWeek, HourOfDay).
type Baseline struct {
	EntityID  int64   `json:"entity_id"`
	DayOfWeek string  `json:"day_of_week"`
	HourOfDay int     `json:"hour_of_day"`
	Session   float64 `json:"baseline_session"`
	Sales     float64 `json:"baseline_sales"`
}

// Key identifies the slot a baseline row occupies.
func (b Baseline) Key() string {
	return fmt.Sprintf("%d/%s/%02d", b.EntityID, b.DayOfWeek, b.HourOfDay)
}

// DaysOfWeek lists the accepted day codes in calendar order.
var DaysOfWeek = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// NormalizeDayOfWeek maps user input such as "mon", "MON" or "Monday" onto
// the stored three letter code.
func NormalizeDayOfWeek(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return "", false
	}
	for _, d := range DaysOfWeek {
		if strings.EqualFold(s[:3], d) && (len(s) == 3 || strings.HasPrefix(strings.ToLower(fullDayNames[d]), strings.ToLower(s))) {
			return d, true
		}
	}
	return "", false
}

var fullDayNames = map[string]string{
	"Mon": "Monday",
	"Tue": "Tuesday",
	"Wed": "Wednesday",
	"Thu": "Thursday",
	"Fri": "Friday",
	"Sat": "Saturday",
	"Sun": "Sunday",
}
