package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical format of pricing dates.
const DateLayout = "2006-01-02"

// PricingSheet marks the date from which a set of station prices applies.
// It stays effective until the next chronological sheet.
type PricingSheet struct {
	Date time.Time `json:"price_date"`
	Note string    `json:"note"`
}

// Station is a broadcaster channel.
type Station struct {
	ID   int64  `json:"station_id"`
	Name string `json:"station_name"`
}

// SalesHouse sells airtime on behalf of stations.
type SalesHouse struct {
	ID   int64  `json:"sales_house_id"`
	Name string `json:"sales_house_name"`
}

// StationPrice is one priced rule of a pricing sheet. Nil StartHour/EndHour,
// Duration and SalesHouseID are wildcards that match any break value.
// StationName and SalesHouseName are filled by listing queries.
type StationPrice struct {
	ID             int64           `json:"price_id"`
	PriceDate      time.Time       `json:"price_date"`
	StationID      int64           `json:"station_id"`
	StartHour      *int            `json:"start_hour"`
	EndHour        *int            `json:"end_hour"`
	Duration       *int            `json:"duration"`
	SalesHouseID   *int64          `json:"sales_house_id"`
	CostType       string          `json:"cost_type"`
	Cost           decimal.Decimal `json:"cost"`
	StationName    string          `json:"station_name,omitempty"`
	SalesHouseName *string         `json:"sales_house_name,omitempty"`
}

// StationPriceColumns is the column layout shared by pricing uploads and
// pricing extracts.
var StationPriceColumns = []string{
	"price_date", "station_name", "start_hour", "end_hour",
	"duration", "sales_house_name", "cost_type", "cost",
}

// Break is a scheduled commercial airing. PriceID is set once the break has
// been resolved against the station pricing of its window.
type Break struct {
	ID           int64     `json:"break_id"`
	StationID    int64     `json:"station_id"`
	Time         time.Time `json:"break_datetime"`
	SpotDuration int       `json:"spot_duration"`
	SalesHouseID *int64    `json:"sales_house_id"`
	PriceID      *int64    `json:"price_id"`
}
