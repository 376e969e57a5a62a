package port

import "time"

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// Page bounds a listing.
type Page struct {
	Limit  int
	Offset int
}

// Normalize applies the default and maximum page sizes.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// ClientFilter narrows client listings. Search matches the name.
type ClientFilter struct {
	Search    string
	StartDate *time.Time
	Page
}

// CampaignFilter narrows campaign listings.
type CampaignFilter struct {
	Search   string
	ClientID *int64
	Page
}

// ItemFilter narrows product and page listings. Search matches the item name
// for products and the URL for pages.
type ItemFilter struct {
	Search   string
	ClientID *int64
	Page
}

// MappingFilter narrows mapping listings.
type MappingFilter struct {
	CampaignID *int64
	Page
}

// CommercialFilter narrows commercial listings. Search matches the title.
type CommercialFilter struct {
	Search     string
	CampaignID *int64
	Page
}

// PricingSheetFilter narrows pricing sheet listings. Search is matched
// against the ISO date text, so "2025-08" lists every August sheet.
type PricingSheetFilter struct {
	Search string
	Page
}

// BreakFilter selects breaks airing in [From, Before).
type BreakFilter struct {
	From      *time.Time
	Before    *time.Time
	StationID *int64
	Page
}

// StationPriceFilter narrows station price listings.
type StationPriceFilter struct {
	PriceDate *time.Time
	StationID *int64
	Page
}
