package domain

// Product is an analytics-tracked item. Products are synchronised from the
// analytics export and are never created from the back office.
type Product struct {
	ID       int64  `json:"ga_product_id"`
	ClientID int64  `json:"client_id"`
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
}

// Page is an analytics-tracked landing page.
type Page struct {
	ID       int64  `json:"ga_page_id"`
	ClientID int64  `json:"client_id"`
	URL      string `json:"url"`
}

// ProductMapping links a product to a campaign. ItemName is filled by
// listing queries for display.
type ProductMapping struct {
	ID         int64  `json:"map_id"`
	ProductID  int64  `json:"ga_product_id"`
	CampaignID int64  `json:"campaign_id"`
	ItemName   string `json:"item_name,omitempty"`
}

// PageMapping links a page to a campaign.
type PageMapping struct {
	ID         int64  `json:"map_id"`
	PageID     int64  `json:"ga_page_id"`
	CampaignID int64  `json:"campaign_id"`
	URL        string `json:"url,omitempty"`
}
