package domain

// Campaign belongs to a Client and groups products, pages and commercials.
type Campaign struct {
	ID       int64  `json:"campaign_id"`
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
}

// CampaignDetail is a campaign together with everything linked to it.
type CampaignDetail struct {
	Campaign
	ProductMappings []ProductMapping `json:"product_mappings"`
	PageMappings    []PageMapping    `json:"page_mappings"`
	Commercials     []Commercial     `json:"commercials"`
}
