package domain

import "strconv"

// Commercial is a TV ad creative registered with the clearance body. Only
// the campaign link is maintained here; every other field comes from the
// clearance feed.
type Commercial struct {
	ID               int64  `json:"commercial_id"`
	AdvertiserID     int64  `json:"advertiser_id"`
	CampaignID       *int64 `json:"campaign_id"`
	Title            string `json:"clearcast_commercial_title"`
	CommercialNumber string `json:"commercial_number"`
	WebAddress       string `json:"web_address"`
}

// DisplayName mirrors how commercials are labelled in listings.
func (c Commercial) DisplayName() string {
	if c.Title != "" {
		return c.Title
	}
	return "Commercial " + strconv.FormatInt(c.ID, 10)
}
