package domain

import "time"

// Client is an advertiser account. The activity window bounds the part of
// the day in which responses are attributed to airings; the attribution
// window is expressed in minutes.
type Client struct {
	ID                        int64     `json:"client_id"`
	Name                      string    `json:"name"`
	DailyActivityStart        string    `json:"daily_activity_start_time"` // HH:MM:SS
	DailyActivityEnd          string    `json:"daily_activity_end_time"`   // HH:MM:SS
	AttributionWindowDuration int       `json:"attribution_window_duration"`
	GA4Filename               string    `json:"ga4_filename"`
	StartDate                 time.Time `json:"start_date"`
}
