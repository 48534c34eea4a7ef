package response_models

import "encoding/json"

type TripResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Origin       string          `json:"origin"`
	Destination  string          `json:"destination"`
	DurationDays int             `json:"duration_days"`
	Budget       string          `json:"budget"`
	GroupSize    string          `json:"group_size"`
	Interests    []string        `json:"interests"`
	SpecialReq   *string         `json:"special_req"`
	Plan         json.RawMessage `json:"plan,omitempty"`
	CreatedAt    int64           `json:"created_at"`
}

type TripSummaryResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	DurationDays int    `json:"duration_days"`
	CreatedAt    int64  `json:"created_at"`
}
