package request_models

import "encoding/json"

type SaveTripRequest struct {
	Title        string          `json:"title"`
	Origin       string          `json:"origin" binding:"required"`
	Destination  string          `json:"destination" binding:"required"`
	DurationDays int             `json:"duration_days"`
	Budget       string          `json:"budget"`
	GroupSize    string          `json:"group_size"`
	Interests    []string        `json:"interests"`
	SpecialReq   *string         `json:"special_req"`
	Plan         json.RawMessage `json:"plan" binding:"required"`
}
