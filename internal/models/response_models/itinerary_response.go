package response_models

import "encoding/json"

type ItineraryResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TripID        *string         `json:"trip_id"`
	ItineraryData json.RawMessage `json:"itinerary_data,omitempty"`
	CreatedAt     int64           `json:"created_at"`
}
