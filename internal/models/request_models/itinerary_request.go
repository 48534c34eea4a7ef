package request_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type SaveItineraryRequest struct {
	Title         string          `json:"title" binding:"required"`
	TripID        *uuid.UUID      `json:"trip_id"`
	ItineraryData json.RawMessage `json:"itinerary_data" binding:"required"`
}
