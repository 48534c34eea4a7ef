package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Itinerary struct {
	BaseModel
	UserEmail     string         `gorm:"index" json:"user_email"`
	TripID        *uuid.UUID     `gorm:"type:uuid" json:"trip_id"`
	Title         string         `json:"title"`
	ItineraryJSON datatypes.JSON `gorm:"type:jsonb" json:"itinerary_json"`
}
