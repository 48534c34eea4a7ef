package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingDeclined  = "DECLINED"
	BookingCompleted = "COMPLETED"
)

type ExpertBooking struct {
	BaseModel
	UserID            uuid.UUID     `gorm:"type:uuid;index" json:"user_id"`
	User              User          `gorm:"foreignKey:UserID" json:"user"`
	ExpertID          uuid.UUID     `gorm:"type:uuid;index" json:"expert_id"`
	Expert            ExpertProfile `gorm:"foreignKey:ExpertID" json:"expert"`
	Status            string        `gorm:"default:PENDING" json:"status"`
	RequestedStart    *time.Time    `json:"requested_start"`
	RequestedTimeZone string        `json:"requested_time_zone"`
	DurationHours     int           `gorm:"default:4" json:"duration_hours"`
}
