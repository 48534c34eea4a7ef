package db_models

import (
	"github.com/google/uuid"
)

type ExpertProfile struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	User            User      `gorm:"foreignKey:UserID" json:"user"`
	Bio             string    `json:"bio"`
	Location        string    `json:"location"`
	Languages       string    `json:"languages"`
	ExperienceYears int       `json:"experience_years"`
	PricePerHour    float64   `gorm:"type:numeric" json:"price_per_hour"`
	CountryCode     string    `json:"country_code"`
	TimeZone        string    `json:"time_zone"`
	IsShown         bool      `gorm:"default:false" json:"is_shown"`
}
