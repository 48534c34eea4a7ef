package response_models

import "time"

type ExpertResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email,omitempty"`
	AvatarURL       string  `json:"avatar_url"`
	Bio             string  `json:"bio"`
	Location        string  `json:"location"`
	Languages       string  `json:"languages"`
	ExperienceYears int     `json:"experience_years"`
	PricePerHour    float64 `json:"price_per_hour"`
	CountryCode     string  `json:"country_code"`
	TimeZone        string  `json:"time_zone"`
	IsShown         bool    `json:"is_shown"`
}

type BookingResponse struct {
	ID                string     `json:"id"`
	ExpertID          string     `json:"expert_id"`
	ExpertName        string     `json:"expert_name"`
	UserName          string     `json:"user_name,omitempty"`
	Status            string     `json:"status"`
	RequestedStart    *time.Time `json:"requested_start"`
	RequestedTimeZone string     `json:"requested_time_zone"`
	DurationHours     int        `json:"duration_hours"`
	CreatedAt         int64      `json:"created_at"`
}
