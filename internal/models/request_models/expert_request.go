package request_models

import "time"

type UpdateExpertProfileRequest struct {
	Bio             *string  `json:"bio"`
	Location        *string  `json:"location"`
	Languages       *string  `json:"languages"`
	ExperienceYears *int     `json:"experience_years"`
	PricePerHour    *float64 `json:"price_per_hour"`
	CountryCode     *string  `json:"country_code"`
	TimeZone        *string  `json:"time_zone"`
}

type CreateExpertBookingRequest struct {
	ExpertID          string     `json:"expert_id" binding:"required"`
	RequestedStart    *time.Time `json:"requested_start"`
	RequestedTimeZone string     `json:"requested_time_zone"`
	DurationHours     int        `json:"duration_hours"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateExpertRequest is admin-only: provisions the user account and the
// expert profile in one go.
type CreateExpertRequest struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=6"`
	Bio             string  `json:"bio"`
	Location        string  `json:"location"`
	Languages       string  `json:"languages"`
	ExperienceYears int     `json:"experience_years"`
	PricePerHour    float64 `json:"price_per_hour"`
	CountryCode     string  `json:"country_code"`
	TimeZone        string  `json:"time_zone"`
}

type SetExpertVisibilityRequest struct {
	IsShown bool `json:"is_shown"`
}
