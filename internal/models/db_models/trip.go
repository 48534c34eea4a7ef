package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Trip struct {
	BaseModel
	UserEmail    string         `gorm:"index" json:"user_email"`
	Title        string         `json:"title"`
	Origin       string         `json:"origin"`
	Destination  string         `json:"destination"`
	DurationDays int            `json:"duration_days"`
	Budget       string         `json:"budget"`
	GroupSize    string         `json:"group_size"`
	Interests    pq.StringArray `gorm:"type:text[]" json:"interests"`
	SpecialReq   *string        `json:"special_req"`
	PlanJSON     datatypes.JSON `gorm:"type:jsonb" json:"plan_json"`
}
