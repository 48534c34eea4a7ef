package db_models

const (
	RoleUser   = "user"
	RoleExpert = "expert"
	RoleAdmin  = "admin"
)

type User struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"unique" json:"email"`
	PasswordHash string `json:"-"`
	AvatarURL    string `json:"avatar_url"`
	Role         string `gorm:"default:user" json:"role"`
}
