package db_models

const RoleAdmin = "admin"

type User struct {
	BaseModel
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Role     string `json:"role"` // "" or "admin"
	Verified bool   `json:"verified"`
}
