package db_models

type Category struct {
	BaseModel
	Name  string `gorm:"uniqueIndex" json:"name"`
	Image string `json:"image"`
}
