package models

import "time"

type ServiceCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NameEn    string    `gorm:"size:255" json:"name_en"`
	NameAr    string    `gorm:"size:255" json:"name_ar"`
	ImagePath string    `gorm:"size:255" json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
