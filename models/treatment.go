package models

import "time"

type Treatment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	NameEn     string    `gorm:"size:255" json:"name_en"`
	NameAr     string    `gorm:"size:255" json:"name_ar"`
	CategoryID uint      `gorm:"index;column:category_id" json:"category_id"`
	Prices     PriceList `gorm:"type:text" json:"prices"`
	ImagePath  string    `gorm:"size:255" json:"image_path"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
