package models

import (
	"time"

	"gorm.io/datatypes"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Date        string `gorm:"size:32" json:"date"`
	Time        string `gorm:"size:32" json:"time"`
	Name        string `gorm:"size:255" json:"name"`
	Nationality string `gorm:"size:100" json:"nationality"`
	Mobile      string `gorm:"size:50" json:"mobile"`

	KnowFrom          StringList `gorm:"type:text" json:"know_from"`
	SocialMedia       StringList `gorm:"type:text" json:"social_media"`
	HealthConditions  StringList `gorm:"type:text" json:"health_conditions"`
	SelectedBodyParts StringList `gorm:"type:text" json:"selected_body_parts"`

	HasImplants    bool   `json:"has_implants"`
	ImplantsDetail string `gorm:"type:text" json:"implants_detail"`
	Pressure       string `gorm:"size:50" json:"pressure"`
	SkinType       string `gorm:"size:50" json:"skin_type"`
	OtherConcerns  string `gorm:"type:text" json:"other_concerns"`
	PromoOptIn     bool   `json:"promo_opt_in"`

	CategoryIDs  StringList `gorm:"type:text" json:"category_ids"`
	TreatmentIDs StringList `gorm:"type:text" json:"treatment_ids"`
	FoodIDs      StringList `gorm:"type:text" json:"food_ids"`
	Duration     string     `gorm:"size:100" json:"duration"`
	Price        float64    `json:"price"`

	// raw draft state forwarded by the kiosk, kept for reconciliation
	SelectionSnapshot datatypes.JSON `json:"selection_snapshot,omitempty"`

	Signature  string `gorm:"type:longtext" json:"signature"`
	PDFPath    string `gorm:"column:pdf_path;size:255" json:"pdf_path"`
	DoctorNote string `gorm:"type:text" json:"doctor_note"`
}

// BookingSummary is the projection used by the admin bookings table.
type BookingSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Mobile   string  `json:"mobile"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Duration string  `json:"duration"`
	Price    float64 `json:"price"`
}
