package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// BookingDraft carries the kiosk's accumulated selection between pages so
// the booking form does not have to reconstruct state from the URL.
type BookingDraft struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Token string `gorm:"uniqueIndex;size:64" json:"token"`

	Language     string     `gorm:"size:10" json:"language"`
	CategoryIDs  StringList `gorm:"type:text" json:"category_ids"`
	TreatmentIDs StringList `gorm:"type:text" json:"treatment_ids"`
	FoodIDs      StringList `gorm:"type:text" json:"food_ids"`

	// treatmentID -> {duration, price}
	Choices datatypes.JSON `json:"choices,omitempty"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *BookingDraft) Expired() bool {
	return time.Now().After(d.ExpiresAt)
}

// MarshalChoices encodes the duration/price choice map for storage.
func MarshalChoices(choices map[string]interface{}) (datatypes.JSON, error) {
	raw, err := json.Marshal(choices)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
