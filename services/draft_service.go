package services

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spa-backend/models"
)

// Drafts outlive a single kiosk session comfortably but do not pile up
// forever; the kiosk creates one per customer walk-through.
const draftTTL = 2 * time.Hour

type DraftService struct {
	DB *gorm.DB
}

func NewDraftService(db *gorm.DB) *DraftService {
	return &DraftService{DB: db}
}

func (s *DraftService) Create(draft *models.BookingDraft) error {
	draft.Token = uuid.New().String()
	draft.ExpiresAt = time.Now().Add(draftTTL)
	return s.DB.Create(draft).Error
}

func (s *DraftService) GetByToken(token string) (models.BookingDraft, error) {
	var draft models.BookingDraft
	err := s.DB.Where("token = ?", token).First(&draft).Error
	return draft, err
}

// Update overwrites the selection fields of an existing draft and slides the
// expiry forward, so a slow customer does not lose their cart mid-flow.
func (s *DraftService) Update(draft *models.BookingDraft) error {
	draft.ExpiresAt = time.Now().Add(draftTTL)
	return s.DB.Model(&models.BookingDraft{}).
		Where("id = ?", draft.ID).
		Updates(map[string]interface{}{
			"language":      draft.Language,
			"category_ids":  draft.CategoryIDs,
			"treatment_ids": draft.TreatmentIDs,
			"food_ids":      draft.FoodIDs,
			"choices":       draft.Choices,
			"expires_at":    draft.ExpiresAt,
		}).Error
}
