package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spa-backend/models"
	"spa-backend/services"
)

type DraftController struct {
	DraftSvc *services.DraftService
}

func NewDraftController(svc *services.DraftService) *DraftController {
	return &DraftController{DraftSvc: svc}
}

type draftPayload struct {
	Language     string                 `json:"language"`
	CategoryIDs  []string               `json:"category_ids"`
	TreatmentIDs []string               `json:"treatment_ids"`
	FoodIDs      []string               `json:"food_ids"`
	Choices      map[string]interface{} `json:"choices"`
}

func (p *draftPayload) apply(draft *models.BookingDraft) error {
	draft.Language = p.Language
	draft.CategoryIDs = p.CategoryIDs
	draft.TreatmentIDs = p.TreatmentIDs
	draft.FoodIDs = p.FoodIDs
	if p.Choices != nil {
		raw, err := models.MarshalChoices(p.Choices)
		if err != nil {
			return err
		}
		draft.Choices = raw
	}
	return nil
}

// CreateDraft (POST /api/booking-drafts)
// Starts a kiosk session; the returned token rides along to each page in
// place of the old query-string cart.
func (ctrl *DraftController) CreateDraft(c *gin.Context) {
	var payload draftPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	var draft models.BookingDraft
	if err := payload.apply(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid choices"})
		return
	}

	if err := ctrl.DraftSvc.Create(&draft); err != nil {
		log.Printf("CreateDraft DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create draft"})
		return
	}

	c.JSON(http.StatusCreated, draft)
}

// GetDraft (GET /api/booking-drafts/:token)
func (ctrl *DraftController) GetDraft(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	draft, err := ctrl.DraftSvc.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		}
		log.Printf("GetDraft DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load draft"})
		return
	}

	if draft.Expired() {
		c.JSON(http.StatusGone, gin.H{"error": "draft expired"})
		return
	}

	c.JSON(http.StatusOK, draft)
}

// UpdateDraft (PUT /api/booking-drafts/:token)
// Each kiosk page overwrites the selection as the customer moves forward.
func (ctrl *DraftController) UpdateDraft(c *gin.Context) {
	token := strings.TrimSpace(c.Param("token"))
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	draft, err := ctrl.DraftSvc.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "draft not found"})
			return
		}
		log.Printf("UpdateDraft DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load draft"})
		return
	}

	if draft.Expired() {
		c.JSON(http.StatusGone, gin.H{"error": "draft expired"})
		return
	}

	var payload draftPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if err := payload.apply(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid choices"})
		return
	}

	if err := ctrl.DraftSvc.Update(&draft); err != nil {
		log.Printf("UpdateDraft DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update draft"})
		return
	}

	c.JSON(http.StatusOK, draft)
}
