package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"spa-backend/models"
	"spa-backend/services"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// ---------------------------
// Multipart field boundary
// ---------------------------

// parseListField decodes a multi-valued form field. The kiosk sends JSON
// arrays; anything that looks like JSON but does not decode to a string
// array is stored as an empty list. Plain text falls back to comma
// splitting. Never errors out.
func parseListField(raw string) models.StringList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.StringList{}
	}

	if strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			return models.StringList{}
		}
		return out
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseBoolField(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

func parsePriceField(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// ---------------------------
// Handlers
// ---------------------------

// CreateBooking (POST /api/bookings/create)
// Multipart: consultation form fields plus an optional generated "pdf" part.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	booking := models.Booking{
		Date:        c.PostForm("date"),
		Time:        c.PostForm("time"),
		Name:        c.PostForm("name"),
		Nationality: c.PostForm("nationality"),
		Mobile:      c.PostForm("mobile"),

		KnowFrom:          parseListField(c.PostForm("know_from")),
		SocialMedia:       parseListField(c.PostForm("social_media")),
		HealthConditions:  parseListField(c.PostForm("health_conditions")),
		SelectedBodyParts: parseListField(c.PostForm("selected_body_parts")),

		HasImplants:    parseBoolField(c.PostForm("has_implants")),
		ImplantsDetail: c.PostForm("implants_detail"),
		Pressure:       c.PostForm("pressure"),
		SkinType:       c.PostForm("skin_type"),
		OtherConcerns:  c.PostForm("other_concerns"),
		PromoOptIn:     parseBoolField(c.PostForm("promo_opt_in")),

		CategoryIDs:  parseListField(c.PostForm("category_ids")),
		TreatmentIDs: parseListField(c.PostForm("treatment_ids")),
		FoodIDs:      parseListField(c.PostForm("food_ids")),
		Duration:     c.PostForm("duration"),
		Price:        parsePriceField(c.PostForm("price")),

		Signature: c.PostForm("signature"),
	}

	if raw := strings.TrimSpace(c.PostForm("selection_snapshot")); raw != "" && json.Valid([]byte(raw)) {
		booking.SelectionSnapshot = datatypes.JSON(raw)
	}

	// PDF is written first; if the insert fails the file is removed again so
	// the sink does not accumulate orphans.
	if file, err := c.FormFile("pdf"); err == nil {
		path, err := services.SaveUpload(file, "pdfs")
		if err != nil {
			log.Printf("CreateBooking pdf save error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store pdf"})
			return
		}
		booking.PDFPath = path
	}

	if err := ctrl.BookingSvc.Create(&booking); err != nil {
		log.Printf("CreateBooking DB error: %v", err)
		if booking.PDFPath != "" {
			if rmErr := services.RemoveUpload(booking.PDFPath); rmErr != nil {
				log.Printf("CreateBooking pdf cleanup error: %v", rmErr)
			}
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": booking.ID, "pdf_path": booking.PDFPath})
}

// GetBookings (GET /api/bookings) returns the summary projection,
// most recent first.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	rows, err := ctrl.BookingSvc.List()
	if err != nil {
		log.Printf("GetBookings DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetBookingByID (GET /api/bookings/:id) returns the full row.
func (ctrl *BookingController) GetBookingByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	booking, err := ctrl.BookingSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("GetBookingByID DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load booking"})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateNote (PUT /api/bookings/:id/note) attaches or overwrites the staff
// note. No concurrency check: last writer wins.
func (ctrl *BookingController) UpdateNote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := ctrl.BookingSvc.UpdateNote(uint(id), req.Note); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("UpdateNote DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "note saved"})
}

// GetNoteLogs (GET /api/bookings/notes/logs) lists bookings carrying a note.
func (ctrl *BookingController) GetNoteLogs(c *gin.Context) {
	rows, err := ctrl.BookingSvc.NoteLogs()
	if err != nil {
		log.Printf("GetNoteLogs DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load note logs"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
