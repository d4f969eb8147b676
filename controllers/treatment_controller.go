package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spa-backend/models"
	"spa-backend/services"
)

type TreatmentController struct {
	TreatmentSvc *services.TreatmentService
}

func NewTreatmentController(svc *services.TreatmentService) *TreatmentController {
	return &TreatmentController{TreatmentSvc: svc}
}

// parsePricesField decodes the duration/price pairs field. Sent as a JSON
// array; malformed input becomes an empty list, matching read behavior.
func parsePricesField(raw string) models.PriceList {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.PriceList{}
	}
	var out []models.PriceOption
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return models.PriceList{}
	}
	return out
}

// GetTreatments (GET /api/treatments?category_id=)
func (ctrl *TreatmentController) GetTreatments(c *gin.Context) {
	var categoryID uint
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		categoryID = uint(id)
	}

	treatments, err := ctrl.TreatmentSvc.List(categoryID)
	if err != nil {
		log.Printf("GetTreatments DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load treatments"})
		return
	}
	c.JSON(http.StatusOK, treatments)
}

// GetTreatmentByID (GET /api/treatments/:id)
func (ctrl *TreatmentController) GetTreatmentByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	treatment, err := ctrl.TreatmentSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "treatment not found"})
			return
		}
		log.Printf("GetTreatmentByID DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load treatment"})
		return
	}
	c.JSON(http.StatusOK, treatment)
}

// CreateTreatment (POST /api/treatments, multipart)
func (ctrl *TreatmentController) CreateTreatment(c *gin.Context) {
	nameEn := strings.TrimSpace(c.PostForm("name_en"))
	if nameEn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name_en is required"})
		return
	}

	categoryID, err := strconv.Atoi(c.PostForm("category_id"))
	if err != nil || categoryID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category_id is required"})
		return
	}

	sortOrder, _ := strconv.Atoi(c.PostForm("sort_order"))

	treatment := models.Treatment{
		NameEn:     nameEn,
		NameAr:     strings.TrimSpace(c.PostForm("name_ar")),
		CategoryID: uint(categoryID),
		Prices:     parsePricesField(c.PostForm("prices")),
		SortOrder:  sortOrder,
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := services.SaveUpload(file, "treatments")
		if err != nil {
			log.Printf("CreateTreatment image save error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
		treatment.ImagePath = path
	}

	if err := ctrl.TreatmentSvc.Create(&treatment); err != nil {
		if treatment.ImagePath != "" {
			_ = services.RemoveUpload(treatment.ImagePath)
		}
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category does not exist"})
			return
		}
		log.Printf("CreateTreatment DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create treatment"})
		return
	}

	c.JSON(http.StatusCreated, treatment)
}

// UpdateTreatment (PUT /api/treatments/:id, multipart)
func (ctrl *TreatmentController) UpdateTreatment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	treatment, err := ctrl.TreatmentSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "treatment not found"})
			return
		}
		log.Printf("UpdateTreatment DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load treatment"})
		return
	}

	if v := strings.TrimSpace(c.PostForm("name_en")); v != "" {
		treatment.NameEn = v
	}
	if v, ok := c.GetPostForm("name_ar"); ok {
		treatment.NameAr = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("prices"); ok {
		treatment.Prices = parsePricesField(v)
	}
	if v, ok := c.GetPostForm("sort_order"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			treatment.SortOrder = n
		}
	}
	if v, ok := c.GetPostForm("category_id"); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			treatment.CategoryID = uint(n)
		}
	}

	oldImage := treatment.ImagePath
	newImage := ""
	if file, err := c.FormFile("image"); err == nil {
		path, err := services.SaveUpload(file, "treatments")
		if err != nil {
			log.Printf("UpdateTreatment image save error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
		newImage = path
		treatment.ImagePath = path
	}

	if err := ctrl.TreatmentSvc.Update(&treatment); err != nil {
		log.Printf("UpdateTreatment DB error: %v", err)
		if newImage != "" {
			_ = services.RemoveUpload(newImage)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update treatment"})
		return
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		if err := services.RemoveUpload(oldImage); err != nil {
			log.Printf("UpdateTreatment old image unlink error: %v", err)
		}
	}

	c.JSON(http.StatusOK, treatment)
}

// DeleteTreatment (DELETE /api/treatments/:id)
func (ctrl *TreatmentController) DeleteTreatment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	treatment, err := ctrl.TreatmentSvc.Delete(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "treatment not found"})
			return
		}
		log.Printf("DeleteTreatment DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete treatment"})
		return
	}

	if err := services.RemoveUpload(treatment.ImagePath); err != nil {
		log.Printf("DeleteTreatment image unlink error: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "treatment deleted"})
}
