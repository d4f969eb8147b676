package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spa-backend/config"
	"spa-backend/models"
	"spa-backend/services"
)

// welcomeVideoName keeps the kiosk video at a fixed path so the player URL
// never changes; a new upload simply overwrites it.
const welcomeVideoName = "welcome-video.mp4"

type spaSettingsPayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

func loadOrInitSettings() (models.SpaSetting, error) {
	var setting models.SpaSetting
	err := config.DB.First(&setting).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SpaSetting{}, nil
	}
	return setting, err
}

// GET /api/settings/spa
func GetSpaSettings(c *gin.Context) {
	setting, err := loadOrInitSettings()
	if err != nil {
		log.Printf("GetSpaSettings DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"spa": setting})
}

// PUT /api/settings/spa
func UpdateSpaSettings(c *gin.Context) {
	var payload spaSettingsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	setting, err := loadOrInitSettings()
	if err != nil {
		log.Printf("UpdateSpaSettings DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	setting.Name = payload.Name
	setting.Address = payload.Address
	setting.Phone = payload.Phone
	setting.Email = payload.Email

	if err := config.DB.Save(&setting).Error; err != nil {
		log.Printf("UpdateSpaSettings DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"spa": setting})
}

// POST /api/settings/upload-video (multipart "video", fixed filename)
func UploadVideo(c *gin.Context) {
	file, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}

	path, err := services.SaveUploadAs(file, "videos", welcomeVideoName)
	if err != nil {
		log.Printf("UploadVideo save error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store video"})
		return
	}

	setting, err := loadOrInitSettings()
	if err != nil {
		log.Printf("UploadVideo DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	setting.VideoPath = path
	if err := config.DB.Save(&setting).Error; err != nil {
		log.Printf("UploadVideo DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"video_path": path})
}

// GET /api/settings/get-video
func GetVideo(c *gin.Context) {
	setting, err := loadOrInitSettings()
	if err != nil {
		log.Printf("GetVideo DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}

	if setting.VideoPath == "" || !services.UploadExists(setting.VideoPath) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no welcome video uploaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"video_path": setting.VideoPath})
}
