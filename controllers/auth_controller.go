package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spa-backend/config"
	"spa-backend/models"
	"spa-backend/utils"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login (POST /api/admin/login)
// Unknown email and wrong password answer identically so the endpoint does
// not leak which emails exist.
func Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	email := strings.TrimSpace(payload.Email)
	if email == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Login DB error: %v", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if !utils.CheckPasswordHash(payload.Password, admin.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		log.Printf("Login token error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
			"role":  "admin",
		},
	})
}

// GetAdmins (GET /api/admin) lists admin emails with the fixed role label.
func GetAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := config.DB.Order("id asc").Find(&admins).Error; err != nil {
		log.Printf("GetAdmins DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load admins"})
		return
	}

	out := make([]gin.H, 0, len(admins))
	for _, a := range admins {
		out = append(out, gin.H{
			"id":    a.ID,
			"email": a.Email,
			"role":  "admin",
		})
	}
	c.JSON(http.StatusOK, out)
}
