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
	"spa-backend/services"
)

// -----------------------------
// Service categories controller
// -----------------------------

// GET /api/categories
func GetCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := config.DB.Order("id asc").Find(&categories).Error; err != nil {
		log.Printf("GetCategories DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// POST /api/categories (multipart: name_en required, name_ar, image)
func CreateCategory(c *gin.Context) {
	nameEn := strings.TrimSpace(c.PostForm("name_en"))
	if nameEn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name_en is required"})
		return
	}

	category := models.ServiceCategory{
		NameEn: nameEn,
		NameAr: strings.TrimSpace(c.PostForm("name_ar")),
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := services.SaveUpload(file, "categories")
		if err != nil {
			log.Printf("CreateCategory image save error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
		category.ImagePath = path
	}

	if err := config.DB.Create(&category).Error; err != nil {
		log.Printf("CreateCategory DB error: %v", err)
		if category.ImagePath != "" {
			_ = services.RemoveUpload(category.ImagePath)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// PUT /api/categories/:id (multipart; image replacement writes the new file,
// commits the row, then unlinks the old file — the old file is never removed
// before the row points at the new one)
func UpdateCategory(c *gin.Context) {
	var category models.ServiceCategory
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		log.Printf("UpdateCategory DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load category"})
		return
	}

	if v := strings.TrimSpace(c.PostForm("name_en")); v != "" {
		category.NameEn = v
	}
	if v, ok := c.GetPostForm("name_ar"); ok {
		category.NameAr = strings.TrimSpace(v)
	}

	oldImage := category.ImagePath
	newImage := ""
	if file, err := c.FormFile("image"); err == nil {
		path, err := services.SaveUpload(file, "categories")
		if err != nil {
			log.Printf("UpdateCategory image save error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
		newImage = path
		category.ImagePath = path
	}

	if err := config.DB.Save(&category).Error; err != nil {
		log.Printf("UpdateCategory DB error: %v", err)
		if newImage != "" {
			_ = services.RemoveUpload(newImage)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update category"})
		return
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		if err := services.RemoveUpload(oldImage); err != nil {
			log.Printf("UpdateCategory old image unlink error: %v", err)
		}
	}

	c.JSON(http.StatusOK, category)
}

// DELETE /api/categories/:id
// Treatments referencing the category are left in place; they stay
// retrievable by id and by category_id filter.
func DeleteCategory(c *gin.Context) {
	var category models.ServiceCategory
	if err := config.DB.First(&category, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}
		log.Printf("DeleteCategory DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load category"})
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		log.Printf("DeleteCategory DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}

	if err := services.RemoveUpload(category.ImagePath); err != nil {
		log.Printf("DeleteCategory image unlink error: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
