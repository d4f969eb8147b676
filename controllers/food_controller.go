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
// Food & beverages controller
// -----------------------------

// GET /api/food-beverages
func GetFoodBeverages(c *gin.Context) {
	var items []models.FoodBeverage
	if err := config.DB.Order("id asc").Find(&items).Error; err != nil {
		log.Printf("GetFoodBeverages DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load food items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /api/food-beverages (multipart)
func CreateFoodBeverage(c *gin.Context) {
	nameEn := strings.TrimSpace(c.PostForm("name_en"))
	if nameEn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name_en is required"})
		return
	}

	item := models.FoodBeverage{
		NameEn:        nameEn,
		NameAr:        strings.TrimSpace(c.PostForm("name_ar")),
		DescriptionEn: c.PostForm("description_en"),
		DescriptionAr: c.PostForm("description_ar"),
	}

	if file, err := c.FormFile("image"); err == nil {
		path, err := services.SaveUpload(file, "food")
		if err != nil {
			log.Printf("CreateFoodBeverage image save error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
		item.ImagePath = path
	}

	if err := config.DB.Create(&item).Error; err != nil {
		log.Printf("CreateFoodBeverage DB error: %v", err)
		if item.ImagePath != "" {
			_ = services.RemoveUpload(item.ImagePath)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// PUT /api/food-beverages/:id (multipart; same image replacement rules as
// categories)
func UpdateFoodBeverage(c *gin.Context) {
	var item models.FoodBeverage
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
			return
		}
		log.Printf("UpdateFoodBeverage DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load food item"})
		return
	}

	if v := strings.TrimSpace(c.PostForm("name_en")); v != "" {
		item.NameEn = v
	}
	if v, ok := c.GetPostForm("name_ar"); ok {
		item.NameAr = strings.TrimSpace(v)
	}
	if v, ok := c.GetPostForm("description_en"); ok {
		item.DescriptionEn = v
	}
	if v, ok := c.GetPostForm("description_ar"); ok {
		item.DescriptionAr = v
	}

	oldImage := item.ImagePath
	newImage := ""
	if file, err := c.FormFile("image"); err == nil {
		path, err := services.SaveUpload(file, "food")
		if err != nil {
			log.Printf("UpdateFoodBeverage image save error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
		newImage = path
		item.ImagePath = path
	}

	if err := config.DB.Save(&item).Error; err != nil {
		log.Printf("UpdateFoodBeverage DB error: %v", err)
		if newImage != "" {
			_ = services.RemoveUpload(newImage)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update food item"})
		return
	}

	if newImage != "" && oldImage != "" && oldImage != newImage {
		if err := services.RemoveUpload(oldImage); err != nil {
			log.Printf("UpdateFoodBeverage old image unlink error: %v", err)
		}
	}

	c.JSON(http.StatusOK, item)
}

// DELETE /api/food-beverages/:id
func DeleteFoodBeverage(c *gin.Context) {
	var item models.FoodBeverage
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
			return
		}
		log.Printf("DeleteFoodBeverage DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load food item"})
		return
	}

	if err := config.DB.Delete(&item).Error; err != nil {
		log.Printf("DeleteFoodBeverage DB error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete food item"})
		return
	}

	if err := services.RemoveUpload(item.ImagePath); err != nil {
		log.Printf("DeleteFoodBeverage image unlink error: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "food item deleted"})
}
