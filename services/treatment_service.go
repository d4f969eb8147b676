package services

import (
	"errors"

	"gorm.io/gorm"

	"spa-backend/models"
)

var ErrCategoryNotFound = errors.New("category not found")

type TreatmentService struct {
	DB *gorm.DB
}

func NewTreatmentService(db *gorm.DB) *TreatmentService {
	return &TreatmentService{DB: db}
}

// Create checks the category reference exists, then inserts. Category
// deletion later is not guarded against orphaning (explicit decision).
func (s *TreatmentService) Create(treatment *models.Treatment) error {
	var count int64
	if err := s.DB.Model(&models.ServiceCategory{}).
		Where("id = ?", treatment.CategoryID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return s.DB.Create(treatment).Error
}

// List returns treatments ordered by explicit sort order. categoryID == 0
// means no filter. The filter matches on category_id alone, so treatments
// of a deleted category are still returned for that id.
func (s *TreatmentService) List(categoryID uint) ([]models.Treatment, error) {
	var treatments []models.Treatment
	q := s.DB.Order("sort_order asc, id asc")
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	err := q.Find(&treatments).Error
	return treatments, err
}

func (s *TreatmentService) GetByID(id uint) (models.Treatment, error) {
	var treatment models.Treatment
	err := s.DB.First(&treatment, id).Error
	return treatment, err
}

func (s *TreatmentService) Update(treatment *models.Treatment) error {
	return s.DB.Save(treatment).Error
}

func (s *TreatmentService) Delete(id uint) (models.Treatment, error) {
	var treatment models.Treatment
	if err := s.DB.First(&treatment, id).Error; err != nil {
		return treatment, err
	}
	if err := s.DB.Delete(&models.Treatment{}, id).Error; err != nil {
		return treatment, err
	}
	return treatment, nil
}
