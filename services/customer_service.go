package services

import (
	"gorm.io/gorm"

	"spa-backend/models"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) Create(customer *models.Customer) error {
	return s.DB.Create(customer).Error
}

func (s *CustomerService) List() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.DB.Order("created_at desc").Find(&customers).Error
	return customers, err
}
