package services

import (
	"gorm.io/gorm"

	"spa-backend/models"
)

type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// Create inserts the booking and lets GORM write the generated ID back.
func (s *BookingService) Create(booking *models.Booking) error {
	return s.DB.Create(booking).Error
}

// List returns all bookings newest-first, projected for the admin table.
func (s *BookingService) List() ([]models.BookingSummary, error) {
	var rows []models.BookingSummary
	err := s.DB.Model(&models.Booking{}).
		Select("id", "name", "mobile", "date", "time", "duration", "price").
		Order("created_at desc, id desc").
		Find(&rows).Error
	return rows, err
}

func (s *BookingService) GetByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.First(&booking, id).Error
	return booking, err
}

// UpdateNote overwrites the staff note. Last writer wins. Existence is
// checked with a lookup rather than RowsAffected: the mysql driver reports
// changed rows, so rewriting an identical note would otherwise look like a
// missing booking.
func (s *BookingService) UpdateNote(id uint, note string) error {
	var booking models.Booking
	if err := s.DB.Select("id").First(&booking, id).Error; err != nil {
		return err
	}
	return s.DB.Model(&models.Booking{}).Where("id = ?", id).Update("doctor_note", note).Error
}

// NoteLogs returns bookings that carry a staff note, newest-first.
func (s *BookingService) NoteLogs() ([]models.Booking, error) {
	var rows []models.Booking
	err := s.DB.
		Where("doctor_note IS NOT NULL AND doctor_note <> ''").
		Order("updated_at desc").
		Find(&rows).Error
	return rows, err
}
