package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"reservation-backend/models"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) Create(guest *models.Guest) error {
	return s.DB.Create(guest).Error
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Order("id").Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	return &guest, nil
}

// Update replaces every mutable field of the guest.
func (s *GuestService) Update(id uint, in models.Guest) error {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGuestNotFound
		}
		return err
	}

	return s.DB.Model(&models.Guest{}).Where("id = ?", id).Updates(map[string]interface{}{
		"first_name": in.FirstName,
		"last_name":  in.LastName,
		"email":      in.Email,
		"phone":      in.Phone,
		"tax_id":     in.TaxID,
		"notes":      in.Notes,
	}).Error
}

// Delete cascades: every reservation the guest owns is torn down through the
// same path as a direct reservation delete, so held rooms come back to
// Available before the guest row goes.
func (s *GuestService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGuestNotFound
			}
			return err
		}

		var reservations []models.Reservation
		if err := tx.Where("guest_id = ?", id).Find(&reservations).Error; err != nil {
			return err
		}
		for _, resv := range reservations {
			if err := deleteReservationTx(tx, resv.ID); err != nil {
				return fmt.Errorf("failed to cascade reservation %d: %w", resv.ID, err)
			}
		}

		return tx.Delete(&models.Guest{}, id).Error
	})
}
