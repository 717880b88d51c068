package services

import (
	"errors"

	"gorm.io/gorm"

	"reservation-backend/models"
)

// ServiceService manages the chargeable add-on catalog.
type ServiceService struct {
	DB *gorm.DB
}

func NewServiceService(db *gorm.DB) *ServiceService {
	return &ServiceService{DB: db}
}

func (s *ServiceService) Create(svc *models.Service) error {
	if svc.Availability == "" {
		svc.Availability = models.ServiceAvailable
	}
	return s.DB.Create(svc).Error
}

func (s *ServiceService) GetAll() ([]models.Service, error) {
	var list []models.Service
	err := s.DB.Order("id").Find(&list).Error
	return list, err
}

func (s *ServiceService) GetAvailable() ([]models.Service, error) {
	var list []models.Service
	err := s.DB.Where("availability = ?", models.ServiceAvailable).
		Order("id").
		Find(&list).Error
	return list, err
}

func (s *ServiceService) GetByID(id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.DB.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &svc, nil
}

func (s *ServiceService) Update(id uint, in models.Service) error {
	var svc models.Service
	if err := s.DB.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	return s.DB.Model(&models.Service{}).Where("id = ?", id).Updates(map[string]interface{}{
		"service_name": in.ServiceName,
		"description":  in.Description,
		"unit_price":   in.UnitPrice,
		"availability": in.Availability,
	}).Error
}

// Delete removes the service and its association rows; reservation totals
// already charged stay as billed.
func (s *ServiceService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var svc models.Service
		if err := tx.First(&svc, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServiceNotFound
			}
			return err
		}
		if err := tx.Where("service_id = ?", id).
			Delete(&models.ReservationService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Service{}, id).Error
	})
}
