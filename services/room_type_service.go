package services

import (
	"errors"

	"gorm.io/gorm"

	"reservation-backend/models"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(rt *models.RoomType) error {
	return s.DB.Create(rt).Error
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.Order("id").Find(&types).Error
	return types, err
}

func (s *RoomTypeService) GetByID(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (s *RoomTypeService) Update(id uint, in models.RoomType) error {
	var rt models.RoomType
	if err := s.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomTypeNotFound
		}
		return err
	}
	return s.DB.Model(&models.RoomType{}).Where("id = ?", id).Updates(map[string]interface{}{
		"type_name":   in.TypeName,
		"description": in.Description,
		"standard":    in.Standard,
	}).Error
}

// Delete cascades to the rooms of this type and their association rows.
func (s *RoomTypeService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var rt models.RoomType
		if err := tx.First(&rt, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomTypeNotFound
			}
			return err
		}

		var rooms []models.Room
		if err := tx.Where("room_type_id = ?", id).Find(&rooms).Error; err != nil {
			return err
		}
		for _, room := range rooms {
			if err := tx.Where("room_id = ?", room.ID).
				Delete(&models.ReservationRoom{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("room_type_id = ?", id).
			Delete(&models.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.RoomType{}, id).Error
	})
}
