package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"reservation-backend/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) checkRoomType(db *gorm.DB, roomTypeID uint) error {
	var rt models.RoomType
	if err := db.First(&rt, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomTypeNotFound
		}
		return fmt.Errorf("db error checking room type %d: %w", roomTypeID, err)
	}
	return nil
}

func (s *RoomService) Create(room *models.Room) error {
	if err := s.checkRoomType(s.DB, room.RoomTypeID); err != nil {
		return err
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if err := s.DB.Create(room).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateRoomNumber
		}
		return err
	}
	return nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").Order("id").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetAvailable() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("RoomType").
		Where("status = ?", models.RoomStatusAvailable).
		Order("id").
		Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) Update(id uint, in models.Room) error {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	if err := s.checkRoomType(s.DB, in.RoomTypeID); err != nil {
		return err
	}

	err := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(map[string]interface{}{
		"room_type_id":    in.RoomTypeID,
		"room_number":     in.RoomNumber,
		"capacity":        in.Capacity,
		"price_per_night": in.PricePerNight,
		"status":          in.Status,
	}).Error
	if err != nil && isDuplicateKey(err) {
		return ErrDuplicateRoomNumber
	}
	return err
}

// Delete removes the room and any association rows that point at it. Totals
// on reservations that held the room are left as billed.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if err := tx.Where("room_id = ?", id).
			Delete(&models.ReservationRoom{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, id).Error
	})
}
