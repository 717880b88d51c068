package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"reservation-backend/models"
)

// ReservationService owns the reservation ledger: plain CRUD plus the attach
// operations that keep total_price and room status in step with the
// association tables.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// ReservationInput carries the mutable reservation fields. TotalPrice is only
// honored on update; a new reservation always starts at 0 so the ledger math
// stays truthful.
type ReservationInput struct {
	GuestID        uint
	CheckInDate    string
	CheckOutDate   string
	NumberOfGuests int
	TotalPrice     float64
	Status         string
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// nightsBetween counts whole days between two dates, never below one night.
func nightsBetween(checkIn, checkOut time.Time) int {
	ci := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	co := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	nights := int(co.Sub(ci).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

func normalizeStatus(status string) (string, error) {
	if status == "" {
		return models.ReservationStatusConfirmed, nil
	}
	if !models.ValidReservationStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.
		Preload("Guest").
		Preload("Rooms.Room").
		Preload("Services.Service").
		Order("reservations.id").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var resv models.Reservation
	err := s.DB.
		Preload("Guest").
		Preload("Rooms.Room").
		Preload("Services.Service").
		First(&resv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation %d: %w", id, err)
	}
	return &resv, nil
}

func (s *ReservationService) GetByGuestID(guestID uint) ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.
		Preload("Guest").
		Preload("Rooms.Room").
		Where("guest_id = ?", guestID).
		Order("reservations.id").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations for guest %d: %w", guestID, err)
	}
	return list, nil
}

func (s *ReservationService) Create(in ReservationInput) (*models.Reservation, error) {
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return nil, err
	}
	checkIn, err := parseDate(in.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: check_in_date: %v", ErrInvalidDate, err)
	}
	checkOut, err := parseDate(in.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out_date: %v", ErrInvalidDate, err)
	}

	var guest models.Guest
	if err := s.DB.First(&guest, in.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("db error checking guest %d: %w", in.GuestID, err)
	}

	resv := models.Reservation{
		GuestID:         in.GuestID,
		ReservationDate: time.Now().UTC(),
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  in.NumberOfGuests,
		TotalPrice:      0,
		Status:          status,
	}
	if err := s.DB.Create(&resv).Error; err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	resv.Guest = guest
	resv.Rooms = []models.ReservationRoom{}
	resv.Services = []models.ReservationService{}
	return &resv, nil
}

// Update replaces every mutable field. There are no partial-patch semantics.
func (s *ReservationService) Update(id uint, in ReservationInput) error {
	status, err := normalizeStatus(in.Status)
	if err != nil {
		return err
	}
	checkIn, err := parseDate(in.CheckInDate)
	if err != nil {
		return fmt.Errorf("%w: check_in_date: %v", ErrInvalidDate, err)
	}
	checkOut, err := parseDate(in.CheckOutDate)
	if err != nil {
		return fmt.Errorf("%w: check_out_date: %v", ErrInvalidDate, err)
	}

	var resv models.Reservation
	if err := s.DB.First(&resv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("failed to find reservation %d: %w", id, err)
	}

	var guest models.Guest
	if err := s.DB.First(&guest, in.GuestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGuestNotFound
		}
		return fmt.Errorf("db error checking guest %d: %w", in.GuestID, err)
	}

	return s.DB.Model(&models.Reservation{}).Where("id = ?", id).Updates(map[string]interface{}{
		"guest_id":         in.GuestID,
		"check_in_date":    checkIn,
		"check_out_date":   checkOut,
		"number_of_guests": in.NumberOfGuests,
		"total_price":      in.TotalPrice,
		"status":           status,
	}).Error
}

// AttachRoom links a room to a reservation, snapshots the nightly price,
// charges nights x snapshot onto the running total and marks the room
// Occupied. All of it commits or none of it does.
func (s *ReservationService) AttachRoom(reservationID, roomID uint) (*models.ReservationRoom, error) {
	var link models.ReservationRoom

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var resv models.Reservation
		if err := tx.First(&resv, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.ReservationRoom{}).
			Where("reservation_id = ? AND room_id = ?", reservationID, roomID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrRoomAlreadyAttached
		}

		nights := nightsBetween(resv.CheckInDate, resv.CheckOutDate)

		// Snapshot read before the association write; the charge below must
		// use this value, never a re-read of the room.
		link = models.ReservationRoom{
			ReservationID: reservationID,
			RoomID:        roomID,
			PricePerNight: room.PricePerNight,
		}
		if err := tx.Create(&link).Error; err != nil {
			// Composite key is the backstop for a concurrent attach that
			// slipped past the count above.
			if isDuplicateKey(err) {
				return ErrRoomAlreadyAttached
			}
			return fmt.Errorf("failed to create reservation_room: %w", err)
		}

		charge := float64(nights) * link.PricePerNight
		if err := tx.Model(&models.Reservation{}).
			Where("id = ?", reservationID).
			Update("total_price", gorm.Expr("total_price + ?", charge)).Error; err != nil {
			return fmt.Errorf("failed to update reservation total: %w", err)
		}

		if err := tx.Model(&models.Room{}).
			Where("id = ?", roomID).
			Update("status", models.RoomStatusOccupied).Error; err != nil {
			return fmt.Errorf("failed to update room %d status: %w", roomID, err)
		}

		link.Room = room
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &link, nil
}

// AttachService charges quantity x current unit price onto the reservation.
// Unlike rooms there is no price snapshot on the row. A second attach of the
// same service to the same reservation is rejected as a duplicate.
func (s *ReservationService) AttachService(reservationID, serviceID uint, quantity int, serviceDate string) (*models.ReservationService, error) {
	date, err := parseDate(serviceDate)
	if err != nil {
		return nil, fmt.Errorf("%w: service_date: %v", ErrInvalidDate, err)
	}

	var link models.ReservationService

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var resv models.Reservation
		if err := tx.First(&resv, reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		var svc models.Service
		if err := tx.First(&svc, serviceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServiceNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.ReservationService{}).
			Where("reservation_id = ? AND service_id = ?", reservationID, serviceID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrServiceAlreadyAttached
		}

		link = models.ReservationService{
			ReservationID: reservationID,
			ServiceID:     serviceID,
			Quantity:      quantity,
			ServiceDate:   date,
		}
		if err := tx.Create(&link).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrServiceAlreadyAttached
			}
			return fmt.Errorf("failed to create reservation_service: %w", err)
		}

		charge := float64(quantity) * svc.UnitPrice
		if err := tx.Model(&models.Reservation{}).
			Where("id = ?", reservationID).
			Update("total_price", gorm.Expr("total_price + ?", charge)).Error; err != nil {
			return fmt.Errorf("failed to update reservation total: %w", err)
		}

		link.Service = svc
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &link, nil
}

// Delete removes the reservation and its associations and releases every
// attached room back to Available. This is the only operation that reverts
// room status.
func (s *ReservationService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var resv models.Reservation
		if err := tx.First(&resv, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		return deleteReservationTx(tx, id)
	})
}

// deleteReservationTx tears down one reservation inside an existing
// transaction: room release first, then both association sets, then the row.
// Shared with the guest cascade.
func deleteReservationTx(tx *gorm.DB, reservationID uint) error {
	var links []models.ReservationRoom
	if err := tx.Where("reservation_id = ?", reservationID).Find(&links).Error; err != nil {
		return err
	}
	for _, link := range links {
		if err := tx.Model(&models.Room{}).
			Where("id = ?", link.RoomID).
			Update("status", models.RoomStatusAvailable).Error; err != nil {
			return fmt.Errorf("failed to release room %d: %w", link.RoomID, err)
		}
	}

	if err := tx.Where("reservation_id = ?", reservationID).
		Delete(&models.ReservationRoom{}).Error; err != nil {
		return err
	}
	if err := tx.Where("reservation_id = ?", reservationID).
		Delete(&models.ReservationService{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Reservation{}, reservationID).Error
}
