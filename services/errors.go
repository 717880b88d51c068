package services

import (
	"errors"
	"strings"
)

// Sentinel errors surfaced to controllers, which map them onto HTTP status
// codes. Not-found errors come out of a lookup that already normalized
// gorm.ErrRecordNotFound.
var (
	ErrGuestNotFound       = errors.New("guest_not_found")
	ErrRoomTypeNotFound    = errors.New("room_type_not_found")
	ErrRoomNotFound        = errors.New("room_not_found")
	ErrServiceNotFound     = errors.New("service_not_found")
	ErrReservationNotFound = errors.New("reservation_not_found")

	ErrRoomAlreadyAttached    = errors.New("room_already_attached")
	ErrServiceAlreadyAttached = errors.New("service_already_attached")
	ErrDuplicateRoomNumber    = errors.New("duplicate_room_number")

	ErrInvalidStatus = errors.New("invalid_reservation_status")
	ErrInvalidDate   = errors.New("invalid_date_format")
)

// isDuplicateKey matches unique-constraint violations across MySQL and the
// sqlite driver used in tests.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
