package models

import "time"

const (
	ReservationStatusConfirmed  = "Confirmed"
	ReservationStatusCheckedIn  = "CheckedIn"
	ReservationStatusCheckedOut = "CheckedOut"
	ReservationStatusCancelled  = "Cancelled"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	GuestID         uint      `gorm:"index;not null;column:guest_id" json:"guestId"`
	ReservationDate time.Time `gorm:"column:reservation_date" json:"reservationDate"`
	CheckInDate     time.Time `gorm:"column:check_in_date" json:"checkInDate"`
	CheckOutDate    time.Time `gorm:"column:check_out_date" json:"checkOutDate"`
	NumberOfGuests  int       `gorm:"column:number_of_guests" json:"numberOfGuests"`

	// Running sum of night charges and service charges, maintained by the
	// attach operations. Never recomputed from scratch.
	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`

	Status string `gorm:"column:status;size:50;default:Confirmed" json:"reservationStatus"`

	Guest    Guest                `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Rooms    []ReservationRoom    `gorm:"foreignKey:ReservationID" json:"rooms"`
	Services []ReservationService `gorm:"foreignKey:ReservationID" json:"services"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidReservationStatus reports whether s is one of the allowed statuses.
func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled:
		return true
	}
	return false
}
