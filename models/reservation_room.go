package models

import "time"

// ReservationRoom links a reservation to a room. The pair is the primary key,
// so a room can be attached to a reservation at most once.
type ReservationRoom struct {
	ReservationID uint `gorm:"primaryKey;autoIncrement:false;column:reservation_id" json:"reservationId"`
	RoomID        uint `gorm:"primaryKey;autoIncrement:false;column:room_id" json:"roomId"`

	// Nightly price captured at attach time. Later changes to the room's
	// base price do not touch this row.
	PricePerNight float64 `gorm:"column:price_per_night;not null" json:"pricePerNight"`

	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
