package models

import "time"

const (
	RoomStatusAvailable = "Available"
	RoomStatusOccupied  = "Occupied"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomTypeID    uint    `gorm:"index;not null;column:room_type_id" json:"roomTypeId"`
	RoomNumber    string  `gorm:"column:room_number;uniqueIndex;size:20;not null" json:"roomNumber"`
	Capacity      int     `gorm:"not null" json:"capacity"`
	PricePerNight float64 `gorm:"column:price_per_night;not null" json:"pricePerNight"`

	// Available until attached to a reservation; flipped back when the
	// owning reservation is deleted.
	Status string `gorm:"size:50;default:Available" json:"status"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
