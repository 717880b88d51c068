package models

import "time"

// RoomType is the room category a room belongs to (Single, Double, ...).
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string `gorm:"size:100;not null" json:"typeName"`
	Description string `gorm:"size:500" json:"description"`
	Standard    string `gorm:"size:50" json:"standard"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
