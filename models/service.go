package models

import "time"

const ServiceAvailable = "Available"

// Service is a chargeable add-on (breakfast, spa, transfer, ...).
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceName  string  `gorm:"size:100;not null" json:"serviceName"`
	Description  string  `gorm:"size:500" json:"description"`
	UnitPrice    float64 `gorm:"column:unit_price;not null" json:"unitPrice"`
	Availability string  `gorm:"size:50;default:Available" json:"availability"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
