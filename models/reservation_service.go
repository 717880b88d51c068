package models

import "time"

// ReservationService links a reservation to a chargeable service. The charge
// uses the service's unit price at attach time; the row itself carries no
// price snapshot.
type ReservationService struct {
	ReservationID uint `gorm:"primaryKey;autoIncrement:false;column:reservation_id" json:"reservationId"`
	ServiceID     uint `gorm:"primaryKey;autoIncrement:false;column:service_id" json:"serviceId"`

	Quantity    int       `gorm:"not null" json:"quantity"`
	ServiceDate time.Time `gorm:"column:service_date" json:"serviceDate"`

	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
