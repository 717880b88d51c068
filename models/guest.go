package models

import "time"

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	FirstName string  `gorm:"size:100;not null" json:"firstName"`
	LastName  string  `gorm:"size:100;not null" json:"lastName"`
	Email     string  `gorm:"size:255;not null" json:"email"`
	Phone     *string `gorm:"size:20" json:"phone,omitempty"`
	TaxID     *string `gorm:"size:20;column:tax_id" json:"taxId,omitempty"`
	Notes     *string `gorm:"size:500" json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
