package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"reservation-backend/models"
)

// newTestDB opens an in-memory sqlite database pinned to a single connection
// so every query and transaction sees the same schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Guest{},
		&models.RoomType{},
		&models.Room{},
		&models.Service{},
		&models.Reservation{},
		&models.ReservationRoom{},
		&models.ReservationService{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedGuest(t *testing.T, db *gorm.DB) models.Guest {
	t.Helper()
	guest := models.Guest{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("failed to seed guest: %v", err)
	}
	return guest
}

func seedRoom(t *testing.T, db *gorm.DB, number string, pricePerNight float64) models.Room {
	t.Helper()
	rt := models.RoomType{TypeName: "Single", Standard: "Standard"}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("failed to seed room type: %v", err)
	}
	room := models.Room{
		RoomTypeID:    rt.ID,
		RoomNumber:    number,
		Capacity:      2,
		PricePerNight: pricePerNight,
		Status:        models.RoomStatusAvailable,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	return room
}

func seedService(t *testing.T, db *gorm.DB, name string, unitPrice float64) models.Service {
	t.Helper()
	svc := models.Service{ServiceName: name, UnitPrice: unitPrice, Availability: models.ServiceAvailable}
	if err := db.Create(&svc).Error; err != nil {
		t.Fatalf("failed to seed service: %v", err)
	}
	return svc
}

func seedReservation(t *testing.T, db *gorm.DB, guestID uint, checkIn, checkOut string) models.Reservation {
	t.Helper()
	resv, err := NewReservationService(db).Create(ReservationInput{
		GuestID:        guestID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: 2,
	})
	if err != nil {
		t.Fatalf("failed to seed reservation: %v", err)
	}
	return *resv
}
