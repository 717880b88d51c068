package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"reservation-backend/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_reservations")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Migrate applies the schema in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Guest{},
		&models.RoomType{},
		&models.Room{},
		&models.Service{},
		&models.Reservation{},
		&models.ReservationRoom{},
		&models.ReservationService{},
	)
}

// SeedDatabase loads the starter catalog on an empty database. Each block is
// count-guarded so restarts don't duplicate rows.
func SeedDatabase(db *gorm.DB) {
	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Single", Description: "Single room with one bed", Standard: "Standard"},
			{TypeName: "Double", Description: "Double room with two beds", Standard: "Standard"},
			{TypeName: "Suite", Description: "Luxury suite with living area", Standard: "Luxury"},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			log.Printf("warning: failed to seed room types: %v", err)
		} else {
			log.Println("Room types seeded")

			rooms := []models.Room{
				{RoomTypeID: roomTypes[0].ID, RoomNumber: "101", Capacity: 1, PricePerNight: 100, Status: models.RoomStatusAvailable},
				{RoomTypeID: roomTypes[0].ID, RoomNumber: "102", Capacity: 1, PricePerNight: 100, Status: models.RoomStatusAvailable},
				{RoomTypeID: roomTypes[1].ID, RoomNumber: "201", Capacity: 2, PricePerNight: 150, Status: models.RoomStatusAvailable},
				{RoomTypeID: roomTypes[1].ID, RoomNumber: "202", Capacity: 2, PricePerNight: 150, Status: models.RoomStatusAvailable},
				{RoomTypeID: roomTypes[2].ID, RoomNumber: "301", Capacity: 4, PricePerNight: 300, Status: models.RoomStatusAvailable},
			}
			if err := db.Create(&rooms).Error; err != nil {
				log.Printf("warning: failed to seed rooms: %v", err)
			} else {
				log.Println("Rooms seeded")
			}
		}
	}

	var svcCount int64
	db.Model(&models.Service{}).Count(&svcCount)
	if svcCount == 0 {
		servicesSeed := []models.Service{
			{ServiceName: "Breakfast", Description: "Continental breakfast", UnitPrice: 15, Availability: models.ServiceAvailable},
			{ServiceName: "Room Service", Description: "24/7 room service", UnitPrice: 25, Availability: models.ServiceAvailable},
			{ServiceName: "Spa Treatment", Description: "Relaxing spa treatment", UnitPrice: 80, Availability: models.ServiceAvailable},
			{ServiceName: "Airport Transfer", Description: "Transportation to/from airport", UnitPrice: 50, Availability: models.ServiceAvailable},
		}
		if err := db.Create(&servicesSeed).Error; err != nil {
			log.Printf("warning: failed to seed services: %v", err)
		} else {
			log.Println("Services seeded")
		}
	}

	var guestCount int64
	db.Model(&models.Guest{}).Count(&guestCount)
	if guestCount == 0 {
		phone1 := "123-456-7890"
		phone2 := "098-765-4321"
		guests := []models.Guest{
			{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Phone: &phone1},
			{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Phone: &phone2},
		}
		if err := db.Create(&guests).Error; err != nil {
			log.Printf("warning: failed to seed guests: %v", err)
		} else {
			log.Println("Guests seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Info,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase(DB)
	return nil
}
