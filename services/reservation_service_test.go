package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservation-backend/models"
)

func TestAttachRoomChargesNightsTimesSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	room := seedRoom(t, db, "101", 100)
	resv := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")

	link, err := svc.AttachRoom(resv.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, link.PricePerNight)

	got, err := svc.GetByID(resv.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, got.TotalPrice) // 2 nights x $100
	require.Len(t, got.Rooms, 1)

	var updated models.Room
	require.NoError(t, db.First(&updated, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, updated.Status)
}

func TestAttachRoomThenServiceScenario(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	room := seedRoom(t, db, "101", 100)
	breakfast := seedService(t, db, "Breakfast", 15)
	resv := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")

	_, err := svc.AttachRoom(resv.ID, room.ID)
	require.NoError(t, err)

	_, err = svc.AttachService(resv.ID, breakfast.ID, 2, "2025-06-02")
	require.NoError(t, err)

	got, err := svc.GetByID(resv.ID)
	require.NoError(t, err)
	assert.Equal(t, 230.0, got.TotalPrice) // 200 + 2 x $15

	require.NoError(t, svc.Delete(resv.ID))

	var releasedRoom models.Room
	require.NoError(t, db.First(&releasedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, releasedRoom.Status)

	_, err = svc.GetByID(resv.ID)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	var linkCount int64
	db.Model(&models.ReservationRoom{}).Where("reservation_id = ?", resv.ID).Count(&linkCount)
	assert.Zero(t, linkCount)
	db.Model(&models.ReservationService{}).Where("reservation_id = ?", resv.ID).Count(&linkCount)
	assert.Zero(t, linkCount)
}

func TestAttachRoomDuplicateLeavesStateUntouched(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	room := seedRoom(t, db, "101", 100)
	resv := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")

	_, err := svc.AttachRoom(resv.ID, room.ID)
	require.NoError(t, err)

	_, err = svc.AttachRoom(resv.ID, room.ID)
	assert.ErrorIs(t, err, ErrRoomAlreadyAttached)

	got, err := svc.GetByID(resv.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, got.TotalPrice)
	assert.Len(t, got.Rooms, 1)

	var after models.Room
	require.NoError(t, db.First(&after, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, after.Status)
}

func TestAttachRoomSnapshotSurvivesPriceChange(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	room := seedRoom(t, db, "101", 100)
	resv := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")

	_, err := svc.AttachRoom(resv.ID, room.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Room{}).
		Where("id = ?", room.ID).
		Update("price_per_night", 999.0).Error)

	got, err := svc.GetByID(resv.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, got.TotalPrice)
	require.Len(t, got.Rooms, 1)
	assert.Equal(t, 100.0, got.Rooms[0].PricePerNight)

	// A later reservation pays the room's current price.
	second := seedReservation(t, db, guest.ID, "2025-07-01", "2025-07-02")
	link, err := svc.AttachRoom(second.ID, room.ID)
	require.NoError(t, err)
	assert.Equal(t, 999.0, link.PricePerNight)
}

func TestAttachRoomNightsNeverBelowOne(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	guest := seedGuest(t, db)

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"same day", "2025-06-01", "2025-06-01"},
		{"checkout before checkin", "2025-06-03", "2025-06-01"},
	}
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			room := seedRoom(t, db, fmt.Sprintf("90%d", i+1), 100)
			resv := seedReservation(t, db, guest.ID, tc.checkIn, tc.checkOut)

			_, err := svc.AttachRoom(resv.ID, room.ID)
			require.NoError(t, err)

			got, err := svc.GetByID(resv.ID)
			require.NoError(t, err)
			assert.Equal(t, 100.0, got.TotalPrice)
		})
	}
}

func TestAttachRoomMissingIDs(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	room := seedRoom(t, db, "101", 100)
	resv := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")

	_, err := svc.AttachRoom(9999, room.ID)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.AttachRoom(resv.ID, 9999)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	got, err := svc.GetByID(resv.ID)
	require.NoError(t, err)
	assert.Zero(t, got.TotalPrice)
}

func TestAttachServiceChargesCurrentUnitPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	spa := seedService(t, db, "Spa Treatment", 80)
	resv := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")

	// Price changes before the attach must be reflected; there is no
	// snapshot on service rows.
	require.NoError(t, db.Model(&models.Service{}).
		Where("id = ?", spa.ID).
		Update("unit_price", 90.0).Error)

	link, err := svc.AttachService(resv.ID, spa.ID, 2, "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, 2, link.Quantity)

	got, err := svc.GetByID(resv.ID)
	require.NoError(t, err)
	assert.Equal(t, 180.0, got.TotalPrice)
}

func TestAttachServiceDuplicateRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	breakfast := seedService(t, db, "Breakfast", 15)
	resv := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")

	_, err := svc.AttachService(resv.ID, breakfast.ID, 1, "2025-06-02")
	require.NoError(t, err)

	_, err = svc.AttachService(resv.ID, breakfast.ID, 3, "2025-06-02")
	assert.ErrorIs(t, err, ErrServiceAlreadyAttached)

	got, err := svc.GetByID(resv.ID)
	require.NoError(t, err)
	assert.Equal(t, 15.0, got.TotalPrice)
	assert.Len(t, got.Services, 1)
}

func TestAttachServiceMissingIDs(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	breakfast := seedService(t, db, "Breakfast", 15)
	resv := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")

	_, err := svc.AttachService(9999, breakfast.ID, 1, "2025-06-02")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = svc.AttachService(resv.ID, 9999, 1, "2025-06-02")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestTotalPriceMatchesLedger(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	room1 := seedRoom(t, db, "201", 150)
	room2 := seedRoom(t, db, "301", 300)
	breakfast := seedService(t, db, "Breakfast", 15)
	transfer := seedService(t, db, "Airport Transfer", 50)
	resv := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-04") // 3 nights

	_, err := svc.AttachRoom(resv.ID, room1.ID)
	require.NoError(t, err)
	_, err = svc.AttachRoom(resv.ID, room2.ID)
	require.NoError(t, err)
	_, err = svc.AttachService(resv.ID, breakfast.ID, 6, "2025-06-02")
	require.NoError(t, err)
	_, err = svc.AttachService(resv.ID, transfer.ID, 1, "2025-06-01")
	require.NoError(t, err)

	got, err := svc.GetByID(resv.ID)
	require.NoError(t, err)

	// Cross-check the running total against the association rows.
	nights := 3.0
	var expected float64
	for _, link := range got.Rooms {
		expected += nights * link.PricePerNight
	}
	expected += 6*15.0 + 1*50.0

	assert.Equal(t, expected, got.TotalPrice)
	assert.Equal(t, 1415.0, got.TotalPrice)
}

func TestCreateReservationDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	guest := seedGuest(t, db)

	resv, err := svc.Create(ReservationInput{
		GuestID:        guest.ID,
		CheckInDate:    "2025-06-01",
		CheckOutDate:   "2025-06-03",
		NumberOfGuests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusConfirmed, resv.Status)
	assert.Zero(t, resv.TotalPrice)
	assert.False(t, resv.ReservationDate.IsZero())
}

func TestCreateReservationValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	guest := seedGuest(t, db)

	_, err := svc.Create(ReservationInput{
		GuestID:        9999,
		CheckInDate:    "2025-06-01",
		CheckOutDate:   "2025-06-03",
		NumberOfGuests: 2,
	})
	assert.ErrorIs(t, err, ErrGuestNotFound)

	_, err = svc.Create(ReservationInput{
		GuestID:        guest.ID,
		CheckInDate:    "2025-06-01",
		CheckOutDate:   "2025-06-03",
		NumberOfGuests: 2,
		Status:         "Pending",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.Create(ReservationInput{
		GuestID:        guest.ID,
		CheckInDate:    "June 1st",
		CheckOutDate:   "2025-06-03",
		NumberOfGuests: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUpdateReservationReplacesAllFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	other := models.Guest{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com"}
	require.NoError(t, db.Create(&other).Error)
	resv := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")

	err := svc.Update(resv.ID, ReservationInput{
		GuestID:        other.ID,
		CheckInDate:    "2025-07-10",
		CheckOutDate:   "2025-07-12",
		NumberOfGuests: 4,
		TotalPrice:     500,
		Status:         models.ReservationStatusCheckedIn,
	})
	require.NoError(t, err)

	got, err := svc.GetByID(resv.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.GuestID)
	assert.Equal(t, 4, got.NumberOfGuests)
	assert.Equal(t, 500.0, got.TotalPrice)
	assert.Equal(t, models.ReservationStatusCheckedIn, got.Status)
}

func TestUpdateReservationNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)
	guest := seedGuest(t, db)

	err := svc.Update(9999, ReservationInput{
		GuestID:        guest.ID,
		CheckInDate:    "2025-06-01",
		CheckOutDate:   "2025-06-03",
		NumberOfGuests: 2,
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDeleteReservationNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	assert.ErrorIs(t, svc.Delete(9999), ErrReservationNotFound)
}

func TestGetByGuestID(t *testing.T) {
	db := newTestDB(t)
	svc := NewReservationService(db)

	guest := seedGuest(t, db)
	other := models.Guest{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com"}
	require.NoError(t, db.Create(&other).Error)

	seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")
	seedReservation(t, db, guest.ID, "2025-07-01", "2025-07-05")
	seedReservation(t, db, other.ID, "2025-08-01", "2025-08-02")

	list, err := svc.GetByGuestID(guest.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, resv := range list {
		assert.Equal(t, guest.ID, resv.GuestID)
	}
}
