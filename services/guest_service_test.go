package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservation-backend/models"
)

func TestGuestCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)

	phone := "123-456-7890"
	guest := models.Guest{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Phone: &phone}
	require.NoError(t, svc.Create(&guest))
	require.NotZero(t, guest.ID)

	got, err := svc.GetByID(guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
	require.NotNil(t, got.Phone)
	assert.Equal(t, phone, *got.Phone)

	notes := "late arrival"
	err = svc.Update(guest.ID, models.Guest{
		FirstName: "Johnny",
		LastName:  "Doe",
		Email:     "johnny.doe@example.com",
		Notes:     &notes,
	})
	require.NoError(t, err)

	got, err = svc.GetByID(guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Johnny", got.FirstName)
	assert.Equal(t, "johnny.doe@example.com", got.Email)
	// full replacement clears fields omitted from the update
	assert.Nil(t, got.Phone)
	require.NotNil(t, got.Notes)
	assert.Equal(t, notes, *got.Notes)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, svc.Delete(guest.ID))
	_, err = svc.GetByID(guest.ID)
	assert.ErrorIs(t, err, ErrGuestNotFound)
}

func TestGuestNotFoundTaxonomy(t *testing.T) {
	db := newTestDB(t)
	svc := NewGuestService(db)

	_, err := svc.GetByID(9999)
	assert.ErrorIs(t, err, ErrGuestNotFound)

	err = svc.Update(9999, models.Guest{FirstName: "X", LastName: "Y", Email: "x@y.z"})
	assert.ErrorIs(t, err, ErrGuestNotFound)

	assert.ErrorIs(t, svc.Delete(9999), ErrGuestNotFound)
}

func TestDeleteGuestCascadesAndReleasesRooms(t *testing.T) {
	db := newTestDB(t)
	guestSvc := NewGuestService(db)
	resvSvc := NewReservationService(db)

	guest := seedGuest(t, db)
	room := seedRoom(t, db, "101", 100)
	breakfast := seedService(t, db, "Breakfast", 15)

	first := seedReservation(t, db, guest.ID, "2025-06-01", "2025-06-03")
	second := seedReservation(t, db, guest.ID, "2025-07-01", "2025-07-02")

	_, err := resvSvc.AttachRoom(first.ID, room.ID)
	require.NoError(t, err)
	_, err = resvSvc.AttachService(first.ID, breakfast.ID, 2, "2025-06-02")
	require.NoError(t, err)

	require.NoError(t, guestSvc.Delete(guest.ID))

	var count int64
	db.Model(&models.Reservation{}).Where("guest_id = ?", guest.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.ReservationRoom{}).Where("reservation_id IN ?", []uint{first.ID, second.ID}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.ReservationService{}).Where("reservation_id IN ?", []uint{first.ID, second.ID}).Count(&count)
	assert.Zero(t, count)

	var released models.Room
	require.NoError(t, db.First(&released, room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, released.Status)

	_, err = guestSvc.GetByID(guest.ID)
	assert.ErrorIs(t, err, ErrGuestNotFound)
}
