package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservation-backend/services"
	"reservation-backend/utils"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(s *services.ReservationService) *ReservationController {
	return &ReservationController{Service: s}
}

// Dates travel as 2006-01-02 strings; the service also accepts RFC3339.
type reservationRequest struct {
	GuestID           uint    `json:"guestId" binding:"required"`
	CheckInDate       string  `json:"checkInDate" binding:"required"`
	CheckOutDate      string  `json:"checkOutDate" binding:"required"`
	NumberOfGuests    int     `json:"numberOfGuests" binding:"required,gt=0"`
	TotalPrice        float64 `json:"totalPrice" binding:"omitempty,gte=0"`
	ReservationStatus string  `json:"reservationStatus" binding:"omitempty"`
}

type attachServiceRequest struct {
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
	ServiceDate string `json:"serviceDate" binding:"required"`
}

// GetReservations handles GET /api/reservations with nested guest, rooms and
// services.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	list, err := rc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetReservationByID handles GET /api/reservations/:id
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resv, err := rc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resv)
}

// GetReservationsByGuest handles GET /api/reservations/guest/:guestId
func (rc *ReservationController) GetReservationsByGuest(c *gin.Context) {
	guestID, ok := parseIDParam(c, "guestId")
	if !ok {
		return
	}
	list, err := rc.Service.GetByGuestID(guestID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateReservation handles POST /api/reservations. The total always starts
// at zero; only the attach operations charge onto it.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	resv, err := rc.Service.Create(services.ReservationInput{
		GuestID:        req.GuestID,
		CheckInDate:    req.CheckInDate,
		CheckOutDate:   req.CheckOutDate,
		NumberOfGuests: req.NumberOfGuests,
		Status:         req.ReservationStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONCreated(c, fmt.Sprintf("/api/reservations/%d", resv.ID), resv)
}

// UpdateReservation handles PUT /api/reservations/:id, replacing every
// mutable field.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	err := rc.Service.Update(id, services.ReservationInput{
		GuestID:        req.GuestID,
		CheckInDate:    req.CheckInDate,
		CheckOutDate:   req.CheckOutDate,
		NumberOfGuests: req.NumberOfGuests,
		TotalPrice:     req.TotalPrice,
		Status:         req.ReservationStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteReservation handles DELETE /api/reservations/:id
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := rc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AttachRoom handles POST /api/reservations/:id/rooms/:roomId
func (rc *ReservationController) AttachRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}

	link, err := rc.Service.AttachRoom(id, roomID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONCreated(c, fmt.Sprintf("/api/reservations/%d/rooms/%d", id, roomID), link)
}

// AttachService handles POST /api/reservations/:id/services/:serviceId
func (rc *ReservationController) AttachService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		return
	}
	var req attachServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	link, err := rc.Service.AttachService(id, serviceID, req.Quantity, req.ServiceDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONCreated(c, fmt.Sprintf("/api/reservations/%d/services/%d", id, serviceID), link)
}
