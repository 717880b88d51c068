package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservation-backend/models"
	"reservation-backend/services"
	"reservation-backend/utils"
)

type GuestController struct {
	Service *services.GuestService
}

func NewGuestController(s *services.GuestService) *GuestController {
	return &GuestController{Service: s}
}

type guestRequest struct {
	FirstName string  `json:"firstName" binding:"required,max=100"`
	LastName  string  `json:"lastName" binding:"required,max=100"`
	Email     string  `json:"email" binding:"required,email,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	TaxID     *string `json:"taxId" binding:"omitempty,max=20"`
	Notes     *string `json:"notes" binding:"omitempty,max=500"`
}

// GetGuests handles GET /api/guests
func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GetGuestByID handles GET /api/guests/:id
func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	guest, err := gc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

// CreateGuest handles POST /api/guests
func (gc *GuestController) CreateGuest(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	guest := models.Guest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		TaxID:     req.TaxID,
		Notes:     req.Notes,
	}
	if err := gc.Service.Create(&guest); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONCreated(c, fmt.Sprintf("/api/guests/%d", guest.ID), guest)
}

// UpdateGuest handles PUT /api/guests/:id
func (gc *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	err := gc.Service.Update(id, models.Guest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		TaxID:     req.TaxID,
		Notes:     req.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteGuest handles DELETE /api/guests/:id. Reservations owned by the
// guest are deleted with it and their rooms released.
func (gc *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := gc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
