package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"reservation-backend/models"
	"reservation-backend/services"
	"reservation-backend/utils"
)

type RoomController struct {
	Service *services.RoomService
}

func NewRoomController(s *services.RoomService) *RoomController {
	return &RoomController{Service: s}
}

type roomRequest struct {
	RoomTypeID    uint    `json:"roomTypeId" binding:"required"`
	RoomNumber    string  `json:"roomNumber" binding:"required,max=20"`
	Capacity      int     `json:"capacity" binding:"required,gt=0"`
	PricePerNight float64 `json:"pricePerNight" binding:"required,gte=0"`
	Status        string  `json:"status" binding:"omitempty,oneof=Available Occupied"`
}

// GetRooms handles GET /api/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetAvailableRooms handles GET /api/rooms/available
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	rooms, err := rc.Service.GetAvailable()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomByID handles GET /api/rooms/:id
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := rc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	req.RoomNumber = strings.TrimSpace(req.RoomNumber)
	if req.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "room number is required")
		return
	}

	room := models.Room{
		RoomTypeID:    req.RoomTypeID,
		RoomNumber:    req.RoomNumber,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Status:        req.Status,
	}
	if err := rc.Service.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONCreated(c, fmt.Sprintf("/api/rooms/%d", room.ID), room)
}

// UpdateRoom handles PUT /api/rooms/:id
func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if req.Status == "" {
		req.Status = models.RoomStatusAvailable
	}

	err := rc.Service.Update(id, models.Room{
		RoomTypeID:    req.RoomTypeID,
		RoomNumber:    strings.TrimSpace(req.RoomNumber),
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		Status:        req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRoom handles DELETE /api/rooms/:id
func (rc *RoomController) DeleteRoom(c *gin.Context) {
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
