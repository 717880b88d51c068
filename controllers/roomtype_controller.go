package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservation-backend/models"
	"reservation-backend/services"
	"reservation-backend/utils"
)

type RoomTypeController struct {
	Service *services.RoomTypeService
}

func NewRoomTypeController(s *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{Service: s}
}

type roomTypeRequest struct {
	TypeName    string `json:"typeName" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Standard    string `json:"standard" binding:"omitempty,max=50"`
}

func (rc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (rc *RoomTypeController) GetRoomTypeByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rt, err := rc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rt)
}

func (rc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var req roomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	rt := models.RoomType{
		TypeName:    req.TypeName,
		Description: req.Description,
		Standard:    req.Standard,
	}
	if err := rc.Service.Create(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONCreated(c, fmt.Sprintf("/api/room-types/%d", rt.ID), rt)
}

func (rc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req roomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	err := rc.Service.Update(id, models.RoomType{
		TypeName:    req.TypeName,
		Description: req.Description,
		Standard:    req.Standard,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (rc *RoomTypeController) DeleteRoomType(c *gin.Context) {
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
