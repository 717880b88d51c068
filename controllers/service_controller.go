package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservation-backend/models"
	"reservation-backend/services"
	"reservation-backend/utils"
)

type ServiceController struct {
	Service *services.ServiceService
}

func NewServiceController(s *services.ServiceService) *ServiceController {
	return &ServiceController{Service: s}
}

type serviceRequest struct {
	ServiceName  string  `json:"serviceName" binding:"required,max=100"`
	Description  string  `json:"description" binding:"omitempty,max=500"`
	UnitPrice    float64 `json:"unitPrice" binding:"required,gte=0"`
	Availability string  `json:"availability" binding:"omitempty,max=50"`
}

func (sc *ServiceController) GetServices(c *gin.Context) {
	list, err := sc.Service.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (sc *ServiceController) GetAvailableServices(c *gin.Context) {
	list, err := sc.Service.GetAvailable()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (sc *ServiceController) GetServiceByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	svc, err := sc.Service.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	svc := models.Service{
		ServiceName:  req.ServiceName,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice,
		Availability: req.Availability,
	}
	if err := sc.Service.Create(&svc); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONCreated(c, fmt.Sprintf("/api/services/%d", svc.ID), svc)
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if req.Availability == "" {
		req.Availability = models.ServiceAvailable
	}

	err := sc.Service.Update(id, models.Service{
		ServiceName:  req.ServiceName,
		Description:  req.Description,
		UnitPrice:    req.UnitPrice,
		Availability: req.Availability,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := sc.Service.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
