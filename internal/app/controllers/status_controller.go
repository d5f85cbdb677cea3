package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/app/services"
	"github.com/yigit/admission/internal/middleware"
)

// StatusController handles application status endpoints
type StatusController struct {
	service services.StatusService
}

// NewStatusController creates a new StatusController
func NewStatusController(service services.StatusService) *StatusController {
	return &StatusController{service: service}
}

// GetAllStatuses lists every application status
func (c *StatusController) GetAllStatuses(ctx *gin.Context) {
	items, err := c.service.GetAllStatuses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"statuses": items})
}

// GetStatusByID returns a single application status
func (c *StatusController) GetStatusByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	item, err := c.service.GetStatusByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// CreateStatus adds a new application status
func (c *StatusController) CreateStatus(ctx *gin.Context) {
	var req dto.StatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.CreateStatus(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Status added successfully",
		"StatusID": item.StatusID,
	})
}

// UpdateStatus replaces the application status
func (c *StatusController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.StatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.UpdateStatus(ctx, id, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedResponse("Status", id))
}

// DeleteStatus deletes the application status
func (c *StatusController) DeleteStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteStatus(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deletedResponse("Status", id))
}
