package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/app/services"
	"github.com/yigit/admission/internal/middleware"
)

// ApplicationController handles application endpoints
type ApplicationController struct {
	service services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(service services.ApplicationService) *ApplicationController {
	return &ApplicationController{service: service}
}

// GetAllApplications lists every application
func (c *ApplicationController) GetAllApplications(ctx *gin.Context) {
	items, err := c.service.GetAllApplications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"applications": items})
}

// GetApplicationByID returns a single application
func (c *ApplicationController) GetApplicationByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	item, err := c.service.GetApplicationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// CreateApplication adds a new application
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req dto.ApplicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.CreateApplication(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":       "Application added successfully",
		"ApplicationID": item.ApplicationID,
	})
}

// UpdateApplication replaces the application
func (c *ApplicationController) UpdateApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ApplicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.UpdateApplication(ctx, id, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedResponse("Application", id))
}

// DeleteApplication deletes the application
func (c *ApplicationController) DeleteApplication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteApplication(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deletedResponse("Application", id))
}
