package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/app/services"
	"github.com/yigit/admission/internal/middleware"
)

// AdmitCardController handles admit card endpoints
type AdmitCardController struct {
	service services.AdmitCardService
}

// NewAdmitCardController creates a new AdmitCardController
func NewAdmitCardController(service services.AdmitCardService) *AdmitCardController {
	return &AdmitCardController{service: service}
}

// GetAllAdmitCards lists every admit card
func (c *AdmitCardController) GetAllAdmitCards(ctx *gin.Context) {
	items, err := c.service.GetAllAdmitCards(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"admit_cards": items})
}

// GetAdmitCardByID returns a single admit card
func (c *AdmitCardController) GetAdmitCardByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	item, err := c.service.GetAdmitCardByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// CreateAdmitCard adds a new admit card
func (c *AdmitCardController) CreateAdmitCard(ctx *gin.Context) {
	var req dto.AdmitCardRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.CreateAdmitCard(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Admit Card added successfully",
		"AdmitCardID": item.AdmitCardID,
	})
}

// UpdateAdmitCard replaces the admit card
func (c *AdmitCardController) UpdateAdmitCard(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.AdmitCardRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.UpdateAdmitCard(ctx, id, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedResponse("AdmitCard", id))
}

// DeleteAdmitCard deletes the admit card
func (c *AdmitCardController) DeleteAdmitCard(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteAdmitCard(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deletedResponse("AdmitCard", id))
}
