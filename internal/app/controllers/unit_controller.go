package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/app/services"
	"github.com/yigit/admission/internal/middleware"
)

// UnitController handles admission unit endpoints. Units are keyed by a
// string code rather than an integer.
type UnitController struct {
	unitService services.UnitService
}

// NewUnitController creates a new UnitController
func NewUnitController(unitService services.UnitService) *UnitController {
	return &UnitController{unitService: unitService}
}

// GetAllUnits lists every unit
func (c *UnitController) GetAllUnits(ctx *gin.Context) {
	units, err := c.unitService.GetAllUnits(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"units": units})
}

// GetUnitByID returns a single unit
func (c *UnitController) GetUnitByID(ctx *gin.Context) {
	unit, err := c.unitService.GetUnitByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, unit)
}

// CreateUnit adds a new unit
func (c *UnitController) CreateUnit(ctx *gin.Context) {
	var req dto.UnitRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	unit := req.ToModel()

	if err := c.unitService.CreateUnit(ctx, unit); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Unit added successfully",
		"UnitID":  unit.UnitID,
	})
}

// UpdateUnit replaces name and capacity of a unit
func (c *UnitController) UpdateUnit(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UnitRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	unit := req.ToModel()

	if err := c.unitService.UpdateUnit(ctx, id, unit); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedResponse("Unit", id))
}

// DeleteUnit deletes a unit
func (c *UnitController) DeleteUnit(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.unitService.DeleteUnit(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deletedResponse("Unit", id))
}
