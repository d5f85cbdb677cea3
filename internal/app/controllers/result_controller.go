package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/app/services"
	"github.com/yigit/admission/internal/middleware"
)

// ResultController handles exam result endpoints and mark rankings
type ResultController struct {
	resultService services.ResultService
}

// NewResultController creates a new ResultController
func NewResultController(resultService services.ResultService) *ResultController {
	return &ResultController{resultService: resultService}
}

// GetAllResults lists every result
func (c *ResultController) GetAllResults(ctx *gin.Context) {
	results, err := c.resultService.GetAllResults(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"results": results})
}

// GetResultByID returns a single result
func (c *ResultController) GetResultByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	result, err := c.resultService.GetResultByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// CreateResult adds a result for an existing exam
func (c *ResultController) CreateResult(ctx *gin.Context) {
	var req dto.ResultRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	result := req.ToModel()

	if err := c.resultService.CreateResult(ctx, result); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Result added successfully",
		"ResultID": result.ResultID,
	})
}

// UpdateResult replaces a result
func (c *ResultController) UpdateResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ResultRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	result := req.ToModel()

	if err := c.resultService.UpdateResult(ctx, id, result); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedResponse("Result", id))
}

// DeleteResult deletes a result
func (c *ResultController) DeleteResult(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.resultService.DeleteResult(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deletedResponse("Result", id))
}

// GetHighestMark returns the student with the highest mark
func (c *ResultController) GetHighestMark(ctx *gin.Context) {
	top, err := c.resultService.GetHighestMark(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if top == nil {
		ctx.JSON(http.StatusOK, gin.H{"message": "No results found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"Highest_Mark_Student": top.Name,
		"Marks":                top.Marks,
	})
}

// GetLowestMark returns the student with the lowest mark
func (c *ResultController) GetLowestMark(ctx *gin.Context) {
	bottom, err := c.resultService.GetLowestMark(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if bottom == nil {
		ctx.JSON(http.StatusOK, gin.H{"message": "No results found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"Lowest_Mark_Student": bottom.Name,
		"Marks":               bottom.Marks,
	})
}

// GetOrderedByMarks lists students by mark, highest first
func (c *ResultController) GetOrderedByMarks(ctx *gin.Context) {
	ranked, err := c.resultService.GetOrderedByMarks(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"Ordered_Students": ranked})
}
