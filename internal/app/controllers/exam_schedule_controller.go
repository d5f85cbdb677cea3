package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/app/services"
	"github.com/yigit/admission/internal/middleware"
)

// ExamScheduleController handles exam schedule endpoints
type ExamScheduleController struct {
	service services.ExamScheduleService
}

// NewExamScheduleController creates a new ExamScheduleController
func NewExamScheduleController(service services.ExamScheduleService) *ExamScheduleController {
	return &ExamScheduleController{service: service}
}

// GetAllExamSchedules lists every exam schedule
func (c *ExamScheduleController) GetAllExamSchedules(ctx *gin.Context) {
	items, err := c.service.GetAllExamSchedules(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"exam_schedules": items})
}

// GetExamScheduleByID returns a single exam schedule
func (c *ExamScheduleController) GetExamScheduleByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	item, err := c.service.GetExamScheduleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// CreateExamSchedule adds a new exam schedule
func (c *ExamScheduleController) CreateExamSchedule(ctx *gin.Context) {
	var req dto.ExamScheduleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.CreateExamSchedule(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":        "Exam Schedule added successfully",
		"ExamScheduleID": item.ExamScheduleID,
	})
}

// UpdateExamSchedule replaces the exam schedule
func (c *ExamScheduleController) UpdateExamSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ExamScheduleRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.UpdateExamSchedule(ctx, id, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedResponse("ExamSchedule", id))
}

// DeleteExamSchedule deletes the exam schedule
func (c *ExamScheduleController) DeleteExamSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteExamSchedule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deletedResponse("ExamSchedule", id))
}
