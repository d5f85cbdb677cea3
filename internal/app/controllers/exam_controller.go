package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/app/services"
	"github.com/yigit/admission/internal/middleware"
)

// ExamController handles exam endpoints
type ExamController struct {
	service services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(service services.ExamService) *ExamController {
	return &ExamController{service: service}
}

// GetAllExams lists every exam
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	items, err := c.service.GetAllExams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"exams": items})
}

// GetExamByID returns a single exam
func (c *ExamController) GetExamByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	item, err := c.service.GetExamByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// CreateExam adds a new exam
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.ExamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.CreateExam(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Exam added successfully",
		"ExamID":  item.ExamID,
	})
}

// UpdateExam replaces the exam
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ExamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.UpdateExam(ctx, id, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedResponse("Exam", id))
}

// DeleteExam deletes the exam
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeleteExam(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deletedResponse("Exam", id))
}
