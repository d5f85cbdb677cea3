package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admission/internal/app/models/dto"
	"github.com/yigit/admission/internal/app/services"
	"github.com/yigit/admission/internal/middleware"
)

// PaymentController handles payment endpoints
type PaymentController struct {
	service services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(service services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

// GetAllPayments lists every payment
func (c *PaymentController) GetAllPayments(ctx *gin.Context) {
	items, err := c.service.GetAllPayments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"payments": items})
}

// GetPaymentByID returns a single payment
func (c *PaymentController) GetPaymentByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	item, err := c.service.GetPaymentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// CreatePayment adds a new payment
func (c *PaymentController) CreatePayment(ctx *gin.Context) {
	var req dto.PaymentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.CreatePayment(ctx, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":   "Payment added successfully",
		"PaymentID": item.PaymentID,
	})
}

// UpdatePayment replaces the payment
func (c *PaymentController) UpdatePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	item := req.ToModel()

	if err := c.service.UpdatePayment(ctx, id, item); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updatedResponse("Payment", id))
}

// DeletePayment deletes the payment
func (c *PaymentController) DeletePayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.service.DeletePayment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, deletedResponse("Payment", id))
}
