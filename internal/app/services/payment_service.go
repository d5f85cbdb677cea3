package services

import (
	"context"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/app/repositories"
)

// PaymentService defines the interface for payment operations
type PaymentService interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error)
	GetAllPayments(ctx context.Context) ([]*models.Payment, error)
	UpdatePayment(ctx context.Context, id int64, payment *models.Payment) error
	DeletePayment(ctx context.Context, id int64) error
}

type paymentServiceImpl struct {
	paymentRepo *repositories.PaymentRepository
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentRepo *repositories.PaymentRepository) PaymentService {
	return &paymentServiceImpl{paymentRepo: paymentRepo}
}

func (s *paymentServiceImpl) CreatePayment(ctx context.Context, payment *models.Payment) error {
	return s.paymentRepo.CreatePayment(ctx, payment)
}

func (s *paymentServiceImpl) GetPaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	return s.paymentRepo.GetPaymentByID(ctx, id)
}

func (s *paymentServiceImpl) GetAllPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.paymentRepo.GetAllPayments(ctx)
}

func (s *paymentServiceImpl) UpdatePayment(ctx context.Context, id int64, payment *models.Payment) error {
	return s.paymentRepo.UpdatePayment(ctx, id, payment)
}

func (s *paymentServiceImpl) DeletePayment(ctx context.Context, id int64) error {
	return s.paymentRepo.DeletePayment(ctx, id)
}
