package services

import (
	"context"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/app/repositories"
)

// AdmitCardService defines the interface for admit card operations
type AdmitCardService interface {
	CreateAdmitCard(ctx context.Context, card *models.AdmitCard) error
	GetAdmitCardByID(ctx context.Context, id int64) (*models.AdmitCard, error)
	GetAllAdmitCards(ctx context.Context) ([]*models.AdmitCard, error)
	UpdateAdmitCard(ctx context.Context, id int64, card *models.AdmitCard) error
	DeleteAdmitCard(ctx context.Context, id int64) error
}

type admitCardServiceImpl struct {
	admitCardRepo *repositories.AdmitCardRepository
}

// NewAdmitCardService creates a new admit card service instance
func NewAdmitCardService(admitCardRepo *repositories.AdmitCardRepository) AdmitCardService {
	return &admitCardServiceImpl{admitCardRepo: admitCardRepo}
}

func (s *admitCardServiceImpl) CreateAdmitCard(ctx context.Context, card *models.AdmitCard) error {
	return s.admitCardRepo.CreateAdmitCard(ctx, card)
}

func (s *admitCardServiceImpl) GetAdmitCardByID(ctx context.Context, id int64) (*models.AdmitCard, error) {
	return s.admitCardRepo.GetAdmitCardByID(ctx, id)
}

func (s *admitCardServiceImpl) GetAllAdmitCards(ctx context.Context) ([]*models.AdmitCard, error) {
	return s.admitCardRepo.GetAllAdmitCards(ctx)
}

func (s *admitCardServiceImpl) UpdateAdmitCard(ctx context.Context, id int64, card *models.AdmitCard) error {
	return s.admitCardRepo.UpdateAdmitCard(ctx, id, card)
}

func (s *admitCardServiceImpl) DeleteAdmitCard(ctx context.Context, id int64) error {
	return s.admitCardRepo.DeleteAdmitCard(ctx, id)
}
