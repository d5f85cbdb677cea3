package services

import (
	"context"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/app/repositories"
)

// StatusService defines the interface for application status operations
type StatusService interface {
	CreateStatus(ctx context.Context, status *models.ApplicationStatus) error
	GetStatusByID(ctx context.Context, id int64) (*models.ApplicationStatus, error)
	GetAllStatuses(ctx context.Context) ([]*models.ApplicationStatus, error)
	UpdateStatus(ctx context.Context, id int64, status *models.ApplicationStatus) error
	DeleteStatus(ctx context.Context, id int64) error
}

type statusServiceImpl struct {
	statusRepo *repositories.StatusRepository
}

// NewStatusService creates a new status service instance
func NewStatusService(statusRepo *repositories.StatusRepository) StatusService {
	return &statusServiceImpl{statusRepo: statusRepo}
}

func (s *statusServiceImpl) CreateStatus(ctx context.Context, status *models.ApplicationStatus) error {
	return s.statusRepo.CreateStatus(ctx, status)
}

func (s *statusServiceImpl) GetStatusByID(ctx context.Context, id int64) (*models.ApplicationStatus, error) {
	return s.statusRepo.GetStatusByID(ctx, id)
}

func (s *statusServiceImpl) GetAllStatuses(ctx context.Context) ([]*models.ApplicationStatus, error) {
	return s.statusRepo.GetAllStatuses(ctx)
}

func (s *statusServiceImpl) UpdateStatus(ctx context.Context, id int64, status *models.ApplicationStatus) error {
	return s.statusRepo.UpdateStatus(ctx, id, status)
}

func (s *statusServiceImpl) DeleteStatus(ctx context.Context, id int64) error {
	return s.statusRepo.DeleteStatus(ctx, id)
}
