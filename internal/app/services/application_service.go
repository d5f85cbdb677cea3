package services

import (
	"context"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/app/repositories"
)

// ApplicationService defines the interface for application operations
type ApplicationService interface {
	CreateApplication(ctx context.Context, app *models.Application) error
	GetApplicationByID(ctx context.Context, id int64) (*models.Application, error)
	GetAllApplications(ctx context.Context) ([]*models.Application, error)
	UpdateApplication(ctx context.Context, id int64, app *models.Application) error
	DeleteApplication(ctx context.Context, id int64) error
}

// applicationServiceImpl implements the ApplicationService interface
type applicationServiceImpl struct {
	applicationRepo *repositories.ApplicationRepository
}

// NewApplicationService creates a new application service instance
func NewApplicationService(applicationRepo *repositories.ApplicationRepository) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
	}
}

// CreateApplication stores a new application. Student, unit and status
// references are enforced by the schema.
func (s *applicationServiceImpl) CreateApplication(ctx context.Context, app *models.Application) error {
	return s.applicationRepo.CreateApplication(ctx, app)
}

// GetApplicationByID retrieves an application by ID
func (s *applicationServiceImpl) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	return s.applicationRepo.GetApplicationByID(ctx, id)
}

// GetAllApplications retrieves all applications
func (s *applicationServiceImpl) GetAllApplications(ctx context.Context) ([]*models.Application, error) {
	return s.applicationRepo.GetAllApplications(ctx)
}

// UpdateApplication updates an application
func (s *applicationServiceImpl) UpdateApplication(ctx context.Context, id int64, app *models.Application) error {
	return s.applicationRepo.UpdateApplication(ctx, id, app)
}

// DeleteApplication deletes an application
func (s *applicationServiceImpl) DeleteApplication(ctx context.Context, id int64) error {
	return s.applicationRepo.DeleteApplication(ctx, id)
}
