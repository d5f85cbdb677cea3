package services

import (
	"context"
	"strings"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/app/repositories"
	"github.com/yigit/admission/internal/pkg/apperrors"
)

// UnitService defines the interface for admission unit operations
type UnitService interface {
	CreateUnit(ctx context.Context, unit *models.Unit) error
	GetUnitByID(ctx context.Context, id string) (*models.Unit, error)
	GetAllUnits(ctx context.Context) ([]*models.Unit, error)
	UpdateUnit(ctx context.Context, id string, unit *models.Unit) error
	DeleteUnit(ctx context.Context, id string) error
}

// unitServiceImpl implements the UnitService interface
type unitServiceImpl struct {
	unitRepo *repositories.UnitRepository
}

// NewUnitService creates a new unit service instance
func NewUnitService(unitRepo *repositories.UnitRepository) UnitService {
	return &unitServiceImpl{
		unitRepo: unitRepo,
	}
}

// validateUnitID rejects empty and whitespace-only unit codes, from a body or a path
func validateUnitID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("UnitID cannot be blank")
	}
	return nil
}

// CreateUnit creates a new unit
func (s *unitServiceImpl) CreateUnit(ctx context.Context, unit *models.Unit) error {
	if err := validateUnitID(unit.UnitID); err != nil {
		return err
	}
	return s.unitRepo.CreateUnit(ctx, unit)
}

// GetUnitByID retrieves a unit by its code
func (s *unitServiceImpl) GetUnitByID(ctx context.Context, id string) (*models.Unit, error) {
	if err := validateUnitID(id); err != nil {
		return nil, err
	}
	return s.unitRepo.GetUnitByID(ctx, id)
}

// GetAllUnits retrieves all units
func (s *unitServiceImpl) GetAllUnits(ctx context.Context) ([]*models.Unit, error) {
	return s.unitRepo.GetAllUnits(ctx)
}

// UpdateUnit updates name and capacity of a unit
func (s *unitServiceImpl) UpdateUnit(ctx context.Context, id string, unit *models.Unit) error {
	if err := validateUnitID(id); err != nil {
		return err
	}
	return s.unitRepo.UpdateUnit(ctx, id, unit)
}

// DeleteUnit deletes a unit
func (s *unitServiceImpl) DeleteUnit(ctx context.Context, id string) error {
	if err := validateUnitID(id); err != nil {
		return err
	}
	return s.unitRepo.DeleteUnit(ctx, id)
}
