package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/logger"
)

// UnitRepository handles the Unit table. Units are keyed by a string code.
type UnitRepository struct {
	db *db.Provider
	sb squirrel.StatementBuilderType
}

// NewUnitRepository creates a new UnitRepository
func NewUnitRepository(provider *db.Provider) *UnitRepository {
	return &UnitRepository{db: provider, sb: provider.Builder()}
}

func scanUnit(row db.RowScanner) (*models.Unit, error) {
	unit := &models.Unit{}
	err := row.Scan(&unit.UnitID, &unit.UnitName, &unit.MaxCapacity)
	return unit, err
}

func (r *UnitRepository) selectUnits() squirrel.SelectBuilder {
	return r.sb.Select("UnitID", "UnitName", "MaxCapacity").From("Unit")
}

// GetAllUnits lists every unit
func (r *UnitRepository) GetAllUnits(ctx context.Context) ([]*models.Unit, error) {
	return db.FetchAll(ctx, r.db, r.selectUnits().OrderBy("UnitID"), scanUnit)
}

// GetUnitByID retrieves a single unit
func (r *UnitRepository) GetUnitByID(ctx context.Context, id string) (*models.Unit, error) {
	query := r.selectUnits().Where(squirrel.Eq{"UnitID": id})
	return db.FetchOne(ctx, r.db, query, scanUnit, apperrors.NotFoundWithID("Unit", id))
}

// CreateUnit inserts a unit
func (r *UnitRepository) CreateUnit(ctx context.Context, unit *models.Unit) error {
	query := r.sb.Insert("Unit").
		Columns("UnitID", "UnitName", "MaxCapacity").
		Values(unit.UnitID, unit.UnitName, unit.MaxCapacity)
	if _, err := db.Exec(ctx, r.db, query); err != nil {
		logger.Error().Err(err).Str("unitID", unit.UnitID).Msg("Error creating unit")
		return err
	}
	return nil
}

// UpdateUnit updates name and capacity of a unit
func (r *UnitRepository) UpdateUnit(ctx context.Context, id string, unit *models.Unit) error {
	query := r.sb.Update("Unit").
		Set("UnitName", unit.UnitName).
		Set("MaxCapacity", unit.MaxCapacity).
		Where(squirrel.Eq{"UnitID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Unit", id))
}

// DeleteUnit deletes a unit
func (r *UnitRepository) DeleteUnit(ctx context.Context, id string) error {
	query := r.sb.Delete("Unit").Where(squirrel.Eq{"UnitID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Unit", id))
}
