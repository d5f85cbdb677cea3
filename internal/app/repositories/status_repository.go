package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/logger"
)

// StatusRepository handles the ApplicationStatus table
type StatusRepository struct {
	db *db.Provider
	sb squirrel.StatementBuilderType
}

// NewStatusRepository creates a new StatusRepository
func NewStatusRepository(provider *db.Provider) *StatusRepository {
	return &StatusRepository{db: provider, sb: provider.Builder()}
}

func scanStatus(row db.RowScanner) (*models.ApplicationStatus, error) {
	status := &models.ApplicationStatus{}
	err := row.Scan(&status.StatusID, &status.StatusDescription)
	return status, err
}

func (r *StatusRepository) selectStatuses() squirrel.SelectBuilder {
	return r.sb.Select("StatusID", "StatusDescription").From("ApplicationStatus")
}

// GetAllStatuses lists every application status
func (r *StatusRepository) GetAllStatuses(ctx context.Context) ([]*models.ApplicationStatus, error) {
	return db.FetchAll(ctx, r.db, r.selectStatuses().OrderBy("StatusID"), scanStatus)
}

// GetStatusByID retrieves a single application status
func (r *StatusRepository) GetStatusByID(ctx context.Context, id int64) (*models.ApplicationStatus, error) {
	query := r.selectStatuses().Where(squirrel.Eq{"StatusID": id})
	return db.FetchOne(ctx, r.db, query, scanStatus, apperrors.NotFoundWithID("Status", id))
}

// CreateStatus inserts an application status
func (r *StatusRepository) CreateStatus(ctx context.Context, status *models.ApplicationStatus) error {
	query := r.sb.Insert("ApplicationStatus").
		Columns("StatusID", "StatusDescription").
		Values(status.StatusID, status.StatusDescription)
	if _, err := db.Exec(ctx, r.db, query); err != nil {
		logger.Error().Err(err).Int64("statusID", status.StatusID).Msg("Error creating application status")
		return err
	}
	return nil
}

// UpdateStatus changes the description of an application status
func (r *StatusRepository) UpdateStatus(ctx context.Context, id int64, status *models.ApplicationStatus) error {
	query := r.sb.Update("ApplicationStatus").
		Set("StatusDescription", status.StatusDescription).
		Where(squirrel.Eq{"StatusID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Status", id))
}

// DeleteStatus deletes an application status
func (r *StatusRepository) DeleteStatus(ctx context.Context, id int64) error {
	query := r.sb.Delete("ApplicationStatus").Where(squirrel.Eq{"StatusID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Status", id))
}
