package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/logger"
)

// ApplicationRepository handles the Application table
type ApplicationRepository struct {
	db *db.Provider
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(provider *db.Provider) *ApplicationRepository {
	return &ApplicationRepository{db: provider, sb: provider.Builder()}
}

func scanApplication(row db.RowScanner) (*models.Application, error) {
	app := &models.Application{}
	err := row.Scan(&app.ApplicationID, &app.StudentID, &app.UnitID, &app.StatusID)
	return app, err
}

func (r *ApplicationRepository) selectApplications() squirrel.SelectBuilder {
	return r.sb.Select("ApplicationID", "StudentID", "UnitID", "StatusID").From("Application")
}

// GetAllApplications lists every application
func (r *ApplicationRepository) GetAllApplications(ctx context.Context) ([]*models.Application, error) {
	return db.FetchAll(ctx, r.db, r.selectApplications().OrderBy("ApplicationID"), scanApplication)
}

// GetApplicationByID retrieves a single application
func (r *ApplicationRepository) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	query := r.selectApplications().Where(squirrel.Eq{"ApplicationID": id})
	return db.FetchOne(ctx, r.db, query, scanApplication, apperrors.NotFoundWithID("Application", id))
}

// CreateApplication inserts an application
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *models.Application) error {
	query := r.sb.Insert("Application").
		Columns("ApplicationID", "StudentID", "UnitID", "StatusID").
		Values(app.ApplicationID, app.StudentID, app.UnitID, app.StatusID)
	if _, err := db.Exec(ctx, r.db, query); err != nil {
		logger.Error().Err(err).Int64("applicationID", app.ApplicationID).Msg("Error creating application")
		return err
	}
	return nil
}

// UpdateApplication updates student, unit and status of an application
func (r *ApplicationRepository) UpdateApplication(ctx context.Context, id int64, app *models.Application) error {
	query := r.sb.Update("Application").
		Set("StudentID", app.StudentID).
		Set("UnitID", app.UnitID).
		Set("StatusID", app.StatusID).
		Where(squirrel.Eq{"ApplicationID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Application", id))
}

// DeleteApplication deletes an application
func (r *ApplicationRepository) DeleteApplication(ctx context.Context, id int64) error {
	query := r.sb.Delete("Application").Where(squirrel.Eq{"ApplicationID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Application", id))
}
