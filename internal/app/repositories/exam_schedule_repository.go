package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/helpers"
	"github.com/yigit/admission/internal/pkg/logger"
)

// ExamScheduleRepository handles the ExamSchedule table
type ExamScheduleRepository struct {
	db *db.Provider
	sb squirrel.StatementBuilderType
}

// NewExamScheduleRepository creates a new ExamScheduleRepository
func NewExamScheduleRepository(provider *db.Provider) *ExamScheduleRepository {
	return &ExamScheduleRepository{db: provider, sb: provider.Builder()}
}

func scanExamSchedule(row db.RowScanner) (*models.ExamSchedule, error) {
	s := &models.ExamSchedule{}
	err := row.Scan(&s.ExamScheduleID, &s.ExamID, helpers.DateText(&s.ExamDate), helpers.TimeText(&s.ExamTime), &s.VenueID)
	return s, err
}

func (r *ExamScheduleRepository) selectSchedules() squirrel.SelectBuilder {
	return r.sb.Select("ExamScheduleID", "ExamID", "ExamDate", "ExamTime", "VenueID").From("ExamSchedule")
}

// GetAllExamSchedules lists every exam schedule
func (r *ExamScheduleRepository) GetAllExamSchedules(ctx context.Context) ([]*models.ExamSchedule, error) {
	return db.FetchAll(ctx, r.db, r.selectSchedules().OrderBy("ExamScheduleID"), scanExamSchedule)
}

// GetExamScheduleByID retrieves a single exam schedule
func (r *ExamScheduleRepository) GetExamScheduleByID(ctx context.Context, id int64) (*models.ExamSchedule, error) {
	query := r.selectSchedules().Where(squirrel.Eq{"ExamScheduleID": id})
	return db.FetchOne(ctx, r.db, query, scanExamSchedule, apperrors.NotFoundWithID("ExamSchedule", id))
}

// CreateExamSchedule inserts an exam schedule
func (r *ExamScheduleRepository) CreateExamSchedule(ctx context.Context, s *models.ExamSchedule) error {
	query := r.sb.Insert("ExamSchedule").
		Columns("ExamScheduleID", "ExamID", "ExamDate", "ExamTime", "VenueID").
		Values(s.ExamScheduleID, s.ExamID, s.ExamDate, s.ExamTime, s.VenueID)
	if _, err := db.Exec(ctx, r.db, query); err != nil {
		logger.Error().Err(err).Int64("examScheduleID", s.ExamScheduleID).Msg("Error creating exam schedule")
		return err
	}
	return nil
}

// UpdateExamSchedule updates exam, date, time and venue of a schedule
func (r *ExamScheduleRepository) UpdateExamSchedule(ctx context.Context, id int64, s *models.ExamSchedule) error {
	query := r.sb.Update("ExamSchedule").
		Set("ExamID", s.ExamID).
		Set("ExamDate", s.ExamDate).
		Set("ExamTime", s.ExamTime).
		Set("VenueID", s.VenueID).
		Where(squirrel.Eq{"ExamScheduleID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("ExamSchedule", id))
}

// DeleteExamSchedule deletes an exam schedule
func (r *ExamScheduleRepository) DeleteExamSchedule(ctx context.Context, id int64) error {
	query := r.sb.Delete("ExamSchedule").Where(squirrel.Eq{"ExamScheduleID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("ExamSchedule", id))
}
