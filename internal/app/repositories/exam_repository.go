package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/logger"
)

// ExamRepository handles the Exam table
type ExamRepository struct {
	db *db.Provider
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(provider *db.Provider) *ExamRepository {
	return &ExamRepository{db: provider, sb: provider.Builder()}
}

func scanExam(row db.RowScanner) (*models.Exam, error) {
	exam := &models.Exam{}
	err := row.Scan(&exam.ExamID, &exam.UnitID, &exam.ExamName, &exam.MaxMarks)
	return exam, err
}

func (r *ExamRepository) selectExams() squirrel.SelectBuilder {
	return r.sb.Select("ExamID", "UnitID", "ExamName", "MaxMarks").From("Exam")
}

// GetAllExams lists every exam
func (r *ExamRepository) GetAllExams(ctx context.Context) ([]*models.Exam, error) {
	return db.FetchAll(ctx, r.db, r.selectExams().OrderBy("ExamID"), scanExam)
}

// GetExamByID retrieves a single exam
func (r *ExamRepository) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	query := r.selectExams().Where(squirrel.Eq{"ExamID": id})
	return db.FetchOne(ctx, r.db, query, scanExam, apperrors.NotFoundWithID("Exam", id))
}

// ExamExists reports whether an exam with the given id exists
func (r *ExamRepository) ExamExists(ctx context.Context, id int64) (bool, error) {
	query := r.sb.Select("1").From("Exam").Where(squirrel.Eq{"ExamID": id}).Limit(1)
	return db.Exists(ctx, r.db, query)
}

// CreateExam inserts an exam
func (r *ExamRepository) CreateExam(ctx context.Context, exam *models.Exam) error {
	query := r.sb.Insert("Exam").
		Columns("ExamID", "UnitID", "ExamName", "MaxMarks").
		Values(exam.ExamID, exam.UnitID, exam.ExamName, exam.MaxMarks)
	if _, err := db.Exec(ctx, r.db, query); err != nil {
		logger.Error().Err(err).Int64("examID", exam.ExamID).Msg("Error creating exam")
		return err
	}
	return nil
}

// UpdateExam updates unit, name and maximum marks of an exam
func (r *ExamRepository) UpdateExam(ctx context.Context, id int64, exam *models.Exam) error {
	query := r.sb.Update("Exam").
		Set("UnitID", exam.UnitID).
		Set("ExamName", exam.ExamName).
		Set("MaxMarks", exam.MaxMarks).
		Where(squirrel.Eq{"ExamID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Exam", id))
}

// DeleteExam deletes an exam
func (r *ExamRepository) DeleteExam(ctx context.Context, id int64) error {
	query := r.sb.Delete("Exam").Where(squirrel.Eq{"ExamID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Exam", id))
}
