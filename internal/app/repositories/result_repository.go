package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/logger"
)

// ResultRepository handles the Result table
type ResultRepository struct {
	db *db.Provider
	sb squirrel.StatementBuilderType
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(provider *db.Provider) *ResultRepository {
	return &ResultRepository{db: provider, sb: provider.Builder()}
}

func scanResult(row db.RowScanner) (*models.Result, error) {
	res := &models.Result{}
	err := row.Scan(&res.ResultID, &res.StudentID, &res.ExamID, &res.Marks)
	return res, err
}

func scanRankedResult(row db.RowScanner) (*models.RankedResult, error) {
	ranked := &models.RankedResult{}
	err := row.Scan(&ranked.Name, &ranked.Marks)
	return ranked, err
}

func (r *ResultRepository) selectResults() squirrel.SelectBuilder {
	return r.sb.Select("ResultID", "StudentID", "ExamID", "Marks").From("Result")
}

func (r *ResultRepository) selectRanked(order string) squirrel.SelectBuilder {
	return r.sb.Select("s.Name", "r.Marks").
		From("Result r").
		Join("Student s ON r.StudentID = s.StudentID").
		OrderBy("r.Marks " + order)
}

// GetAllResults lists every result
func (r *ResultRepository) GetAllResults(ctx context.Context) ([]*models.Result, error) {
	return db.FetchAll(ctx, r.db, r.selectResults().OrderBy("ResultID"), scanResult)
}

// GetResultByID retrieves a single result
func (r *ResultRepository) GetResultByID(ctx context.Context, id int64) (*models.Result, error) {
	query := r.selectResults().Where(squirrel.Eq{"ResultID": id})
	return db.FetchOne(ctx, r.db, query, scanResult, apperrors.NotFoundWithID("Result", id))
}

// GetResultsOrderedByMarks lists student names and marks, highest first
func (r *ResultRepository) GetResultsOrderedByMarks(ctx context.Context) ([]*models.RankedResult, error) {
	return db.FetchAll(ctx, r.db, r.selectRanked("DESC"), scanRankedResult)
}

// GetHighestMark returns the top result, or nil when there are no results
func (r *ResultRepository) GetHighestMark(ctx context.Context) (*models.RankedResult, error) {
	return r.firstRanked(ctx, "DESC")
}

// GetLowestMark returns the bottom result, or nil when there are no results
func (r *ResultRepository) GetLowestMark(ctx context.Context) (*models.RankedResult, error) {
	return r.firstRanked(ctx, "ASC")
}

func (r *ResultRepository) firstRanked(ctx context.Context, order string) (*models.RankedResult, error) {
	ranked, err := db.FetchAll(ctx, r.db, r.selectRanked(order).Limit(1), scanRankedResult)
	if err != nil || len(ranked) == 0 {
		return nil, err
	}
	return ranked[0], nil
}

// CreateResult inserts a result. The referenced exam is checked by the caller.
func (r *ResultRepository) CreateResult(ctx context.Context, res *models.Result) error {
	query := r.sb.Insert("Result").
		Columns("ResultID", "StudentID", "ExamID", "Marks").
		Values(res.ResultID, res.StudentID, res.ExamID, res.Marks)
	if _, err := db.Exec(ctx, r.db, query); err != nil {
		logger.Error().Err(err).Int64("resultID", res.ResultID).Msg("Error creating result")
		return err
	}
	return nil
}

// UpdateResult updates student, exam and marks of a result
func (r *ResultRepository) UpdateResult(ctx context.Context, id int64, res *models.Result) error {
	query := r.sb.Update("Result").
		Set("StudentID", res.StudentID).
		Set("ExamID", res.ExamID).
		Set("Marks", res.Marks).
		Where(squirrel.Eq{"ResultID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Result", id))
}

// DeleteResult deletes a result
func (r *ResultRepository) DeleteResult(ctx context.Context, id int64) error {
	query := r.sb.Delete("Result").Where(squirrel.Eq{"ResultID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.NotFoundWithID("Result", id))
}
