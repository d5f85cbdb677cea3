package services

import (
	"context"
	"fmt"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/app/repositories"
	"github.com/yigit/admission/internal/pkg/apperrors"
)

// ErrExamNotTaken is returned when a result references an unknown exam
var ErrExamNotTaken = apperrors.NewBadRequestError("Student has not given this Exam")

// ResultService defines the interface for result operations
type ResultService interface {
	CreateResult(ctx context.Context, result *models.Result) error
	GetResultByID(ctx context.Context, id int64) (*models.Result, error)
	GetAllResults(ctx context.Context) ([]*models.Result, error)
	UpdateResult(ctx context.Context, id int64, result *models.Result) error
	DeleteResult(ctx context.Context, id int64) error
	GetHighestMark(ctx context.Context) (*models.RankedResult, error)
	GetLowestMark(ctx context.Context) (*models.RankedResult, error)
	GetOrderedByMarks(ctx context.Context) ([]*models.RankedResult, error)
}

// resultServiceImpl implements the ResultService interface
type resultServiceImpl struct {
	resultRepo *repositories.ResultRepository
	examRepo   *repositories.ExamRepository
}

// NewResultService creates a new result service instance
func NewResultService(resultRepo *repositories.ResultRepository, examRepo *repositories.ExamRepository) ResultService {
	return &resultServiceImpl{
		resultRepo: resultRepo,
		examRepo:   examRepo,
	}
}

// CreateResult stores a result after checking that its exam exists.
// The check and the insert run on separate connections, so an exam deleted
// in between is only caught by the schema's foreign key, if any.
func (s *resultServiceImpl) CreateResult(ctx context.Context, result *models.Result) error {
	exists, err := s.examRepo.ExamExists(ctx, result.ExamID)
	if err != nil {
		return fmt.Errorf("error checking exam: %w", err)
	}
	if !exists {
		return ErrExamNotTaken
	}

	return s.resultRepo.CreateResult(ctx, result)
}

// GetResultByID retrieves a result by ID
func (s *resultServiceImpl) GetResultByID(ctx context.Context, id int64) (*models.Result, error) {
	return s.resultRepo.GetResultByID(ctx, id)
}

// GetAllResults retrieves all results
func (s *resultServiceImpl) GetAllResults(ctx context.Context) ([]*models.Result, error) {
	return s.resultRepo.GetAllResults(ctx)
}

// UpdateResult updates a result
func (s *resultServiceImpl) UpdateResult(ctx context.Context, id int64, result *models.Result) error {
	return s.resultRepo.UpdateResult(ctx, id, result)
}

// DeleteResult deletes a result
func (s *resultServiceImpl) DeleteResult(ctx context.Context, id int64) error {
	return s.resultRepo.DeleteResult(ctx, id)
}

// GetHighestMark returns nil when no results exist
func (s *resultServiceImpl) GetHighestMark(ctx context.Context) (*models.RankedResult, error) {
	return s.resultRepo.GetHighestMark(ctx)
}

// GetLowestMark returns nil when no results exist
func (s *resultServiceImpl) GetLowestMark(ctx context.Context) (*models.RankedResult, error) {
	return s.resultRepo.GetLowestMark(ctx)
}

// GetOrderedByMarks lists student names with marks, highest first
func (s *resultServiceImpl) GetOrderedByMarks(ctx context.Context) ([]*models.RankedResult, error) {
	return s.resultRepo.GetResultsOrderedByMarks(ctx)
}
