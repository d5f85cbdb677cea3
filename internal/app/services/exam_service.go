package services

import (
	"context"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/app/repositories"
)

// ExamService defines the interface for exam operations
type ExamService interface {
	CreateExam(ctx context.Context, exam *models.Exam) error
	GetExamByID(ctx context.Context, id int64) (*models.Exam, error)
	GetAllExams(ctx context.Context) ([]*models.Exam, error)
	UpdateExam(ctx context.Context, id int64, exam *models.Exam) error
	DeleteExam(ctx context.Context, id int64) error
}

type examServiceImpl struct {
	examRepo *repositories.ExamRepository
}

// NewExamService creates a new exam service instance
func NewExamService(examRepo *repositories.ExamRepository) ExamService {
	return &examServiceImpl{examRepo: examRepo}
}

func (s *examServiceImpl) CreateExam(ctx context.Context, exam *models.Exam) error {
	return s.examRepo.CreateExam(ctx, exam)
}

func (s *examServiceImpl) GetExamByID(ctx context.Context, id int64) (*models.Exam, error) {
	return s.examRepo.GetExamByID(ctx, id)
}

func (s *examServiceImpl) GetAllExams(ctx context.Context) ([]*models.Exam, error) {
	return s.examRepo.GetAllExams(ctx)
}

func (s *examServiceImpl) UpdateExam(ctx context.Context, id int64, exam *models.Exam) error {
	return s.examRepo.UpdateExam(ctx, id, exam)
}

func (s *examServiceImpl) DeleteExam(ctx context.Context, id int64) error {
	return s.examRepo.DeleteExam(ctx, id)
}
