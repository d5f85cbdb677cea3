package services

import (
	"context"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/app/repositories"
)

// ExamScheduleService defines the interface for exam schedule operations
type ExamScheduleService interface {
	CreateExamSchedule(ctx context.Context, schedule *models.ExamSchedule) error
	GetExamScheduleByID(ctx context.Context, id int64) (*models.ExamSchedule, error)
	GetAllExamSchedules(ctx context.Context) ([]*models.ExamSchedule, error)
	UpdateExamSchedule(ctx context.Context, id int64, schedule *models.ExamSchedule) error
	DeleteExamSchedule(ctx context.Context, id int64) error
}

type examScheduleServiceImpl struct {
	scheduleRepo *repositories.ExamScheduleRepository
}

// NewExamScheduleService creates a new exam schedule service instance
func NewExamScheduleService(scheduleRepo *repositories.ExamScheduleRepository) ExamScheduleService {
	return &examScheduleServiceImpl{scheduleRepo: scheduleRepo}
}

func (s *examScheduleServiceImpl) CreateExamSchedule(ctx context.Context, schedule *models.ExamSchedule) error {
	return s.scheduleRepo.CreateExamSchedule(ctx, schedule)
}

func (s *examScheduleServiceImpl) GetExamScheduleByID(ctx context.Context, id int64) (*models.ExamSchedule, error) {
	return s.scheduleRepo.GetExamScheduleByID(ctx, id)
}

func (s *examScheduleServiceImpl) GetAllExamSchedules(ctx context.Context) ([]*models.ExamSchedule, error) {
	return s.scheduleRepo.GetAllExamSchedules(ctx)
}

func (s *examScheduleServiceImpl) UpdateExamSchedule(ctx context.Context, id int64, schedule *models.ExamSchedule) error {
	return s.scheduleRepo.UpdateExamSchedule(ctx, id, schedule)
}

func (s *examScheduleServiceImpl) DeleteExamSchedule(ctx context.Context, id int64) error {
	return s.scheduleRepo.DeleteExamSchedule(ctx, id)
}
