package services

import (
	"context"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/app/repositories"
)

// StudentService defines the interface for student and contact operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) error
	GetStudentByID(ctx context.Context, id int64) (*models.StudentRecord, error)
	GetAllStudents(ctx context.Context) ([]*models.StudentRecord, error)
	UpdateStudent(ctx context.Context, id int64, student *models.Student) error
	DeleteStudent(ctx context.Context, id int64) error
	UpdateContact(ctx context.Context, id int64, contact *models.ContactUpdate) error
	DeleteContact(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// CreateStudent registers a student together with its contact number.
// Either both rows are stored or neither is.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) error {
	return s.studentRepo.CreateWithContact(ctx, student)
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.StudentRecord, error) {
	return s.studentRepo.GetStudentByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.StudentRecord, error) {
	return s.studentRepo.GetAllStudents(ctx)
}

// UpdateStudent updates a student. The contact number in the payload is
// validated but left untouched; it has its own endpoint.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, student *models.Student) error {
	return s.studentRepo.UpdateStudent(ctx, id, student)
}

// DeleteStudent deletes a student
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.DeleteStudent(ctx, id)
}

// UpdateContact replaces a student's contact number
func (s *studentServiceImpl) UpdateContact(ctx context.Context, id int64, contact *models.ContactUpdate) error {
	return s.studentRepo.UpdateContact(ctx, id, contact.ContactNumber)
}

// DeleteContact deletes a student's contact number
func (s *studentServiceImpl) DeleteContact(ctx context.Context, id int64) error {
	return s.studentRepo.DeleteContact(ctx, id)
}
