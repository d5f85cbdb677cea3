package repositories

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/pkg/helpers"
	"github.com/yigit/admission/internal/pkg/logger"
)

// StudentRepository handles the Student and ContactNumber tables
type StudentRepository struct {
	db *db.Provider
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(provider *db.Provider) *StudentRepository {
	return &StudentRepository{
		db: provider,
		sb: provider.Builder(),
	}
}

func (r *StudentRepository) selectStudents() squirrel.SelectBuilder {
	return r.sb.Select("s.StudentID", "s.Name", "s.Age", "s.Address", "c.ContactNumber").
		From("Student s").
		LeftJoin("ContactNumber c ON s.StudentID = c.StudentID")
}

func scanStudent(row db.RowScanner) (*models.StudentRecord, error) {
	student := &models.StudentRecord{}
	var contact sql.NullString
	if err := row.Scan(&student.StudentID, &student.Name, &student.Age, &student.Address, &contact); err != nil {
		return nil, err
	}
	student.ContactNumber = helpers.StringPtr(contact)
	return student, nil
}

// GetAllStudents lists every student with its contact number, if any
func (r *StudentRepository) GetAllStudents(ctx context.Context) ([]*models.StudentRecord, error) {
	return db.FetchAll(ctx, r.db, r.selectStudents().OrderBy("s.StudentID"), scanStudent)
}

// GetStudentByID retrieves a single student with its contact number
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.StudentRecord, error) {
	query := r.selectStudents().Where(squirrel.Eq{"s.StudentID": id})
	return db.FetchOne(ctx, r.db, query, scanStudent, apperrors.ErrDataNotFound)
}

// CreateWithContact inserts the student row and its contact row in one transaction
func (r *StudentRepository) CreateWithContact(ctx context.Context, student *models.Student) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		insertStudent := r.sb.Insert("Student").
			Columns("StudentID", "Name", "Age", "Address").
			Values(student.StudentID, student.Name, student.Age, student.Address)
		if err := db.ExecTx(ctx, tx, insertStudent); err != nil {
			return err
		}

		insertContact := r.sb.Insert("ContactNumber").
			Columns("StudentID", "ContactNumber").
			Values(student.StudentID, student.ContactNumber)
		return db.ExecTx(ctx, tx, insertContact)
	})
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.StudentID).Msg("Error creating student with contact")
	}
	return err
}

// UpdateStudent updates name, age and address of an existing student
func (r *StudentRepository) UpdateStudent(ctx context.Context, id int64, student *models.Student) error {
	query := r.sb.Update("Student").
		Set("Name", student.Name).
		Set("Age", student.Age).
		Set("Address", student.Address).
		Where(squirrel.Eq{"StudentID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.ErrDataNotFound)
}

// DeleteStudent deletes a student row
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	query := r.sb.Delete("Student").Where(squirrel.Eq{"StudentID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.ErrDataNotFound)
}

// UpdateContact replaces the contact number of a student
func (r *StudentRepository) UpdateContact(ctx context.Context, id int64, contactNumber string) error {
	query := r.sb.Update("ContactNumber").
		Set("ContactNumber", contactNumber).
		Where(squirrel.Eq{"StudentID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.ErrDataNotFound)
}

// DeleteContact deletes only the contact row of a student
func (r *StudentRepository) DeleteContact(ctx context.Context, id int64) error {
	query := r.sb.Delete("ContactNumber").Where(squirrel.Eq{"StudentID": id})
	return db.ExecAffecting(ctx, r.db, query, apperrors.ErrDataNotFound)
}
