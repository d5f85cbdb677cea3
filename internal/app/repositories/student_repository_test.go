package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/admission/internal/app/models"
	"github.com/yigit/admission/internal/app/repositories"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/testutil"
)

func newStudent(id int64) *models.Student {
	return &models.Student{
		StudentID:     id,
		Name:          "Rahim Uddin",
		Age:           19,
		Address:       "12 Lake Road, Dhaka",
		ContactNumber: "01712345678",
	}
}

func TestStudentRepositoryCreateWithContact(t *testing.T) {
	p := testutil.NewProvider(t)
	repo := repositories.NewStudentRepository(p)
	ctx := context.Background()

	require.NoError(t, repo.CreateWithContact(ctx, newStudent(1)))

	got, err := repo.GetStudentByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.StudentID)
	assert.Equal(t, "Rahim Uddin", got.Name)
	assert.Equal(t, 19, got.Age)
	assert.Equal(t, "12 Lake Road, Dhaka", got.Address)
	require.NotNil(t, got.ContactNumber)
	assert.Equal(t, "01712345678", *got.ContactNumber)
}

func TestStudentRepositoryDuplicateLeavesNoPartialRows(t *testing.T) {
	p := testutil.NewProvider(t)
	repo := repositories.NewStudentRepository(p)
	ctx := context.Background()

	require.NoError(t, repo.CreateWithContact(ctx, newStudent(4)))

	err := repo.CreateWithContact(ctx, newStudent(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
	assert.Equal(t, 1, testutil.Count(t, p, "Student"))
	assert.Equal(t, 1, testutil.Count(t, p, "ContactNumber"))
}

func TestStudentRepositoryContactFailureRollsBackStudent(t *testing.T) {
	p := testutil.NewProvider(t)
	repo := repositories.NewStudentRepository(p)
	ctx := context.Background()

	testutil.Exec(t, p, `CREATE TRIGGER reject_contact BEFORE INSERT ON ContactNumber
		BEGIN SELECT RAISE(ABORT, 'contact rejected'); END`)

	err := repo.CreateWithContact(ctx, newStudent(5))
	require.Error(t, err)
	assert.Contains(t, apperrors.Detail(err), "contact rejected")
	assert.Equal(t, 0, testutil.Count(t, p, "Student"))
	assert.Equal(t, 0, testutil.Count(t, p, "ContactNumber"))

	_, err = repo.GetStudentByID(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStudentRepositoryListIncludesStudentsWithoutContact(t *testing.T) {
	p := testutil.NewProvider(t)
	repo := repositories.NewStudentRepository(p)
	ctx := context.Background()

	require.NoError(t, repo.CreateWithContact(ctx, newStudent(2)))
	testutil.Exec(t, p, "INSERT INTO Student (StudentID, Name, Age, Address) VALUES (1, 'No Phone', 22, 'Khulna')")

	students, err := repo.GetAllStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, int64(1), students[0].StudentID)
	assert.Nil(t, students[0].ContactNumber)
	assert.NotNil(t, students[1].ContactNumber)
}

func TestStudentRepositoryUpdateAndDelete(t *testing.T) {
	p := testutil.NewProvider(t)
	repo := repositories.NewStudentRepository(p)
	ctx := context.Background()

	require.NoError(t, repo.CreateWithContact(ctx, newStudent(1)))
	require.NoError(t, repo.CreateWithContact(ctx, newStudent(2)))

	updated := newStudent(1)
	updated.Name = "Karim"
	updated.Age = 30
	require.NoError(t, repo.UpdateStudent(ctx, 1, updated))

	got, err := repo.GetStudentByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Karim", got.Name)
	assert.Equal(t, 30, got.Age)

	other, err := repo.GetStudentByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Rahim Uddin", other.Name)

	assert.ErrorIs(t, repo.UpdateStudent(ctx, 99, updated), apperrors.ErrResourceNotFound)

	require.NoError(t, repo.DeleteStudent(ctx, 1))
	err = repo.DeleteStudent(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "Data not found", apperrors.Detail(err))

	_, err = repo.GetStudentByID(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStudentRepositoryContact(t *testing.T) {
	p := testutil.NewProvider(t)
	repo := repositories.NewStudentRepository(p)
	ctx := context.Background()

	require.NoError(t, repo.CreateWithContact(ctx, newStudent(1)))

	require.NoError(t, repo.UpdateContact(ctx, 1, "01898765432"))
	got, err := repo.GetStudentByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "01898765432", *got.ContactNumber)

	require.NoError(t, repo.DeleteContact(ctx, 1))
	got, err = repo.GetStudentByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got.ContactNumber)

	assert.ErrorIs(t, repo.DeleteContact(ctx, 1), apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, repo.UpdateContact(ctx, 1, "01898765432"), apperrors.ErrResourceNotFound)
}
