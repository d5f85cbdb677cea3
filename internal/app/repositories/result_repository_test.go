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

func TestResultRepositoryRankings(t *testing.T) {
	p := testutil.NewProvider(t)
	repo := repositories.NewResultRepository(p)
	ctx := context.Background()

	top, err := repo.GetHighestMark(ctx)
	require.NoError(t, err)
	assert.Nil(t, top)

	bottom, err := repo.GetLowestMark(ctx)
	require.NoError(t, err)
	assert.Nil(t, bottom)

	testutil.SeedExam(t, p, "CSE", 1)
	testutil.SeedStudent(t, p, 1, "Ayesha")
	testutil.SeedStudent(t, p, 2, "Babul")
	testutil.SeedStudent(t, p, 3, "Chaity")

	for _, r := range []*models.Result{
		{ResultID: 1, StudentID: 1, ExamID: 1, Marks: 72},
		{ResultID: 2, StudentID: 2, ExamID: 1, Marks: 91},
		{ResultID: 3, StudentID: 3, ExamID: 1, Marks: 45},
	} {
		require.NoError(t, repo.CreateResult(ctx, r))
	}

	top, err = repo.GetHighestMark(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.RankedResult{Name: "Babul", Marks: 91}, top)

	bottom, err = repo.GetLowestMark(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.RankedResult{Name: "Chaity", Marks: 45}, bottom)

	ranked, err := repo.GetResultsOrderedByMarks(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Marks, ranked[i].Marks)
	}
	assert.Equal(t, "Babul", ranked[0].Name)
}

func TestResultRepositoryCRUD(t *testing.T) {
	p := testutil.NewProvider(t)
	repo := repositories.NewResultRepository(p)
	ctx := context.Background()

	testutil.SeedExam(t, p, "EEE", 2)
	testutil.SeedStudent(t, p, 5, "Dipu")

	require.NoError(t, repo.CreateResult(ctx, &models.Result{ResultID: 10, StudentID: 5, ExamID: 2, Marks: 60}))
	require.NoError(t, repo.UpdateResult(ctx, 10, &models.Result{StudentID: 5, ExamID: 2, Marks: 66}))

	got, err := repo.GetResultByID(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 66, got.Marks)

	err = repo.UpdateResult(ctx, 11, &models.Result{StudentID: 5, ExamID: 2, Marks: 1})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "Result with ID 11 not found", apperrors.Detail(err))

	require.NoError(t, repo.DeleteResult(ctx, 10))
	all, err := repo.GetAllResults(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
