package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/admission/internal/db"
	"github.com/yigit/admission/internal/pkg/apperrors"
	"github.com/yigit/admission/internal/testutil"
)

func scanStatusID(row db.RowScanner) (int64, error) {
	var id int64
	err := row.Scan(&id)
	return id, err
}

func TestFetchAllEmptyTableReturnsEmptySlice(t *testing.T) {
	p := testutil.NewProvider(t)

	ids, err := db.FetchAll(context.Background(), p, p.Builder().Select("StatusID").From("ApplicationStatus"), scanStatusID)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestFetchAllMapsEveryRow(t *testing.T) {
	p := testutil.NewProvider(t)
	testutil.Exec(t, p, "INSERT INTO ApplicationStatus VALUES (1, 'Submitted'), (2, 'Accepted')")

	ids, err := db.FetchAll(context.Background(), p,
		p.Builder().Select("StatusID").From("ApplicationStatus").OrderBy("StatusID"), scanStatusID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestFetchOneNotFound(t *testing.T) {
	p := testutil.NewProvider(t)
	notFound := apperrors.NotFoundWithID("Status", 7)

	_, err := db.FetchOne(context.Background(), p,
		p.Builder().Select("StatusID").From("ApplicationStatus").Where("StatusID = ?", 7), scanStatusID, notFound)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "Status with ID 7 not found", apperrors.Detail(err))
}

func TestFetchOneDriverErrorIsInternal(t *testing.T) {
	p := testutil.NewProvider(t)

	_, err := db.FetchOne(context.Background(), p,
		p.Builder().Select("StatusID").From("NoSuchTable"), scanStatusID, apperrors.ErrDataNotFound)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInternal)
	assert.Contains(t, apperrors.Detail(err), "NoSuchTable")
}

func TestExecAffectingZeroRowsIsNotFound(t *testing.T) {
	p := testutil.NewProvider(t)

	err := db.ExecAffecting(context.Background(), p,
		p.Builder().Delete("ApplicationStatus").Where("StatusID = ?", 99), apperrors.ErrDataNotFound)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestExecAffectingUpdateWithSameValues(t *testing.T) {
	p := testutil.NewProvider(t)
	testutil.Exec(t, p, "INSERT INTO ApplicationStatus VALUES (1, 'Submitted')")

	err := db.ExecAffecting(context.Background(), p,
		p.Builder().Update("ApplicationStatus").Set("StatusDescription", "Submitted").Where("StatusID = ?", 1),
		apperrors.ErrDataNotFound)
	assert.NoError(t, err)
}

func TestExecDuplicateKeyIsConflict(t *testing.T) {
	p := testutil.NewProvider(t)
	insert := p.Builder().Insert("ApplicationStatus").Columns("StatusID", "StatusDescription").Values(1, "Submitted")

	_, err := db.Exec(context.Background(), p, insert)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), p, insert)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)
}

func TestExists(t *testing.T) {
	p := testutil.NewProvider(t)
	testutil.Exec(t, p, "INSERT INTO ApplicationStatus VALUES (3, 'Rejected')")
	ctx := context.Background()

	found, err := db.Exists(ctx, p, p.Builder().Select("1").From("ApplicationStatus").Where("StatusID = ?", 3))
	require.NoError(t, err)
	assert.True(t, found)

	found, err = db.Exists(ctx, p, p.Builder().Select("1").From("ApplicationStatus").Where("StatusID = ?", 4))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	p := testutil.NewProvider(t)
	boom := errors.New("boom")

	err := p.WithTransaction(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		insert := p.Builder().Insert("ApplicationStatus").Columns("StatusID", "StatusDescription").Values(1, "Submitted")
		if err := db.ExecTx(ctx, tx, insert); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, testutil.Count(t, p, "ApplicationStatus"))
}

func TestWithTransactionCommits(t *testing.T) {
	p := testutil.NewProvider(t)

	err := p.WithTransaction(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		for i := 1; i <= 2; i++ {
			insert := p.Builder().Insert("ApplicationStatus").Columns("StatusID", "StatusDescription").Values(i, "Status")
			if err := db.ExecTx(ctx, tx, insert); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, testutil.Count(t, p, "ApplicationStatus"))
}

func TestAcquireAfterCloseIsConnectionError(t *testing.T) {
	p := testutil.NewProvider(t)
	require.NoError(t, p.Close())

	_, err := p.Acquire(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrConnection)
}

func TestBuilderPlaceholders(t *testing.T) {
	pg := db.New(nil, "postgres")
	query, _, err := pg.Builder().Select("ExamID").From("Exam").Where("ExamID = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT ExamID FROM Exam WHERE ExamID = $1", query)

	my := db.New(nil, "mysql")
	query, _, err = my.Builder().Select("ExamID").From("Exam").Where("ExamID = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT ExamID FROM Exam WHERE ExamID = ?", query)
}
