package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestApplyPointsDelta_NewAccount(t *testing.T) {
	repo, mock, cleanup := setupReportRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^INSERT INTO points").
		WithArgs("uid-1", int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(10)))

	balance, err := repo.ApplyPointsDelta(context.Background(), "uid-1", 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPointsDelta_NegativeBalanceAllowed(t *testing.T) {
	repo, mock, cleanup := setupReportRepoTest(t)
	defer cleanup()

	// An unverified first submission debits straight into the negative.
	mock.ExpectQuery("^INSERT INTO points").
		WithArgs("uid-2", int64(-5)).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(-5)))

	balance, err := repo.ApplyPointsDelta(context.Background(), "uid-2", -5)

	assert.NoError(t, err)
	assert.Equal(t, int64(-5), balance)
}

func TestApplyPointsDelta_DBError(t *testing.T) {
	repo, mock, cleanup := setupReportRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^INSERT INTO points").
		WillReturnError(errors.New("deadlock detected"))

	_, err := repo.ApplyPointsDelta(context.Background(), "uid-1", 10)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply points delta")
}

func TestTopPointsAccounts(t *testing.T) {
	repo, mock, cleanup := setupReportRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"user_id", "balance"}).
		AddRow("uid-1", int64(120)).
		AddRow("uid-2", int64(45))

	mock.ExpectQuery("^SELECT (.+) FROM points").
		WithArgs(5).
		WillReturnRows(rows)

	accounts, err := repo.TopPointsAccounts(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, int64(120), accounts[0].Balance)
}

func TestTopPointsAccounts_DefaultLimit(t *testing.T) {
	repo, mock, cleanup := setupReportRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT (.+) FROM points").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "balance"}))

	_, err := repo.TopPointsAccounts(context.Background(), 0)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
