package repositories

import (
	"context"
	"testing"
	"time"

	"budgy/internal/models/db_models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestExpenseRepository_FindByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	userID := uuid.New()
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "description", "user_id", "active"}).
			AddRow(id.String(), "12.50", "lunch", userID.String(), true))

	got, err := NewExpenseRepository(db).FindByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "12.5", got[0].Amount.String())
	assert.Nil(t, got[0].CategoryID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_SumByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) AS total FROM "expenses" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("200.00"))

	sum, err := NewExpenseRepository(db).SumByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "200.00", sum.StringFixed(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeRepository_SumByUserEmpty(t *testing.T) {
	db, mock := setupMockDB(t)
	userID := uuid.New()

	mock.ExpectQuery(`FROM "incomes" WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("0"))

	sum, err := NewIncomeRepository(db).SumByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeRepository_FindByUserCreatedBetween(t *testing.T) {
	db, mock := setupMockDB(t)
	userID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "incomes" WHERE user_id = \$1 AND created_at BETWEEN \$2 AND \$3`).
		WithArgs(userID, start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "income_type"}).
			AddRow(uuid.New().String(), "100.00", "SALARY"))

	got, err := NewIncomeRepository(db).FindByUserCreatedBetween(context.Background(), userID, start, end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, db_models.IncomeSalary, got[0].IncomeType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSavingsRepository_FindByPriority(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "savings" WHERE priority = \$1`).
		WithArgs(db_models.PriorityHigh).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "priority"}))

	got, err := NewSavingsRepository(db).FindByPriority(context.Background(), db_models.PriorityHigh)
	require.NoError(t, err)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertRepository_CountUnreadByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "alerts" WHERE user_id = \$1 AND is_read = \$2`).
		WithArgs(userID, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := NewAlertRepository(db).CountUnreadByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmailNotFound(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := NewUserRepository(db).FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBaseRepository_DeleteByIDMissing(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "incomes" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ok, err := NewIncomeRepository(db).DeleteByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_DeleteDetachingExpenses(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "expenses" SET "category_id"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "expense_categories" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := NewCategoryRepository(db).DeleteDetachingExpenses(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSummaryRepository_IncomeSeries(t *testing.T) {
	db, mock := setupMockDB(t)
	userID := uuid.New()
	bucket := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT date_trunc\(\$1, created_at AT TIME ZONE 'UTC'\) AS bucket, COALESCE\(SUM\(amount\), 0\) AS sum FROM "incomes"`).
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "sum"}).AddRow(bucket, "150.50"))

	rows, err := NewSummaryRepository(db).IncomeSeries(context.Background(), userID,
		bucket, bucket.AddDate(0, 1, 0), "month")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Bucket.Equal(bucket))
	assert.Equal(t, "150.5", rows[0].Sum.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
