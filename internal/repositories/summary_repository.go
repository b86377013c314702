package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SummaryRepository serves the aggregate reads behind a user's ledger summary.
type SummaryRepository interface {
	// Time series, one row per non-empty bucket ordered oldest first.
	IncomeSeries(ctx context.Context, userID uuid.UUID, start, end time.Time, interval string) ([]BucketSum, error)
	ExpenseSeries(ctx context.Context, userID uuid.UUID, start, end time.Time, interval string) ([]BucketSum, error)
}

type summaryRepository struct {
	db *gorm.DB
}

func NewSummaryRepository(db *gorm.DB) SummaryRepository {
	return &summaryRepository{db: db}
}

type BucketSum struct {
	Bucket time.Time       `gorm:"column:bucket"`
	Sum    decimal.Decimal `gorm:"column:sum"`
}

// utcBucket truncates in UTC so buckets line up with UTC calendar months
// whatever the session time zone is.
const utcBucket = "date_trunc(?, created_at AT TIME ZONE 'UTC')"

func (r *summaryRepository) IncomeSeries(ctx context.Context, userID uuid.UUID, start, end time.Time, interval string) ([]BucketSum, error) {
	return r.amountSeries(ctx, "incomes", userID, start, end, interval)
}

func (r *summaryRepository) ExpenseSeries(ctx context.Context, userID uuid.UUID, start, end time.Time, interval string) ([]BucketSum, error) {
	return r.amountSeries(ctx, "expenses", userID, start, end, interval)
}

func (r *summaryRepository) amountSeries(ctx context.Context, table string, userID uuid.UUID, start, end time.Time, interval string) ([]BucketSum, error) {
	var rows []BucketSum
	err := r.db.WithContext(ctx).
		Table(table).
		Select(utcBucket+" AS bucket, COALESCE(SUM(amount), 0) AS sum", interval).
		Where("user_id = ?", userID).
		Where("created_at BETWEEN ? AND ?", start, end).
		Group("bucket").
		Order("bucket ASC").
		Find(&rows).Error
	return rows, err
}
