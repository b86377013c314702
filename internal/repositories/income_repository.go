package repositories

import (
	"context"
	"time"

	"budgy/internal/models/db_models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type IncomeRepository interface {
	Insert(ctx context.Context, income *db_models.Income) error
	Update(ctx context.Context, income *db_models.Income) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Income, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindAll(ctx context.Context) ([]db_models.Income, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Income, error)
	FindByUserAndType(ctx context.Context, userID uuid.UUID, incomeType db_models.IncomeType) ([]db_models.Income, error)
	// FindByUserCreatedBetween matches start <= created_at <= end.
	FindByUserCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Income, error)
	SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

type incomeRepository struct {
	baseRepository[db_models.Income]
}

func NewIncomeRepository(db *gorm.DB) IncomeRepository {
	return &incomeRepository{baseRepository[db_models.Income]{db: db}}
}

func (i *incomeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Income, error) {
	return i.findWhere(ctx, "user_id = ?", userID)
}

func (i *incomeRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, incomeType db_models.IncomeType) ([]db_models.Income, error) {
	return i.findWhere(ctx, "user_id = ? AND income_type = ?", userID, incomeType)
}

func (i *incomeRepository) FindByUserCreatedBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Income, error) {
	return i.findWhere(ctx, "user_id = ? AND created_at BETWEEN ? AND ?", userID, start, end)
}

func (i *incomeRepository) SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return sumAmount(ctx, i.db, &db_models.Income{}, userID)
}

type amountTotal struct {
	Total decimal.Decimal
}

// sumAmount totals the NUMERIC amount column in the database so no float
// conversion happens on the way.
func sumAmount(ctx context.Context, db *gorm.DB, model interface{}, userID uuid.UUID) (decimal.Decimal, error) {
	var row amountTotal
	err := db.WithContext(ctx).
		Model(model).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
