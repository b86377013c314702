package repositories

import (
	"context"

	"budgy/internal/models/db_models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseRepository interface {
	Insert(ctx context.Context, expense *db_models.Expense) error
	Update(ctx context.Context, expense *db_models.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Expense, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindAll(ctx context.Context) ([]db_models.Expense, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Expense, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.Expense, error)
	FindByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]db_models.Expense, error)
	SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

type expenseRepository struct {
	baseRepository[db_models.Expense]
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{baseRepository[db_models.Expense]{db: db}}
}

func (e *expenseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Expense, error) {
	return e.findWhere(ctx, "user_id = ?", userID)
}

func (e *expenseRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.Expense, error) {
	return e.findWhere(ctx, "category_id = ?", categoryID)
}

func (e *expenseRepository) FindByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]db_models.Expense, error) {
	return e.findWhere(ctx, "user_id = ? AND category_id = ?", userID, categoryID)
}

func (e *expenseRepository) SumByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return sumAmount(ctx, e.db, &db_models.Expense{}, userID)
}
