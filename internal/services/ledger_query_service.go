package services

import (
	"context"
	"time"

	"budgy/internal/models/db_models"
	"budgy/internal/repositories"
	"budgy/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LedgerQueryServiceInterface answers read-only questions across the ledger
// stores. Period bounds are inclusive at both ends.
type LedgerQueryServiceInterface interface {
	TotalIncomeByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	TotalExpensesByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	IncomeByUserAndType(ctx context.Context, userID uuid.UUID, incomeType db_models.IncomeType) ([]db_models.Income, error)
	IncomeByUserWithinPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Income, error)
	ExpensesByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]db_models.Expense, error)
	SavingsByPriority(ctx context.Context, priority db_models.SavingsPriority) ([]db_models.Savings, error)
	SavingsByUserWithinPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Savings, error)
}

type LedgerQueryService struct {
	incomeRepo  repositories.IncomeRepository
	expenseRepo repositories.ExpenseRepository
	savingsRepo repositories.SavingsRepository
	log         *zap.Logger
}

func NewLedgerQueryService(
	incomeRepo repositories.IncomeRepository,
	expenseRepo repositories.ExpenseRepository,
	savingsRepo repositories.SavingsRepository,
	log *zap.Logger,
) LedgerQueryServiceInterface {
	return &LedgerQueryService{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
		savingsRepo: savingsRepo,
		log:         log,
	}
}

func checkPeriod(start, end time.Time) error {
	if start.After(end) {
		return validationErr("period start %s is after end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}

func (q *LedgerQueryService) TotalIncomeByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total, err := q.incomeRepo.SumByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, storeErr(q.log, "sum incomes", err)
	}
	return total, nil
}

func (q *LedgerQueryService) TotalExpensesByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total, err := q.expenseRepo.SumByUser(ctx, userID)
	if err != nil {
		return decimal.Zero, storeErr(q.log, "sum expenses", err)
	}
	return total, nil
}

func (q *LedgerQueryService) IncomeByUserAndType(ctx context.Context, userID uuid.UUID, incomeType db_models.IncomeType) ([]db_models.Income, error) {
	if !incomeType.IsValid() {
		return nil, validationErr("unknown income type %q", incomeType)
	}
	incomes, err := q.incomeRepo.FindByUserAndType(ctx, userID, incomeType)
	if err != nil {
		return nil, storeErr(q.log, "list incomes by type", err)
	}
	return incomes, nil
}

func (q *LedgerQueryService) IncomeByUserWithinPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Income, error) {
	if err := checkPeriod(start, end); err != nil {
		return nil, err
	}
	incomes, err := q.incomeRepo.FindByUserCreatedBetween(ctx, userID, start, end)
	if err != nil {
		return nil, storeErr(q.log, "list incomes by period", err)
	}
	return incomes, nil
}

func (q *LedgerQueryService) ExpensesByUserAndCategory(ctx context.Context, userID, categoryID uuid.UUID) ([]db_models.Expense, error) {
	expenses, err := q.expenseRepo.FindByUserAndCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, storeErr(q.log, "list expenses by category", err)
	}
	return expenses, nil
}

func (q *LedgerQueryService) SavingsByPriority(ctx context.Context, priority db_models.SavingsPriority) ([]db_models.Savings, error) {
	if !priority.IsValid() {
		return nil, validationErr("unknown priority %q", priority)
	}
	goals, err := q.savingsRepo.FindByPriority(ctx, priority)
	if err != nil {
		return nil, storeErr(q.log, "list savings by priority", err)
	}
	return goals, nil
}

// SavingsByUserWithinPeriod compares calendar dates; the clock part of the
// bounds is ignored.
func (q *LedgerQueryService) SavingsByUserWithinPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Savings, error) {
	start, end = utils.TruncateDay(start), utils.TruncateDay(end)
	if err := checkPeriod(start, end); err != nil {
		return nil, err
	}
	goals, err := q.savingsRepo.FindByUserTargetBetween(ctx, userID, start, end)
	if err != nil {
		return nil, storeErr(q.log, "list savings by period", err)
	}
	return goals, nil
}
