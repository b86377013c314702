package services

import (
	"context"
	"fmt"
	"strings"

	"budgy/internal/models/db_models"
	"budgy/internal/models/request_models"
	"budgy/internal/repositories"
	"budgy/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseServiceInterface interface {
	Create(ctx context.Context, req request_models.ExpenseRequest) (*db_models.Expense, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.ExpenseRequest) (*db_models.Expense, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]db_models.Expense, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Expense, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.Expense, error)
}

type ExpenseService struct {
	expenseRepo  repositories.ExpenseRepository
	userRepo     repositories.UserRepository
	categoryRepo repositories.CategoryRepository
	log          *zap.Logger
}

func NewExpenseService(
	expenseRepo repositories.ExpenseRepository,
	userRepo repositories.UserRepository,
	categoryRepo repositories.CategoryRepository,
	log *zap.Logger,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		log:          log,
	}
}

func (s *ExpenseService) check(ctx context.Context, req request_models.ExpenseRequest) error {
	if req.Amount == nil {
		return validationErr("amount is required")
	}
	if req.Amount.Round(2).IsNegative() {
		return validationErr("amount must not be negative")
	}
	if err := requireActiveUser(ctx, s.log, s.userRepo, req.UserID); err != nil {
		return err
	}
	if req.CategoryID == nil {
		return nil
	}
	ok, err := s.categoryRepo.ExistsByID(ctx, *req.CategoryID)
	if err != nil {
		return storeErr(s.log, "find category", err)
	}
	if !ok {
		return fmt.Errorf("%w: category %s", utils.ErrReference, *req.CategoryID)
	}
	return nil
}

func applyExpense(e *db_models.Expense, req request_models.ExpenseRequest) {
	e.Amount = req.Amount.Round(2)
	e.Description = strings.TrimSpace(req.Description)
	e.CategoryID = req.CategoryID
	e.UserID = req.UserID
}

func (s *ExpenseService) Create(ctx context.Context, req request_models.ExpenseRequest) (*db_models.Expense, error) {
	if err := s.check(ctx, req); err != nil {
		return nil, err
	}

	expense := &db_models.Expense{BaseModel: db_models.NewBaseModel()}
	applyExpense(expense, req)
	if err := s.expenseRepo.Insert(ctx, expense); err != nil {
		return nil, storeErr(s.log, "insert expense", err)
	}
	return expense, nil
}

func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req request_models.ExpenseRequest) (*db_models.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(s.log, "find expense", err)
	}
	if expense == nil {
		return nil, fmt.Errorf("%w: expense %s", utils.ErrNotFound, id)
	}
	if err := s.check(ctx, req); err != nil {
		return nil, err
	}

	applyExpense(expense, req)
	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, storeErr(s.log, "update expense", err)
	}
	return expense, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.expenseRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, storeErr(s.log, "delete expense", err)
	}
	return deleted, nil
}

func (s *ExpenseService) ListAll(ctx context.Context) ([]db_models.Expense, error) {
	expenses, err := s.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, storeErr(s.log, "list expenses", err)
	}
	return expenses, nil
}

func (s *ExpenseService) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Expense, error) {
	expenses, err := s.expenseRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(s.log, "list expenses by user", err)
	}
	return expenses, nil
}

func (s *ExpenseService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]db_models.Expense, error) {
	expenses, err := s.expenseRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, storeErr(s.log, "list expenses by category", err)
	}
	return expenses, nil
}
