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

type IncomeServiceInterface interface {
	Create(ctx context.Context, req request_models.IncomeRequest) (*db_models.Income, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.IncomeRequest) (*db_models.Income, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]db_models.Income, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Income, error)
}

type IncomeService struct {
	incomeRepo repositories.IncomeRepository
	userRepo   repositories.UserRepository
	log        *zap.Logger
}

func NewIncomeService(incomeRepo repositories.IncomeRepository, userRepo repositories.UserRepository, log *zap.Logger) IncomeServiceInterface {
	return &IncomeService{incomeRepo: incomeRepo, userRepo: userRepo, log: log}
}

func (s *IncomeService) check(ctx context.Context, req request_models.IncomeRequest) error {
	if req.Amount == nil {
		return validationErr("amount is required")
	}
	if !req.Amount.Round(2).IsPositive() {
		return validationErr("amount must be greater than zero")
	}
	if err := requireText("source", req.Source); err != nil {
		return err
	}
	if !req.IncomeType.IsValid() {
		return validationErr("unknown income type %q", req.IncomeType)
	}
	return requireActiveUser(ctx, s.log, s.userRepo, req.UserID)
}

func applyIncome(i *db_models.Income, req request_models.IncomeRequest) {
	i.Amount = req.Amount.Round(2)
	i.Source = strings.TrimSpace(req.Source)
	i.IncomeType = req.IncomeType
	i.Description = req.Description
	i.UserID = req.UserID
}

func (s *IncomeService) Create(ctx context.Context, req request_models.IncomeRequest) (*db_models.Income, error) {
	if err := s.check(ctx, req); err != nil {
		return nil, err
	}

	income := &db_models.Income{BaseModel: db_models.NewBaseModel()}
	applyIncome(income, req)
	if err := s.incomeRepo.Insert(ctx, income); err != nil {
		return nil, storeErr(s.log, "insert income", err)
	}
	return income, nil
}

func (s *IncomeService) Update(ctx context.Context, id uuid.UUID, req request_models.IncomeRequest) (*db_models.Income, error) {
	income, err := s.incomeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(s.log, "find income", err)
	}
	if income == nil {
		return nil, fmt.Errorf("%w: income %s", utils.ErrNotFound, id)
	}
	if err := s.check(ctx, req); err != nil {
		return nil, err
	}

	applyIncome(income, req)
	if err := s.incomeRepo.Update(ctx, income); err != nil {
		return nil, storeErr(s.log, "update income", err)
	}
	return income, nil
}

func (s *IncomeService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.incomeRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, storeErr(s.log, "delete income", err)
	}
	return deleted, nil
}

func (s *IncomeService) ListAll(ctx context.Context) ([]db_models.Income, error) {
	incomes, err := s.incomeRepo.FindAll(ctx)
	if err != nil {
		return nil, storeErr(s.log, "list incomes", err)
	}
	return incomes, nil
}

func (s *IncomeService) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Income, error) {
	incomes, err := s.incomeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(s.log, "list incomes by user", err)
	}
	return incomes, nil
}
