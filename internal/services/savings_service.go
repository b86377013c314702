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

type SavingsServiceInterface interface {
	Create(ctx context.Context, req request_models.SavingsRequest) (*db_models.Savings, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.SavingsRequest) (*db_models.Savings, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]db_models.Savings, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Savings, error)
	ListByUserAndPriority(ctx context.Context, userID uuid.UUID, priority db_models.SavingsPriority) ([]db_models.Savings, error)
}

type SavingsService struct {
	savingsRepo repositories.SavingsRepository
	userRepo    repositories.UserRepository
	log         *zap.Logger
}

func NewSavingsService(savingsRepo repositories.SavingsRepository, userRepo repositories.UserRepository, log *zap.Logger) SavingsServiceInterface {
	return &SavingsService{savingsRepo: savingsRepo, userRepo: userRepo, log: log}
}

// check validates req and returns the goal fields it describes.
func (s *SavingsService) check(ctx context.Context, req request_models.SavingsRequest) (db_models.Savings, error) {
	if err := requireText("name", req.Name); err != nil {
		return db_models.Savings{}, err
	}
	if req.TargetAmount == nil || !req.TargetAmount.Round(2).IsPositive() {
		return db_models.Savings{}, validationErr("target_amount must be greater than zero")
	}
	if req.CurrentAmount == nil || req.CurrentAmount.Round(2).IsNegative() {
		return db_models.Savings{}, validationErr("current_amount must not be negative")
	}
	date, err := utils.ParseDate(req.TargetDate)
	if err != nil {
		return db_models.Savings{}, validationErr("target_date must be a YYYY-MM-DD date")
	}
	if !req.Priority.IsValid() {
		return db_models.Savings{}, validationErr("unknown priority %q", req.Priority)
	}
	if err := requireActiveUser(ctx, s.log, s.userRepo, req.UserID); err != nil {
		return db_models.Savings{}, err
	}

	return db_models.Savings{
		Name:          strings.TrimSpace(req.Name),
		TargetAmount:  req.TargetAmount.Round(2),
		CurrentAmount: req.CurrentAmount.Round(2),
		TargetDate:    date,
		Priority:      req.Priority,
		Description:   req.Description,
		UserID:        req.UserID,
	}, nil
}

func (s *SavingsService) Create(ctx context.Context, req request_models.SavingsRequest) (*db_models.Savings, error) {
	fields, err := s.check(ctx, req)
	if err != nil {
		return nil, err
	}

	savings := &fields
	savings.BaseModel = db_models.NewBaseModel()
	if err := s.savingsRepo.Insert(ctx, savings); err != nil {
		return nil, storeErr(s.log, "insert savings", err)
	}
	return savings, nil
}

func (s *SavingsService) Update(ctx context.Context, id uuid.UUID, req request_models.SavingsRequest) (*db_models.Savings, error) {
	savings, err := s.savingsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(s.log, "find savings", err)
	}
	if savings == nil {
		return nil, fmt.Errorf("%w: savings %s", utils.ErrNotFound, id)
	}
	fields, err := s.check(ctx, req)
	if err != nil {
		return nil, err
	}

	fields.BaseModel = savings.BaseModel
	if err := s.savingsRepo.Update(ctx, &fields); err != nil {
		return nil, storeErr(s.log, "update savings", err)
	}
	return &fields, nil
}

func (s *SavingsService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.savingsRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, storeErr(s.log, "delete savings", err)
	}
	return deleted, nil
}

func (s *SavingsService) ListAll(ctx context.Context) ([]db_models.Savings, error) {
	goals, err := s.savingsRepo.FindAll(ctx)
	if err != nil {
		return nil, storeErr(s.log, "list savings", err)
	}
	return goals, nil
}

func (s *SavingsService) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Savings, error) {
	goals, err := s.savingsRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(s.log, "list savings by user", err)
	}
	return goals, nil
}

func (s *SavingsService) ListByUserAndPriority(ctx context.Context, userID uuid.UUID, priority db_models.SavingsPriority) ([]db_models.Savings, error) {
	if !priority.IsValid() {
		return nil, validationErr("unknown priority %q", priority)
	}
	goals, err := s.savingsRepo.FindByUserAndPriority(ctx, userID, priority)
	if err != nil {
		return nil, storeErr(s.log, "list savings by user and priority", err)
	}
	return goals, nil
}
