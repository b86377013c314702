package repositories

import (
	"context"
	"time"

	"budgy/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SavingsRepository interface {
	Insert(ctx context.Context, savings *db_models.Savings) error
	Update(ctx context.Context, savings *db_models.Savings) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Savings, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindAll(ctx context.Context) ([]db_models.Savings, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Savings, error)
	FindByPriority(ctx context.Context, priority db_models.SavingsPriority) ([]db_models.Savings, error)
	FindByUserAndPriority(ctx context.Context, userID uuid.UUID, priority db_models.SavingsPriority) ([]db_models.Savings, error)
	// FindByUserTargetBetween matches start <= target_date <= end.
	FindByUserTargetBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Savings, error)
}

type savingsRepository struct {
	baseRepository[db_models.Savings]
}

func NewSavingsRepository(db *gorm.DB) SavingsRepository {
	return &savingsRepository{baseRepository[db_models.Savings]{db: db}}
}

func (s *savingsRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Savings, error) {
	return s.findWhere(ctx, "user_id = ?", userID)
}

func (s *savingsRepository) FindByPriority(ctx context.Context, priority db_models.SavingsPriority) ([]db_models.Savings, error) {
	return s.findWhere(ctx, "priority = ?", priority)
}

func (s *savingsRepository) FindByUserAndPriority(ctx context.Context, userID uuid.UUID, priority db_models.SavingsPriority) ([]db_models.Savings, error) {
	return s.findWhere(ctx, "user_id = ? AND priority = ?", userID, priority)
}

func (s *savingsRepository) FindByUserTargetBetween(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]db_models.Savings, error) {
	return s.findWhere(ctx, "user_id = ? AND target_date BETWEEN ? AND ?", userID, start, end)
}
