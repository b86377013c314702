package repositories

import (
	"context"

	"budgy/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertRepository interface {
	Insert(ctx context.Context, alert *db_models.Alert) error
	Update(ctx context.Context, alert *db_models.Alert) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Alert, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindAll(ctx context.Context) ([]db_models.Alert, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Alert, error)
	FindUnreadByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Alert, error)
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type alertRepository struct {
	baseRepository[db_models.Alert]
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{baseRepository[db_models.Alert]{db: db}}
}

func (a *alertRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Alert, error) {
	return a.findWhere(ctx, "user_id = ?", userID)
}

func (a *alertRepository) FindUnreadByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Alert, error) {
	return a.findWhere(ctx, "user_id = ? AND is_read = ?", userID, false)
}

func (a *alertRepository) CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	err := a.db.WithContext(ctx).
		Model(&db_models.Alert{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&n).Error
	return n, err
}
