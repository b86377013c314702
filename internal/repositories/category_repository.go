package repositories

import (
	"context"
	"errors"

	"budgy/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Insert(ctx context.Context, category *db_models.ExpenseCategory) error
	Update(ctx context.Context, category *db_models.ExpenseCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.ExpenseCategory, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	FindByName(ctx context.Context, name string) (*db_models.ExpenseCategory, error)
	FindAll(ctx context.Context) ([]db_models.ExpenseCategory, error)
	// DeleteDetachingExpenses clears category_id on dependent expenses and
	// removes the category in one transaction.
	DeleteDetachingExpenses(ctx context.Context, id uuid.UUID) (bool, error)
}

type categoryRepository struct {
	baseRepository[db_models.ExpenseCategory]
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{baseRepository[db_models.ExpenseCategory]{db: db}}
}

func (c *categoryRepository) FindByName(ctx context.Context, name string) (*db_models.ExpenseCategory, error) {
	var category db_models.ExpenseCategory
	err := c.db.WithContext(ctx).First(&category, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &category, nil
}

func (c *categoryRepository) DeleteDetachingExpenses(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&db_models.Expense{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}

		res := tx.Delete(&db_models.ExpenseCategory{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})

	return deleted, err
}
