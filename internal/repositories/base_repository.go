package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// baseRepository holds the CRUD calls every entity store shares. Finders
// return (nil, nil) when nothing matches.
type baseRepository[T any] struct {
	db *gorm.DB
}

func (r baseRepository[T]) Insert(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Update overwrites every mutable column. Identity and creation columns are
// never written after insert.
func (r baseRepository[T]) Update(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit("id", "created_at", "created_by").
		Updates(entity).Error
}

func (r baseRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entity, nil
}

func (r baseRepository[T]) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// DeleteByID removes the row and reports whether one existed.
func (r baseRepository[T]) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r baseRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r baseRepository[T]) findWhere(ctx context.Context, query interface{}, args ...interface{}) ([]T, error) {
	var out []T
	err := r.db.WithContext(ctx).Where(query, args...).Order("created_at DESC").Find(&out).Error
	return out, err
}
