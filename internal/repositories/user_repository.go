package repositories

import (
	"context"
	"errors"

	"budgy/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	Update(ctx context.Context, user *db_models.User) error
	// FindByID ignores the active flag; FindActiveByID does not.
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAllActive(ctx context.Context) ([]db_models.User, error)
}

type userRepository struct {
	baseRepository[db_models.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{baseRepository[db_models.User]{db: db}}
}

func (u *userRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ? AND active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// ExistsByEmail looks at every user, active or not.
func (u *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := u.db.WithContext(ctx).Model(&db_models.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (u *userRepository) FindAllActive(ctx context.Context) ([]db_models.User, error) {
	return u.findWhere(ctx, "active = ?", true)
}
