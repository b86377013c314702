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

type CategoryServiceInterface interface {
	Create(ctx context.Context, req request_models.CategoryRequest) (*db_models.ExpenseCategory, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.CategoryRequest) (*db_models.ExpenseCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]db_models.ExpenseCategory, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.ExpenseCategory, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, log *zap.Logger) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo, log: log}
}

func validateCategory(req *request_models.CategoryRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Icon = strings.TrimSpace(req.Icon)
	if err := requireText("name", req.Name); err != nil {
		return err
	}
	return requireText("icon", req.Icon)
}

// nameTaken reports whether another category already uses name.
func (s *CategoryService) nameTaken(ctx context.Context, name string, self uuid.UUID) (bool, error) {
	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return false, storeErr(s.log, "find category by name", err)
	}
	return existing != nil && existing.ID != self, nil
}

func (s *CategoryService) Create(ctx context.Context, req request_models.CategoryRequest) (*db_models.ExpenseCategory, error) {
	if err := validateCategory(&req); err != nil {
		return nil, err
	}
	taken, err := s.nameTaken(ctx, req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: category %q", utils.ErrConflict, req.Name)
	}

	category := &db_models.ExpenseCategory{
		BaseModel: db_models.NewBaseModel(),
		Name:      req.Name,
		Icon:      req.Icon,
	}
	if err := s.categoryRepo.Insert(ctx, category); err != nil {
		return nil, storeErr(s.log, "insert category", err)
	}
	return category, nil
}

// Update rejects an unknown id as invalid input rather than not-found.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req request_models.CategoryRequest) (*db_models.ExpenseCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(s.log, "find category", err)
	}
	if category == nil {
		return nil, validationErr("category %s does not exist", id)
	}
	if err := validateCategory(&req); err != nil {
		return nil, err
	}
	taken, err := s.nameTaken(ctx, req.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: category %q", utils.ErrConflict, req.Name)
	}

	category.Name = req.Name
	category.Icon = req.Icon
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, storeErr(s.log, "update category", err)
	}
	return category, nil
}

// Delete removes the category; its expenses stay and lose their category.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.categoryRepo.DeleteDetachingExpenses(ctx, id)
	if err != nil {
		return storeErr(s.log, "delete category", err)
	}
	if !deleted {
		return validationErr("category %s does not exist", id)
	}
	s.log.Info("category deleted", zap.String("category_id", id.String()))
	return nil
}

func (s *CategoryService) ListAll(ctx context.Context) ([]db_models.ExpenseCategory, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, storeErr(s.log, "list categories", err)
	}
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.ExpenseCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(s.log, "find category", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: category %s", utils.ErrNotFound, id)
	}
	return category, nil
}
