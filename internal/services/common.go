package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budgy/internal/repositories"
	"budgy/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func validationErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", utils.ErrValidation, fmt.Sprintf(format, args...))
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationErr("%s is required", field)
	}
	return nil
}

// storeErr logs an unexpected store failure and hides it behind
// ErrDatabaseError. Unique-key violations surface as ErrConflict.
func storeErr(log *zap.Logger, op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", utils.ErrConflict, op)
	}
	log.Error("store call failed", zap.String("op", op), zap.Error(err))
	return utils.ErrDatabaseError
}

// requireActiveUser resolves a ledger record's owner. A missing or inactive
// user is a reference error, not a not-found.
func requireActiveUser(ctx context.Context, log *zap.Logger, users repositories.UserRepository, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return validationErr("user_id is required")
	}
	user, err := users.FindActiveByID(ctx, userID)
	if err != nil {
		return storeErr(log, "find user", err)
	}
	if user == nil {
		return fmt.Errorf("%w: user %s", utils.ErrReference, userID)
	}
	return nil
}
