package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"budgy/internal/models/db_models"
	"budgy/internal/models/request_models"
	"budgy/internal/repositories"
	"budgy/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterUserRequest) (*db_models.User, error)
	Update(ctx context.Context, id uuid.UUID, req request_models.UpdateUserRequest) (*db_models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	ListActive(ctx context.Context) ([]db_models.User, error)
	// SoftDelete flips active to false and returns the deactivated user.
	SoftDelete(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*db_models.User, error)
}

type UserService struct {
	userRepo repositories.UserRepository
	hasher   utils.PasswordHasher
	log      *zap.Logger
	now      func() time.Time
}

func NewUserService(userRepo repositories.UserRepository, hasher utils.PasswordHasher, log *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
		log:      log,
		now:      time.Now,
	}
}

type userFields struct {
	firstName, lastName, email, image string
	gender                            db_models.Gender
	role                              db_models.UserRole
	dob                               string
}

func (u *UserService) validate(f userFields) (*time.Time, error) {
	if err := requireText("first_name", f.firstName); err != nil {
		return nil, err
	}
	if err := requireText("last_name", f.lastName); err != nil {
		return nil, err
	}
	if err := requireText("email", f.email); err != nil {
		return nil, err
	}
	if !f.gender.IsValid() {
		return nil, validationErr("unknown gender %q", f.gender)
	}
	if !f.role.IsValid() {
		return nil, validationErr("unknown role %q", f.role)
	}
	if strings.TrimSpace(f.dob) == "" {
		return nil, nil
	}
	dob, err := utils.ParseDate(f.dob)
	if err != nil {
		return nil, validationErr("dob must be a YYYY-MM-DD date")
	}
	if !dob.Before(utils.TruncateDay(u.now())) {
		return nil, validationErr("dob must be in the past")
	}
	return &dob, nil
}

func (u *UserService) Register(ctx context.Context, req request_models.RegisterUserRequest) (*db_models.User, error) {
	req.Email = strings.TrimSpace(req.Email)
	dob, err := u.validate(userFields{
		firstName: req.FirstName, lastName: req.LastName, email: req.Email,
		gender: req.Gender, role: req.Role, dob: req.Dob,
	})
	if err != nil {
		return nil, err
	}
	if err := requireText("password", req.Password); err != nil {
		return nil, err
	}

	exists, err := u.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, storeErr(u.log, "check email", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: email %s is taken", utils.ErrConflict, req.Email)
	}

	password, err := u.hasher.Hash(req.Password)
	if err != nil {
		u.log.Error("hash password", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		BaseModel: db_models.NewBaseModel(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     req.Email,
		Gender:    req.Gender,
		Dob:       dob,
		Image:     req.Image,
		Password:  password,
		Role:      req.Role,
	}
	if err := u.userRepo.Insert(ctx, user); err != nil {
		return nil, storeErr(u.log, "insert user", err)
	}

	u.log.Info("user registered", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (u *UserService) Update(ctx context.Context, id uuid.UUID, req request_models.UpdateUserRequest) (*db_models.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(u.log, "find user", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, id)
	}

	req.Email = strings.TrimSpace(req.Email)
	dob, err := u.validate(userFields{
		firstName: req.FirstName, lastName: req.LastName, email: req.Email,
		gender: req.Gender, role: req.Role, dob: req.Dob,
	})
	if err != nil {
		return nil, err
	}

	if req.Email != user.Email {
		other, err := u.userRepo.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, storeErr(u.log, "find user by email", err)
		}
		if other != nil && other.ID != user.ID {
			return nil, fmt.Errorf("%w: email %s is taken", utils.ErrConflict, req.Email)
		}
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Email = req.Email
	user.Gender = req.Gender
	user.Dob = dob
	user.Image = req.Image
	user.Role = req.Role
	if req.Password != "" {
		password, err := u.hasher.Hash(req.Password)
		if err != nil {
			u.log.Error("hash password", zap.Error(err))
			return nil, utils.ErrDatabaseError
		}
		user.Password = password
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, storeErr(u.log, "update user", err)
	}
	return user, nil
}

func (u *UserService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	user, err := u.userRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, storeErr(u.log, "find user", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, id)
	}
	return user, nil
}

func (u *UserService) ListActive(ctx context.Context) ([]db_models.User, error) {
	users, err := u.userRepo.FindAllActive(ctx)
	if err != nil {
		return nil, storeErr(u.log, "list users", err)
	}
	return users, nil
}

func (u *UserService) SoftDelete(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(u.log, "find user", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", utils.ErrNotFound, id)
	}
	if !user.Active {
		return nil, fmt.Errorf("%w: user %s", utils.ErrAlreadyInactive, id)
	}

	user.Active = false
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, storeErr(u.log, "deactivate user", err)
	}

	u.log.Info("user deactivated", zap.String("user_id", id.String()))
	return user, nil
}

// Login returns ErrAuthFailure for every rejected attempt so callers cannot
// tell an unknown email from a wrong password.
func (u *UserService) Login(ctx context.Context, req request_models.LoginRequest) (*db_models.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, utils.ErrAuthFailure
	}

	startTime := time.Now()
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeErr(u.log, "find user by email", err)
	}
	u.log.Debug("login lookup", zap.Duration("took", time.Since(startTime)))

	if user == nil || !user.Active || !u.hasher.Matches(user.Password, req.Password) {
		return nil, utils.ErrAuthFailure
	}
	return user, nil
}
