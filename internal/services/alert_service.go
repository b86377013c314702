package services

import (
	"context"
	"strings"

	"budgy/internal/models/db_models"
	"budgy/internal/models/request_models"
	"budgy/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AlertServiceInterface interface {
	Create(ctx context.Context, req request_models.AlertRequest) (*db_models.Alert, error)
	// Update and MarkRead return (nil, nil) when no alert has the id.
	Update(ctx context.Context, id uuid.UUID, req request_models.AlertRequest) (*db_models.Alert, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*db_models.Alert, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]db_models.Alert, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Alert, error)
	ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Alert, error)
}

type AlertService struct {
	alertRepo repositories.AlertRepository
	userRepo  repositories.UserRepository
	notifier  AlertNotifier
	log       *zap.Logger
}

func NewAlertService(
	alertRepo repositories.AlertRepository,
	userRepo repositories.UserRepository,
	notifier AlertNotifier,
	log *zap.Logger,
) AlertServiceInterface {
	return &AlertService{
		alertRepo: alertRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		log:       log,
	}
}

func (s *AlertService) check(ctx context.Context, req request_models.AlertRequest) error {
	if err := requireText("title", req.Title); err != nil {
		return err
	}
	if err := requireText("message", req.Message); err != nil {
		return err
	}
	if !req.Type.IsValid() {
		return validationErr("unknown alert type %q", req.Type)
	}
	return requireActiveUser(ctx, s.log, s.userRepo, req.UserID)
}

func applyAlert(a *db_models.Alert, req request_models.AlertRequest) {
	a.Title = strings.TrimSpace(req.Title)
	a.Message = req.Message
	a.Type = req.Type
	a.IsRead = req.IsRead
	a.UserID = req.UserID
}

func (s *AlertService) Create(ctx context.Context, req request_models.AlertRequest) (*db_models.Alert, error) {
	if err := s.check(ctx, req); err != nil {
		return nil, err
	}

	alert := &db_models.Alert{BaseModel: db_models.NewBaseModel()}
	applyAlert(alert, req)
	if err := s.alertRepo.Insert(ctx, alert); err != nil {
		return nil, storeErr(s.log, "insert alert", err)
	}

	s.notifier.AlertCreated(ctx, alert)
	return alert, nil
}

func (s *AlertService) Update(ctx context.Context, id uuid.UUID, req request_models.AlertRequest) (*db_models.Alert, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(s.log, "find alert", err)
	}
	if alert == nil {
		return nil, nil
	}
	if err := s.check(ctx, req); err != nil {
		return nil, err
	}

	applyAlert(alert, req)
	if err := s.alertRepo.Update(ctx, alert); err != nil {
		return nil, storeErr(s.log, "update alert", err)
	}
	return alert, nil
}

func (s *AlertService) MarkRead(ctx context.Context, id uuid.UUID) (*db_models.Alert, error) {
	alert, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(s.log, "find alert", err)
	}
	if alert == nil || alert.IsRead {
		return alert, nil
	}

	alert.IsRead = true
	if err := s.alertRepo.Update(ctx, alert); err != nil {
		return nil, storeErr(s.log, "mark alert read", err)
	}
	return alert, nil
}

func (s *AlertService) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	deleted, err := s.alertRepo.DeleteByID(ctx, id)
	if err != nil {
		return false, storeErr(s.log, "delete alert", err)
	}
	return deleted, nil
}

func (s *AlertService) ListAll(ctx context.Context) ([]db_models.Alert, error) {
	alerts, err := s.alertRepo.FindAll(ctx)
	if err != nil {
		return nil, storeErr(s.log, "list alerts", err)
	}
	return alerts, nil
}

func (s *AlertService) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Alert, error) {
	alerts, err := s.alertRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(s.log, "list alerts by user", err)
	}
	return alerts, nil
}

func (s *AlertService) ListUnreadByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Alert, error) {
	alerts, err := s.alertRepo.FindUnreadByUser(ctx, userID)
	if err != nil {
		return nil, storeErr(s.log, "list unread alerts", err)
	}
	return alerts, nil
}
