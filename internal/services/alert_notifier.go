package services

import (
	"context"
	"fmt"
	"time"

	"budgy/internal/models/db_models"
	"budgy/internal/repositories"

	"go.uber.org/zap"
)

// AlertNotifier is told about every stored alert. Implementations must not
// block the caller on delivery.
type AlertNotifier interface {
	AlertCreated(ctx context.Context, alert *db_models.Alert)
}

type noopNotifier struct{}

func NewNoopNotifier() AlertNotifier { return noopNotifier{} }

func (noopNotifier) AlertCreated(context.Context, *db_models.Alert) {}

type mailAlertNotifier struct {
	mail     IMailService
	userRepo repositories.UserRepository
	log      *zap.Logger
	timeout  time.Duration
}

func NewMailAlertNotifier(mail IMailService, userRepo repositories.UserRepository, log *zap.Logger) AlertNotifier {
	return &mailAlertNotifier{mail: mail, userRepo: userRepo, log: log, timeout: 30 * time.Second}
}

func (n *mailAlertNotifier) AlertCreated(ctx context.Context, alert *db_models.Alert) {
	snapshot := *alert
	go func() {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()
		if err := n.deliver(dctx, &snapshot); err != nil {
			n.log.Warn("alert mail not sent",
				zap.String("alert_id", snapshot.ID.String()),
				zap.Error(err))
		}
	}()
}

func (n *mailAlertNotifier) deliver(ctx context.Context, alert *db_models.Alert) error {
	user, err := n.userRepo.FindActiveByID(ctx, alert.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s is not active", alert.UserID)
	}
	subject := fmt.Sprintf("[%s] %s", alert.Type, alert.Title)
	return n.mail.SendMailToNotifyUser(user.Email, subject, alert.Message)
}
