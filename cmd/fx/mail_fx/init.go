package mail_fx

import (
	"budgy/internal/config"
	"budgy/internal/repositories"
	"budgy/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideAlertNotifier)

// provideAlertNotifier mails new alerts to their owner when mail is enabled.
func provideAlertNotifier(cfg *config.Config, userRepo repositories.UserRepository, log *zap.Logger) services.AlertNotifier {
	if !cfg.Mail.Enabled {
		log.Info("alert mail disabled")
		return services.NewNoopNotifier()
	}

	mailService := services.NewSMTPMailService(services.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		FromName: cfg.Mail.FromName,
		AppName:  cfg.Mail.AppName,
	})
	log.Info("alert mail enabled", zap.String("smtp_host", cfg.Mail.Host), zap.Int("smtp_port", cfg.Mail.Port))
	return services.NewMailAlertNotifier(mailService, userRepo, log)
}
