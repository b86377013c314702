package services

import (
	"bytes"
	"fmt"
	"html/template"
	texttemplate "text/template"
	"time"

	"gopkg.in/gomail.v2"
)

type IMailService interface {
	SendMailToNotifyUser(to, subject, body string) error
}

// SMTPConfig holds the SMTP account and branding used for outgoing mail.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	AppName  string
}

// mailSender is satisfied by *gomail.Dialer.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpMailService struct {
	cfg     SMTPConfig
	sender  mailSender
	htmlTpl *template.Template
	textTpl *texttemplate.Template
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return newMailService(cfg, gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password))
}

func newMailService(cfg SMTPConfig, sender mailSender) *smtpMailService {
	return &smtpMailService{
		cfg:     cfg,
		sender:  sender,
		htmlTpl: template.Must(template.New("notifyHTML").Parse(baseHTMLTemplate)),
		textTpl: texttemplate.Must(texttemplate.New("plainText").Parse(plainTextTemplate)),
	}
}

func (s *smtpMailService) SendMailToNotifyUser(to, subject, body string) error {
	html, text, err := s.renderEmail(EmailData{
		Title:   subject,
		Intro:   body,
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.From, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

type EmailData struct {
	Title   string
	Intro   string
	AppName string
	Year    int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f8fafc; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 16px; overflow: hidden; box-shadow: 0 20px 60px rgba(0, 0, 0, 0.08); }
    .header { padding: 24px 32px; border-bottom: 1px solid rgba(0, 0, 0, 0.06); font-weight: 700; font-size: 20px; color: #047857; text-transform: uppercase; }
    .hero { padding: 32px; }
    h1 { margin: 0 0 16px; font-size: 24px; }
    p { margin: 0 0 20px; line-height: 1.7; color: #475569; }
    .footer { padding: 20px 32px; color: #64748b; font-size: 13px; text-align: center; background: #f8fafc; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <div class="hero">
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}

{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data EmailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer
	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}
