package services

import (
	"context"
	"errors"
	"testing"

	"budgy/internal/models/db_models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type captureSender struct {
	sent []*gomail.Message
	err  error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	c.sent = append(c.sent, m...)
	return c.err
}

type captureMail struct {
	to, subject, body string
}

func (c *captureMail) SendMailToNotifyUser(to, subject, body string) error {
	c.to, c.subject, c.body = to, subject, body
	return nil
}

func TestSMTPMailService_RendersAndSends(t *testing.T) {
	sender := &captureSender{}
	svc := newMailService(SMTPConfig{From: "no-reply@budgy.local", FromName: "Budgy", AppName: "Budgy"}, sender)

	html, text, err := svc.renderEmail(EmailData{Title: "Don't forget", Intro: "<b>rent</b> due", AppName: "Budgy", Year: 2024})
	require.NoError(t, err)
	assert.Contains(t, html, "&lt;b&gt;rent&lt;/b&gt;")
	assert.Equal(t, "Don't forget\n\n<b>rent</b> due\n\nBudgy (c) 2024\n", text)

	require.NoError(t, svc.SendMailToNotifyUser("a@x.io", "Heads up", "rent due"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"a@x.io"}, sender.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Heads up"}, sender.sent[0].GetHeader("Subject"))

	sender.err = errors.New("dial tcp: timeout")
	assert.Error(t, svc.SendMailToNotifyUser("a@x.io", "x", "y"))
}

func TestMailAlertNotifier_Deliver(t *testing.T) {
	users := newFakeUserRepo()
	user := users.addUser("owner@x.io")
	mail := &captureMail{}
	n := NewMailAlertNotifier(mail, users, zap.NewNop()).(*mailAlertNotifier)

	alert := &db_models.Alert{
		BaseModel: db_models.NewBaseModel(),
		Title:     "Goal reached",
		Message:   "Bike fund is full",
		Type:      db_models.AlertGoalReached,
		UserID:    user.ID,
	}
	require.NoError(t, n.deliver(context.Background(), alert))
	assert.Equal(t, "owner@x.io", mail.to)
	assert.Equal(t, "[GOAL_REACHED] Goal reached", mail.subject)
	assert.Equal(t, "Bike fund is full", mail.body)

	alert.UserID = db_models.NewBaseModel().ID
	assert.Error(t, n.deliver(context.Background(), alert))
}
