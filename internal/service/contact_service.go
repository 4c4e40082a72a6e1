package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

var ErrContactValidation = errors.New("contact validation failed")

// ContactSender delivers a contact-form submission to the site owner.
type ContactSender interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
	Configured() bool
}

type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService forwards contact-form submissions by mail. When no mailer
// is configured the submission is logged and reported as sent, matching the
// original site's development behavior.
type ContactService struct {
	mailer ContactSender
}

func NewContactService(mailer ContactSender) *ContactService {
	return &ContactService{mailer: mailer}
}

func (s *ContactService) Submit(ctx context.Context, msg ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return fmt.Errorf("%w: all fields are required", ErrContactValidation)
	}

	if s.mailer == nil || !s.mailer.Configured() {
		log.Printf("contact: SMTP not configured, submission from %s <%s>: %s", msg.Name, msg.Email, msg.Subject)
		return nil
	}
	return s.mailer.SendContactMessage(ctx, msg)
}
