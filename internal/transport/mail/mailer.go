package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/malkhatib/portfolio-api/internal/domain"
	"github.com/malkhatib/portfolio-api/internal/service"
)

// Mailer sends site notifications over plain SMTP: contact-form messages and
// new preview-request alerts, both addressed to the site owner.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       string
}

func NewMailer(host, port, username, password, from, to string) *Mailer {
	return &Mailer{
		host:     strings.TrimSpace(host),
		port:     strings.TrimSpace(port),
		username: username,
		password: password,
		from:     strings.TrimSpace(from),
		to:       strings.TrimSpace(to),
	}
}

// Configured reports whether the mailer has enough settings to deliver.
func (m *Mailer) Configured() bool {
	return m != nil && m.host != "" && m.port != "" && m.username != "" && m.password != ""
}

func (m *Mailer) SendContactMessage(ctx context.Context, msg service.ContactMessage) error {
	subject := fmt.Sprintf("رسالة جديدة من %s: %s", msg.Name, msg.Subject)
	body := fmt.Sprintf(
		"رسالة جديدة من موقع Portfolio\n\nالاسم: %s\nالبريد الإلكتروني: %s\nالموضوع: %s\n\nالرسالة:\n%s\n\nيرجى الرد على %s\n",
		msg.Name, msg.Email, msg.Subject, msg.Message, msg.Email,
	)
	return m.send(ctx, subject, body, msg.Email)
}

func (m *Mailer) NotifyPreviewRequest(ctx context.Context, req *domain.PreviewRequest) error {
	if !m.Configured() {
		return errors.New("mailer missing configuration")
	}
	subject := fmt.Sprintf("طلب معاينة جديد: %s", req.ProjectTitle)
	body := fmt.Sprintf(
		"طلب معاينة جديد للمشروع %q\n\nالاسم: %s\nالبريد الإلكتروني: %s\nالهاتف: %s\n\nالرسالة:\n%s\n",
		req.ProjectTitle, req.Name, req.Email, req.Phone, req.Message,
	)
	return m.send(ctx, subject, body, req.Email)
}

func (m *Mailer) send(ctx context.Context, subject, body, replyTo string) error {
	if m == nil {
		return errors.New("mailer not configured")
	}
	if m.host == "" || m.port == "" || m.from == "" || m.to == "" {
		return errors.New("mailer missing configuration")
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	message := strings.Builder{}
	message.WriteString(fmt.Sprintf("From: %s\r\n", m.from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", m.to))
	if replyTo != "" {
		message.WriteString(fmt.Sprintf("Reply-To: %s\r\n", replyTo))
	}
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	message.WriteString(body)
	message.WriteString("\r\n")

	addr := net.JoinHostPort(m.host, m.port)
	var auth smtp.Auth
	if m.username != "" || m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{m.to}, []byte(message.String()))
}

var (
	_ service.ContactSender = (*Mailer)(nil)
	_ service.LeadNotifier  = (*Mailer)(nil)
)
