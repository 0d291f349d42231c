// Package mail delivers transactional mail such as password reset links.
package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"go.uber.org/fx"
)

const resetSubject = "إعادة تعيين كلمة المرور"

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New returns an SMTP mailer when mail is configured. Without one, local environments print
// the message to the log and every other environment drops it with a warning.
func New(params Params) service.Mailer {
	cfg := params.Config.Mail
	if cfg != nil && cfg.Host != "" {
		return &smtpMailer{cfg: cfg}
	}

	if params.Config.Env.Env == constants.EnvLocal {
		params.Logger.Info("Mail is not configured, printing mail to the log")

		return &consoleMailer{logger: params.Logger}
	}

	params.Logger.Warn("Mail is not configured, password reset mail is disabled")

	return &noopMailer{logger: params.Logger}
}

type smtpMailer struct {
	cfg *config.MailConfig
}

func (m *smtpMailer) SendPasswordReset(ctx context.Context, mail *service.PasswordResetMail) error {
	msg := composeMessage(m.cfg.From, mail.To, resetSubject, resetBody(mail))

	return errors.Wrap(m.send(ctx, mail.To, msg), "failed to send password reset mail")
}

func (m *smtpMailer) send(ctx context.Context, to string, msg []byte) error {
	port := m.cfg.Port
	if port == 0 {
		port = 587
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(m.cfg.Host, strconv.Itoa(port)))
	if err != nil {
		return errors.WithStack(err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		_ = conn.Close()

		return errors.WithStack(err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return errors.WithStack(err)
		}
	}
	if m.cfg.Username != "" {
		if err := client.Auth(smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return errors.WithStack(err)
	}
	if err := client.Rcpt(to); err != nil {
		return errors.WithStack(err)
	}

	w, err := client.Data()
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := w.Write(msg); err != nil {
		return errors.WithStack(err)
	}
	if err := w.Close(); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(client.Quit())
}

// consoleMailer is for local development only, where the reset link has to reach the developer.
type consoleMailer struct {
	logger *slog.Logger
}

func (m *consoleMailer) SendPasswordReset(ctx context.Context, mail *service.PasswordResetMail) error {
	m.logger.InfoContext(ctx, "Password reset mail",
		slog.String("to", mail.To),
		slog.String("link", mail.Link),
		slog.Time("expires_at", mail.ExpiresAt))

	return nil
}

type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) SendPasswordReset(ctx context.Context, mail *service.PasswordResetMail) error {
	m.logger.WarnContext(ctx, "Password reset mail dropped, mail is not configured",
		slog.String("to", mail.To))

	return nil
}

func resetBody(mail *service.PasswordResetMail) string {
	return fmt.Sprintf(
		"لإعادة تعيين كلمة المرور افتح الرابط التالي:\r\n\r\n%s\r\n\r\nينتهي الرابط في %s UTC.\r\nإذا لم تطلب ذلك يمكنك تجاهل هذه الرسالة.\r\n",
		mail.Link, mail.ExpiresAt.UTC().Format(time.DateTime))
}

func composeMessage(from, to, subject, body string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.BEncoding.Encode("utf-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	buf.WriteString(body)

	return buf.Bytes()
}
