package service

import (
	"context"
	"time"
)

// PasswordResetMail carries everything needed to tell a merchant how to reset a password.
type PasswordResetMail struct {
	To        string
	Link      string
	ExpiresAt time.Time
}

// Mailer delivers transactional mail.
type Mailer interface {
	SendPasswordReset(ctx context.Context, mail *PasswordResetMail) error
}
