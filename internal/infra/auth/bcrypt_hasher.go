// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode/utf8"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Cost and minimum length come from the auth section and fall back to bcrypt.DefaultCost and 6.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost, minLength := bcrypt.DefaultCost, defaultMinPasswordLength
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost != 0 {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.MinPasswordLength > 0 {
			minLength = cfg.Auth.MinPasswordLength
		}
	}

	return newBcryptHasher(cost, minLength)
}

func newBcryptHasher(cost, minLength int) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, minLength: minLength}
}

// ValidatePassword enforces the minimum length in characters and bcrypt's byte limit.
func (h *bcryptHasher) ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return domainerrors.Validation(fmt.Sprintf("كلمة المرور يجب أن تكون %d أحرف على الأقل", h.minLength))
	}
	if len(password) > maxPasswordBytes {
		return domainerrors.Validation("كلمة المرور طويلة جداً")
	}

	return nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePassword(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
