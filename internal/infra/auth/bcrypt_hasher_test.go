package auth

import (
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, defaultMinPasswordLength)

	password := "sesame1"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_ValidatePassword(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, defaultMinPasswordLength)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "six characters", password: "123456"},
		{name: "arabic letters count as characters", password: "كلمةسر"},
		{name: "too short", password: "12345", wantErr: true},
		{name: "empty", password: "", wantErr: true},
		{name: "over bcrypt limit", password: strings.Repeat("a", 73), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBcryptHasher_HashRejectsShortPassword(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, defaultMinPasswordLength)

	_, err := hasher.Hash("abc")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newBcryptHasher(bcrypt.MinCost, defaultMinPasswordLength)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6, MinPasswordLength: 8}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("longer-password")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)

	assert.Error(t, hasher.ValidatePassword("1234567"))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := newBcryptHasher(99, defaultMinPasswordLength)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
