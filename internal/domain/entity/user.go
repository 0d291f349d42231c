// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a merchant account. Every user owns at most one catalog.
type User struct {
	ID              uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Email           string     // Primary login identifier.
	Name            string     // Display name shown in the dashboard.
	Phone           string     // Verified phone number in E.164 form, empty until OTP verification.
	PhoneVerifiedAt *time.Time // When the phone number was last verified.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Actor is the authenticated caller of a dashboard operation. It is built once per
// request from the access token and passed explicitly to every mutating usecase.
type Actor struct {
	UserID uuid.UUID
	Roles  Roles
}

// IsZero reports whether the actor carries no identity.
func (a Actor) IsZero() bool {
	return a.UserID == uuid.Nil
}
