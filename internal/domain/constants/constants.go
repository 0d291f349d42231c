// Package constants collects identifiers shared between layers.
package constants

const (
	// PubSubProviderLocal posts events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Event types published after state changes.
const (
	EventCatalogChanged         = "catalog.changed"
	EventPasswordResetRequested = "auth.password_reset_requested"
	EventPhoneVerified          = "auth.phone_verified"
)

// Media kinds accepted by the upload endpoint.
const (
	MediaKindLogo  = "logo"
	MediaKindCover = "cover"
	MediaKindItem  = "item"
)

// Cookie names used by the dashboard session.
const (
	CookieSession      = "session"
	CookieRefreshToken = "refresh_token"
)

// EnvLocal is the env.env value of a developer machine.
const EnvLocal = "local"
