package service

import "context"

// StorefrontCache keeps rendered storefront payloads keyed by catalog slug.
type StorefrontCache interface {
	// Get returns the cached payload and whether it was present.
	Get(ctx context.Context, slug string) ([]byte, bool, error)

	// Set stores the payload for slug.
	Set(ctx context.Context, slug string, payload []byte) error

	// Invalidate drops the payloads of the given slugs.
	Invalidate(ctx context.Context, slugs ...string) error
}
