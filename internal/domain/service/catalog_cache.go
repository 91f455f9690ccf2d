package service

import (
	"context"
	"time"
)

// CatalogCache stores rendered catalog payloads keyed by request shape.
type CatalogCache interface {
	// Get decodes the cached value for key into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Invalidate drops every cached entry, e.g. after the catalog is reseeded.
	Invalidate(ctx context.Context) error
}
