package contact

import (
	"context"

	"github.com/BruksfildServices01/tutor-contacts/internal/audit"
)

// ======================================================
// PORTS
// ======================================================

// Auditor receives audit events. *audit.Dispatcher satisfies it.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// ListingCache stores rendered listings per user under a version that
// Invalidate bumps. Readers take the version before loading and write
// under that same version.
type ListingCache interface {
	Version(ctx context.Context, userID uint) (int64, error)
	Get(ctx context.Context, userID uint, ver int64, key string) ([]byte, bool, error)
	Set(ctx context.Context, userID uint, ver int64, key string, data []byte) error
	Invalidate(ctx context.Context, userID uint) error
}

// ObjectStorage stores avatars and exports.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

// NoopCache never hits.
type NoopCache struct{}

func (NoopCache) Version(context.Context, uint) (int64, error) { return 0, nil }
func (NoopCache) Get(context.Context, uint, int64, string) ([]byte, bool, error) {
	return nil, false, nil
}
func (NoopCache) Set(context.Context, uint, int64, string, []byte) error { return nil }
func (NoopCache) Invalidate(context.Context, uint) error                 { return nil }
