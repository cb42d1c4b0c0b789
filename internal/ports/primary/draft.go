package primary

import "context"

// DraftService defines the primary port for autosaved session fields.
// Storage failures never reach the caller: a failed write is logged and dropped,
// a failed read degrades to an empty value.
type DraftService interface {
	// Set writes value under key. The write is durable when Set returns.
	Set(ctx context.Context, key, value string)

	// Get returns the value under key, or "" when absent.
	Get(ctx context.Context, key string) string

	// Lookup returns the value under key and whether the key was ever written.
	Lookup(ctx context.Context, key string) (string, bool)

	// All returns every entry sorted by key.
	All(ctx context.Context) []*Draft

	// ClearAll discards every entry to start a fresh session.
	ClearAll(ctx context.Context)
}

// Draft represents a draft entry at the port boundary.
type Draft struct {
	Key       string
	Value     string
	UpdatedAt string
}
