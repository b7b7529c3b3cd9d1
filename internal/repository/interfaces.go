package repository

import "context"

// Well-known state keys. These match the keys the site has always used for
// browser-local state, so exported data stays portable.
const (
	KeyAuthToken = "subcvlt-token"
	KeyRepoCache = "subcvlt-github-repos"
	KeyEffects   = "subcult-effects"
	KeyContrast  = "subcult-contrast"
)

// StateStore persists small per-install key/value state: the auth token,
// the GitHub listing cache, and user preference flags. Implementations are
// expected to be last-write-wins; no locking across processes is assumed.
type StateStore interface {
	// Get returns the value for key, or ErrNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
