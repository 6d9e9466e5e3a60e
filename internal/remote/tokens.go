package remote

import (
	"context"
	"sync"
)

// TokenCache holds the last-known access token per (target, server name).
// Validity is decided by the server on every use: the cached token is sent
// back for revalidation and replaced by whatever comes back.
type TokenCache struct {
	mu     sync.Mutex
	tokens map[Target]map[string]string
}

func NewTokenCache() *TokenCache {
	return &TokenCache{tokens: map[Target]map[string]string{
		TargetViewer:  {},
		TargetBrowser: {},
	}}
}

// Token revalidates or replaces the cached token for (target, serverName).
// On failure the stale entry is cleared so the next call starts from an
// empty token.
func (t *TokenCache) Token(ctx context.Context, target Target, serverName string, client Client, homePath string) (string, error) {
	t.mu.Lock()
	previous := t.tokens[target][serverName]
	t.mu.Unlock()

	token, err := client.FetchToken(ctx, homePath, previous)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		delete(t.tokens[target], serverName)
		return "", err
	}
	t.tokens[target][serverName] = token
	return token, nil
}

// Forget drops all cached tokens for serverName across both targets.
func (t *TokenCache) Forget(serverName string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, byServer := range t.tokens {
		delete(byServer, serverName)
	}
}
