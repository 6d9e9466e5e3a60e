package remote

import (
	"context"
	"fmt"
	"sync"
)

// Invalidator tracks the cookie-bearing client of every server that was
// contacted this process and cascades local sign-out to the remote side.
type Invalidator struct {
	mu      sync.Mutex
	clients map[string]Client
	tokens  *TokenCache
}

func NewInvalidator(tokens *TokenCache) *Invalidator {
	return &Invalidator{
		clients: make(map[string]Client),
		tokens:  tokens,
	}
}

// Register remembers the client carrying serverName's cookies. The last
// registered client per server wins.
func (v *Invalidator) Register(serverName string, client Client) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.clients[serverName] = client
}

// Logout ends serverName's remote web session and discards local tokens and
// cookies. Best-effort: the error is returned for logging, never fatal.
func (v *Invalidator) Logout(ctx context.Context, serverName string) error {
	v.mu.Lock()
	client, ok := v.clients[serverName]
	delete(v.clients, serverName)
	v.mu.Unlock()

	if v.tokens != nil {
		v.tokens.Forget(serverName)
	}
	if !ok {
		return nil
	}
	return client.Logout(ctx)
}

// LogoutAll runs Logout for every known server concurrently and waits for
// all attempts to settle, ignoring individual outcomes. Used at shutdown.
func (v *Invalidator) LogoutAll(ctx context.Context) {
	v.mu.Lock()
	names := make([]string, 0, len(v.clients))
	for name := range v.clients {
		names = append(names, name)
	}
	v.mu.Unlock()

	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := v.Logout(ctx, name); err != nil {
				fmt.Printf("Warning: logout for %s failed: %v\n", name, err)
			}
		}(name)
	}
	wg.Wait()
}
