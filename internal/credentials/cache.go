package credentials

import (
	"sync"

	"github.com/hivegrid/hivectl/models"
)

// Cache holds the last-known credential per server name for the lifetime of
// the process. Pure map semantics: no eviction, no TTL, last write wins.
type Cache struct {
	mu      sync.Mutex
	entries map[string]models.Credential
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]models.Credential)}
}

func (c *Cache) Get(name string) (models.Credential, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cred, ok := c.entries[name]
	return cred, ok
}

func (c *Cache) Set(name string, cred models.Credential) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = cred
}

func (c *Cache) Clear(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, name)
}
