package credentials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hivegrid/hivectl/internal/credentials"
	"github.com/hivegrid/hivectl/models"
)

func TestCacheLastWriteWins(t *testing.T) {
	cache := credentials.NewCache()

	_, ok := cache.Get("srv")
	assert.False(t, ok)

	cache.Set("srv", models.Credential{Username: "alice", Password: "a"})
	cache.Set("srv", models.Credential{Username: "bob", Password: "b"})

	cred, ok := cache.Get("srv")
	assert.True(t, ok)
	assert.Equal(t, models.Credential{Username: "bob", Password: "b"}, cred)
}

func TestCacheClear(t *testing.T) {
	cache := credentials.NewCache()
	cache.Set("srv", models.Credential{Username: "bob", Password: "b"})
	cache.Set("other", models.Credential{Username: "alice", Password: "a"})

	cache.Clear("srv")

	_, ok := cache.Get("srv")
	assert.False(t, ok)
	_, ok = cache.Get("other")
	assert.True(t, ok)
}
