package credentials

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hivegrid/hivectl/internal/config"
	"github.com/hivegrid/hivectl/internal/secrets"
	"github.com/hivegrid/hivectl/models"
)

// SecretKey derives the secret store key holding a server's password.
func SecretKey(serverName string) string {
	return "serverPassword:" + serverName
}

// ApplyDefaults fills the optional web server fields: scheme http, port by
// scheme, empty path prefix.
func ApplyDefaults(def *models.ServerDefinition) {
	if def.WebServer.Scheme == "" {
		def.WebServer.Scheme = "http"
	}
	if def.WebServer.Port == 0 {
		if def.WebServer.Scheme == "https" {
			def.WebServer.Port = 443
		} else {
			def.WebServer.Port = 80
		}
	}
}

// ResolveOptions tune one resolution call.
type ResolveOptions struct {
	// FlushCache discards the credential cache entry before resolving.
	FlushCache bool
	// SuppressCredentials skips credential resolution entirely; the
	// returned spec carries connection coordinates only.
	SuppressCredentials bool
}

// Resolver produces fully resolved connection descriptors by layering the
// configuration accessor, the credential cache, the secret store, and the
// interactive prompt.
//
// Resolve is not serialized per server name: two concurrent calls for the
// same unauthenticated server may both prompt.
type Resolver struct {
	Config   config.Accessor
	Cache    *Cache
	Store    secrets.Store
	Prompter Prompter

	mu   sync.Mutex
	subs []chan models.PasswordChange
}

func NewResolver(cfg config.Accessor, cache *Cache, store secrets.Store, prompter Prompter) *Resolver {
	return &Resolver{
		Config:   cfg,
		Cache:    cache,
		Store:    store,
		Prompter: prompter,
	}
}

// Resolve returns the resolved spec for name at scope. Unknown names yield
// config.ErrServerNotFound; a cancelled prompt yields
// promptutils.ErrInterrupted. No partial spec is ever returned.
func (r *Resolver) Resolve(name string, scope config.Scope, opts ResolveOptions) (*models.ResolvedServerSpec, error) {
	def, err := r.Config.Server(name, scope)
	if err != nil {
		return nil, err
	}

	resolved := *def
	ApplyDefaults(&resolved)
	spec := &models.ResolvedServerSpec{ServerDefinition: resolved}

	if opts.SuppressCredentials {
		spec.Username = ""
		return spec, nil
	}

	if opts.FlushCache {
		r.Cache.Clear(name)
	}

	username := resolved.Username
	if username == "" {
		if cached, ok := r.Cache.Get(name); ok {
			username = cached.Username
		}
	}
	if username == "" {
		username, err = r.Prompter.Username(name)
		if err != nil {
			return nil, err
		}
		if username == "" {
			// Anonymous access: both fields empty, no password prompt.
			spec.Username = ""
			spec.Password = ""
			return spec, nil
		}
	}

	spec.Username = username

	if cached, ok := r.Cache.Get(name); ok && cached.Username == username && cached.Password != "" {
		spec.Password = cached.Password
		return spec, nil
	}

	password, err := r.Store.Get(SecretKey(name))
	if err == nil && password != "" {
		spec.Password = password
		r.Cache.Set(name, models.Credential{Username: username, Password: password})
		return spec, nil
	}
	if err != nil && !errors.Is(err, secrets.ErrNotFound) {
		fmt.Printf("Warning: could not read secret store: %v\n", err)
	}

	result, err := r.Prompter.Password(name, username)
	if err != nil {
		return nil, err
	}
	spec.Password = result.Value

	if result.Store {
		if err := r.Store.Set(SecretKey(name), result.Value); err != nil {
			fmt.Printf("Warning: could not save password to the secret store: %v\n", err)
		}
	}
	r.Cache.Set(name, models.Credential{Username: username, Password: result.Value})
	r.publish(models.PasswordChange{ServerName: name, Username: username})

	return spec, nil
}

// Subscribe returns a channel receiving a notification whenever resolution
// obtains a fresh password interactively.
func (r *Resolver) Subscribe() <-chan models.PasswordChange {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := make(chan models.PasswordChange, 16)
	r.subs = append(r.subs, ch)
	return ch
}

func (r *Resolver) publish(change models.PasswordChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ch := range r.subs {
		select {
		case ch <- change:
		default:
		}
	}
}
