// Package api is the surface consumed by companion tooling: server lookup
// and resolution, the account helpers, and the authentication provider
// contract. Everything here delegates to explicitly injected collaborators.
package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/hivegrid/hivectl/internal/auth"
	"github.com/hivegrid/hivectl/internal/config"
	"github.com/hivegrid/hivectl/internal/credentials"
	"github.com/hivegrid/hivectl/models"
	promptUtils "github.com/hivegrid/hivectl/utils/prompt"
)

// SpecResolver is the resolution contract the provider re-exports.
type SpecResolver interface {
	Resolve(name string, scope config.Scope, opts credentials.ResolveOptions) (*models.ResolvedServerSpec, error)
	Subscribe() <-chan models.PasswordChange
}

// Provider bundles the connector's exposed operations.
type Provider struct {
	Config   config.Accessor
	Resolver SpecResolver
	Sessions auth.Manager
	Picker   *ServerPicker
}

func NewProvider(cfg config.Accessor, resolver SpecResolver, sessions auth.Manager, picker *ServerPicker) (*Provider, error) {
	switch {
	case cfg == nil:
		return nil, fmt.Errorf("api provider: configuration accessor is required")
	case resolver == nil:
		return nil, fmt.Errorf("api provider: spec resolver is required")
	case sessions == nil:
		return nil, fmt.Errorf("api provider: session manager is required")
	case picker == nil:
		return nil, fmt.Errorf("api provider: server picker is required")
	}
	return &Provider{
		Config:   cfg,
		Resolver: resolver,
		Sessions: sessions,
		Picker:   picker,
	}, nil
}

func (p *Provider) GetServerNames() ([]string, error) {
	servers, err := p.Config.Servers(config.ScopeEffective)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(servers))
	for _, def := range servers {
		names = append(names, def.Name)
	}
	return names, nil
}

// GetServerSummary renders a one-line description of a server, with field
// defaults applied. Unknown names yield an empty string.
func (p *Provider) GetServerSummary(name string) (string, error) {
	def, err := p.Config.Server(name, config.ScopeEffective)
	if err != nil {
		if errors.Is(err, config.ErrServerNotFound) {
			return "", nil
		}
		return "", err
	}

	resolved := *def
	credentials.ApplyDefaults(&resolved)
	summary := fmt.Sprintf("%s: %s", resolved.Name, resolved.WebServer.BaseURL())
	if resolved.Description != "" {
		summary += " — " + resolved.Description
	}
	return summary, nil
}

func (p *Provider) PickServer() (string, error) {
	return p.Picker.PickServer()
}

// GetServerSpec resolves name at scope. Absence (an unknown name or a
// cancelled prompt) is reported as a nil spec, never as an error.
func (p *Provider) GetServerSpec(name string, scope config.Scope, flushCache, suppressCredentials bool) (*models.ResolvedServerSpec, error) {
	spec, err := p.Resolver.Resolve(name, scope, credentials.ResolveOptions{
		FlushCache:          flushCache,
		SuppressCredentials: suppressCredentials,
	})
	if err != nil {
		if errors.Is(err, config.ErrServerNotFound) || errors.Is(err, promptUtils.ErrInterrupted) {
			return nil, nil
		}
		return nil, err
	}
	return spec, nil
}

// GetAccount names the identity a spec was resolved as.
func (p *Provider) GetAccount(spec *models.ResolvedServerSpec) string {
	if spec == nil {
		return ""
	}
	if spec.Anonymous() {
		return "anonymous @ " + spec.Name
	}
	return spec.Username + " @ " + spec.Name
}

// OnDidChangePassword notifies when a resolution obtained a fresh password.
func (p *Provider) OnDidChangePassword() <-chan models.PasswordChange {
	return p.Resolver.Subscribe()
}

// Authentication provider contract, delegated to the session manager.

func (p *Provider) GetSessions(ctx context.Context, scopes ...string) ([]models.AuthenticationSession, error) {
	return p.Sessions.Sessions(ctx, scopes...)
}

func (p *Provider) CreateSession(ctx context.Context, scopes ...string) (*models.AuthenticationSession, error) {
	return p.Sessions.CreateSession(ctx, scopes...)
}

func (p *Provider) RemoveSession(ctx context.Context, id string) error {
	return p.Sessions.RemoveSession(ctx, id)
}

func (p *Provider) OnDidChangeSessions() <-chan models.SessionsChange {
	return p.Sessions.Subscribe()
}
