package root

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/hivegrid/hivectl/internal/api"
	"github.com/hivegrid/hivectl/internal/auth"
	"github.com/hivegrid/hivectl/internal/config"
	"github.com/hivegrid/hivectl/internal/credentials"
	"github.com/hivegrid/hivectl/internal/remote"
	"github.com/hivegrid/hivectl/internal/secrets"
	promptUtils "github.com/hivegrid/hivectl/utils/prompt"
)

// Deps is the fully wired collaborator graph behind the CLI.
type Deps struct {
	Config      config.Accessor
	Store       secrets.Store
	Prompt      promptUtils.Prompter
	Resolver    *credentials.Resolver
	Manager     auth.Manager
	Tokens      *remote.TokenCache
	Invalidator *remote.Invalidator
	Provider    *api.Provider
}

// DefaultDeps wires the real collaborators: OS filesystem, keychain-backed
// secret store, console prompts.
func DefaultDeps() (*Deps, error) {
	fs := afero.NewOsFs()

	cfg, err := config.NewFileAccessor(fs)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize configuration: %w", err)
	}

	store, err := secrets.OpenDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to open secret store: %w", err)
	}

	prompt := promptUtils.NewPrompt()
	prompter := credentials.NewConsolePrompter(prompt)
	cache := credentials.NewCache()
	resolver := credentials.NewResolver(cfg, cache, store, prompter)

	tokens := remote.NewTokenCache()
	invalidator := remote.NewInvalidator(tokens)

	statePath, err := auth.DefaultStatePath()
	if err != nil {
		return nil, err
	}
	picker := api.NewServerPicker(cfg, prompt)
	manager, err := auth.NewSessionManager(
		store,
		auth.NewStateFile(fs, statePath),
		picker,
		prompter,
		prompt,
		cfg.SecretDeletionPolicy,
		invalidator,
	)
	if err != nil {
		return nil, err
	}

	provider, err := api.NewProvider(cfg, resolver, manager, picker)
	if err != nil {
		return nil, err
	}

	return &Deps{
		Config:      cfg,
		Store:       store,
		Prompt:      prompt,
		Resolver:    resolver,
		Manager:     manager,
		Tokens:      tokens,
		Invalidator: invalidator,
		Provider:    provider,
	}, nil
}

// Shutdown runs the deactivation sweep: best-effort remote logout for every
// contacted server, then releases the store and the session manager.
func (d *Deps) Shutdown(ctx context.Context) {
	d.Invalidator.LogoutAll(ctx)
	if err := d.Manager.Close(); err != nil {
		fmt.Printf("Warning: failed to close session manager: %v\n", err)
	}
	if err := d.Store.Close(); err != nil {
		fmt.Printf("Warning: failed to close secret store: %v\n", err)
	}
}
