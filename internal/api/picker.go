package api

import (
	"errors"
	"fmt"

	"github.com/hivegrid/hivectl/internal/config"
	promptUtils "github.com/hivegrid/hivectl/utils/prompt"
)

// ErrNoServers is returned when a pick is requested but nothing is defined.
var ErrNoServers = errors.New("no servers defined")

// ServerPicker presents the configured server names as a selection prompt.
// It is the collaborator CreateSession falls back to when called without a
// server scope.
type ServerPicker struct {
	Config config.Accessor
	Prompt promptUtils.Prompter
}

func NewServerPicker(cfg config.Accessor, prompt promptUtils.Prompter) *ServerPicker {
	return &ServerPicker{Config: cfg, Prompt: prompt}
}

func (p *ServerPicker) PickServer() (string, error) {
	servers, err := p.Config.Servers(config.ScopeEffective)
	if err != nil {
		return "", fmt.Errorf("failed to list servers: %w", err)
	}
	if len(servers) == 0 {
		return "", ErrNoServers
	}

	names := make([]string, 0, len(servers))
	for _, def := range servers {
		names = append(names, def.Name)
	}

	selected, err := p.Prompt.PromptForSelection("Select a server", names)
	if err != nil {
		if errors.Is(err, promptUtils.ErrInterrupted) {
			return "", promptUtils.ErrInterrupted
		}
		return "", err
	}
	return selected, nil
}
