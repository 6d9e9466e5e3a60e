package credentials

import (
	"errors"
	"fmt"

	promptUtils "github.com/hivegrid/hivectl/utils/prompt"
)

// ErrNoPassword is returned when the password prompt completes without a
// usable value.
var ErrNoPassword = errors.New("no password provided")

// ConsolePrompter implements Prompter over the shared promptui wrapper.
type ConsolePrompter struct {
	Prompt promptUtils.Prompter
}

func NewConsolePrompter(prompt promptUtils.Prompter) *ConsolePrompter {
	return &ConsolePrompter{Prompt: prompt}
}

func (p *ConsolePrompter) Username(serverName string) (string, error) {
	username, err := p.Prompt.PromptForInput(
		fmt.Sprintf("Username for %s (leave blank for anonymous access)", serverName), "")
	if err != nil {
		if errors.Is(err, promptUtils.ErrInterrupted) {
			return "", promptUtils.ErrInterrupted
		}
		return "", fmt.Errorf("failed to prompt for username: %w", err)
	}
	return username, nil
}

func (p *ConsolePrompter) Password(serverName, username string) (PasswordResult, error) {
	password, err := p.Prompt.PromptForSecret(
		fmt.Sprintf("Password for %s on %s", username, serverName))
	if err != nil {
		if errors.Is(err, promptUtils.ErrInterrupted) {
			return PasswordResult{}, promptUtils.ErrInterrupted
		}
		return PasswordResult{}, fmt.Errorf("failed to prompt for password: %w", err)
	}
	if password == "" {
		return PasswordResult{}, ErrNoPassword
	}

	store := p.Prompt.PromptForConfirmation("Save password to the secret store")
	return PasswordResult{Value: password, Store: store}, nil
}
