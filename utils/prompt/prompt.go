package promptutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

type Prompter interface {
	PromptForSelection(label string, items []string) (string, error)
	PromptForInput(label, defaultValue string) (string, error)
	PromptForSecret(label string) (string, error)
	PromptForConfirmation(prompt string) bool
}

type RealPrompter struct{}

var ErrInterrupted = errors.New("operation interrupted")

func (p *RealPrompter) HandlePromptError(err error) error {
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) {
			return ErrInterrupted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}

func (p *RealPrompter) PromptForSelection(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
	}
	_, selected, err := prompt.Run()

	err = p.HandlePromptError(err)
	if err != nil {
		if errors.Is(err, ErrInterrupted) {
			return "", ErrInterrupted
		}
		return "", err
	}

	return selected, nil
}

// PromptForInput collects a single line of free text. An empty submission is
// returned as-is; callers decide whether empty is meaningful.
func (p *RealPrompter) PromptForInput(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   label,
		Default: defaultValue,
	}
	result, err := prompt.Run()
	err = p.HandlePromptError(err)
	if err != nil {
		if errors.Is(err, ErrInterrupted) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// PromptForSecret collects masked input. The entered value never echoes.
func (p *RealPrompter) PromptForSecret(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:       label,
		Mask:        '*',
		HideEntered: true,
	}
	result, err := prompt.Run()
	err = p.HandlePromptError(err)
	if err != nil {
		if errors.Is(err, ErrInterrupted) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return result, nil
}

func (p *RealPrompter) PromptForConfirmation(prompt string) bool {
	promptInstance := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	result, err := promptInstance.Run()
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(result), "y")
}

func NewPrompt() Prompter {
	return &RealPrompter{}
}
