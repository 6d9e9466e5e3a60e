package auth

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/hivegrid/hivectl/models"
)

// StateFile persists the stripped session list across restarts. Passwords
// never touch this file; they live in the secret store.
type StateFile struct {
	Fs   afero.Fs
	Path string
}

func NewStateFile(fs afero.Fs, path string) *StateFile {
	return &StateFile{Fs: fs, Path: path}
}

// DefaultStatePath returns the sessions file under the connector config dir.
func DefaultStatePath() (string, error) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(userHome, ".config", "hivectl", "sessions.yaml"), nil
}

func (f *StateFile) Load() ([]models.AuthenticationSession, error) {
	data, err := afero.ReadFile(f.Fs, f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session state: %w", err)
	}

	var sessions []models.AuthenticationSession
	if err := yaml.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to parse session state: %w", err)
	}
	return sessions, nil
}

func (f *StateFile) Save(sessions []models.AuthenticationSession) error {
	stripped := make([]models.AuthenticationSession, 0, len(sessions))
	for _, session := range sessions {
		stripped = append(stripped, session.Stripped())
	}

	data, err := yaml.Marshal(stripped)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}
	if err := f.Fs.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := afero.WriteFile(f.Fs, f.Path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}
	return nil
}
