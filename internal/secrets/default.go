package secrets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// OpenDefault opens the shared per-user store backed by the OS keychain and
// the secrets file under the connector config directory, with cross-process
// change notifications enabled.
func OpenDefault() (*FileStore, error) {
	masterKey, err := MasterKey()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain master key: %w", err)
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	path := filepath.Join(userHome, ".config", "hivectl", "secrets.yaml")

	store, err := NewFileStore(afero.NewOsFs(), path, masterKey)
	if err != nil {
		return nil, err
	}
	if err := store.EnableWatcher(); err != nil {
		fmt.Printf("Warning: secret change notifications unavailable: %v\n", err)
	}
	return store, nil
}
