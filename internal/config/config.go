package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/hivegrid/hivectl/models"
)

// Scope identifies where a server definition originates.
type Scope string

const (
	// ScopeUser is the per-user configuration directory.
	ScopeUser Scope = "user"
	// ScopeWorkspace is the configuration directory of the current workspace.
	ScopeWorkspace Scope = "workspace"
	// ScopeEffective merges both scopes, workspace shadowing user.
	ScopeEffective Scope = "effective"
)

var (
	ErrNoConfigFile   = errors.New("no config file found")
	ErrServerNotFound = errors.New("server not found")
	ErrReadOnlyScope  = errors.New("cannot write to the effective scope")
	ErrUnknownScope   = errors.New("unknown configuration scope")
)

// Accessor reads and writes named server definitions at a given scope.
type Accessor interface {
	Servers(scope Scope) ([]models.ServerDefinition, error)
	Server(name string, scope Scope) (*models.ServerDefinition, error)
	Inspect(name string) (map[Scope]*models.ServerDefinition, error)
	SetServer(def models.ServerDefinition, scope Scope) error
	RemoveServer(name string, scope Scope) error
	SecretDeletionPolicy() models.SecretDeletionPolicy
}

// FileAccessor is an Accessor over connector.yaml files on a filesystem.
type FileAccessor struct {
	Fs           afero.Fs
	UserDir      string
	WorkspaceDir string
}

func NewFileAccessor(fs afero.Fs) (*FileAccessor, error) {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	return &FileAccessor{
		Fs:           fs,
		UserDir:      filepath.Join(userHome, ".config", "hivectl"),
		WorkspaceDir: filepath.Join(workDir, ".hivectl"),
	}, nil
}

func (a *FileAccessor) scopeDir(scope Scope) (string, error) {
	switch scope {
	case ScopeUser:
		return a.UserDir, nil
	case ScopeWorkspace:
		return a.WorkspaceDir, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScope, scope)
	}
}

// FindConfigFile locates the connector config file inside dir, preferring
// yml over yaml over json, mirroring the lookup order used at setup time.
func (a *FileAccessor) FindConfigFile(dir string) (string, error) {
	extensions := []string{"connector.yml", "connector.yaml", "connector.json"}

	if _, err := a.Fs.Stat(dir); os.IsNotExist(err) {
		return "", ErrNoConfigFile
	} else if err != nil {
		return "", fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}

	for _, ext := range extensions {
		possiblePath := filepath.Join(dir, ext)
		if _, err := a.Fs.Stat(possiblePath); err == nil {
			return possiblePath, nil
		}
	}

	return "", ErrNoConfigFile
}

func (a *FileAccessor) load(scope Scope) (*models.ConnectorConfig, error) {
	dir, err := a.scopeDir(scope)
	if err != nil {
		return nil, err
	}

	configFilePath, err := a.FindConfigFile(dir)
	if err != nil {
		if errors.Is(err, ErrNoConfigFile) {
			return &models.ConnectorConfig{}, nil
		}
		return nil, err
	}

	fileData, err := afero.ReadFile(a.Fs, configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var parsed models.ConnectorConfig
	if err := yaml.Unmarshal(fileData, &parsed); err != nil {
		if err := json.Unmarshal(fileData, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFilePath, err)
		}
	}

	return &parsed, nil
}

func (a *FileAccessor) save(cfg *models.ConnectorConfig, scope Scope) error {
	dir, err := a.scopeDir(scope)
	if err != nil {
		return err
	}

	if err := a.Fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	configFilePath := filepath.Join(dir, "connector.yaml")
	if existing, err := a.FindConfigFile(dir); err == nil {
		configFilePath = existing
	}

	if err := afero.WriteFile(a.Fs, configFilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Servers lists the definitions visible at scope. For ScopeEffective the
// workspace list shadows same-named entries from the user list.
func (a *FileAccessor) Servers(scope Scope) ([]models.ServerDefinition, error) {
	if scope != ScopeEffective {
		cfg, err := a.load(scope)
		if err != nil {
			return nil, err
		}
		return cfg.Servers, nil
	}

	userCfg, err := a.load(ScopeUser)
	if err != nil {
		return nil, err
	}
	workspaceCfg, err := a.load(ScopeWorkspace)
	if err != nil {
		return nil, err
	}

	shadowed := make(map[string]bool, len(workspaceCfg.Servers))
	merged := make([]models.ServerDefinition, 0, len(userCfg.Servers)+len(workspaceCfg.Servers))
	for _, def := range workspaceCfg.Servers {
		shadowed[def.Name] = true
		merged = append(merged, def)
	}
	for _, def := range userCfg.Servers {
		if !shadowed[def.Name] {
			merged = append(merged, def)
		}
	}
	return merged, nil
}

func (a *FileAccessor) Server(name string, scope Scope) (*models.ServerDefinition, error) {
	servers, err := a.Servers(scope)
	if err != nil {
		return nil, err
	}
	for i := range servers {
		if servers[i].Name == name {
			return &servers[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrServerNotFound, name)
}

// Inspect reports the definition of name per originating scope. Scopes with
// no entry are omitted from the result.
func (a *FileAccessor) Inspect(name string) (map[Scope]*models.ServerDefinition, error) {
	result := make(map[Scope]*models.ServerDefinition)
	for _, scope := range []Scope{ScopeUser, ScopeWorkspace} {
		def, err := a.Server(name, scope)
		if err != nil {
			if errors.Is(err, ErrServerNotFound) {
				continue
			}
			return nil, err
		}
		result[scope] = def
	}
	return result, nil
}

func (a *FileAccessor) SetServer(def models.ServerDefinition, scope Scope) error {
	if scope == ScopeEffective {
		return ErrReadOnlyScope
	}
	cfg, err := a.load(scope)
	if err != nil {
		return err
	}

	replaced := false
	for i := range cfg.Servers {
		if cfg.Servers[i].Name == def.Name {
			cfg.Servers[i] = def
			replaced = true
			break
		}
	}
	if !replaced {
		cfg.Servers = append(cfg.Servers, def)
	}

	return a.save(cfg, scope)
}

func (a *FileAccessor) RemoveServer(name string, scope Scope) error {
	if scope == ScopeEffective {
		return ErrReadOnlyScope
	}
	cfg, err := a.load(scope)
	if err != nil {
		return err
	}

	kept := cfg.Servers[:0]
	found := false
	for _, def := range cfg.Servers {
		if def.Name == name {
			found = true
			continue
		}
		kept = append(kept, def)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrServerNotFound, name)
	}
	cfg.Servers = kept

	return a.save(cfg, scope)
}

// SecretDeletionPolicy returns the configured policy, workspace shadowing
// user, defaulting to ask.
func (a *FileAccessor) SecretDeletionPolicy() models.SecretDeletionPolicy {
	for _, scope := range []Scope{ScopeWorkspace, ScopeUser} {
		cfg, err := a.load(scope)
		if err != nil {
			continue
		}
		if cfg.SecretDeletion != "" {
			return cfg.SecretDeletion
		}
	}
	return models.DeleteSecretAsk
}
