package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/hivegrid/hivectl/internal/credentials"
	"github.com/hivegrid/hivectl/internal/secrets"
	"github.com/hivegrid/hivectl/models"
	promptUtils "github.com/hivegrid/hivectl/utils/prompt"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrServerRequired   = errors.New("server name is required")
	ErrSessionNotFound  = errors.New("session not found")
)

// SessionManager implements Manager over the shared secret store and a
// per-user state file. The in-memory list is a cache over the store: writes
// hit the store first, and store change notifications from other processes
// are folded back in.
type SessionManager struct {
	store       secrets.Store
	state       *StateFile
	picker      ServerPicker
	prompter    credentials.Prompter
	confirm     promptUtils.Prompter
	policy      func() models.SecretDeletionPolicy
	invalidator RemoteInvalidator

	mu       sync.Mutex
	loaded   bool
	sessions []models.AuthenticationSession
	subs     []chan models.SessionsChange

	done chan struct{}
}

// NewSessionManager wires the manager's collaborators. Every collaborator
// is required; a missing one is a configuration error, not a runtime probe.
func NewSessionManager(
	store secrets.Store,
	state *StateFile,
	picker ServerPicker,
	prompter credentials.Prompter,
	confirm promptUtils.Prompter,
	policy func() models.SecretDeletionPolicy,
	invalidator RemoteInvalidator,
) (*SessionManager, error) {
	switch {
	case store == nil:
		return nil, fmt.Errorf("session manager: secret store is required")
	case state == nil:
		return nil, fmt.Errorf("session manager: state file is required")
	case picker == nil:
		return nil, fmt.Errorf("session manager: server picker is required")
	case prompter == nil:
		return nil, fmt.Errorf("session manager: credential prompter is required")
	case confirm == nil:
		return nil, fmt.Errorf("session manager: confirmation prompter is required")
	case invalidator == nil:
		return nil, fmt.Errorf("session manager: remote invalidator is required")
	}
	if policy == nil {
		policy = func() models.SecretDeletionPolicy { return models.DeleteSecretAsk }
	}

	m := &SessionManager{
		store:       store,
		state:       state,
		picker:      picker,
		prompter:    prompter,
		confirm:     confirm,
		policy:      policy,
		invalidator: invalidator,
		done:        make(chan struct{}),
	}
	go m.watch(store.Watch())
	return m, nil
}

// ensureLoadedLocked rehydrates the persisted stripped list from the secret
// store on first use. Records whose password is gone are dropped.
func (m *SessionManager) ensureLoadedLocked() error {
	if m.loaded {
		return nil
	}

	persisted, err := m.state.Load()
	if err != nil {
		return err
	}

	sessions := make([]models.AuthenticationSession, 0, len(persisted))
	for _, session := range persisted {
		password, err := m.store.Get(DerivedSecretKey(session.ID))
		if err != nil || password == "" {
			continue
		}
		session.AccessToken = password
		sessions = append(sessions, session)
	}
	m.sessions = sessions
	m.loaded = true
	return nil
}

// Sessions returns the loaded sessions matching the supplied scope values
// positionally: scopes[0] against the server name, scopes[1] against the
// user name. Empty scope values match anything.
func (m *SessionManager) Sessions(_ context.Context, scopes ...string) ([]models.AuthenticationSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoadedLocked(); err != nil {
		return nil, err
	}

	matched := make([]models.AuthenticationSession, 0, len(m.sessions))
	for _, session := range m.sessions {
		if matchesScopes(session, scopes) {
			matched = append(matched, session)
		}
	}
	return matched, nil
}

func matchesScopes(session models.AuthenticationSession, scopes []string) bool {
	for i, scope := range scopes {
		if scope == "" {
			continue
		}
		if i >= len(session.Scopes) || session.Scopes[i] != scope {
			return false
		}
	}
	return true
}

// CreateSession establishes (or returns) the session for a server/user
// pair. scopes[0] is the server name and scopes[1] the username; missing
// values are obtained interactively.
func (m *SessionManager) CreateSession(ctx context.Context, scopes ...string) (*models.AuthenticationSession, error) {
	serverName := ""
	userName := ""
	if len(scopes) > 0 {
		serverName = scopes[0]
	}
	if len(scopes) > 1 {
		userName = scopes[1]
	}

	var err error
	if serverName == "" {
		serverName, err = m.picker.PickServer()
		if err != nil || serverName == "" {
			return nil, ErrServerRequired
		}
	}
	if userName == "" {
		userName, err = m.prompter.Username(serverName)
		if err != nil || userName == "" {
			return nil, ErrUsernameRequired
		}
	}

	id := models.SessionID(serverName, userName)

	m.mu.Lock()
	if err := m.ensureLoadedLocked(); err != nil {
		m.mu.Unlock()
		return nil, err
	}
	if existing := m.findLocked(id); existing != nil {
		session := *existing
		m.mu.Unlock()
		return &session, nil
	}
	m.mu.Unlock()

	password, err := m.store.Get(DerivedSecretKey(id))
	if err != nil && !errors.Is(err, secrets.ErrNotFound) {
		fmt.Printf("Warning: could not read secret store: %v\n", err)
	}
	if password == "" {
		result, err := m.prompter.Password(serverName, userName)
		if err != nil || result.Value == "" {
			return nil, ErrPasswordRequired
		}
		password = result.Value
		if result.Store {
			if err := m.store.Set(DerivedSecretKey(id), password); err != nil {
				fmt.Printf("Warning: could not save password to the secret store: %v\n", err)
			}
		}
	}

	session := models.NewAuthenticationSession(serverName, userName, password)

	m.mu.Lock()
	replaced := m.upsertLocked(session)
	if err := m.state.Save(m.sessions); err != nil {
		fmt.Printf("Warning: could not persist session list: %v\n", err)
	}
	change := models.SessionsChange{Added: []models.AuthenticationSession{session}}
	if replaced {
		change = models.SessionsChange{Changed: []models.AuthenticationSession{session}}
	}
	m.publishLocked(change)
	m.mu.Unlock()

	return &session, nil
}

// RemoveSession signs out a session. The backing secret is deleted per the
// configured policy; the in-memory removal and the change event happen
// regardless. When the server has no session left, the remote web session
// is invalidated best-effort.
func (m *SessionManager) RemoveSession(ctx context.Context, id string) error {
	m.mu.Lock()
	if err := m.ensureLoadedLocked(); err != nil {
		m.mu.Unlock()
		return err
	}
	found := m.findLocked(id)
	if found == nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	session := *found
	m.mu.Unlock()

	key := DerivedSecretKey(id)
	if _, err := m.store.Get(key); err == nil {
		if m.shouldDeleteSecret(session) {
			if err := m.store.Delete(key); err != nil {
				fmt.Printf("Warning: could not delete stored password: %v\n", err)
			}
		}
	}

	m.mu.Lock()
	m.removeLocked(id)
	if err := m.state.Save(m.sessions); err != nil {
		fmt.Printf("Warning: could not persist session list: %v\n", err)
	}
	remaining := false
	for _, s := range m.sessions {
		if s.ServerName == session.ServerName {
			remaining = true
			break
		}
	}
	m.publishLocked(models.SessionsChange{Removed: []models.AuthenticationSession{session}})
	m.mu.Unlock()

	if !remaining {
		if err := m.invalidator.Logout(ctx, session.ServerName); err != nil {
			fmt.Printf("Warning: remote logout for %s failed: %v\n", session.ServerName, err)
		}
	}
	return nil
}

func (m *SessionManager) shouldDeleteSecret(session models.AuthenticationSession) bool {
	switch m.policy() {
	case models.DeleteSecretAlways:
		return true
	case models.DeleteSecretNever:
		return false
	default:
		return m.confirm.PromptForConfirmation(
			fmt.Sprintf("Delete the saved password for %s", session.Account))
	}
}

// watch folds secret store changes from other processes into the in-memory
// list: a vanished secret drops its session, a replaced one refreshes it.
func (m *SessionManager) watch(changes <-chan secrets.Change) {
	for {
		select {
		case change, ok := <-changes:
			if !ok {
				return
			}
			if !strings.HasPrefix(change.Key, secretKeyPrefix) {
				continue
			}
			m.reconcile(strings.TrimPrefix(change.Key, secretKeyPrefix))
		case <-m.done:
			return
		}
	}
}

func (m *SessionManager) reconcile(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.loaded {
		return
	}
	found := m.findLocked(id)
	if found == nil {
		return
	}

	password, err := m.store.Get(DerivedSecretKey(id))
	if err != nil || password == "" {
		session := *found
		m.removeLocked(id)
		m.publishLocked(models.SessionsChange{Removed: []models.AuthenticationSession{session}})
		return
	}
	if found.AccessToken == password {
		return
	}

	refreshed := models.NewAuthenticationSession(found.ServerName, found.UserName, password)
	m.upsertLocked(refreshed)
	m.publishLocked(models.SessionsChange{Changed: []models.AuthenticationSession{refreshed}})
}

func (m *SessionManager) findLocked(id string) *models.AuthenticationSession {
	for i := range m.sessions {
		if m.sessions[i].ID == id {
			return &m.sessions[i]
		}
	}
	return nil
}

func (m *SessionManager) upsertLocked(session models.AuthenticationSession) bool {
	for i := range m.sessions {
		if m.sessions[i].ID == session.ID {
			m.sessions[i] = session
			return true
		}
	}
	m.sessions = append(m.sessions, session)
	return false
}

func (m *SessionManager) removeLocked(id string) {
	kept := m.sessions[:0]
	for _, session := range m.sessions {
		if session.ID != id {
			kept = append(kept, session)
		}
	}
	m.sessions = kept
}

// Subscribe registers a session-change subscription. Events are dropped
// rather than blocking a slow consumer.
func (m *SessionManager) Subscribe() <-chan models.SessionsChange {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan models.SessionsChange, 16)
	m.subs = append(m.subs, ch)
	return ch
}

func (m *SessionManager) Unsubscribe(ch <-chan models.SessionsChange) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, sub := range m.subs {
		if sub == ch {
			m.subs = append(m.subs[:i], m.subs[i+1:]...)
			close(sub)
			return
		}
	}
}

func (m *SessionManager) publishLocked(change models.SessionsChange) {
	for _, ch := range m.subs {
		select {
		case ch <- change:
		default:
		}
	}
}

func (m *SessionManager) Close() error {
	close(m.done)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		close(ch)
	}
	m.subs = nil
	return nil
}
