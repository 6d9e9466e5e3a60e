package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hivegrid/hivectl/internal/auth"
	"github.com/hivegrid/hivectl/internal/credentials"
	"github.com/hivegrid/hivectl/internal/secrets"
	"github.com/hivegrid/hivectl/models"
	mock_hivectl "github.com/hivegrid/hivectl/tests/mock"
	promptUtils "github.com/hivegrid/hivectl/utils/prompt"
)

type managerFixture struct {
	store       *mock_hivectl.MockStore
	picker      *mock_hivectl.MockServerPicker
	prompter    *mock_hivectl.MockPrompter
	confirm     *mock_hivectl.MockUIPrompter
	invalidator *mock_hivectl.MockRemoteInvalidator
	state       *auth.StateFile
	changes     chan secrets.Change
	policy      models.SecretDeletionPolicy
	manager     *auth.SessionManager
}

// newManagerFixture builds a manager over mocked collaborators and a real
// state file on an in-memory filesystem. Any seed sessions are persisted to
// the state file before the manager starts.
func newManagerFixture(t *testing.T, seed ...models.AuthenticationSession) *managerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &managerFixture{
		store:       mock_hivectl.NewMockStore(ctrl),
		picker:      mock_hivectl.NewMockServerPicker(ctrl),
		prompter:    mock_hivectl.NewMockPrompter(ctrl),
		confirm:     mock_hivectl.NewMockUIPrompter(ctrl),
		invalidator: mock_hivectl.NewMockRemoteInvalidator(ctrl),
		state:       auth.NewStateFile(afero.NewMemMapFs(), "/home/user/.config/hivectl/sessions.yaml"),
		changes:     make(chan secrets.Change, 16),
		policy:      models.DeleteSecretNever,
	}
	if len(seed) > 0 {
		require.NoError(t, f.state.Save(seed))
	}

	f.store.EXPECT().Watch().Return((<-chan secrets.Change)(f.changes))

	manager, err := auth.NewSessionManager(
		f.store, f.state, f.picker, f.prompter, f.confirm,
		func() models.SecretDeletionPolicy { return f.policy },
		f.invalidator,
	)
	require.NoError(t, err)
	f.manager = manager
	t.Cleanup(func() { _ = manager.Close() })
	return f
}

func receiveChange(t *testing.T, ch <-chan models.SessionsChange) models.SessionsChange {
	t.Helper()
	select {
	case change := <-ch:
		return change
	default:
		t.Fatal("expected a sessions change event")
		return models.SessionsChange{}
	}
}

func TestNewSessionManagerRequiresCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	state := auth.NewStateFile(afero.NewMemMapFs(), "/s.yaml")

	_, err := auth.NewSessionManager(nil, state,
		mock_hivectl.NewMockServerPicker(ctrl), mock_hivectl.NewMockPrompter(ctrl),
		mock_hivectl.NewMockUIPrompter(ctrl), nil, mock_hivectl.NewMockRemoteInvalidator(ctrl))
	assert.ErrorContains(t, err, "secret store is required")

	store := mock_hivectl.NewMockStore(ctrl)
	_, err = auth.NewSessionManager(store, nil,
		mock_hivectl.NewMockServerPicker(ctrl), mock_hivectl.NewMockPrompter(ctrl),
		mock_hivectl.NewMockUIPrompter(ctrl), nil, mock_hivectl.NewMockRemoteInvalidator(ctrl))
	assert.ErrorContains(t, err, "state file is required")
}

func TestCreateSessionPromptsAndStores(t *testing.T) {
	f := newManagerFixture(t)
	events := f.manager.Subscribe()

	key := auth.DerivedSecretKey("staging/alice")
	f.store.EXPECT().Get(key).Return("", secrets.ErrNotFound)
	f.prompter.EXPECT().Password("staging", "alice").
		Return(credentials.PasswordResult{Value: "hunter2", Store: true}, nil)
	f.store.EXPECT().Set(key, "hunter2").Return(nil)

	session, err := f.manager.CreateSession(context.Background(), "staging", "alice")
	require.NoError(t, err)
	assert.Equal(t, "staging/alice", session.ID)
	assert.Equal(t, "alice @ staging", session.Account)
	assert.Equal(t, "hunter2", session.AccessToken)
	assert.Equal(t, []string{"staging", "alice"}, session.Scopes)

	change := receiveChange(t, events)
	require.Len(t, change.Added, 1)
	assert.Equal(t, "staging/alice", change.Added[0].ID)

	// The persisted copy never includes the password.
	persisted, err := f.state.Load()
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Empty(t, persisted[0].AccessToken)
}

func TestCreateSessionIdempotent(t *testing.T) {
	f := newManagerFixture(t)

	key := auth.DerivedSecretKey("staging/alice")
	f.store.EXPECT().Get(key).Return("", secrets.ErrNotFound)
	f.prompter.EXPECT().Password("staging", "alice").
		Return(credentials.PasswordResult{Value: "hunter2"}, nil)

	first, err := f.manager.CreateSession(context.Background(), "staging", "alice")
	require.NoError(t, err)

	// The second call returns the live session without prompting again.
	second, err := f.manager.CreateSession(context.Background(), "staging", "alice")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCreateSessionPasswordFromStore(t *testing.T) {
	f := newManagerFixture(t)

	f.store.EXPECT().Get(auth.DerivedSecretKey("staging/alice")).Return("stored-pw", nil)

	session, err := f.manager.CreateSession(context.Background(), "staging", "alice")
	require.NoError(t, err)
	assert.Equal(t, "stored-pw", session.AccessToken)
}

func TestCreateSessionWithoutStoreConsent(t *testing.T) {
	f := newManagerFixture(t)

	f.store.EXPECT().Get(auth.DerivedSecretKey("staging/alice")).Return("", secrets.ErrNotFound)
	f.prompter.EXPECT().Password("staging", "alice").
		Return(credentials.PasswordResult{Value: "hunter2", Store: false}, nil)

	session, err := f.manager.CreateSession(context.Background(), "staging", "alice")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", session.AccessToken)
}

func TestCreateSessionInteractiveSelection(t *testing.T) {
	f := newManagerFixture(t)

	f.picker.EXPECT().PickServer().Return("staging", nil)
	f.prompter.EXPECT().Username("staging").Return("alice", nil)
	f.store.EXPECT().Get(auth.DerivedSecretKey("staging/alice")).Return("pw", nil)

	session, err := f.manager.CreateSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "staging/alice", session.ID)
}

func TestCreateSessionCancelled(t *testing.T) {
	t.Run("server selection", func(t *testing.T) {
		f := newManagerFixture(t)
		f.picker.EXPECT().PickServer().Return("", promptUtils.ErrInterrupted)

		_, err := f.manager.CreateSession(context.Background())
		assert.ErrorIs(t, err, auth.ErrServerRequired)
	})

	t.Run("username", func(t *testing.T) {
		f := newManagerFixture(t)
		f.prompter.EXPECT().Username("staging").Return("", promptUtils.ErrInterrupted)

		_, err := f.manager.CreateSession(context.Background(), "staging")
		assert.ErrorIs(t, err, auth.ErrUsernameRequired)
	})

	t.Run("password", func(t *testing.T) {
		f := newManagerFixture(t)
		f.store.EXPECT().Get(auth.DerivedSecretKey("staging/alice")).Return("", secrets.ErrNotFound)
		f.prompter.EXPECT().Password("staging", "alice").
			Return(credentials.PasswordResult{}, promptUtils.ErrInterrupted)

		_, err := f.manager.CreateSession(context.Background(), "staging", "alice")
		assert.ErrorIs(t, err, auth.ErrPasswordRequired)
	})
}

func TestSessionsScopeFiltering(t *testing.T) {
	f := newManagerFixture(t,
		models.NewAuthenticationSession("staging", "alice", ""),
		models.NewAuthenticationSession("prod", "bob", ""),
	)
	f.store.EXPECT().Get(auth.DerivedSecretKey("staging/alice")).Return("pw1", nil)
	f.store.EXPECT().Get(auth.DerivedSecretKey("prod/bob")).Return("pw2", nil)

	ctx := context.Background()
	tests := []struct {
		name   string
		scopes []string
		want   []string
	}{
		{name: "all", scopes: nil, want: []string{"staging/alice", "prod/bob"}},
		{name: "by server", scopes: []string{"staging"}, want: []string{"staging/alice"}},
		{name: "by user", scopes: []string{"", "bob"}, want: []string{"prod/bob"}},
		{name: "no match", scopes: []string{"staging", "bob"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions, err := f.manager.Sessions(ctx, tt.scopes...)
			require.NoError(t, err)
			ids := make([]string, 0, len(sessions))
			for _, session := range sessions {
				ids = append(ids, session.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSessionsDropRecordsWithoutSecret(t *testing.T) {
	f := newManagerFixture(t,
		models.NewAuthenticationSession("staging", "alice", ""),
		models.NewAuthenticationSession("prod", "bob", ""),
	)
	f.store.EXPECT().Get(auth.DerivedSecretKey("staging/alice")).Return("pw", nil)
	f.store.EXPECT().Get(auth.DerivedSecretKey("prod/bob")).Return("", secrets.ErrNotFound)

	sessions, err := f.manager.Sessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "staging/alice", sessions[0].ID)
	assert.Equal(t, "pw", sessions[0].AccessToken)
}

func TestRemoveSessionSecretPolicy(t *testing.T) {
	tests := []struct {
		name         string
		policy       models.SecretDeletionPolicy
		confirmed    bool
		expectPrompt bool
		expectDelete bool
	}{
		{name: "always", policy: models.DeleteSecretAlways, expectDelete: true},
		{name: "never", policy: models.DeleteSecretNever},
		{name: "ask accepted", policy: models.DeleteSecretAsk, confirmed: true, expectPrompt: true, expectDelete: true},
		{name: "ask declined", policy: models.DeleteSecretAsk, expectPrompt: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newManagerFixture(t, models.NewAuthenticationSession("staging", "alice", ""))
			f.policy = tt.policy

			key := auth.DerivedSecretKey("staging/alice")
			f.store.EXPECT().Get(key).Return("pw", nil).AnyTimes()
			if tt.expectPrompt {
				f.confirm.EXPECT().PromptForConfirmation("Delete the saved password for alice @ staging").
					Return(tt.confirmed)
			}
			if tt.expectDelete {
				f.store.EXPECT().Delete(key).Return(nil)
			}
			f.invalidator.EXPECT().Logout(gomock.Any(), "staging").Return(nil)

			events := f.manager.Subscribe()
			require.NoError(t, f.manager.RemoveSession(context.Background(), "staging/alice"))

			change := receiveChange(t, events)
			require.Len(t, change.Removed, 1)
			assert.Equal(t, "staging/alice", change.Removed[0].ID)

			sessions, err := f.manager.Sessions(context.Background())
			require.NoError(t, err)
			assert.Empty(t, sessions)
		})
	}
}

func TestRemoveSessionNotFound(t *testing.T) {
	f := newManagerFixture(t)

	err := f.manager.RemoveSession(context.Background(), "staging/alice")
	assert.ErrorIs(t, err, auth.ErrSessionNotFound)
}

func TestRemoveSessionKeepsRemoteWhileOthersRemain(t *testing.T) {
	f := newManagerFixture(t,
		models.NewAuthenticationSession("staging", "alice", ""),
		models.NewAuthenticationSession("staging", "bob", ""),
	)
	f.store.EXPECT().Get(gomock.Any()).Return("pw", nil).AnyTimes()

	// No invalidator expectation: bob's session still holds the server.
	require.NoError(t, f.manager.RemoveSession(context.Background(), "staging/alice"))

	sessions, err := f.manager.Sessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "staging/bob", sessions[0].ID)
}

func TestRemoveSessionLogoutFailureIsNonFatal(t *testing.T) {
	f := newManagerFixture(t, models.NewAuthenticationSession("staging", "alice", ""))
	f.store.EXPECT().Get(gomock.Any()).Return("pw", nil).AnyTimes()
	f.invalidator.EXPECT().Logout(gomock.Any(), "staging").Return(errors.New("connection refused"))

	assert.NoError(t, f.manager.RemoveSession(context.Background(), "staging/alice"))
}

func TestExternalSecretRemovalDropsSession(t *testing.T) {
	f := newManagerFixture(t, models.NewAuthenticationSession("staging", "alice", ""))

	key := auth.DerivedSecretKey("staging/alice")
	gomock.InOrder(
		f.store.EXPECT().Get(key).Return("pw", nil),
		f.store.EXPECT().Get(key).Return("", secrets.ErrNotFound).AnyTimes(),
	)

	// Load the list, then simulate another process deleting the secret.
	sessions, err := f.manager.Sessions(context.Background())
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	events := f.manager.Subscribe()
	f.changes <- secrets.Change{Key: key}

	require.Eventually(t, func() bool {
		sessions, err := f.manager.Sessions(context.Background())
		return err == nil && len(sessions) == 0
	}, time.Second, 10*time.Millisecond)

	change := <-events
	require.Len(t, change.Removed, 1)
	assert.Equal(t, "staging/alice", change.Removed[0].ID)
}

func TestExternalSecretUpdateRefreshesSession(t *testing.T) {
	f := newManagerFixture(t, models.NewAuthenticationSession("staging", "alice", ""))

	key := auth.DerivedSecretKey("staging/alice")
	gomock.InOrder(
		f.store.EXPECT().Get(key).Return("old-pw", nil),
		f.store.EXPECT().Get(key).Return("new-pw", nil).AnyTimes(),
	)

	_, err := f.manager.Sessions(context.Background())
	require.NoError(t, err)

	events := f.manager.Subscribe()
	f.changes <- secrets.Change{Key: key}

	require.Eventually(t, func() bool {
		sessions, err := f.manager.Sessions(context.Background())
		return err == nil && len(sessions) == 1 && sessions[0].AccessToken == "new-pw"
	}, time.Second, 10*time.Millisecond)

	change := <-events
	require.Len(t, change.Changed, 1)
	assert.Equal(t, "new-pw", change.Changed[0].AccessToken)
}

func TestUnrelatedSecretChangesIgnored(t *testing.T) {
	f := newManagerFixture(t, models.NewAuthenticationSession("staging", "alice", ""))
	f.store.EXPECT().Get(auth.DerivedSecretKey("staging/alice")).Return("pw", nil)

	_, err := f.manager.Sessions(context.Background())
	require.NoError(t, err)

	// A resolver password change carries a different key prefix.
	f.changes <- secrets.Change{Key: "serverPassword:staging"}
	time.Sleep(20 * time.Millisecond)

	sessions, err := f.manager.Sessions(context.Background())
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	f := newManagerFixture(t)

	events := f.manager.Subscribe()
	f.manager.Unsubscribe(events)

	_, open := <-events
	assert.False(t, open)
}
