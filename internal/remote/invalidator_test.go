package remote_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hivegrid/hivectl/internal/remote"
	mock_hivectl "github.com/hivegrid/hivectl/tests/mock"
)

func TestInvalidatorLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_hivectl.NewMockClient(ctrl)
	cache := remote.NewTokenCache()
	invalidator := remote.NewInvalidator(cache)
	ctx := context.Background()

	client.EXPECT().FetchToken(ctx, "/work", "").Return("tok", nil)
	_, err := cache.Token(ctx, remote.TargetViewer, "staging", client, "/work")
	require.NoError(t, err)

	invalidator.Register("staging", client)

	client.EXPECT().Logout(ctx).Return(nil)
	require.NoError(t, invalidator.Logout(ctx, "staging"))

	// The cached token went with the session.
	client.EXPECT().FetchToken(ctx, "/work", "").Return("tok-2", nil)
	_, err = cache.Token(ctx, remote.TargetViewer, "staging", client, "/work")
	require.NoError(t, err)

	// The registration is gone too: a repeat logout is a no-op.
	require.NoError(t, invalidator.Logout(ctx, "staging"))
}

func TestInvalidatorLogoutUnknownServer(t *testing.T) {
	invalidator := remote.NewInvalidator(remote.NewTokenCache())

	assert.NoError(t, invalidator.Logout(context.Background(), "never-contacted"))
}

func TestInvalidatorLastRegistrationWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mock_hivectl.NewMockClient(ctrl)
	second := mock_hivectl.NewMockClient(ctrl)
	invalidator := remote.NewInvalidator(remote.NewTokenCache())
	ctx := context.Background()

	invalidator.Register("staging", first)
	invalidator.Register("staging", second)

	second.EXPECT().Logout(ctx).Return(nil)
	require.NoError(t, invalidator.Logout(ctx, "staging"))
}

func TestInvalidatorLogoutAllSettlesDespiteFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	healthy := mock_hivectl.NewMockClient(ctrl)
	broken := mock_hivectl.NewMockClient(ctrl)
	invalidator := remote.NewInvalidator(remote.NewTokenCache())
	ctx := context.Background()

	invalidator.Register("staging", healthy)
	invalidator.Register("prod", broken)

	healthy.EXPECT().Logout(ctx).Return(nil)
	broken.EXPECT().Logout(ctx).Return(errors.New("connection refused"))

	invalidator.LogoutAll(ctx)

	// Everything was unregistered regardless of outcome.
	assert.NoError(t, invalidator.Logout(ctx, "staging"))
	assert.NoError(t, invalidator.Logout(ctx, "prod"))
}
