package auth

import (
	"context"

	"github.com/hivegrid/hivectl/models"
)

const secretKeyPrefix = "authenticationProvider:"

// DerivedSecretKey builds the secret store key backing a session id.
func DerivedSecretKey(id string) string {
	return secretKeyPrefix + id
}

// ServerPicker supplies a server name when CreateSession is called without
// one. Provided by the server-management side of the connector.
type ServerPicker interface {
	PickServer() (string, error)
}

// RemoteInvalidator ends the remote web session for a server once no local
// authentication session remains for it.
type RemoteInvalidator interface {
	Logout(ctx context.Context, serverName string) error
}

// Manager is the durable session registry: one session per server/user
// pair, backed by the secret store, raising a change event per mutation.
type Manager interface {
	Sessions(ctx context.Context, scopes ...string) ([]models.AuthenticationSession, error)
	CreateSession(ctx context.Context, scopes ...string) (*models.AuthenticationSession, error)
	RemoveSession(ctx context.Context, id string) error
	Subscribe() <-chan models.SessionsChange
	Unsubscribe(ch <-chan models.SessionsChange)
	Close() error
}
