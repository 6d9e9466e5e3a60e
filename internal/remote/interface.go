package remote

import "context"

// Target partitions the access-token namespace by where the token will be
// presented.
type Target string

const (
	// TargetViewer tokens open server content in the embedded viewer.
	TargetViewer Target = "viewer"
	// TargetBrowser tokens open server content in the external browser.
	TargetBrowser Target = "browser"
)

// Client is the remote server's credential surface: mint or extend a
// short-lived access token, and end the cookie-backed web session.
type Client interface {
	FetchToken(ctx context.Context, homePath, previousToken string) (string, error)
	Logout(ctx context.Context) error
}
