package models

// AuthenticationSession is a durable "authenticated as user U on server S"
// record. The password travels in AccessToken; persisted copies are stripped
// first and the password lives in the secret store under a derived key.
type AuthenticationSession struct {
	ID          string   `json:"id" yaml:"id"`
	ServerName  string   `json:"serverName" yaml:"serverName"`
	UserName    string   `json:"userName" yaml:"userName"`
	AccessToken string   `json:"-" yaml:"-"`
	Account     string   `json:"account" yaml:"account"`
	Scopes      []string `json:"scopes" yaml:"scopes"`
}

// SessionID builds the canonical id for a server/user pair.
func SessionID(serverName, userName string) string {
	return serverName + "/" + userName
}

// NewAuthenticationSession constructs a session for a server/user pair.
func NewAuthenticationSession(serverName, userName, password string) AuthenticationSession {
	return AuthenticationSession{
		ID:          SessionID(serverName, userName),
		ServerName:  serverName,
		UserName:    userName,
		AccessToken: password,
		Account:     userName + " @ " + serverName,
		Scopes:      []string{serverName, userName},
	}
}

// Stripped returns a copy safe for persistence outside the secret store.
func (s AuthenticationSession) Stripped() AuthenticationSession {
	s.AccessToken = ""
	return s
}

// SessionsChange describes one mutation of the session list. The three lists
// partition the mutation: a session appears in exactly one of them.
type SessionsChange struct {
	Added   []AuthenticationSession
	Removed []AuthenticationSession
	Changed []AuthenticationSession
}

// PasswordChange is published when a resolution writes a fresh password
// through to the credential cache or secret store.
type PasswordChange struct {
	ServerName string
	Username   string
}
