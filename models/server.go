package models

import "fmt"

// WebServer holds the connection coordinates of a HiveGrid web server.
type WebServer struct {
	Scheme     string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Host       string `json:"host" yaml:"host"`
	Port       int    `json:"port,omitempty" yaml:"port,omitempty"`
	PathPrefix string `json:"pathPrefix,omitempty" yaml:"pathPrefix,omitempty"`
}

// BaseURL renders the web server coordinates as an origin URL.
func (w WebServer) BaseURL() string {
	return fmt.Sprintf("%s://%s:%d%s", w.Scheme, w.Host, w.Port, w.PathPrefix)
}

// ServerDefinition is a named, user-configured server entry.
type ServerDefinition struct {
	Name        string    `json:"name" yaml:"name"`
	WebServer   WebServer `json:"webServer" yaml:"webServer"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Username    string    `json:"username,omitempty" yaml:"username,omitempty"`
}

// ResolvedServerSpec is a ServerDefinition enriched with credentials for one
// resolution call. It is built fresh on every request and never persisted.
type ResolvedServerSpec struct {
	ServerDefinition
	Password string `json:"-" yaml:"-"`
}

// Anonymous reports whether resolution completed without an identity.
func (s *ResolvedServerSpec) Anonymous() bool {
	return s.Username == ""
}

// Credential is a username/password pair cached per server name.
type Credential struct {
	Username string
	Password string
}
