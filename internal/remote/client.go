package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/google/uuid"

	"github.com/hivegrid/hivectl/models"
)

const (
	tokenPath  = "/identity/token"
	logoutPath = "/identity/logout"
)

// RestClient talks to one server's identity endpoints. Session cookies set
// by the server accumulate in the jar and die with the client.
type RestClient struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
	clientID   string
}

func NewRestClient(spec *models.ResolvedServerSpec) (*RestClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &RestClient{
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		baseURL:  spec.WebServer.BaseURL(),
		username: spec.Username,
		password: spec.Password,
		clientID: uuid.NewString(),
	}, nil
}

type tokenRequest struct {
	HomePath      string `json:"homePath"`
	PreviousToken string `json:"previousToken,omitempty"`
	ClientID      string `json:"clientId"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// FetchToken asks the server to mint, extend, or rotate an access token.
// previousToken may be empty.
func (c *RestClient) FetchToken(ctx context.Context, homePath, previousToken string) (string, error) {
	payload, err := json.Marshal(tokenRequest{
		HomePath:      homePath,
		PreviousToken: previousToken,
		ClientID:      c.clientID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("token request failed: %s: %s", resp.Status, bytes.TrimSpace(body))
	}

	var parsed tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if parsed.Token == "" {
		return "", fmt.Errorf("server returned an empty token")
	}
	return parsed.Token, nil
}

// Logout ends the server-side web session bound to the jar's cookies and
// drops the jar.
func (c *RestClient) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+logoutPath, nil)
	if err != nil {
		return fmt.Errorf("failed to build logout request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("logout request failed: %s", resp.Status)
	}

	jar, err := cookiejar.New(nil)
	if err == nil {
		c.httpClient.Jar = jar
	}
	return nil
}
