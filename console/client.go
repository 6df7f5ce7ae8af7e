// Package console implements the admin console's view logic: fetching and
// filtering registrants, staging edits, deleting rows and exporting CSV.
// Presentation is left to whatever front end drives it.
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"medha-admin/models"
)

var (
	// ErrUnauthenticated means the backend rejected the session token.
	ErrUnauthenticated = errors.New("session rejected")

	// ErrInvalidCredentials means a login attempt was refused.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound means the registrant no longer exists on the backend.
	ErrNotFound = errors.New("registrant not found")

	// ErrServerUnavailable covers transport failures and 5xx responses.
	ErrServerUnavailable = errors.New("server unavailable")
)

// Client talks to the admin REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token used on registrant calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login exchanges the credential pair for a session token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return "", ErrInvalidCredentials
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: login returned %d", ErrServerUnavailable, resp.StatusCode)
	}

	var out models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	return out.Token, nil
}

// FetchRegistrants loads the full list.
func (c *Client) FetchRegistrants(ctx context.Context) ([]models.Registrant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users", nil)
	if err != nil {
		return nil, err
	}

	var registrants []models.Registrant
	if err := c.do(req, &registrants); err != nil {
		return nil, err
	}
	return registrants, nil
}

// UpdateRegistrant sends a staged edit and returns the updated document.
func (c *Client) UpdateRegistrant(ctx context.Context, update models.UpdateRegistrantRequest) (models.Registrant, error) {
	body, err := json.Marshal(update)
	if err != nil {
		return models.Registrant{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/users/"+update.ID, bytes.NewReader(body))
	if err != nil {
		return models.Registrant{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var updated models.Registrant
	if err := c.do(req, &updated); err != nil {
		return models.Registrant{}, err
	}
	return updated, nil
}

// DeleteRegistrant removes a registrant on the backend.
func (c *Client) DeleteRegistrant(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/users/"+id, nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthenticated
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrServerUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}
	return nil
}
