package console

import (
	"os"
	"strings"
)

// TokenStore persists the single session token string between console runs,
// the counterpart of the browser panel's fixed localStorage key.
type TokenStore struct {
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Load returns the stored token, or "" when none is stored.
func (s *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *TokenStore) Save(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SessionGate decides whether the panel may open. It only checks that a
// token exists; a stale or forged token still passes here and gets rejected
// by the backend on the first call.
type SessionGate struct {
	tokens *TokenStore
}

func NewSessionGate(tokens *TokenStore) *SessionGate {
	return &SessionGate{tokens: tokens}
}

// Token returns the stored token and whether the panel may open.
func (g *SessionGate) Token() (string, bool) {
	token, err := g.tokens.Load()
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}
