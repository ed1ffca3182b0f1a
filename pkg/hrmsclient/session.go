package hrmsclient

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// SessionUser is the identity snapshot stored alongside the token.
type SessionUser struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	Role                 string `json:"role"`
	OrganizationID       string `json:"organizationId"`
	EmployeeID           string `json:"employeeId"`
	IsFirstLogin         bool   `json:"isFirstLogin"`
	HasSecurityQuestions bool   `json:"hasSecurityQuestions"`
}

type sessionFile struct {
	Token string       `json:"token"`
	User  *SessionUser `json:"user,omitempty"`
}

// SessionStore persists the token and serialized user in a JSON file.
// Every accessor re-reads the file: another process (or an expired
// session) may have cleared it since the last call, and acting on a
// stale token is worse than the extra read.
type SessionStore struct {
	mu   sync.Mutex
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

func (s *SessionStore) read() sessionFile {
	var sf sessionFile
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return sf
	}
	_ = json.Unmarshal(raw, &sf)
	return sf
}

// write replaces the file atomically via rename so a concurrent reader
// never sees a partial session.
func (s *SessionStore) write(sf sessionFile) error {
	raw, err := json.Marshal(sf)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().Token
}

func (s *SessionStore) User() *SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read().User
}

// Save stores the token and user together.
func (s *SessionStore) Save(token string, user *SessionUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(sessionFile{Token: token, User: user})
}

// Clear removes token and user in one step. Called on logout and on a
// fatal 401 from the current-user endpoint.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.Remove(s.path)
}
