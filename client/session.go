package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Session is the persisted identity record. A manager session carries
// Role "manager" and Name; a store session carries Role "store" plus
// the store identifiers used in subsequent API calls.
type Session struct {
	Role      string `json:"role"`
	Name      string `json:"name,omitempty"`
	StoreID   string `json:"store_id,omitempty"`
	StoreName string `json:"store_name,omitempty"`
	Token     string `json:"token,omitempty"`
}

// SessionStore reads and writes the session file. The location is
// os.UserConfigDir()/timetrack/session.json unless overridden with the
// TIMETRACK_SESSION_FILE environment variable.
type SessionStore struct {
	Path string
}

func NewSessionStore() *SessionStore {
	if path := os.Getenv("TIMETRACK_SESSION_FILE"); path != "" {
		return &SessionStore{Path: path}
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return &SessionStore{Path: filepath.Join(dir, "timetrack", "session.json")}
}

func (s *SessionStore) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// Load returns the persisted session, or nil when the file is missing
// or unreadable. It never returns an error: a bad session file behaves
// like a logged-out state.
func (s *SessionStore) Load() *Session {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}
	return &sess
}

func (s *SessionStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
