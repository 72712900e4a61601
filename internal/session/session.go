// Package session holds the in-memory login state shared by the screens.
package session

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned by Login for any pair other than the
// configured one.
var ErrInvalidCredentials = errors.New("invalid login credentials")

// Credentials is a username/password pair.
type Credentials struct {
	Username string
	Password string
}

// DefaultCredentials is the single account the app accepts.
var DefaultCredentials = Credentials{Username: "admin", Password: "admin@123"}

// Session is the process-local authentication flag plus the login action.
// Nothing is persisted; a new Session always starts signed out.
type Session struct {
	mu    sync.RWMutex
	creds Credentials

	authenticated bool
	id            string
	user          string
	since         time.Time
}

// New creates a signed-out session that accepts only creds.
func New(creds Credentials) *Session {
	return &Session{creds: creds}
}

// Login signs the session in when username and password match. Any other
// pair leaves the session as it was and returns ErrInvalidCredentials. There
// is no lockout or attempt counting.
func (s *Session) Login(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	s.id = uuid.NewString()
	s.user = username
	s.since = time.Now()
	return nil
}

// IsAuthenticated reports whether Login has succeeded.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// ID returns the random identifier assigned at login, or "" when signed out.
// It only exists to correlate log lines.
func (s *Session) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// User returns the signed-in username, or "".
func (s *Session) User() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Since returns when the session signed in.
func (s *Session) Since() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.since
}
