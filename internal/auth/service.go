package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
)

// ErrInvalidCredentials is returned on a failed login. The message is
// deliberately generic; which field was wrong is never disclosed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenGenerator mints opaque session tokens.
type TokenGenerator func() string

// Service implements the admin session gate: a single configured credential
// pair and a process-wide set of active tokens. The set is empty after a
// restart, which invalidates every previously issued token (accepted
// limitation of single-process session state).
type Service struct {
	email    string
	password string
	generate TokenGenerator

	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewService creates a session service for the given admin credentials.
func NewService(email, password string, generate TokenGenerator) *Service {
	return &Service{
		email:    email,
		password: password,
		generate: generate,
		tokens:   make(map[string]struct{}),
	}
}

// Login checks the credential pair and, on an exact match, mints a new
// token and records it as an active session.
func (s *Service) Login(email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1

	if !emailOK || !passwordOK {
		return "", ErrInvalidCredentials
	}

	token := s.generate()

	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()

	return token, nil
}

// Logout removes the token from the active set. Removing an absent token is
// not an error.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// Authenticate reports whether the token belongs to an active session.
func (s *Service) Authenticate(token string) bool {
	if token == "" {
		return false
	}

	s.mu.RLock()
	_, ok := s.tokens[token]
	s.mu.RUnlock()

	return ok
}

// ActiveSessions returns the number of live tokens.
func (s *Service) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tokens)
}
