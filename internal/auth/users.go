// Package auth holds the credential store and the bearer token issuer.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"tutorapi/internal/model"
)

// ErrUserNotFound is returned by UserStore.Find for unknown usernames.
var ErrUserNotFound = errors.New("user not found")

// UserStore looks up users by name.
type UserStore interface {
	Find(ctx context.Context, username string) (*model.User, error)
}

// StaticUserStore serves a fixed set of users held in memory.
type StaticUserStore struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewStaticUserStore indexes users by username.
func NewStaticUserStore(users ...model.User) *StaticUserStore {
	s := &StaticUserStore{users: make(map[string]model.User, len(users))}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *StaticUserStore) Find(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

type usersFile struct {
	Users []model.User `yaml:"users"`
}

// LoadUsersFile reads a YAML file of the form
//
//	users:
//	  - username: alice
//	    full_name: Alice
//	    email: alice@example.com
//	    password_hash: $2a$10$...
//	    disabled: false
func LoadUsersFile(path string) (*StaticUserStore, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var f usersFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	for _, u := range f.Users {
		if u.Username == "" || u.PasswordHash == "" {
			return nil, fmt.Errorf("users file: entry without username or password_hash")
		}
	}
	return NewStaticUserStore(f.Users...), nil
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
