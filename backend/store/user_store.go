package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"portfolio-cms/backend/common"
	cmserrors "portfolio-cms/backend/common/errors"
	"portfolio-cms/backend/model"
)

const usersFile = "users.json"

// UserStore persists user records as a JSON array under its data directory.
// Accounts are created once at first boot and only ever read afterwards, so
// no synchronization is needed beyond the initial write.
type UserStore struct {
	path string
}

func NewUserStore(dataDir string) *UserStore {
	return &UserStore{path: filepath.Join(dataDir, usersFile)}
}

// Initialize creates the default administrator account if the store does not
// exist yet. Idempotent: an existing file, whatever its contents, is left
// untouched.
func (s *UserStore) Initialize() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat user store %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	hashedPassword, err := common.Password2Hash("admin123")
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}
	defaultUsers := []model.User{
		{
			ID:       1,
			Username: "admin",
			Email:    "admin@rahulthakur.dev",
			Password: hashedPassword,
			Role:     common.RoleAdmin,
		},
	}
	if err := s.save(defaultUsers); err != nil {
		return err
	}
	common.SysLog("Default admin user created: admin / admin123")
	return nil
}

// FindByUsername returns the user with the given username or
// ErrUserNotFound.
func (s *UserStore) FindByUsername(username string) (*model.User, error) {
	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, cmserrors.ErrUserNotFound
}

func (s *UserStore) load() ([]model.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read user store %s: %w", s.path, err)
	}
	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse user store %s: %w", s.path, err)
	}
	return users, nil
}

func (s *UserStore) save(users []model.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode user store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write user store %s: %w", s.path, err)
	}
	return nil
}
