// Copyright (c) 2026 BlogAPI. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"slices"
	"sync"

	"github.com/ianbriton/blogapi/internal/platform/apperr"
	"github.com/ianbriton/blogapi/internal/platform/sec"
	"github.com/ianbriton/blogapi/internal/users/auth"
)

// fakeUserRepository is an in-memory [auth.UserRepository].
type fakeUserRepository struct {
	mu     sync.Mutex
	users  map[string]*auth.User
	roles  map[string][]string
	seeded map[sec.Role]bool
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:  make(map[string]*auth.User),
		roles:  make(map[string][]string),
		seeded: make(map[sec.Role]bool),
	}
}

func (f *fakeUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[auth.NormalizeUsername(username)]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) Create(_ context.Context, user *auth.User, roles ...sec.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := auth.NormalizeUsername(user.Username)
	if _, taken := f.users[key]; taken {
		return apperr.Conflict("User already exists")
	}
	copied := *user
	f.users[key] = &copied
	for _, granted := range roles {
		f.grant(user.ID, granted)
	}
	return nil
}

func (f *fakeUserRepository) RolesOf(_ context.Context, userID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	held := slices.Clone(f.roles[userID])
	slices.Sort(held)
	return held, nil
}

func (f *fakeUserRepository) AddToRole(_ context.Context, userID string, granted sec.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.grant(userID, granted)
	return nil
}

func (f *fakeUserRepository) RoleExists(_ context.Context, target sec.Role) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.seeded[target], nil
}

func (f *fakeUserRepository) CreateRole(_ context.Context, target sec.Role) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seeded[target] = true
	return nil
}

func (f *fakeUserRepository) grant(userID string, granted sec.Role) {
	f.seeded[granted] = true
	if !slices.Contains(f.roles[userID], granted.String()) {
		f.roles[userID] = append(f.roles[userID], granted.String())
	}
}
