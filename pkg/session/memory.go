// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryProvider keeps sessions keyed by token, expiring them after ttl.
type MemoryProvider struct {
	store *cache.Cache
}

func NewMemoryProvider(ttl time.Duration) *MemoryProvider {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl
	}
	return &MemoryProvider{store: cache.New(expiration, cleanup)}
}

func (m *MemoryProvider) Login(_ context.Context, token string, user User) (Session, error) {
	s, err := newSession(token, user)
	if err != nil {
		return Anonymous, err
	}
	m.store.Set(token, s, cache.DefaultExpiration)
	return s, nil
}

func (m *MemoryProvider) Logout(ctx context.Context) error {
	if token := TokenFromContext(ctx); token != "" {
		m.store.Delete(token)
	}
	return nil
}

func (m *MemoryProvider) Current(ctx context.Context) (Session, error) {
	token := TokenFromContext(ctx)
	if token == "" {
		return Anonymous, nil
	}
	v, ok := m.store.Get(token)
	if !ok {
		return Anonymous, nil
	}
	return v.(Session), nil
}

func (m *MemoryProvider) CheckAuth(ctx context.Context) bool {
	s, err := m.Current(ctx)
	return err == nil && s.IsAuthenticated
}

func (m *MemoryProvider) Count() int {
	return m.store.ItemCount()
}
