// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/logger/log"
	"github.com/gofrs/flock"
)

const (
	DefaultStorageKey = "auth-storage"

	lockRetryDelay = 20 * time.Millisecond
	lockTimeout    = 5 * time.Second
)

// persisted mirrors the versioned envelope the dashboard keeps under its storage key.
type persisted struct {
	State   Session `json:"state"`
	Version int     `json:"version"`
}

// FileProvider persists a single session seat to <dir>/<key>.json. A new login replaces the previous one.
// Processes sharing the directory serialize through a sibling lock file.
type FileProvider struct {
	path string
	// mu serializes goroutines; the flock only excludes other processes.
	mu   sync.Mutex
	lock *flock.Flock
}

func NewFileProvider(dir, key string) (*FileProvider, error) {
	if key == "" {
		key = DefaultStorageKey
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.WrapError(err, "failed to create session directory", errors.CodeInitializeError)
	}
	path := filepath.Join(dir, key+".json")
	return &FileProvider{
		path: path,
		lock: flock.New(path + ".lock"),
	}, nil
}

func (f *FileProvider) Path() string {
	return f.path
}

func (f *FileProvider) withLock(ctx context.Context, fn func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	locked, err := f.lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil || !locked {
		return errors.NewError().
			WithCode(errors.ServiceUnavailable).
			WithMessagef("failed to lock session store %s", f.path).
			WithError(err)
	}
	defer func() {
		if err := f.lock.Unlock(); err != nil {
			log.Warnf("failed to unlock session store %s: %v", f.path, err)
		}
	}()
	return fn()
}

func (f *FileProvider) read() (Session, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return Anonymous, nil
	}
	if err != nil {
		return Anonymous, errors.WrapError(err, "failed to read session store", errors.InternalError)
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warnf("discarding unreadable session store %s: %v", f.path, err)
		return Anonymous, nil
	}
	return p.State, nil
}

func (f *FileProvider) write(s Session) error {
	data, err := json.Marshal(persisted{State: s})
	if err != nil {
		return errors.WrapError(err, "failed to encode session", errors.InternalError)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.WrapError(err, "failed to write session store", errors.InternalError)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return errors.WrapError(err, "failed to replace session store", errors.InternalError)
	}
	return nil
}

func (f *FileProvider) Login(ctx context.Context, token string, user User) (Session, error) {
	s, err := newSession(token, user)
	if err != nil {
		return Anonymous, err
	}
	err = f.withLock(ctx, func() error {
		return f.write(s)
	})
	if err != nil {
		return Anonymous, err
	}
	return s, nil
}

// Logout clears the seat only when ctx carries the seat's own token.
func (f *FileProvider) Logout(ctx context.Context) error {
	return f.withLock(ctx, func() error {
		current, err := f.read()
		if err != nil {
			return err
		}
		if !matches(ctx, current) {
			return nil
		}
		return f.write(Anonymous)
	})
}

func (f *FileProvider) Current(ctx context.Context) (Session, error) {
	var s Session
	err := f.withLock(ctx, func() error {
		var err error
		s, err = f.read()
		return err
	})
	if err != nil {
		return Anonymous, err
	}
	if !matches(ctx, s) {
		return Anonymous, nil
	}
	return s, nil
}

func (f *FileProvider) CheckAuth(ctx context.Context) bool {
	s, err := f.Current(ctx)
	return err == nil && s.IsAuthenticated
}

// matches never lets an empty token stand in for the seat holder.
func matches(ctx context.Context, s Session) bool {
	token := TokenFromContext(ctx)
	return token != "" && token == s.Token
}
