// Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
// See LICENSE for license information.

// Package session holds the mock dashboard login. Credentials are never checked:
// any login is accepted and identified by an opaque token.
package session

import (
	"context"
	"strings"

	"github.com/AMD-AGI/Primus-SaFE/Lens/dashboard/pkg/errors"
	"github.com/google/uuid"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Session struct {
	Token           string `json:"token"`
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// Anonymous is the logged-out session.
var Anonymous = Session{}

type Provider interface {
	Login(ctx context.Context, token string, user User) (Session, error)
	// Logout ends the session identified by ctx.
	Logout(ctx context.Context) error
	// Current returns the session identified by ctx, or Anonymous.
	Current(ctx context.Context) (Session, error)
	CheckAuth(ctx context.Context) bool
}

type ctxKey int

const (
	tokenKey ctxKey = iota
	sessionKey
)

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(WithToken(ctx, s.Token), sessionKey, s)
}

// FromContext returns the session resolved for the request, or Anonymous.
func FromContext(ctx context.Context) Session {
	s, ok := ctx.Value(sessionKey).(Session)
	if !ok {
		return Anonymous
	}
	return s
}

func NewToken() string {
	return uuid.NewString()
}

// MockUser builds the user record for a login; the id is stable per email.
func MockUser(email string) User {
	email = strings.TrimSpace(email)
	name, _, _ := strings.Cut(email, "@")
	return User{
		ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(email))).String(),
		Name:  name,
		Email: email,
	}
}

// Authenticate accepts any non-empty email and password and opens a session for it.
func Authenticate(ctx context.Context, p Provider, email, password string) (Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return Anonymous, errors.NewError().
			WithCode(errors.RequestParameterInvalid).
			WithMessage("email and password are required")
	}
	return p.Login(ctx, NewToken(), MockUser(email))
}

func newSession(token string, user User) (Session, error) {
	if token == "" {
		return Anonymous, errors.NewError().WithCode(errors.InvalidArgument).WithMessage("empty session token")
	}
	u := user
	return Session{Token: token, User: &u, IsAuthenticated: true}, nil
}
