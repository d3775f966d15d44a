package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) (int64, error)
	// GetUserByCredentials returns nil, nil when no user matches.
	GetUserByCredentials(ctx context.Context, username, passwordHash string) (*User, error)
}
