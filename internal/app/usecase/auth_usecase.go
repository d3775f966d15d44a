package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/fardannozami/oceanguard/internal/domain"
)

const MinPasswordLength = 6

var (
	ErrMissingFields    = errors.New("please fill in all fields")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// HashPassword returns the hex SHA-256 digest stored in users.password.
// Unsalted, to stay readable by databases created by earlier releases.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

type RegisterUserUsecase struct {
	repo domain.UserRepository
}

func NewRegisterUserUsecase(repo domain.UserRepository) *RegisterUserUsecase {
	return &RegisterUserUsecase{repo: repo}
}

func (uc *RegisterUserUsecase) Execute(ctx context.Context, username, password, confirm string) (int64, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	confirm = strings.TrimSpace(confirm)

	if username == "" || password == "" || confirm == "" {
		return 0, ErrMissingFields
	}
	if len(password) < MinPasswordLength {
		return 0, ErrPasswordTooShort
	}
	if password != confirm {
		return 0, ErrPasswordMismatch
	}

	return uc.repo.CreateUser(ctx, &domain.User{
		Username:     username,
		PasswordHash: HashPassword(password),
	})
}

type LoginUsecase struct {
	repo domain.UserRepository
}

func NewLoginUsecase(repo domain.UserRepository) *LoginUsecase {
	return &LoginUsecase{repo: repo}
}

// Execute returns domain.ErrInvalidCredentials on mismatch. There is no
// lockout; callers may retry freely.
func (uc *LoginUsecase) Execute(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := uc.repo.GetUserByCredentials(ctx, username, HashPassword(password))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
