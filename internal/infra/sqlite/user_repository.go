package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	moderncsqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/fardannozami/oceanguard/internal/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) (int64, error) {
	query := `INSERT INTO users (username, password) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrUsernameTaken
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read user id: %w", err)
	}
	user.ID = id
	return id, nil
}

func (r *UserRepository) GetUserByCredentials(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	query := `SELECT id, username, password, CAST(created_at AS TEXT) FROM users WHERE username = ? AND password = ?`
	row := r.db.QueryRowContext(ctx, query, username, passwordHash)

	var user domain.User
	var createdAt sql.NullString
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.CreatedAt = parseTimestamp(createdAt)
	return &user, nil
}

// isUniqueViolation checks the extended result code of the runtime driver.
// Other drivers (go-sqlite3 in tests) are matched on the SQLite message, so
// this package never links cgo.
func isUniqueViolation(err error) bool {
	var serr *moderncsqlite.Error
	if errors.As(err, &serr) {
		return serr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
