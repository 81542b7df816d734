package models

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID        int64
	Login     string
	Password  string
	CreatedAt pgtype.Timestamptz
}

// Check is one stored validation verdict. Only the normalized code is kept,
// never the raw input.
type Check struct {
	ID        int64
	UserID    int64
	Code      string
	Valid     bool
	Message   string
	CheckedAt pgtype.Timestamptz
}

type UserStorage interface {
	CreateUser(ctx context.Context, login, password string) (int64, error)
	GetUserByLogin(ctx context.Context, login string) (User, error)
}

type CheckStorage interface {
	CreateCheck(ctx context.Context, check Check) (int64, error)
	GetChecksByUserID(ctx context.Context, userID int64) ([]Check, error)
}
