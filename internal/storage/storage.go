package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlenaMolokova/nationalcode/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const uniqueViolation = "23505"

var (
	ErrLoginExists  = errors.New("login already exists")
	ErrUserNotFound = errors.New("user not found")
)

// DBTX is the subset of *pgxpool.Pool the storage needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type Storage struct {
	db DBTX
}

func NewStorage(db DBTX) (*Storage, error) {
	if db == nil {
		return nil, errors.New("database pool is nil")
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

const createUser = `INSERT INTO users (login, password) VALUES ($1, $2) RETURNING id`

func (s *Storage) CreateUser(ctx context.Context, login, password string) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, createUser, login, password).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrLoginExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

const getUserByLogin = `SELECT id, login, password, created_at FROM users WHERE login = $1`

func (s *Storage) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	var (
		user      models.User
		createdAt time.Time
	)
	err := s.db.QueryRow(ctx, getUserByLogin, login).Scan(&user.ID, &user.Login, &user.Password, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("select user: %w", err)
	}
	user.CreatedAt = pgtype.Timestamptz{Time: createdAt, Valid: true}
	return user, nil
}

const createCheck = `INSERT INTO checks (user_id, code, valid, message, checked_at)
VALUES ($1, $2, $3, $4, $5) RETURNING id`

func (s *Storage) CreateCheck(ctx context.Context, check models.Check) (int64, error) {
	var id int64
	err := s.db.QueryRow(ctx, createCheck,
		check.UserID, check.Code, check.Valid, check.Message, check.CheckedAt.Time,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert check: %w", err)
	}
	return id, nil
}

const getChecksByUser = `SELECT id, user_id, code, valid, message, checked_at FROM checks
WHERE user_id = $1 ORDER BY checked_at DESC, id DESC`

func (s *Storage) GetChecksByUserID(ctx context.Context, userID int64) ([]models.Check, error) {
	rows, err := s.db.Query(ctx, getChecksByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("select checks: %w", err)
	}
	defer rows.Close()

	checks := make([]models.Check, 0)
	for rows.Next() {
		var (
			c         models.Check
			checkedAt time.Time
		)
		if err := rows.Scan(&c.ID, &c.UserID, &c.Code, &c.Valid, &c.Message, &checkedAt); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		c.CheckedAt = pgtype.Timestamptz{Time: checkedAt, Valid: true}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return checks, nil
}
