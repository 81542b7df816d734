package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlenaMolokova/nationalcode/internal/constants"
	"github.com/AlenaMolokova/nationalcode/internal/models"
	"github.com/AlenaMolokova/nationalcode/internal/storage"
	"github.com/AlenaMolokova/nationalcode/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyCredentials   = errors.New("login and password are required")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long and contain letters")
	ErrLoginTaken         = errors.New("login already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

type UserUseCase struct {
	storage   models.UserStorage
	passwords validation.PasswordValidator
	secret    []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewUserUseCase(storage models.UserStorage, secret string, tokenTTL time.Duration) *UserUseCase {
	return &UserUseCase{
		storage:   storage,
		passwords: validation.NewDefaultPasswordValidator(),
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// Register creates the user and returns a signed access token.
func (uc *UserUseCase) Register(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", ErrEmptyCredentials
	}
	if !uc.passwords.ValidatePassword(password) {
		return "", ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := uc.storage.CreateUser(ctx, login, string(hashed))
	if err != nil {
		if errors.Is(err, storage.ErrLoginExists) {
			return "", ErrLoginTaken
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return uc.issueToken(userID)
}

func (uc *UserUseCase) Login(ctx context.Context, login, password string) (string, error) {
	if login == "" || password == "" {
		return "", ErrEmptyCredentials
	}

	user, err := uc.storage.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return uc.issueToken(user.ID)
}

func (uc *UserUseCase) issueToken(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		constants.ClaimUserID:  userID,
		constants.ClaimExpires: uc.now().Add(uc.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(uc.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
