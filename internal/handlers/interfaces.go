package handlers

import (
	"context"

	"github.com/AlenaMolokova/nationalcode/internal/models"
	"github.com/AlenaMolokova/nationalcode/internal/validation"
)

type CodeValidator interface {
	Validate(in validation.Input) validation.Result
}

type CheckRecorder interface {
	CheckAndRecord(ctx context.Context, userID int64, in validation.Input) (models.Check, error)
}

type CheckLister interface {
	GetUserChecks(ctx context.Context, userID int64) ([]models.Check, error)
}

type Authenticator interface {
	Register(ctx context.Context, login, password string) (string, error)
	Login(ctx context.Context, login, password string) (string, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
