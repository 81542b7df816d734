package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AlenaMolokova/nationalcode/internal/models"
	"github.com/AlenaMolokova/nationalcode/internal/validation"
	"github.com/jackc/pgx/v5/pgtype"
)

type CheckUseCase struct {
	storage   models.CheckStorage
	validator validation.CodeValidator
	now       func() time.Time
}

func NewCheckUseCase(storage models.CheckStorage) *CheckUseCase {
	return &CheckUseCase{
		storage:   storage,
		validator: validation.NewNationalCodeValidator(),
		now:       time.Now,
	}
}

// Validate classifies the input without recording anything.
func (uc *CheckUseCase) Validate(in validation.Input) validation.Result {
	return uc.validator.ValidateNationalCode(in)
}

// CheckAndRecord validates the input and appends the verdict to the user's history.
// A rejected code is a normal outcome; the error is only about storage.
func (uc *CheckUseCase) CheckAndRecord(ctx context.Context, userID int64, in validation.Input) (models.Check, error) {
	res := uc.validator.ValidateNationalCode(in)

	check := models.Check{
		UserID:    userID,
		Code:      res.Code,
		Valid:     res.Valid,
		Message:   res.Message,
		CheckedAt: pgtype.Timestamptz{Time: uc.now().UTC(), Valid: true},
	}

	id, err := uc.storage.CreateCheck(ctx, check)
	if err != nil {
		return models.Check{}, fmt.Errorf("failed to record check: %w", err)
	}
	check.ID = id
	return check, nil
}

func (uc *CheckUseCase) GetUserChecks(ctx context.Context, userID int64) ([]models.Check, error) {
	checks, err := uc.storage.GetChecksByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get checks: %w", err)
	}
	return checks, nil
}
