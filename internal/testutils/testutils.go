package testutils

import (
	"context"

	"github.com/AlenaMolokova/nationalcode/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockUserStorage struct {
	mock.Mock
}

func (m *MockUserStorage) CreateUser(ctx context.Context, login, password string) (int64, error) {
	args := m.Called(ctx, login, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStorage) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(models.User), args.Error(1)
}

type MockCheckStorage struct {
	mock.Mock
}

func (m *MockCheckStorage) CreateCheck(ctx context.Context, check models.Check) (int64, error) {
	args := m.Called(ctx, check)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCheckStorage) GetChecksByUserID(ctx context.Context, userID int64) ([]models.Check, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Check), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
