package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AlenaMolokova/nationalcode/internal/models"
	"github.com/AlenaMolokova/nationalcode/internal/storage"
	"github.com/AlenaMolokova/nationalcode/internal/testutils"
	"github.com/AlenaMolokova/nationalcode/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const jwtSecret = "test-secret"

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*testutils.MockUserStorage)
		expectedStatus int
		expectedBody   string
		expectedToken  bool
	}{
		{
			name: "registered",
			body: `{"login":"newuser","password":"securepass"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("CreateUser", mock.Anything, "newuser", mock.AnythingOfType("string")).Return(int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  true,
		},
		{
			name:           "weak password",
			body:           `{"login":"newuser","password":"123"}`,
			setupMocks:     func(us *testutils.MockUserStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Password must be at least 8 characters long and contain letters"}`,
		},
		{
			name:           "empty login",
			body:           `{"login":"","password":"securepass"}`,
			setupMocks:     func(us *testutils.MockUserStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Login and password are required"}`,
		},
		{
			name: "duplicate user",
			body: `{"login":"exists","password":"securepass"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("CreateUser", mock.Anything, "exists", mock.AnythingOfType("string")).Return(int64(0), storage.ErrLoginExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Login already exists"}`,
		},
		{
			name: "storage failure",
			body: `{"login":"newuser","password":"securepass"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("CreateUser", mock.Anything, "newuser", mock.AnythingOfType("string")).Return(int64(0), errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
		{
			name:           "invalid json",
			body:           `{"login":"newuser"`,
			setupMocks:     func(us *testutils.MockUserStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request format"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			us := &testutils.MockUserStorage{}
			tt.setupMocks(us)

			handler := NewRegisterHandler(usecase.NewUserUseCase(us, jwtSecret, time.Hour), zap.NewNop())
			req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedToken {
				assert.True(t, strings.HasPrefix(w.Header().Get("Authorization"), "Bearer "))
			} else {
				assert.Empty(t, w.Header().Get("Authorization"))
			}
			us.AssertExpectations(t)
		})
	}
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("testpass1"), bcrypt.MinCost)
	user := models.User{ID: 1, Login: "testuser", Password: string(hashedPassword)}

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*testutils.MockUserStorage)
		expectedStatus int
		expectedBody   string
		expectedToken  bool
	}{
		{
			name: "logged in",
			body: `{"login":"testuser","password":"testpass1"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("GetUserByLogin", mock.Anything, "testuser").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  true,
		},
		{
			name: "unknown login",
			body: `{"login":"testuser","password":"testpass1"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("GetUserByLogin", mock.Anything, "testuser").Return(models.User{}, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid login or password"}`,
		},
		{
			name: "wrong password",
			body: `{"login":"testuser","password":"wrongpass"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("GetUserByLogin", mock.Anything, "testuser").Return(user, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid login or password"}`,
		},
		{
			name:           "empty password",
			body:           `{"login":"testuser","password":""}`,
			setupMocks:     func(us *testutils.MockUserStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Login and password are required"}`,
		},
		{
			name: "storage failure",
			body: `{"login":"testuser","password":"testpass1"}`,
			setupMocks: func(us *testutils.MockUserStorage) {
				us.On("GetUserByLogin", mock.Anything, "testuser").Return(models.User{}, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			us := &testutils.MockUserStorage{}
			tt.setupMocks(us)

			handler := NewLoginHandler(usecase.NewUserUseCase(us, jwtSecret, time.Hour), zap.NewNop())
			req := httptest.NewRequest(http.MethodPost, "/api/user/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			} else {
				assert.Empty(t, w.Body.String())
			}
			if tt.expectedToken {
				assert.True(t, strings.HasPrefix(w.Header().Get("Authorization"), "Bearer "))
			}
			us.AssertExpectations(t)
		})
	}
}
