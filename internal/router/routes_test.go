package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/AlenaMolokova/nationalcode/internal/storage"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store, err := storage.NewStorage(pool)
	require.NoError(t, err)

	return SetupRoutes(store, Options{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		Logger:    zap.NewNop(),
	})
}

func TestSetupRoutes(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{
			name:           "public validate",
			method:         http.MethodPost,
			path:           CodesPrefix + ValidatePath,
			body:           `{"code":"0371591333"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "history requires token",
			method:         http.MethodGet,
			path:           UserPrefix + ChecksPath,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "check requires token",
			method:         http.MethodPost,
			path:           UserPrefix + ChecksPath,
			body:           `{"code":"0371591333"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong method",
			method:         http.MethodGet,
			path:           CodesPrefix + ValidatePath,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "unknown path",
			method:         http.MethodGet,
			path:           "/api/nothing",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
