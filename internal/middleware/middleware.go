package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/AlenaMolokova/nationalcode/internal/constants"
	"github.com/AlenaMolokova/nationalcode/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type userIDKey struct{}

func AuthMiddleware(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.Debug("missing or malformed authorization header")
				utils.WriteJSONError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			}, jwt.WithExpirationRequired())
			if err != nil || !token.Valid {
				logger.Debug("rejected token", zap.Error(err))
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			userIDFloat, ok := claims[constants.ClaimUserID].(float64)
			if !ok {
				logger.Debug("user_id not found in claims")
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			ctx := WithUserID(r.Context(), int64(userIDFloat))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func GetUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(userIDKey{}).(int64)
	return userID, ok
}
