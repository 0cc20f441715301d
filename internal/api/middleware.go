package api

import (
	"context"
	"errors"
	"net/http"

	"calctool/internal/auth"
)

type ContextKey string

const (
	UserIDKey    ContextKey = "user_id"
	UserLoginKey ContextKey = "user_login"
)

// AuthMiddleware проверяет JWT токен и добавляет данные пользователя в контекст
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := auth.ExtractTokenFromRequest(r)
		if tokenString == "" {
			SendErrorResponse(w, http.StatusUnauthorized, "Unauthorized: no token provided")
			return
		}

		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			message := "Unauthorized: invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Unauthorized: token has expired"
			}
			SendErrorResponse(w, http.StatusUnauthorized, message)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserLoginKey, claims.Login)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext извлекает ID пользователя из контекста
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

// GetUserLoginFromContext извлекает логин пользователя из контекста
func GetUserLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(UserLoginKey).(string)
	return login, ok
}
