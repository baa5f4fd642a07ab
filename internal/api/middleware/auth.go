// Package middleware HTTP middleware сервиса
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// UserIDHeader заголовок с ID пользователя, который выставляет API gateway
const UserIDHeader = "X-User-ID"

// MsgMissingUserID текст ответа 401
const MsgMissingUserID = "missing " + UserIDHeader + " header"

type userIDKey struct{}

// Auth требует заголовок X-User-ID и кладет ID пользователя в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"code":    http.StatusUnauthorized,
				"message": MsgMissingUserID,
			})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// OptionalAuth кладет ID пользователя в контекст, если заголовок передан
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := strings.TrimSpace(r.Header.Get(UserIDHeader)); userID != "" {
			r = r.WithContext(WithUserID(r.Context(), userID))
		}
		next.ServeHTTP(w, r)
	})
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}
