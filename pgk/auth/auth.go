package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const tokenDataContextKey contextKey = "auth/token"

var unauthorizedBody = []byte(`{"error":"unauthorized"}`)

type Claims[T any] struct {
	jwt.RegisteredClaims
	TokenInfo T
}

// GenerateBearerToken - exp == 0 выпускает бессрочный токен (для сервисных клиентов)
func GenerateBearerToken[T any](input T, exp time.Duration, secret string) (token string, err error) {
	now := time.Now()

	claims := &Claims[T]{
		TokenInfo: input,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if exp > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(exp))
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Bearer %s", token), nil
}

func VerifyJWTBearerToken[T any](tokenString, secret string) (*T, error) {
	claims := &Claims[T]{}

	scheme, rawToken, ok := strings.Cut(strings.TrimSpace(tokenString), " ")
	if !ok || rawToken == "" || strings.Contains(rawToken, " ") {
		return nil, jwt.ErrSignatureInvalid
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return nil, jwt.ErrInvalidType
	}

	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &claims.TokenInfo, nil
}

// AuthBearerMiddlewareInit - пропускает только запросы с валидным Authorization: Bearer <jwt>.
// OPTIONS не проверяется, preflight браузера заголовок не передаёт.
func AuthBearerMiddlewareInit[T any](secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenInfo, err := VerifyJWTBearerToken[T](r.Header.Get("Authorization"), secret)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write(unauthorizedBody)
				return
			}

			ctx := context.WithValue(r.Context(), tokenDataContextKey, tokenInfo)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetTokenInfo[T any](r *http.Request) *T {
	tokenInfo, ok := r.Context().Value(tokenDataContextKey).(*T)
	if !ok {
		return nil
	}

	return tokenInfo
}
