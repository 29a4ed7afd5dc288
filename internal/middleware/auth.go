package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dvdgp9/gema8-go/internal/config"
	"github.com/dvdgp9/gema8-go/internal/model"
)

type contextKey string

const UserContextKey contextKey = "user"

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtSecret []byte
	expHours  int
}

func NewAuthMiddleware(cfg config.JWTConfig) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: []byte(cfg.Secret),
		expHours:  cfg.ExpirationHours,
	}
}

// Authenticate middleware checks for a valid bearer token
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := m.ValidateToken(tokenStr)
			if err == nil {
				ctx := context.WithValue(r.Context(), UserContextKey, claims)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		http.Error(w, `{"error": "unauthorized"}`, http.StatusUnauthorized)
	})
}

// RequireOracle middleware checks for the Oracle (admin) role
func (m *AuthMiddleware) RequireOracle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserFromContext(r.Context())
		if claims == nil || claims.Role != model.RoleOracle {
			http.Error(w, `{"error": "forbidden"}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GenerateToken creates a new JWT for the user
func (m *AuthMiddleware) GenerateToken(userID int64, email string, role model.Role) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(m.expHours) * time.Hour)

	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(m.jwtSecret)
	if err != nil {
		return "", 0, err
	}

	return tokenStr, expiresAt.Unix(), nil
}

// ValidateToken validates a JWT and returns its claims
func (m *AuthMiddleware) ValidateToken(tokenStr string) (*model.TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &model.TokenClaims{
		UserID: int64(userID),
		Email:  email,
		Role:   model.Role(role),
	}, nil
}

// GetUserFromContext extracts user claims from the request context
func GetUserFromContext(ctx context.Context) *model.TokenClaims {
	claims, ok := ctx.Value(UserContextKey).(*model.TokenClaims)
	if !ok {
		return nil
	}
	return claims
}
