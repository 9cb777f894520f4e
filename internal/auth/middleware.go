package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/roamline/roamline-api/internal/models"
)

// AuthInput is embedded by every protected operation's input struct.
// The identity can arrive as a bearer token, the auth_token cookie set
// by the OAuth callback, or a personal API key.
type AuthInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	Cookie        string `header:"Cookie"`
	APIKey        string `header:"X-API-Key" doc:"Personal API key"`
}

// Authorize resolves the calling user id or fails with 401. Business
// logic never runs without it.
func (h *AuthHandler) Authorize(ctx context.Context, input AuthInput) (uint, error) {
	if input.APIKey != "" {
		var keyModel models.APIKey
		if err := h.db.Where("key = ?", input.APIKey).First(&keyModel).Error; err == nil {
			if keyModel.ExpiresAt != nil && time.Now().After(*keyModel.ExpiresAt) {
				return 0, huma.Error401Unauthorized("API key expired")
			}
			h.db.Model(&keyModel).Update("last_used_at", time.Now())
			return keyModel.UserID, nil
		}
		return 0, huma.Error401Unauthorized("Invalid API key")
	}

	tokenString := ""
	if strings.HasPrefix(input.Authorization, "Bearer ") {
		tokenString = strings.TrimPrefix(input.Authorization, "Bearer ")
	} else if v := cookieValue(input.Cookie, "auth_token"); v != "" {
		tokenString = v
	}
	if tokenString == "" {
		return 0, huma.Error401Unauthorized("No token found")
	}

	userID, err := h.ParseToken(tokenString)
	if err != nil {
		return 0, huma.Error401Unauthorized("Invalid token")
	}
	return userID, nil
}

func (h *AuthHandler) ParseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid claims")
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid user_id claim")
	}
	return uint(userIDFloat), nil
}

// RequireAdmin loads the user and rejects unless role is admin.
func (h *AuthHandler) RequireAdmin(userID uint) (*models.User, error) {
	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		return nil, huma.Error401Unauthorized("User not found")
	}
	if user.Role != models.RoleAdmin {
		return nil, huma.Error403Forbidden("Admin role required")
	}
	return &user, nil
}

func cookieValue(header, name string) string {
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, name+"=") {
			return strings.TrimPrefix(part, name+"=")
		}
	}
	return ""
}
