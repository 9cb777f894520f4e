package auth

import (
	"context"
	"testing"
	"time"

	"github.com/roamline/roamline-api/internal/models"
)

func TestAuthorizeBearerAndCookie(t *testing.T) {
	handler, db := testHandler(t)

	user := models.User{Email: "user@example.com", Role: models.RoleUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	token, err := handler.GenerateToken(user.ID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	got, err := handler.Authorize(context.Background(), AuthInput{Authorization: "Bearer " + token})
	if err != nil {
		t.Fatalf("bearer authorize failed: %v", err)
	}
	if got != user.ID {
		t.Errorf("bearer resolves to %d, want %d", got, user.ID)
	}

	got, err = handler.Authorize(context.Background(), AuthInput{Cookie: "theme=dark; auth_token=" + token})
	if err != nil {
		t.Fatalf("cookie authorize failed: %v", err)
	}
	if got != user.ID {
		t.Errorf("cookie resolves to %d, want %d", got, user.ID)
	}

	if _, err := handler.Authorize(context.Background(), AuthInput{}); err == nil {
		t.Error("expected error when no credentials are supplied")
	}
	if _, err := handler.Authorize(context.Background(), AuthInput{Authorization: "Bearer garbage"}); err == nil {
		t.Error("expected error for a malformed token")
	}
}

func TestAuthorizeAPIKey(t *testing.T) {
	handler, db := testHandler(t)

	user := models.User{Email: "user@example.com", Role: models.RoleUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	key := models.APIKey{UserID: user.ID, Key: "rk_live_abc", Name: "ci"}
	if err := db.Create(&key).Error; err != nil {
		t.Fatalf("failed to create api key: %v", err)
	}

	got, err := handler.Authorize(context.Background(), AuthInput{APIKey: "rk_live_abc"})
	if err != nil {
		t.Fatalf("api key authorize failed: %v", err)
	}
	if got != user.ID {
		t.Errorf("api key resolves to %d, want %d", got, user.ID)
	}

	var refreshed models.APIKey
	db.First(&refreshed, key.ID)
	if refreshed.LastUsedAt == nil {
		t.Error("expected last_used_at to be stamped")
	}

	if _, err := handler.Authorize(context.Background(), AuthInput{APIKey: "rk_live_nope"}); err == nil {
		t.Error("expected error for unknown api key")
	}

	expiry := time.Now().Add(-time.Hour)
	expired := models.APIKey{UserID: user.ID, Key: "rk_live_old", Name: "stale", ExpiresAt: &expiry}
	if err := db.Create(&expired).Error; err != nil {
		t.Fatalf("failed to create api key: %v", err)
	}
	if _, err := handler.Authorize(context.Background(), AuthInput{APIKey: "rk_live_old"}); err == nil {
		t.Error("expected error for expired api key")
	}
}

func TestRequireAdmin(t *testing.T) {
	handler, db := testHandler(t)

	admin := models.User{Email: "admin@example.com", Role: models.RoleAdmin}
	regular := models.User{Email: "user@example.com", Role: models.RoleUser}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if err := db.Create(&regular).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	got, err := handler.RequireAdmin(admin.ID)
	if err != nil {
		t.Fatalf("RequireAdmin rejected an admin: %v", err)
	}
	if got.ID != admin.ID {
		t.Errorf("unexpected user %d", got.ID)
	}

	if _, err := handler.RequireAdmin(regular.ID); err == nil || statusOf(t, err) != 403 {
		t.Errorf("expected 403 for non-admin, got %v", err)
	}
	if _, err := handler.RequireAdmin(9999); err == nil || statusOf(t, err) != 401 {
		t.Errorf("expected 401 for missing user, got %v", err)
	}
}
