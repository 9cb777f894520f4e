package handlers

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
)

func TestContentBlockUpsert(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	authHandler := auth.NewAuthHandler(cfg, db)
	handler := NewContentHandler(db, authHandler)

	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	user := createUser(t, db, "user@example.com", models.RoleUser)
	adminAuth := authFor(t, authHandler, admin.ID)

	req := &UpsertContentBlockInput{AuthInput: adminAuth}
	req.Body.Key = "homepage-hero"
	req.Body.Title = "Go further"
	req.Body.Body = "Trips crafted by people who have been there."
	res, err := handler.HandleUpsertContentBlock(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleUpsertContentBlock returned error: %v", err)
	}
	firstID := res.Body.ID

	// Writing to the same key updates in place instead of duplicating.
	req = &UpsertContentBlockInput{AuthInput: adminAuth}
	req.Body.Key = "homepage-hero"
	req.Body.Title = "Go even further"
	res, err = handler.HandleUpsertContentBlock(context.Background(), req)
	if err != nil {
		t.Fatalf("second upsert returned error: %v", err)
	}
	if res.Body.ID != firstID {
		t.Errorf("upsert created a new row: id %d, want %d", res.Body.ID, firstID)
	}
	if res.Body.Title != "Go even further" {
		t.Errorf("expected updated title, got %q", res.Body.Title)
	}

	var count int64
	db.Model(&models.ContentBlock{}).Where("key = ?", "homepage-hero").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 block for the key, got %d", count)
	}

	list, err := handler.HandleListContentBlocks(context.Background(), &struct{}{})
	if err != nil {
		t.Fatalf("HandleListContentBlocks returned error: %v", err)
	}
	if len(list.Body) != 1 {
		t.Errorf("expected 1 block listed, got %d", len(list.Body))
	}

	var se huma.StatusError
	req = &UpsertContentBlockInput{AuthInput: authFor(t, authHandler, user.ID)}
	req.Body.Key = "homepage-hero"
	_, err = handler.HandleUpsertContentBlock(context.Background(), req)
	if err == nil || !asStatusError(err, &se) || se.GetStatus() != 403 {
		t.Errorf("expected 403 for non-admin upsert, got %v", err)
	}
}
