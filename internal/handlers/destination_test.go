package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
)

func TestDestinationCRUD(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	authHandler := auth.NewAuthHandler(cfg, db)
	handler := NewDestinationHandler(db, authHandler)

	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	adminAuth := authFor(t, authHandler, admin.ID)

	createReq := &CreateDestinationInput{AuthInput: adminAuth}
	createReq.Body.Name = "Lisbon"
	createReq.Body.Slug = "lisbon"
	createReq.Body.Continent = "Europe"
	createReq.Body.Country = "Portugal"
	createReq.Body.Tags = []string{"city", "coastal"}

	created, err := handler.HandleCreate(context.Background(), createReq)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}

	got, err := handler.HandleGet(context.Background(), &GetDestinationInput{ID: created.Body.ID})
	if err != nil {
		t.Fatalf("HandleGet returned error: %v", err)
	}
	if got.Body.Name != "Lisbon" || got.Body.Continent != "Europe" || got.Body.Country != "Portugal" {
		t.Errorf("fetched destination does not match created: %+v", got.Body)
	}
	if len(got.Body.Tags) != 2 {
		t.Errorf("expected 2 tags, got %d", len(got.Body.Tags))
	}

	bySlug, err := handler.HandleGetBySlug(context.Background(), &GetDestinationBySlugInput{Slug: "lisbon"})
	if err != nil {
		t.Fatalf("HandleGetBySlug returned error: %v", err)
	}
	if bySlug.Body.ID != created.Body.ID {
		t.Errorf("by-slug lookup returned a different destination")
	}

	newName := "Lisboa"
	updateReq := &UpdateDestinationInput{AuthInput: adminAuth, ID: created.Body.ID}
	updateReq.Body.Name = &newName
	updated, err := handler.HandleUpdate(context.Background(), updateReq)
	if err != nil {
		t.Fatalf("HandleUpdate returned error: %v", err)
	}
	if updated.Body.Name != "Lisboa" {
		t.Errorf("expected updated name 'Lisboa', got %q", updated.Body.Name)
	}
	if updated.Body.Country != "Portugal" {
		t.Errorf("partial update clobbered an untouched field: %q", updated.Body.Country)
	}

	deleted, err := handler.HandleDelete(context.Background(), &DeleteDestinationInput{AuthInput: adminAuth, ID: created.Body.ID})
	if err != nil {
		t.Fatalf("HandleDelete returned error: %v", err)
	}
	if !deleted.Body.Deleted || deleted.Body.ID != created.Body.ID {
		t.Errorf("unexpected delete response: %+v", deleted.Body)
	}

	if _, err := handler.HandleGet(context.Background(), &GetDestinationInput{ID: created.Body.ID}); err == nil {
		t.Fatal("expected NotFound after delete, got nil")
	}
}

func TestDestinationAdminGate(t *testing.T) {
	db := setupTestDB(t)
	authHandler := auth.NewAuthHandler(testConfig(), db)
	handler := NewDestinationHandler(db, authHandler)

	user := createUser(t, db, "user@example.com", models.RoleUser)
	userAuth := authFor(t, authHandler, user.ID)

	createReq := &CreateDestinationInput{AuthInput: userAuth}
	createReq.Body.Name = "Lisbon"
	createReq.Body.Slug = "lisbon"

	_, err := handler.HandleCreate(context.Background(), createReq)
	if err == nil {
		t.Fatal("expected error for non-admin create, got nil")
	}
	var se huma.StatusError
	if !asStatusError(err, &se) || se.GetStatus() != 403 {
		t.Errorf("expected 403, got %v", err)
	}

	// Not authenticated at all
	_, err = handler.HandleCreate(context.Background(), &CreateDestinationInput{})
	if err == nil {
		t.Fatal("expected error for unauthenticated create, got nil")
	}
	if !asStatusError(err, &se) || se.GetStatus() != 401 {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestDestinationPagination(t *testing.T) {
	db := setupTestDB(t)
	authHandler := auth.NewAuthHandler(testConfig(), db)
	handler := NewDestinationHandler(db, authHandler)

	for i := 1; i <= 12; i++ {
		d := models.Destination{
			Name:      fmt.Sprintf("Euro %d", i),
			Slug:      fmt.Sprintf("euro-%d", i),
			Continent: "Europe",
		}
		if err := db.Create(&d).Error; err != nil {
			t.Fatalf("failed to seed destination: %v", err)
		}
	}
	for i := 1; i <= 3; i++ {
		d := models.Destination{
			Name:      fmt.Sprintf("Asia %d", i),
			Slug:      fmt.Sprintf("asia-%d", i),
			Continent: "Asia",
		}
		if err := db.Create(&d).Error; err != nil {
			t.Fatalf("failed to seed destination: %v", err)
		}
	}

	req := &ListDestinationsInput{Continent: "Europe"}
	req.Page = 2
	req.Limit = 5
	res, err := handler.HandleList(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if res.Body.Total != 12 {
		t.Errorf("expected total 12, got %d", res.Body.Total)
	}
	if res.Body.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", res.Body.TotalPages)
	}
	if len(res.Body.Items) != 5 {
		t.Fatalf("expected 5 items on page 2, got %d", len(res.Body.Items))
	}
	if res.Body.Items[0].Name != "Euro 6" || res.Body.Items[4].Name != "Euro 10" {
		t.Errorf("expected items 6-10, got %q..%q", res.Body.Items[0].Name, res.Body.Items[4].Name)
	}

	// Out-of-range page clamps to the last page.
	req = &ListDestinationsInput{Continent: "Europe"}
	req.Page = 99
	req.Limit = 5
	res, err = handler.HandleList(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if res.Body.Page != 3 {
		t.Errorf("expected page clamped to 3, got %d", res.Body.Page)
	}
	if len(res.Body.Items) != 2 {
		t.Errorf("expected 2 items on the last page, got %d", len(res.Body.Items))
	}

	// Defaults apply when page/limit are absent.
	res, err = handler.HandleList(context.Background(), &ListDestinationsInput{})
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if res.Body.Page != 1 || res.Body.Limit != 20 {
		t.Errorf("expected default page=1 limit=20, got page=%d limit=%d", res.Body.Page, res.Body.Limit)
	}
	if res.Body.Total != 15 {
		t.Errorf("expected unfiltered total 15, got %d", res.Body.Total)
	}

	// An empty result set clamps the page to 1 regardless of what was asked.
	req = &ListDestinationsInput{Continent: "Antarctica"}
	req.Page = 5
	res, err = handler.HandleList(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if res.Body.Page != 1 || res.Body.TotalPages != 0 || res.Body.Total != 0 {
		t.Errorf("expected page=1 total_pages=0 on an empty set, got page=%d total_pages=%d total=%d",
			res.Body.Page, res.Body.TotalPages, res.Body.Total)
	}
	if len(res.Body.Items) != 0 {
		t.Errorf("expected no items, got %d", len(res.Body.Items))
	}
}
