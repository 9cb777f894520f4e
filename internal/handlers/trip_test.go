package handlers

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
)

func TestTripOwnership(t *testing.T) {
	db := setupTestDB(t)
	authHandler := auth.NewAuthHandler(testConfig(), db)
	handler := NewTripHandler(db, authHandler)

	alice := createUser(t, db, "alice@example.com", models.RoleUser)
	bob := createUser(t, db, "bob@example.com", models.RoleUser)
	aliceAuth := authFor(t, authHandler, alice.ID)
	bobAuth := authFor(t, authHandler, bob.ID)

	createReq := &CreateTripInput{AuthInput: aliceAuth}
	createReq.Body.Title = "Summer in Portugal"
	created, err := handler.HandleCreate(context.Background(), createReq)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	if created.Body.UserID != alice.ID {
		t.Errorf("expected owner %d, got %d", alice.ID, created.Body.UserID)
	}
	if created.Body.Status != models.TripStatusDraft {
		t.Errorf("expected new trip status draft, got %q", created.Body.Status)
	}

	// Owner can read.
	if _, err := handler.HandleGet(context.Background(), &GetTripInput{AuthInput: aliceAuth, ID: created.Body.ID}); err != nil {
		t.Fatalf("owner get returned error: %v", err)
	}

	// Another user cannot.
	var se huma.StatusError
	_, err = handler.HandleGet(context.Background(), &GetTripInput{AuthInput: bobAuth, ID: created.Body.ID})
	if err == nil || !asStatusError(err, &se) || se.GetStatus() != 403 {
		t.Errorf("expected 403 for non-owner get, got %v", err)
	}

	title := "Hijacked"
	updateReq := &UpdateTripInput{AuthInput: bobAuth, ID: created.Body.ID}
	updateReq.Body.Title = &title
	_, err = handler.HandleUpdate(context.Background(), updateReq)
	if err == nil || !asStatusError(err, &se) || se.GetStatus() != 403 {
		t.Errorf("expected 403 for non-owner update, got %v", err)
	}

	// Admin endpoints bypass ownership.
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	adminAuth := authFor(t, authHandler, admin.ID)
	if _, err := handler.HandleAdminGet(context.Background(), &GetTripInput{AuthInput: adminAuth, ID: created.Body.ID}); err != nil {
		t.Fatalf("admin get returned error: %v", err)
	}
	// ...but only for admins.
	_, err = handler.HandleAdminGet(context.Background(), &GetTripInput{AuthInput: bobAuth, ID: created.Body.ID})
	if err == nil || !asStatusError(err, &se) || se.GetStatus() != 403 {
		t.Errorf("expected 403 for non-admin on admin route, got %v", err)
	}
}

func TestTripItineraryReplacedWholesale(t *testing.T) {
	db := setupTestDB(t)
	authHandler := auth.NewAuthHandler(testConfig(), db)
	handler := NewTripHandler(db, authHandler)

	user := createUser(t, db, "user@example.com", models.RoleUser)
	userAuth := authFor(t, authHandler, user.ID)

	createReq := &CreateTripInput{AuthInput: userAuth}
	createReq.Body.Title = "Andes"
	createReq.Body.Itinerary = []models.ItineraryItem{
		{Type: models.ItemTypeTour, ProductID: "1", Title: "Trek"},
		{Type: models.ItemTypeActivity, Title: "Market walk"},
	}
	created, err := handler.HandleCreate(context.Background(), createReq)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	if len(created.Body.Itinerary) != 2 {
		t.Fatalf("expected 2 itinerary items, got %d", len(created.Body.Itinerary))
	}

	replacement := []models.ItineraryItem{
		{Type: models.ItemTypeHotel, ProductID: "7", Title: "Casa do Rio"},
	}
	updateReq := &UpdateTripInput{AuthInput: userAuth, ID: created.Body.ID}
	updateReq.Body.Itinerary = &replacement
	updated, err := handler.HandleUpdate(context.Background(), updateReq)
	if err != nil {
		t.Fatalf("HandleUpdate returned error: %v", err)
	}
	if len(updated.Body.Itinerary) != 1 || updated.Body.Itinerary[0].Title != "Casa do Rio" {
		t.Errorf("expected itinerary replaced wholesale, got %+v", updated.Body.Itinerary)
	}
	if updated.Body.Title != "Andes" {
		t.Errorf("update without title clobbered it: %q", updated.Body.Title)
	}

	// Round-trip through the store, not just the handler's return value.
	var stored models.Trip
	if err := db.First(&stored, created.Body.ID).Error; err != nil {
		t.Fatalf("failed to load trip: %v", err)
	}
	if len(stored.Itinerary) != 1 || stored.Itinerary[0].ProductID != "7" {
		t.Errorf("stored itinerary does not match update: %+v", stored.Itinerary)
	}
}

func TestTripListScopedToCaller(t *testing.T) {
	db := setupTestDB(t)
	authHandler := auth.NewAuthHandler(testConfig(), db)
	handler := NewTripHandler(db, authHandler)

	alice := createUser(t, db, "alice@example.com", models.RoleUser)
	bob := createUser(t, db, "bob@example.com", models.RoleUser)

	for _, owner := range []uint{alice.ID, alice.ID, bob.ID} {
		trip := models.Trip{UserID: owner, Title: "T", Status: models.TripStatusDraft}
		if err := db.Create(&trip).Error; err != nil {
			t.Fatalf("failed to create trip: %v", err)
		}
	}

	res, err := handler.HandleListMine(context.Background(), &ListTripsInput{AuthInput: authFor(t, authHandler, alice.ID)})
	if err != nil {
		t.Fatalf("HandleListMine returned error: %v", err)
	}
	if len(res.Body.Items) != 2 {
		t.Errorf("expected 2 trips for alice, got %d", len(res.Body.Items))
	}
	for _, trip := range res.Body.Items {
		if trip.UserID != alice.ID {
			t.Errorf("list leaked a trip owned by %d", trip.UserID)
		}
	}

	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	adminRes, err := handler.HandleAdminList(context.Background(), &AdminListTripsInput{AuthInput: authFor(t, authHandler, admin.ID)})
	if err != nil {
		t.Fatalf("HandleAdminList returned error: %v", err)
	}
	if adminRes.Body.Total != 3 {
		t.Errorf("expected admin list total 3, got %d", adminRes.Body.Total)
	}
}
