package handlers

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/roamline/roamline-api/internal/auth"
	"github.com/roamline/roamline-api/internal/models"
)

func TestHotelDeleteCascadesRooms(t *testing.T) {
	db := setupTestDB(t)
	authHandler := auth.NewAuthHandler(testConfig(), db)
	handler := NewHotelHandler(db, authHandler)

	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	adminAuth := authFor(t, authHandler, admin.ID)

	hotel := models.Hotel{Name: "Casa do Rio", Slug: "casa-do-rio"}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("failed to create hotel: %v", err)
	}
	other := models.Hotel{Name: "Riad Amira", Slug: "riad-amira"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("failed to create hotel: %v", err)
	}

	for i := 0; i < 3; i++ {
		room := models.Room{HotelID: hotel.ID, Name: "Room", PricePerNight: 100}
		if err := db.Create(&room).Error; err != nil {
			t.Fatalf("failed to create room: %v", err)
		}
	}
	keeper := models.Room{HotelID: other.ID, Name: "Keeper", PricePerNight: 90}
	if err := db.Create(&keeper).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}

	_, err := handler.HandleDelete(context.Background(), &DeleteHotelInput{AuthInput: adminAuth, ID: hotel.ID})
	if err != nil {
		t.Fatalf("HandleDelete returned error: %v", err)
	}

	var count int64
	db.Model(&models.Room{}).Where("hotel_id = ?", hotel.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 rooms for deleted hotel, got %d", count)
	}

	db.Model(&models.Room{}).Where("hotel_id = ?", other.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected the other hotel's room to survive, got %d", count)
	}

	if _, err := handler.HandleGet(context.Background(), &GetHotelInput{ID: hotel.ID}); err == nil {
		t.Fatal("expected NotFound for deleted hotel, got nil")
	}
}

func TestHotelListFilters(t *testing.T) {
	db := setupTestDB(t)
	authHandler := auth.NewAuthHandler(testConfig(), db)
	handler := NewHotelHandler(db, authHandler)

	destination := models.Destination{Name: "Lisbon", Slug: "lisbon"}
	if err := db.Create(&destination).Error; err != nil {
		t.Fatalf("failed to create destination: %v", err)
	}

	hotels := []models.Hotel{
		{Name: "A", Slug: "a", DestinationID: destination.ID, Rating: 4.5},
		{Name: "B", Slug: "b", DestinationID: destination.ID, Rating: 3.2},
		{Name: "C", Slug: "c", Rating: 4.9},
	}
	for i := range hotels {
		if err := db.Create(&hotels[i]).Error; err != nil {
			t.Fatalf("failed to create hotel: %v", err)
		}
	}

	req := &ListHotelsInput{DestinationID: destination.ID, MinRating: 4.0}
	res, err := handler.HandleList(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(res.Body.Items) != 1 || res.Body.Items[0].Name != "A" {
		t.Errorf("expected only hotel A, got %+v", res.Body.Items)
	}
	if res.Body.Items[0].Destination.ID != destination.ID {
		t.Errorf("expected destination to be populated on read")
	}
}

func TestRoomListByHotel(t *testing.T) {
	db := setupTestDB(t)
	authHandler := auth.NewAuthHandler(testConfig(), db)
	handler := NewRoomHandler(db, authHandler)

	hotel := models.Hotel{Name: "Casa do Rio", Slug: "casa-do-rio"}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("failed to create hotel: %v", err)
	}
	rooms := []models.Room{
		{HotelID: hotel.ID, Name: "Small", Capacity: 2, PricePerNight: 120},
		{HotelID: hotel.ID, Name: "Big", Capacity: 4, PricePerNight: 260},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			t.Fatalf("failed to create room: %v", err)
		}
	}

	req := &ListRoomsInput{HotelID: hotel.ID, MinCapacity: 3}
	res, err := handler.HandleListByHotel(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleListByHotel returned error: %v", err)
	}
	if len(res.Body.Items) != 1 || res.Body.Items[0].Name != "Big" {
		t.Errorf("expected only the big room, got %+v", res.Body.Items)
	}

	var se huma.StatusError
	_, err = handler.HandleListByHotel(context.Background(), &ListRoomsInput{HotelID: 9999})
	if err == nil || !asStatusError(err, &se) || se.GetStatus() != 404 {
		t.Errorf("expected 404 for unknown hotel, got %v", err)
	}
}
