package main

import (
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/roamline/roamline-api/internal/config"
	"github.com/roamline/roamline-api/internal/database"
	"github.com/roamline/roamline-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds an admin user, a starter catalog and the content collections.
// Safe to run more than once: everything is keyed on its natural key.
func main() {
	cfg := config.LoadConfig()
	db := database.Connect(cfg)

	seedAdmin(db)
	destinations := seedDestinations(db)
	seedTours(db, destinations)
	seedHotels(db, destinations)
	seedContent(db)

	log.Println("Seed complete")
}

func seedAdmin(db *gorm.DB) {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		log.Println("SEED_ADMIN_PASSWORD not set; skipping admin user")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	var admin models.User
	if err := db.FirstOrInit(&admin, models.User{Email: "admin@roamline.travel"}).Error; err != nil {
		log.Fatalf("Failed to load admin user: %v", err)
	}
	admin.Name = "Roamline Admin"
	admin.Role = models.RoleAdmin
	admin.PasswordHash = string(hash)
	if err := db.Save(&admin).Error; err != nil {
		log.Fatalf("Failed to save admin user: %v", err)
	}

	var key models.APIKey
	err = db.Where("user_id = ? AND name = ?", admin.ID, "seed").First(&key).Error
	if err == gorm.ErrRecordNotFound {
		key = models.APIKey{
			UserID: admin.ID,
			Name:   "seed",
			Key:    strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", ""),
		}
		if err := db.Create(&key).Error; err != nil {
			log.Fatalf("Failed to create admin API key: %v", err)
		}
		log.Printf("Admin API key: %s", key.Key)
	}
}

func seedDestinations(db *gorm.DB) map[string]models.Destination {
	seeds := []models.Destination{
		{Name: "Lisbon", Slug: "lisbon", Continent: "Europe", Country: "Portugal",
			Tagline: "Hills, tiles and Atlantic light", Tags: []string{"city", "coastal", "food"}},
		{Name: "Kyoto", Slug: "kyoto", Continent: "Asia", Country: "Japan",
			Tagline: "Temples and tea houses", Tags: []string{"culture", "history"}},
		{Name: "Cusco", Slug: "cusco", Continent: "South America", Country: "Peru",
			Tagline: "Gateway to the Andes", Tags: []string{"mountains", "adventure"}},
		{Name: "Marrakech", Slug: "marrakech", Continent: "Africa", Country: "Morocco",
			Tagline: "Souks and riads", Tags: []string{"markets", "desert"}},
	}

	out := make(map[string]models.Destination, len(seeds))
	for _, seed := range seeds {
		var d models.Destination
		if err := db.Where(models.Destination{Slug: seed.Slug}).Attrs(seed).FirstOrCreate(&d).Error; err != nil {
			log.Fatalf("Failed to seed destination %s: %v", seed.Slug, err)
		}
		out[d.Slug] = d
	}
	return out
}

func seedTours(db *gorm.DB, destinations map[string]models.Destination) {
	seeds := []models.Tour{
		{
			Title: "Sacred Valley Trek", Slug: "sacred-valley-trek",
			DurationDays: 5, PriceFrom: 1290,
			Destinations: []models.Destination{destinations["cusco"]},
			Itinerary: []models.TourDay{
				{Day: 1, Title: "Cusco acclimatization"},
				{Day: 2, Title: "Pisac and the valley floor"},
				{Day: 3, Title: "Ollantaytambo"},
				{Day: 4, Title: "Machu Picchu"},
				{Day: 5, Title: "Return to Cusco"},
			},
		},
		{
			Title: "Kyoto Craft and Cuisine", Slug: "kyoto-craft-cuisine",
			DurationDays: 4, PriceFrom: 980,
			Destinations: []models.Destination{destinations["kyoto"]},
		},
		{
			Title: "Atlantic Portugal", Slug: "atlantic-portugal",
			DurationDays: 7, PriceFrom: 1450,
			Destinations: []models.Destination{destinations["lisbon"]},
		},
	}

	for _, seed := range seeds {
		var t models.Tour
		if err := db.Where(models.Tour{Slug: seed.Slug}).Attrs(seed).FirstOrCreate(&t).Error; err != nil {
			log.Fatalf("Failed to seed tour %s: %v", seed.Slug, err)
		}
	}
}

func seedHotels(db *gorm.DB, destinations map[string]models.Destination) {
	type hotelSeed struct {
		hotel models.Hotel
		rooms []models.Room
	}
	seeds := []hotelSeed{
		{
			hotel: models.Hotel{
				Name: "Casa do Rio", Slug: "casa-do-rio",
				DestinationID: destinations["lisbon"].ID, Rating: 4.6,
				Amenities: []string{"rooftop", "breakfast", "wifi"},
			},
			rooms: []models.Room{
				{Name: "Garden Double", Capacity: 2, BedType: "queen", PricePerNight: 140, Inventory: 6},
				{Name: "River Suite", Capacity: 3, BedType: "king", PricePerNight: 240, Inventory: 2},
			},
		},
		{
			hotel: models.Hotel{
				Name: "Riad Amira", Slug: "riad-amira",
				DestinationID: destinations["marrakech"].ID, Rating: 4.8,
				Amenities: []string{"courtyard pool", "hammam"},
			},
			rooms: []models.Room{
				{Name: "Courtyard Room", Capacity: 2, BedType: "double", PricePerNight: 95, Inventory: 4},
			},
		},
	}

	for _, seed := range seeds {
		var h models.Hotel
		if err := db.Where(models.Hotel{Slug: seed.hotel.Slug}).Attrs(seed.hotel).FirstOrCreate(&h).Error; err != nil {
			log.Fatalf("Failed to seed hotel %s: %v", seed.hotel.Slug, err)
		}
		for _, room := range seed.rooms {
			room.HotelID = h.ID
			var r models.Room
			if err := db.Where(models.Room{HotelID: h.ID, Name: room.Name}).Attrs(room).FirstOrCreate(&r).Error; err != nil {
				log.Fatalf("Failed to seed room %s: %v", room.Name, err)
			}
		}
	}
}

func seedContent(db *gorm.DB) {
	blocks := []models.ContentBlock{
		{Key: "home.hero", Title: "Go further, plan less", Body: "Build the trip, we handle the rest."},
		{Key: "home.cta", Title: "Start planning", Body: "Your next itinerary is three clicks away."},
	}
	for _, seed := range blocks {
		var b models.ContentBlock
		if err := db.Where(models.ContentBlock{Key: seed.Key}).Attrs(seed).FirstOrCreate(&b).Error; err != nil {
			log.Fatalf("Failed to seed content block %s: %v", seed.Key, err)
		}
	}

	categories := []models.Category{
		{Slug: "adventure", Name: "Adventure"},
		{Slug: "food-and-wine", Name: "Food & Wine"},
		{Slug: "culture", Name: "Culture"},
	}
	for _, seed := range categories {
		var c models.Category
		if err := db.Where(models.Category{Slug: seed.Slug}).Attrs(seed).FirstOrCreate(&c).Error; err != nil {
			log.Fatalf("Failed to seed category %s: %v", seed.Slug, err)
		}
	}

	templates := []models.TripTemplate{
		{
			Slug: "andes-classic", Title: "Andes Classic", DurationDays: 7,
			Itinerary: []models.ItineraryItem{
				{Type: models.ItemTypeTour, Title: "Sacred Valley Trek"},
				{Type: models.ItemTypeActivity, Title: "San Pedro market walk"},
			},
		},
	}
	for _, seed := range templates {
		var t models.TripTemplate
		if err := db.Where(models.TripTemplate{Slug: seed.Slug}).Attrs(seed).FirstOrCreate(&t).Error; err != nil {
			log.Fatalf("Failed to seed trip template %s: %v", seed.Slug, err)
		}
	}

	starters := []models.ConciergeStarter{
		{Prompt: "Plan a week of food in Lisbon", Category: "food-and-wine"},
		{Prompt: "Family-friendly Kyoto in four days", Category: "culture"},
	}
	for _, seed := range starters {
		var s models.ConciergeStarter
		if err := db.Where(models.ConciergeStarter{Prompt: seed.Prompt}).Attrs(seed).FirstOrCreate(&s).Error; err != nil {
			log.Fatalf("Failed to seed concierge starter: %v", err)
		}
	}

	tiers := []models.LoyaltyTier{
		{Key: "wanderer", Name: "Wanderer", MinPoints: 0, Perks: []string{"member rates"}},
		{Key: "voyager", Name: "Voyager", MinPoints: 5000, Perks: []string{"member rates", "late checkout"}},
		{Key: "pathfinder", Name: "Pathfinder", MinPoints: 20000, Perks: []string{"member rates", "late checkout", "room upgrades"}},
	}
	for _, seed := range tiers {
		var tier models.LoyaltyTier
		if err := db.Where(models.LoyaltyTier{Key: seed.Key}).Attrs(seed).FirstOrCreate(&tier).Error; err != nil {
			log.Fatalf("Failed to seed loyalty tier %s: %v", seed.Key, err)
		}
	}

	benefits := []models.Benefit{
		{Title: "Price captured at booking", Description: "Catalog changes never touch a placed booking."},
		{Title: "Concierge planning", Description: "Start from a template or a prompt."},
	}
	for _, seed := range benefits {
		var b models.Benefit
		if err := db.Where(models.Benefit{Title: seed.Title}).Attrs(seed).FirstOrCreate(&b).Error; err != nil {
			log.Fatalf("Failed to seed benefit: %v", err)
		}
	}

	rewards := []models.Reward{
		{Title: "Airport transfer", Cost: 2500, TierKey: "voyager"},
		{Title: "Free night", Cost: 12000, TierKey: "pathfinder"},
	}
	for _, seed := range rewards {
		var r models.Reward
		if err := db.Where(models.Reward{Title: seed.Title}).Attrs(seed).FirstOrCreate(&r).Error; err != nil {
			log.Fatalf("Failed to seed reward: %v", err)
		}
	}
}
