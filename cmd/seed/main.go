package main

import (
	"context"
	"log"
	"time"

	"hazardwatch/internal/config"
	mongorepo "hazardwatch/internal/repositories/mongodb"
	"hazardwatch/internal/scoring"
	"hazardwatch/internal/validators"
	"hazardwatch/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the hazards collection with sample reports. Existing records are
// cleared first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Clearing existing hazards...")
	if _, err := db.Collection("hazards").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear hazards: %v", err)
	}

	samples := []*validators.HazardInput{
		{
			HazardType:  "Wildfire",
			Severity:    "severe",
			Description: "Large wildfire spreading rapidly through forest area.",
			Location:    "41.2132,-124.0046",
			Tags:        `["help","warning"]`,
			Source:      "Drone Footage",
			Verified:    "true",
			HasVerified: true,
			ReportedBy:  "Fire Department",
		},
		{
			HazardType:  "Flood",
			Severity:    "high",
			Description: "Severe flooding in residential areas.",
			Location:    "38.5556,-121.4689",
			Tags:        `["warning"]`,
			Source:      "Citizen Report",
			ReportedBy:  "Local Resident",
		},
		{
			HazardType:  "Earthquake",
			Severity:    "moderate",
			Description: "Magnitude 4.8 tremor felt across the valley.",
			Location:    "34.0522,-118.2437",
			Tags:        `["info"]`,
			Source:      "Sensor Data",
			ReportedBy:  "Seismic Network",
		},
	}

	repo := mongorepo.NewHazardRepository(db)
	estimator := scoring.NewEstimator(nil)

	log.Println("Seeding sample hazards...")
	inserted := 0
	for _, input := range samples {
		hazard, err := validators.ValidateCreate(input, estimator)
		if err != nil {
			log.Fatalf("Invalid sample hazard: %v", err)
		}
		if _, err := repo.Create(ctx, hazard); err != nil {
			log.Fatalf("Failed to insert hazard: %v", err)
		}
		inserted++
	}

	log.Printf("Inserted %d hazards", inserted)
}
