// Command seed loads the demonstration fleet and category set into the
// document store so a fresh deployment has a browsable catalog.
package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/savannadrive/savanna-rentals/internal/config"
	"github.com/savannadrive/savanna-rentals/internal/db"
	"github.com/savannadrive/savanna-rentals/internal/models"
	"github.com/savannadrive/savanna-rentals/internal/rental"
)

func demoCategories() []models.CarCategory {
	return []models.CarCategory{
		{
			Title:       "Safari 4x4 Vehicles",
			Description: "Rugged off-road vehicles perfect for Kenyan terrain",
			Image:       "https://images.unsplash.com/photo-1519641471654-76ce0107ad1b?w=800&h=600&fit=crop",
			PriceFrom:   "12,000",
			Features:    []string{"4WD capability", "High ground clearance", "Spacious for gear", "Experienced safari drivers"},
			Popular:     true,
		},
		{
			Title:       "Economy Cars",
			Description: "Fuel-efficient options for city driving",
			Image:       "https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&h=600&fit=crop",
			PriceFrom:   "4,500",
			Features:    []string{"Great fuel economy", "Compact size", "AC & modern features", "Ideal for 1-3 passengers"},
		},
		{
			Title:       "Luxury Sedans",
			Description: "Premium comfort for business or leisure",
			Image:       "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800&h=600&fit=crop",
			PriceFrom:   "15,000",
			Features:    []string{"Leather interiors", "Premium sound system", "Executive class", "Chauffeur available"},
		},
		{
			Title:       "Family SUVs",
			Description: "Spacious vehicles for family trips",
			Image:       "https://images.unsplash.com/photo-1566473965997-3de9c817e938?w=800&h=600&fit=crop",
			PriceFrom:   "8,000",
			Features:    []string{"7-8 passenger capacity", "Child seat options", "Ample luggage space", "Comfortable for long drives"},
		},
	}
}

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to read config")
	}

	client, err := db.ConnectMongo(cfg.Mongo.URI)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())

	database := client.Database(cfg.Mongo.Database)
	cars := &db.MongoCarCollection{Collection: database.Collection(db.CarsCollection)}
	categories := &db.MongoCategoryCollection{Collection: database.Collection(db.CategoriesCollection)}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, category := range demoCategories() {
		id, err := categories.InsertCategory(ctx, category)
		if err != nil {
			log.WithError(err).WithField("title", category.Title).Error("failed to seed category")
			continue
		}
		log.WithFields(log.Fields{"id": id, "title": category.Title}).Info("seeded category")
	}

	for i, car := range rental.DemoFleet() {
		car.ID = primitive.NilObjectID // let the store assign the ID
		car.RegistrationNumber = registration(i)
		id, err := cars.InsertCar(ctx, car)
		if err != nil {
			log.WithError(err).WithField("model", car.Model).Error("failed to seed car")
			continue
		}
		log.WithFields(log.Fields{"id": id, "model": car.Model}).Info("seeded car")
	}

	log.Info("seeding complete")
}

// registration produces a unique demo plate per fleet index.
func registration(i int) string {
	letters := "ABCDEFGHJKLMNPQRSTUVWXYZ"
	return "KD" + string(letters[i%len(letters)]) + " " + string('0'+byte((i+1)/100%10)) + string('0'+byte((i+1)/10%10)) + string('0'+byte((i+1)%10)) + "D"
}
