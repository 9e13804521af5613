package rental

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/savannadrive/savanna-rentals/internal/db"
	"github.com/savannadrive/savanna-rentals/internal/models"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }

func demoCar(model, category, location string, price float64, rating float64, reviews, seats int, transmission, fuel string, popular bool, features ...string) models.Car {
	return models.Car{
		ID:           primitive.NewObjectID(),
		Model:        model,
		Type:         category,
		Category:     category,
		Location:     location,
		PricePerDay:  price,
		Status:       models.StatusAvailable,
		Image:        "https://images.unsplash.com/photo-1552519507-da3b142c6e3d?w=800&h=600&fit=crop",
		Transmission: transmission,
		Fuel:         fuel,
		Seats:        seats,
		Features:     features,
		Rating:       floatPtr(rating),
		Reviews:      intPtr(reviews),
		Popular:      boolPtr(popular),
	}
}

// DemoFleet returns the built-in demonstration fleet used before any cars
// have been created through the API. Each call returns a fresh slice.
func DemoFleet() []models.Car {
	return []models.Car{
		demoCar("Toyota Corolla", "Economy Cars", "Westlands", 2500, 4.8, 124, 5, "Automatic", "Petrol", true,
			"Air Conditioning", "Insurance", "GPS Navigation", "Bluetooth"),
		demoCar("Nissan Sentra", "Economy Cars", "CBD", 2200, 4.6, 98, 5, "Manual", "Petrol", false,
			"Air Conditioning", "Insurance", "Radio", "Power Steering"),
		demoCar("Honda Civic", "Economy Cars", "Kilimani", 2800, 4.7, 156, 5, "Automatic", "Petrol", true,
			"Air Conditioning", "Insurance", "GPS Navigation", "Bluetooth", "USB Charging"),
		demoCar("Hyundai Accent", "Economy Cars", "Kasarani", 2300, 4.5, 87, 5, "Automatic", "Petrol", false,
			"Air Conditioning", "Insurance", "Radio", "Power Windows"),
		demoCar("Toyota Prado", "Family SUVs", "Karen", 4500, 4.9, 89, 7, "Automatic", "Diesel", true,
			"4WD", "Air Conditioning", "Insurance", "Professional Driver Available", "Spacious"),
		demoCar("Nissan X-Trail", "Family SUVs", "Westlands", 3800, 4.6, 112, 7, "Automatic", "Petrol", true,
			"AWD", "Air Conditioning", "Insurance", "GPS Navigation", "Roof Rails"),
		demoCar("Honda CR-V", "Family SUVs", "Kilimani", 3600, 4.7, 94, 5, "Automatic", "Petrol", false,
			"AWD", "Air Conditioning", "Insurance", "Sunroof", "Rear Camera"),
		demoCar("Mazda CX-5", "Family SUVs", "Langata", 3400, 4.8, 76, 5, "Automatic", "Petrol", false,
			"AWD", "Air Conditioning", "Insurance", "Bluetooth", "Keyless Entry"),
		demoCar("Land Cruiser 79", "Safari 4x4 Vehicles", "Karen", 9500, 4.9, 61, 5, "Manual", "Diesel", true,
			"4WD", "High Ground Clearance", "Roof Rack", "Long-Range Tank"),
		demoCar("Mercedes-Benz C-Class", "Luxury Sedans", "Westlands", 6500, 4.9, 67, 5, "Automatic", "Petrol", true,
			"Leather Interior", "Insurance", "Premium Sound", "Chauffeur Available"),
		demoCar("BMW 3 Series", "Luxury Sedans", "Karen", 7000, 4.8, 54, 5, "Automatic", "Petrol", true,
			"Leather Interior", "Insurance", "Premium Sound"),
		demoCar("Mercedes-Benz S-Class", "VIP Luxury", "Westlands", 12000, 5.0, 23, 5, "Automatic", "Petrol", true,
			"Executive Class", "Chauffeur", "Privacy Glass", "Premium Sound"),
	}
}

// StaticSource serves a fixed in-memory fleet through the CarSource
// interface. It backs demos and tests without a running document store.
type StaticSource struct {
	cars []models.Car
}

// NewStaticSource builds a StaticSource over the given fleet, or over
// DemoFleet when cars is empty.
func NewStaticSource(cars []models.Car) *StaticSource {
	if len(cars) == 0 {
		cars = DemoFleet()
	}
	return &StaticSource{cars: cars}
}

// ListCars returns a copy of the fleet.
func (s *StaticSource) ListCars(ctx context.Context) ([]models.Car, error) {
	out := make([]models.Car, len(s.cars))
	copy(out, s.cars)
	return out, nil
}

// GetCar finds a car by hex ID.
func (s *StaticSource) GetCar(ctx context.Context, id string) (*models.Car, error) {
	for _, car := range s.cars {
		if car.ID.Hex() == id {
			c := car
			return &c, nil
		}
	}
	return nil, db.ErrNotFound
}

// StoreSource adapts a db.CarCollection to the CarSource interface.
type StoreSource struct {
	Cars db.CarCollection
}

func (s *StoreSource) ListCars(ctx context.Context) ([]models.Car, error) {
	return s.Cars.FindCars(ctx)
}

func (s *StoreSource) GetCar(ctx context.Context, id string) (*models.Car, error) {
	return s.Cars.FindCarByID(ctx, id)
}
