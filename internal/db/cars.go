package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/savannadrive/savanna-rentals/internal/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// CarCollection defines the interface for car data operations. Cars are
// created and read only; the site never updates or removes them.
type CarCollection interface {
	InsertCar(ctx context.Context, car models.Car) (string, error)
	FindCars(ctx context.Context) ([]models.Car, error)
	FindCarByID(ctx context.Context, id string) (*models.Car, error)
}

// MongoCarCollection implements CarCollection for MongoDB.
type MongoCarCollection struct {
	Collection *mongo.Collection
}

// InsertCar inserts a car record and returns its hex ID.
func (c *MongoCarCollection) InsertCar(ctx context.Context, car models.Car) (string, error) {
	if c.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now
	if car.Status == "" {
		car.Status = models.StatusAvailable
	}
	res, err := c.Collection.InsertOne(ctx, car)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindCars returns all cars, newest first.
func (c *MongoCarCollection) FindCars(ctx context.Context) ([]models.Car, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := c.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// FindCarByID finds a car by its hex ID.
func (c *MongoCarCollection) FindCarByID(ctx context.Context, id string) (*models.Car, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid car ID: %w", ErrNotFound)
	}
	var car models.Car
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&car)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &car, nil
}

