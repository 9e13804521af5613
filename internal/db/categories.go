package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/savannadrive/savanna-rentals/internal/models"
)

// CategoryCollection defines the interface for car-category data operations.
type CategoryCollection interface {
	InsertCategory(ctx context.Context, category models.CarCategory) (string, error)
	FindCategories(ctx context.Context) ([]models.CarCategory, error)
}

// MongoCategoryCollection implements CategoryCollection for MongoDB.
type MongoCategoryCollection struct {
	Collection *mongo.Collection
}

// InsertCategory inserts a category record and returns its hex ID.
func (c *MongoCategoryCollection) InsertCategory(ctx context.Context, category models.CarCategory) (string, error) {
	if c.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now
	res, err := c.Collection.InsertOne(ctx, category)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindCategories returns all categories, newest first.
func (c *MongoCategoryCollection) FindCategories(ctx context.Context) ([]models.CarCategory, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := c.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.CarCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
