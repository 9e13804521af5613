package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savannadrive/savanna-rentals/internal/models"
)

// BookingCollection defines the interface for booking data operations.
type BookingCollection interface {
	InsertBooking(ctx context.Context, booking models.Booking) (string, error)
	FindBookingByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id, status string) error
}

// MongoBookingCollection implements BookingCollection for MongoDB.
type MongoBookingCollection struct {
	Collection *mongo.Collection
}

// InsertBooking inserts a booking record and returns its hex ID.
func (c *MongoBookingCollection) InsertBooking(ctx context.Context, booking models.Booking) (string, error) {
	if c.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	res, err := c.Collection.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindBookingByID finds a booking by its hex ID or its human-facing
// booking reference.
func (c *MongoBookingCollection) FindBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	filter := bson.M{"booking_id": id}
	if objectID, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"_id": objectID}
	}
	var booking models.Booking
	err := c.Collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus sets a booking's status by its hex ID.
func (c *MongoBookingCollection) UpdateBookingStatus(ctx context.Context, id, status string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
