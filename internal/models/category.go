package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CarCategory represents a marketing category landing entry
// (economy cars, family SUVs, safari 4x4, ...).
type CarCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	PriceFrom   string             `bson:"price_from" json:"priceFrom"` // display-only, pre-formatted
	Features    []string           `bson:"features" json:"features"`
	Popular     bool               `bson:"popular" json:"popular"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
