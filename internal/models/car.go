package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Car status values.
const (
	StatusAvailable   = "available"
	StatusRented      = "rented"
	StatusMaintenance = "maintenance"
)

// Car represents a rentable vehicle in the fleet.
type Car struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Model              string             `bson:"model" json:"model"`
	Type               string             `bson:"type" json:"type"`
	RegistrationNumber string             `bson:"registration_number" json:"registrationNumber"`
	Location           string             `bson:"location" json:"location"`
	PricePerDay        float64            `bson:"price_per_day" json:"pricePerDay"`
	Status             string             `bson:"status" json:"status"` // "available", "rented" or "maintenance"
	Image              string             `bson:"image" json:"image"`
	Year               int                `bson:"year" json:"year"`
	Transmission       string             `bson:"transmission" json:"transmission"`
	Fuel               string             `bson:"fuel" json:"fuel"`
	Seats              int                `bson:"seats" json:"seats"`
	Category           string             `bson:"category,omitempty" json:"category,omitempty"`
	Features           []string           `bson:"features,omitempty" json:"features,omitempty"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	Mileage            int                `bson:"mileage,omitempty" json:"mileage,omitempty"`
	Rating             *float64           `bson:"rating,omitempty" json:"rating,omitempty"`
	Reviews            *int               `bson:"reviews,omitempty" json:"reviews,omitempty"`
	Popular            *bool              `bson:"popular,omitempty" json:"popular,omitempty"`
	CreatedAt          time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updatedAt"`
}

// IsValidStatus reports whether s is a recognized car status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance:
		return true
	}
	return false
}
