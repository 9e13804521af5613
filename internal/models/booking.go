package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking status values. A booking starts pending and moves through
// confirmed/active to a terminal completed or cancelled.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingActive    = "active"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// CustomerInfo carries the renter's contact details on a booking.
type CustomerInfo struct {
	Name           string `bson:"name" json:"name" validate:"required"`
	Email          string `bson:"email" json:"email" validate:"required,email"`
	Phone          string `bson:"phone" json:"phone" validate:"required"`
	IDNumber       string `bson:"id_number,omitempty" json:"idNumber,omitempty"`
	DrivingLicense string `bson:"driving_license,omitempty" json:"drivingLicense,omitempty"`
}

// Booking is a persisted rental reservation.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookingID       string             `bson:"booking_id" json:"bookingId"` // human-facing reference
	CarID           primitive.ObjectID `bson:"car_id" json:"carId"`
	PickupDate      string             `bson:"pickup_date" json:"pickupDate"`
	DropoffDate     string             `bson:"dropoff_date" json:"dropoffDate"`
	PickupTime      string             `bson:"pickup_time" json:"pickupTime"`
	DropoffTime     string             `bson:"dropoff_time" json:"dropoffTime"`
	RentalDays      int                `bson:"rental_days" json:"rentalDays"`
	TotalAmount     float64            `bson:"total_amount" json:"totalAmount"`
	Status          string             `bson:"status" json:"status"`
	CustomerInfo    CustomerInfo       `bson:"customer_info" json:"customerInfo"`
	SpecialRequests string             `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}

// BookingRequest is the JSON payload accepted by the create-booking endpoint.
type BookingRequest struct {
	CarID           string       `json:"carId" validate:"required"`
	PickupDate      string       `json:"pickupDate" validate:"required"`
	DropoffDate     string       `json:"dropoffDate" validate:"required"`
	PickupTime      string       `json:"pickupTime"`
	DropoffTime     string       `json:"dropoffTime"`
	CustomerInfo    CustomerInfo `json:"customerInfo" validate:"required"`
	SpecialRequests string       `json:"specialRequests"`

	// Derived client-side for display; the server recomputes both and its
	// values are authoritative.
	RentalDays  int     `json:"rentalDays,omitempty"`
	TotalAmount float64 `json:"totalAmount,omitempty"`
}

// allowedBookingTransitions is the directed graph of legal status moves.
// Terminal states have no outgoing edges.
var allowedBookingTransitions = map[string][]string{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingActive, BookingCancelled},
	BookingActive:    {BookingCompleted, BookingCancelled},
	BookingCompleted: {},
	BookingCancelled: {},
}

// IsValidBookingStatus reports whether s is a recognized booking status.
func IsValidBookingStatus(s string) bool {
	_, ok := allowedBookingTransitions[s]
	return ok
}

// CanTransitionBooking reports whether a booking may move from one status
// to another. A self-transition is allowed as a no-op.
func CanTransitionBooking(from, to string) bool {
	if from == to {
		return IsValidBookingStatus(from)
	}
	for _, s := range allowedBookingTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
