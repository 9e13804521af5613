package rental

import (
	"context"
	"errors"

	"github.com/savannadrive/savanna-rentals/internal/models"
)

// FormState is the booking form's lifecycle state. Success and failure are
// reported to the caller, not retained: after Submit returns, the form is
// back in Editing unless the booking was confirmed.
type FormState int

const (
	Editing FormState = iota
	Submitting
)

// Guard failures surfaced by Submit.
var (
	ErrNoVehicle        = errors.New("no vehicle selected")
	ErrTermsNotAccepted = errors.New("please accept the terms and conditions")
	ErrSubmitInFlight   = errors.New("submission already in progress")
)

// genericSubmitFailure is shown when the booking collaborator fails
// without a message of its own.
const genericSubmitFailure = "Booking could not be completed. Please try again."

// BookingCreator is the booking-creation collaborator.
type BookingCreator interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingCreated, error)
}

// SelectedCar is the vehicle reference carried into the form, resolved by
// the caller from direct selection or from query parameters.
type SelectedCar struct {
	ID          string
	Model       string
	PricePerDay float64
	Location    string
}

// BookingForm holds the multi-step booking form's state and drives the
// submit transition. All inputs arrive as explicit field values; nothing
// is read from ambient state.
type BookingForm struct {
	Car *SelectedCar

	PickupDate  string
	DropoffDate string
	PickupTime  string
	DropoffTime string

	Customer        models.CustomerInfo
	SpecialRequests string
	AgreeTerms      bool

	state FormState
}

// NewBookingForm builds an empty form for the given vehicle. car may be
// nil when nothing has been resolved yet; Submit will refuse until one is.
func NewBookingForm(car *SelectedCar) *BookingForm {
	return &BookingForm{Car: car, state: Editing}
}

// State returns the form's current state.
func (f *BookingForm) State() FormState {
	return f.state
}

// RentalDays derives the rental length from the current date fields.
func (f *BookingForm) RentalDays() int {
	return RentalDays(f.PickupDate, f.DropoffDate)
}

// TotalPrice derives the total from the current date fields and the
// selected car's daily rate. Zero until a car and both dates are set.
func (f *BookingForm) TotalPrice() float64 {
	if f.Car == nil {
		return 0
	}
	return TotalPrice(f.RentalDays(), f.Car.PricePerDay)
}

// SubmitResult reports the outcome of a submit attempt. On success,
// Confirmation is set and the form has been reset. On failure, Message
// carries the user-visible reason and every entered field is intact.
type SubmitResult struct {
	Confirmation *models.BookingCreated
	Message      string
}

// Submit validates the form and, if all guards pass, invokes the booking
// collaborator exactly once. A submit while one is already in flight is a
// no-op failure.
func (f *BookingForm) Submit(ctx context.Context, creator BookingCreator) SubmitResult {
	if f.state == Submitting {
		return SubmitResult{Message: ErrSubmitInFlight.Error()}
	}

	if f.Car == nil || f.Car.ID == "" {
		return SubmitResult{Message: ErrNoVehicle.Error()}
	}
	if err := ValidateDateRange(f.PickupDate, f.DropoffDate); err != nil {
		return SubmitResult{Message: err.Error()}
	}
	if !f.AgreeTerms {
		return SubmitResult{Message: ErrTermsNotAccepted.Error()}
	}

	f.state = Submitting
	defer func() { f.state = Editing }()

	req := models.BookingRequest{
		CarID:           f.Car.ID,
		PickupDate:      f.PickupDate,
		DropoffDate:     f.DropoffDate,
		PickupTime:      f.PickupTime,
		DropoffTime:     f.DropoffTime,
		CustomerInfo:    f.Customer,
		SpecialRequests: f.SpecialRequests,
		RentalDays:      f.RentalDays(),
		TotalAmount:     f.TotalPrice(),
	}

	created, err := creator.CreateBooking(ctx, req)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = genericSubmitFailure
		}
		return SubmitResult{Message: msg}
	}
	if created == nil {
		return SubmitResult{Message: genericSubmitFailure}
	}

	f.reset()
	return SubmitResult{Confirmation: created}
}

// reset discards user-entered state after a confirmed booking.
func (f *BookingForm) reset() {
	car := f.Car
	*f = BookingForm{Car: car, state: Editing}
}
