package rental

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/savannadrive/savanna-rentals/internal/models"
)

// stubCreator records calls and returns a canned result.
type stubCreator struct {
	calls   int
	lastReq models.BookingRequest
	created *models.BookingCreated
	err     error
	onCall  func()
}

func (s *stubCreator) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingCreated, error) {
	s.calls++
	s.lastReq = req
	if s.onCall != nil {
		s.onCall()
	}
	return s.created, s.err
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func validForm() *BookingForm {
	f := NewBookingForm(&SelectedCar{ID: "abc123", Model: "Toyota Corolla", PricePerDay: 2500})
	f.PickupDate = futureDate(1)
	f.DropoffDate = futureDate(4)
	f.PickupTime = "09:00"
	f.DropoffTime = "18:00"
	f.Customer = models.CustomerInfo{Name: "Jane Doe", Email: "jane@example.com", Phone: "0700000000"}
	f.AgreeTerms = true
	return f
}

func TestBookingForm_DerivedTotals(t *testing.T) {
	f := validForm()
	assert.Equal(t, 3, f.RentalDays())
	assert.Equal(t, 7500.0, f.TotalPrice())

	f.DropoffDate = ""
	assert.Equal(t, 0, f.RentalDays())
	assert.Equal(t, 0.0, f.TotalPrice())
}

func TestBookingForm_SubmitWithoutTerms(t *testing.T) {
	f := validForm()
	f.AgreeTerms = false
	creator := &stubCreator{}

	res := f.Submit(context.Background(), creator)

	assert.Equal(t, 0, creator.calls, "collaborator must not be called when terms are not accepted")
	assert.Nil(t, res.Confirmation)
	assert.Equal(t, ErrTermsNotAccepted.Error(), res.Message)
	assert.Equal(t, Editing, f.State())
}

func TestBookingForm_SubmitWithoutVehicle(t *testing.T) {
	f := validForm()
	f.Car = nil
	creator := &stubCreator{}

	res := f.Submit(context.Background(), creator)

	assert.Equal(t, 0, creator.calls)
	assert.Equal(t, ErrNoVehicle.Error(), res.Message)
	assert.Equal(t, Editing, f.State())
}

func TestBookingForm_SubmitBadDates(t *testing.T) {
	f := validForm()
	f.DropoffDate = f.PickupDate
	creator := &stubCreator{}

	res := f.Submit(context.Background(), creator)

	assert.Equal(t, 0, creator.calls)
	assert.Equal(t, ErrReturnBeforePickup.Error(), res.Message)
	assert.Equal(t, Editing, f.State())
}

func TestBookingForm_SubmitSuccess(t *testing.T) {
	f := validForm()
	creator := &stubCreator{created: &models.BookingCreated{ID: "doc1", BookingID: "ref1"}}

	res := f.Submit(context.Background(), creator)

	assert.Equal(t, 1, creator.calls)
	if assert.NotNil(t, res.Confirmation) {
		assert.Equal(t, "ref1", res.Confirmation.BookingID)
	}
	assert.Empty(t, res.Message)

	// Payload carries the derived totals and the customer sub-record.
	assert.Equal(t, "abc123", creator.lastReq.CarID)
	assert.Equal(t, 3, creator.lastReq.RentalDays)
	assert.Equal(t, 7500.0, creator.lastReq.TotalAmount)
	assert.Equal(t, "Jane Doe", creator.lastReq.CustomerInfo.Name)

	// Local state is discarded after confirmation.
	assert.Equal(t, Editing, f.State())
	assert.Empty(t, f.PickupDate)
	assert.False(t, f.AgreeTerms)
	assert.NotNil(t, f.Car, "vehicle reference survives the reset")
}

func TestBookingForm_CollaboratorFailureKeepsFields(t *testing.T) {
	f := validForm()
	creator := &stubCreator{err: errors.New("Car unavailable")}

	res := f.Submit(context.Background(), creator)

	assert.Equal(t, 1, creator.calls)
	assert.Nil(t, res.Confirmation)
	assert.Equal(t, "Car unavailable", res.Message)

	// Back to Editing with every entered value intact.
	assert.Equal(t, Editing, f.State())
	assert.Equal(t, futureDate(1), f.PickupDate)
	assert.Equal(t, "Jane Doe", f.Customer.Name)
	assert.True(t, f.AgreeTerms)

	// A second submit retries the collaborator.
	creator.err = nil
	creator.created = &models.BookingCreated{ID: "doc2", BookingID: "ref2"}
	res = f.Submit(context.Background(), creator)
	assert.Equal(t, 2, creator.calls)
	assert.NotNil(t, res.Confirmation)
}

func TestBookingForm_EmptyCollaboratorResponse(t *testing.T) {
	f := validForm()
	creator := &stubCreator{} // neither confirmation nor error

	res := f.Submit(context.Background(), creator)

	assert.Nil(t, res.Confirmation)
	assert.Equal(t, genericSubmitFailure, res.Message)
	assert.Equal(t, Editing, f.State())
	assert.Equal(t, "Jane Doe", f.Customer.Name)
}

func TestBookingForm_DoubleSubmitGuard(t *testing.T) {
	f := validForm()
	creator := &stubCreator{created: &models.BookingCreated{ID: "doc1", BookingID: "ref1"}}

	var reentrant SubmitResult
	creator.onCall = func() {
		// A submit arriving while one is in flight must be a no-op.
		reentrant = f.Submit(context.Background(), creator)
	}

	res := f.Submit(context.Background(), creator)

	assert.Equal(t, 1, creator.calls)
	assert.NotNil(t, res.Confirmation)
	assert.Equal(t, ErrSubmitInFlight.Error(), reentrant.Message)
	assert.Nil(t, reentrant.Confirmation)
}
