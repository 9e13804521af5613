package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/savannadrive/savanna-rentals/internal/db"
	"github.com/savannadrive/savanna-rentals/internal/models"
	"github.com/savannadrive/savanna-rentals/internal/rental"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	bookings db.BookingCollection
	cars     db.CarCollection
	validate *validator.Validate
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(bookings db.BookingCollection, cars db.CarCollection) *BookingHandler {
	return &BookingHandler{
		bookings: bookings,
		cars:     cars,
		validate: validator.New(),
	}
}

// Create handles POST /api/bookings. The request's derived day count and
// total are ignored; both are recomputed here from the dates and the
// car's stored daily rate.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "Missing or invalid booking fields")
		return
	}
	if err := rental.ValidateDateRange(req.PickupDate, req.DropoffDate); err != nil {
		writeJSON(w, http.StatusBadRequest, models.APIResponse{Success: false, Message: err.Error()})
		return
	}

	car, err := h.cars.FindCarByID(r.Context(), req.CarID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, models.APIResponse{Success: false, Message: "Car not found"})
			return
		}
		log.WithError(err).Error("failed to fetch car for booking")
		respondError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}
	if car.Status != models.StatusAvailable {
		writeJSON(w, http.StatusConflict, models.APIResponse{Success: false, Message: "Car unavailable"})
		return
	}

	days := rental.RentalDays(req.PickupDate, req.DropoffDate)
	booking := models.Booking{
		BookingID:       uuid.NewString(),
		CarID:           car.ID,
		PickupDate:      req.PickupDate,
		DropoffDate:     req.DropoffDate,
		PickupTime:      req.PickupTime,
		DropoffTime:     req.DropoffTime,
		RentalDays:      days,
		TotalAmount:     rental.TotalPrice(days, car.PricePerDay),
		Status:          models.BookingPending,
		CustomerInfo:    req.CustomerInfo,
		SpecialRequests: req.SpecialRequests,
	}

	id, err := h.bookings.InsertBooking(r.Context(), booking)
	if err != nil {
		log.WithError(err).Error("failed to create booking")
		respondError(w, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	log.WithFields(log.Fields{
		"booking_id": booking.BookingID,
		"car_id":     req.CarID,
		"days":       days,
	}).Info("booking created")

	respondData(w, http.StatusCreated, models.BookingCreated{ID: id, BookingID: booking.BookingID})
}

// Get handles GET /api/bookings/{id}. The id may be the document ID or
// the human-facing booking reference.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	booking, err := h.bookings.FindBookingByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Booking not found")
			return
		}
		log.WithError(err).Error("failed to fetch booking")
		respondError(w, http.StatusInternalServerError, "Failed to fetch booking")
		return
	}
	respondData(w, http.StatusOK, booking)
}

// UpdateStatus handles PATCH /api/bookings/{id} with a {"status": ...}
// body, enforcing the booking status machine.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !models.IsValidBookingStatus(req.Status) {
		respondError(w, http.StatusBadRequest, "Invalid booking status")
		return
	}
	h.transition(w, r, req.Status)
}

// Cancel handles POST /api/bookings/{id}/cancel.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, models.BookingCancelled)
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, to string) {
	booking, err := h.bookings.FindBookingByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Booking not found")
			return
		}
		log.WithError(err).Error("failed to fetch booking")
		respondError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	if !models.CanTransitionBooking(booking.Status, to) {
		respondError(w, http.StatusConflict, "Invalid status transition: "+booking.Status+" -> "+to)
		return
	}

	if booking.Status != to {
		if err := h.bookings.UpdateBookingStatus(r.Context(), booking.ID.Hex(), to); err != nil {
			log.WithError(err).Error("failed to update booking status")
			respondError(w, http.StatusInternalServerError, "Failed to update booking")
			return
		}
		booking.Status = to
	}
	respondData(w, http.StatusOK, booking)
}
