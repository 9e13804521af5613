package models

// APIResponse is the envelope every endpoint responds with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Debug   interface{} `json:"debug,omitempty"`
}

// BookingCreated is the data payload returned on successful booking creation.
type BookingCreated struct {
	ID        string `json:"id"`
	BookingID string `json:"bookingId"`
}
