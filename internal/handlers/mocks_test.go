package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"github.com/stretchr/testify/mock"

	"github.com/savannadrive/savanna-rentals/internal/models"
)

// MockCarCollection is a mock implementation of db.CarCollection.
type MockCarCollection struct {
	mock.Mock
}

func (m *MockCarCollection) InsertCar(ctx context.Context, car models.Car) (string, error) {
	args := m.Called(ctx, car)
	return args.String(0), args.Error(1)
}

func (m *MockCarCollection) FindCars(ctx context.Context) ([]models.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarCollection) FindCarByID(ctx context.Context, id string) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

// MockCategoryCollection is a mock implementation of db.CategoryCollection.
type MockCategoryCollection struct {
	mock.Mock
}

func (m *MockCategoryCollection) InsertCategory(ctx context.Context, category models.CarCategory) (string, error) {
	args := m.Called(ctx, category)
	return args.String(0), args.Error(1)
}

func (m *MockCategoryCollection) FindCategories(ctx context.Context) ([]models.CarCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CarCategory), args.Error(1)
}

// MockBookingCollection is a mock implementation of db.BookingCollection.
type MockBookingCollection struct {
	mock.Mock
}

func (m *MockBookingCollection) InsertBooking(ctx context.Context, booking models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingCollection) FindBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingCollection) UpdateBookingStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockUploader is a mock implementation of imagehost.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	args := m.Called(ctx, data, filename, folder)
	return args.String(0), args.Error(1)
}

// multipartRequest builds a multipart POST with the given text fields,
// repeated-value fields and an optional image file.
func multipartRequest(target string, fields map[string]string, repeated map[string][]string, image []byte) *http.Request {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	for k, vs := range repeated {
		for _, v := range vs {
			mw.WriteField(k, v)
		}
	}
	if image != nil {
		part, _ := mw.CreateFormFile("image", "car.jpg")
		part.Write(image)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeResponse(body io.Reader) models.APIResponse {
	var resp models.APIResponse
	data, _ := io.ReadAll(body)
	_ = json.Unmarshal(data, &resp)
	return resp
}
