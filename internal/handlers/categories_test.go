package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/savannadrive/savanna-rentals/internal/models"
)

func categoryFields() map[string]string {
	return map[string]string{
		"title":       "Family SUVs",
		"description": "Spacious vehicles for family trips",
		"priceFrom":   "8,000",
		"popular":     "true",
	}
}

func TestCategoryList(t *testing.T) {
	categories := &MockCategoryCollection{}
	categories.On("FindCategories", mock.Anything).Return([]models.CarCategory{
		{Title: "Economy Cars"}, {Title: "Family SUVs"},
	}, nil)

	h := NewCategoryHandler(categories, &MockUploader{})
	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/carcategory", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Success bool                 `json:"success"`
		Data    []models.CarCategory `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
}

func TestCategoryCreate_RepeatedFeatureEntries(t *testing.T) {
	categories := &MockCategoryCollection{}
	uploader := &MockUploader{}
	uploader.On("Upload", mock.Anything, mock.Anything, mock.Anything, "car_categories").
		Return("https://img.example/cat/1.jpg", nil)
	categories.On("InsertCategory", mock.Anything, mock.MatchedBy(func(c models.CarCategory) bool {
		return c.Title == "Family SUVs" && len(c.Features) == 2 && c.Popular
	})).Return("65f000000000000000000003", nil)

	h := NewCategoryHandler(categories, uploader)
	w := httptest.NewRecorder()
	h.Create(w, multipartRequest("/api/carcategory", categoryFields(),
		map[string][]string{"features": {"7-8 passenger capacity", "Ample luggage space", "7-8 passenger capacity"}},
		[]byte("jpegdata")))

	assert.Equal(t, http.StatusCreated, w.Code)
	categories.AssertExpectations(t)
}

func TestCategoryCreate_FeaturesJSONFallback(t *testing.T) {
	categories := &MockCategoryCollection{}
	uploader := &MockUploader{}
	uploader.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("https://img.example/cat/2.jpg", nil)
	categories.On("InsertCategory", mock.Anything, mock.MatchedBy(func(c models.CarCategory) bool {
		return len(c.Features) == 2
	})).Return("65f000000000000000000004", nil)

	fields := categoryFields()
	fields["featuresJson"] = `["Child seat options","Comfortable for long drives"]`

	h := NewCategoryHandler(categories, uploader)
	w := httptest.NewRecorder()
	h.Create(w, multipartRequest("/api/carcategory", fields, nil, []byte("jpegdata")))

	assert.Equal(t, http.StatusCreated, w.Code)
	categories.AssertExpectations(t)
}

func TestCategoryCreate_MissingFieldsDebugPayload(t *testing.T) {
	fields := categoryFields()
	delete(fields, "description")

	h := NewCategoryHandler(&MockCategoryCollection{}, &MockUploader{})
	w := httptest.NewRecorder()
	h.Create(w, multipartRequest("/api/carcategory", fields, nil, []byte("jpegdata")))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Debug   struct {
			Title         bool `json:"title"`
			Description   bool `json:"description"`
			PriceFrom     bool `json:"priceFrom"`
			FeaturesCount int  `json:"featuresCount"`
		} `json:"debug"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.True(t, resp.Debug.Title)
	assert.False(t, resp.Debug.Description)
	assert.Equal(t, 0, resp.Debug.FeaturesCount)
}

func TestCategoryCreate_MissingImage(t *testing.T) {
	fields := categoryFields()
	fields["featuresJson"] = `["AC"]`

	h := NewCategoryHandler(&MockCategoryCollection{}, &MockUploader{})
	w := httptest.NewRecorder()
	h.Create(w, multipartRequest("/api/carcategory", fields, nil, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(w.Body)
	assert.Equal(t, "Image is required", resp.Error)
}
