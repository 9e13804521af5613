package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/savannadrive/savanna-rentals/internal/db"
	"github.com/savannadrive/savanna-rentals/internal/imagehost"
	"github.com/savannadrive/savanna-rentals/internal/models"
)

// CategoryHandler serves the category landing-page endpoints.
type CategoryHandler struct {
	categories db.CategoryCollection
	images     imagehost.Uploader
}

// NewCategoryHandler creates a category handler.
func NewCategoryHandler(categories db.CategoryCollection, images imagehost.Uploader) *CategoryHandler {
	return &CategoryHandler{categories: categories, images: images}
}

// List handles GET /api/carcategory.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.FindCategories(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list categories")
		respondError(w, http.StatusInternalServerError, "Failed to fetch car categories")
		return
	}
	respondData(w, http.StatusOK, categories)
}

// Create handles POST /api/carcategory. Features arrive either as
// repeated "features" form entries or as a "featuresJson" JSON array; the
// repeated entries win when both are present.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	category := models.CarCategory{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		PriceFrom:   r.FormValue("priceFrom"),
		Popular:     r.FormValue("popular") == "true",
	}

	var features []string
	seen := map[string]bool{}
	for _, v := range r.MultipartForm.Value["features"] {
		if v != "" && !seen[v] {
			seen[v] = true
			features = append(features, v)
		}
	}
	if len(features) == 0 {
		if raw := r.FormValue("featuresJson"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &features); err != nil {
				log.WithError(err).Warn("failed to parse featuresJson")
			}
		}
	}
	category.Features = features

	if category.Title == "" || category.Description == "" ||
		category.PriceFrom == "" || len(features) == 0 {
		writeJSON(w, http.StatusBadRequest, models.APIResponse{
			Success: false,
			Error:   "Missing required fields. Title, description, price, and at least one feature are required.",
			Debug: map[string]interface{}{
				"title":         category.Title != "",
				"description":   category.Description != "",
				"priceFrom":     category.PriceFrom != "",
				"featuresCount": len(features),
			},
		})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Image is required")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		respondError(w, http.StatusBadRequest, "Image is required")
		return
	}

	imageURL, err := h.images.Upload(r.Context(), data, header.Filename, "car_categories")
	if err != nil {
		log.WithError(err).Error("category image upload failed")
		respondError(w, http.StatusInternalServerError, "Image upload failed")
		return
	}
	category.Image = imageURL

	id, err := h.categories.InsertCategory(r.Context(), category)
	if err != nil {
		log.WithError(err).Error("failed to create category")
		respondError(w, http.StatusInternalServerError, "Failed to create car category")
		return
	}

	log.WithField("category_id", id).Info("car category created")
	respondData(w, http.StatusCreated, category)
}
