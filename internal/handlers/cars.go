package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/savannadrive/savanna-rentals/internal/db"
	"github.com/savannadrive/savanna-rentals/internal/imagehost"
	"github.com/savannadrive/savanna-rentals/internal/models"
	"github.com/savannadrive/savanna-rentals/internal/rental"
)

// maxUploadSize caps multipart request memory.
const maxUploadSize = 10 << 20 // 10 MiB

// CarHandler serves the vehicle catalog endpoints.
type CarHandler struct {
	cars   db.CarCollection
	images imagehost.Uploader
}

// NewCarHandler creates a car handler over the given collection and
// image-hosting collaborator.
func NewCarHandler(cars db.CarCollection, images imagehost.Uploader) *CarHandler {
	return &CarHandler{cars: cars, images: images}
}

// List handles GET /api/cars. Optional query parameters category, search
// and featured narrow the result through the catalog pipeline.
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.cars.FindCars(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list cars")
		respondError(w, http.StatusInternalServerError, "Failed to fetch cars")
		return
	}

	cars = rental.DecorateCars(cars)

	q := r.URL.Query()
	filters := rental.Filters{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	if filters.Category != "" || filters.Search != "" {
		cars = rental.FilterCars(cars, filters)
	}
	if q.Get("featured") == "true" {
		featured := cars[:0:0]
		for _, car := range cars {
			if car.Popular != nil && *car.Popular {
				featured = append(featured, car)
			}
		}
		cars = featured
	}

	if sortBy := q.Get("sort"); sortBy != "" {
		cars = rental.SortCars(cars, rental.SortOption(sortBy))
	}
	if q.Get("page") != "" || q.Get("pageSize") != "" {
		page, _ := strconv.Atoi(q.Get("page"))
		pageSize, _ := strconv.Atoi(q.Get("pageSize"))
		cars = rental.Paginate(cars, page, pageSize)
	}

	respondData(w, http.StatusOK, cars)
}

// Get handles GET /api/cars/{id}.
func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	car, err := h.cars.FindCarByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Car not found")
			return
		}
		log.WithError(err).Error("failed to fetch car")
		respondError(w, http.StatusInternalServerError, "Failed to fetch car")
		return
	}
	respondData(w, http.StatusOK, car)
}

// Create handles POST /api/cars: a multipart form with the car's text and
// number fields plus a required image file, uploaded to the image host
// before the record is stored.
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	price, priceErr := strconv.ParseFloat(r.FormValue("pricePerDay"), 64)
	year, yearErr := strconv.Atoi(r.FormValue("year"))
	seats, seatsErr := strconv.Atoi(r.FormValue("seats"))

	car := models.Car{
		Model:              r.FormValue("model"),
		Type:               r.FormValue("type"),
		RegistrationNumber: r.FormValue("registrationNumber"),
		Location:           r.FormValue("location"),
		PricePerDay:        price,
		Status:             r.FormValue("status"),
		Year:               year,
		Transmission:       r.FormValue("transmission"),
		Fuel:               r.FormValue("fuel"),
		Seats:              seats,
		Category:           r.FormValue("category"),
	}
	if car.Status == "" {
		car.Status = models.StatusAvailable
	}

	if car.Model == "" || car.Type == "" || car.RegistrationNumber == "" ||
		car.Location == "" || car.Transmission == "" || car.Fuel == "" ||
		priceErr != nil || price < 0 || yearErr != nil || year < 1900 ||
		seatsErr != nil || seats < 1 || !models.IsValidStatus(car.Status) {
		respondError(w, http.StatusBadRequest, "Missing or invalid required fields.")
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

	imageURL, err := h.images.Upload(r.Context(), data, header.Filename, "cars")
	if err != nil {
		log.WithError(err).Error("car image upload failed")
		respondError(w, http.StatusInternalServerError, "Image upload failed")
		return
	}
	car.Image = imageURL

	id, err := h.cars.InsertCar(r.Context(), car)
	if err != nil {
		log.WithError(err).Error("failed to create car")
		respondError(w, http.StatusInternalServerError, "Failed to create car")
		return
	}

	created, err := h.cars.FindCarByID(r.Context(), id)
	if err != nil {
		// Insert succeeded; fall back to the submitted record.
		created = &car
	}
	respondData(w, http.StatusCreated, created)
}
