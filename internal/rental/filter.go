package rental

import (
	"sort"
	"strings"

	"github.com/savannadrive/savanna-rentals/internal/models"
)

// Sentinel value matching every category or price band.
const FilterAll = "all"

// Price band thresholds, in the site's display currency per day.
const (
	budgetMax = 3000
	midMax    = 6000
)

// SortOption selects the catalog ordering.
type SortOption string

const (
	SortPopular   SortOption = "popular"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortRating    SortOption = "rating"
)

// Filters is the catalog filter configuration. Zero values and "all"
// disable the corresponding predicate.
type Filters struct {
	Category  string // category slug, e.g. "family-suvs"
	Search    string // case-insensitive substring
	PriceBand string // "all", "budget", "mid" or "premium"
}

// Slugify lowercases a display name and joins its words with hyphens,
// producing the URL-facing category identifier.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
}

// CategorySlug resolves a car's category slug: the explicit category field
// when set, otherwise the slugified type string.
func CategorySlug(car models.Car) string {
	if car.Category != "" {
		return Slugify(car.Category)
	}
	return Slugify(car.Type)
}

func matchesCategory(car models.Car, category string) bool {
	if category == "" || category == FilterAll {
		return true
	}
	return CategorySlug(car) == category
}

// matchesSearch matches the term against model, type and location.
func matchesSearch(car models.Car, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(car.Model), needle) ||
		strings.Contains(strings.ToLower(car.Type), needle) ||
		strings.Contains(strings.ToLower(car.Location), needle)
}

func matchesPriceBand(car models.Car, band string) bool {
	switch band {
	case "budget":
		return car.PricePerDay <= budgetMax
	case "mid":
		return car.PricePerDay > budgetMax && car.PricePerDay <= midMax
	case "premium":
		return car.PricePerDay > midMax
	default:
		return true
	}
}

// FilterCars returns the cars matching all three predicates. The input
// slice is never mutated.
func FilterCars(cars []models.Car, filters Filters) []models.Car {
	out := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if matchesCategory(car, filters.Category) &&
			matchesSearch(car, filters.Search) &&
			matchesPriceBand(car, filters.PriceBand) {
			out = append(out, car)
		}
	}
	return out
}

// defaultPageSize is the catalog grid's page length.
const defaultPageSize = 12

// Paginate returns the given page of cars. Page numbers start at 1;
// out-of-range values are clamped rather than rejected.
func Paginate(cars []models.Car, page, pageSize int) []models.Car {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	start := (page - 1) * pageSize
	if start >= len(cars) {
		return []models.Car{}
	}
	end := start + pageSize
	if end > len(cars) {
		end = len(cars)
	}
	out := make([]models.Car, end-start)
	copy(out, cars[start:end])
	return out
}

func carRating(car models.Car) float64 {
	if car.Rating == nil {
		return 0
	}
	return *car.Rating
}

func carPopular(car models.Car) bool {
	return car.Popular != nil && *car.Popular
}

// SortCars returns a new slice ordered by the given option. The sort is
// stable: cars with equal keys keep their original relative order.
func SortCars(cars []models.Car, sortBy SortOption) []models.Car {
	out := make([]models.Car, len(cars))
	copy(out, cars)

	switch sortBy {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PricePerDay < out[j].PricePerDay
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PricePerDay > out[j].PricePerDay
		})
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return carRating(out[i]) > carRating(out[j])
		})
	default: // SortPopular
		sort.SliceStable(out, func(i, j int) bool {
			pi, pj := carPopular(out[i]), carPopular(out[j])
			if pi != pj {
				return pi
			}
			return carRating(out[i]) > carRating(out[j])
		})
	}
	return out
}
