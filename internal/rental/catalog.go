package rental

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/savannadrive/savanna-rentals/internal/models"
)

// Display defaults applied to cars the store has no review data for.
const (
	defaultRating  = 4.5
	defaultReviews = 12
)

// CatalogState is the loader's lifecycle state.
type CatalogState int

const (
	CatalogLoading CatalogState = iota
	CatalogReady
	CatalogFailed
)

func (s CatalogState) String() string {
	switch s {
	case CatalogReady:
		return "ready"
	case CatalogFailed:
		return "failed"
	default:
		return "loading"
	}
}

// CatalogLoader fetches the car list from a CarSource once, decorates it
// with display defaults, and serves filtered/sorted views of it. On fetch
// failure it holds the error until Retry re-issues the fetch.
type CatalogLoader struct {
	source CarSource
	state  CatalogState
	cars   []models.Car
	err    error
}

// NewCatalogLoader builds a loader over the given source. The loader
// starts in the loading state; call Load to perform the initial fetch.
func NewCatalogLoader(source CarSource) *CatalogLoader {
	return &CatalogLoader{source: source, state: CatalogLoading}
}

// Load fetches the car list. Safe to call again after a failure.
func (l *CatalogLoader) Load(ctx context.Context) error {
	l.state = CatalogLoading
	cars, err := l.source.ListCars(ctx)
	if err != nil {
		log.WithError(err).Error("catalog fetch failed")
		l.state = CatalogFailed
		l.err = err
		return err
	}
	l.cars = DecorateCars(cars)
	l.state = CatalogReady
	l.err = nil
	return nil
}

// Retry re-issues the fetch after a failure.
func (l *CatalogLoader) Retry(ctx context.Context) error {
	return l.Load(ctx)
}

// State returns the loader's current lifecycle state.
func (l *CatalogLoader) State() CatalogState {
	return l.state
}

// Err returns the fetch error, if the last load failed.
func (l *CatalogLoader) Err() error {
	return l.err
}

// View runs the loaded catalog through the filter/sort pipeline. It
// returns nil until a load has succeeded.
func (l *CatalogLoader) View(filters Filters, sortBy SortOption) []models.Car {
	if l.state != CatalogReady {
		return nil
	}
	return SortCars(FilterCars(l.cars, filters), sortBy)
}

// DecorateCars fills in display-only fields the store may not carry.
// Storage records are unchanged; only the returned copies are decorated.
func DecorateCars(cars []models.Car) []models.Car {
	out := make([]models.Car, len(cars))
	copy(out, cars)
	for i := range out {
		if out[i].Rating == nil {
			r := defaultRating
			out[i].Rating = &r
		}
		if out[i].Reviews == nil {
			n := defaultReviews
			out[i].Reviews = &n
		}
		if out[i].Popular == nil {
			p := false
			out[i].Popular = &p
		}
	}
	return out
}
