package rental

import (
	"context"

	"github.com/savannadrive/savanna-rentals/internal/models"
)

// CarSource abstracts where catalog data comes from, so the catalog code
// path is the same whether it is backed by the document store or by the
// built-in demo fleet. Implementations return ErrNotFound-compatible errors
// for missing IDs.
type CarSource interface {
	ListCars(ctx context.Context) ([]models.Car, error)
	GetCar(ctx context.Context, id string) (*models.Car, error)
}
