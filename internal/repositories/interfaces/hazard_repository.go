package interfaces

import (
	"context"
	"errors"

	"hazardwatch/internal/models"
	"hazardwatch/internal/utils"
	"hazardwatch/internal/validators"
)

var (
	// ErrHazardNotFound is returned when an identifier resolves to no record.
	ErrHazardNotFound = errors.New("hazard not found")
	// ErrInvalidHazardID is returned when an identifier is not a valid
	// ObjectID hex string.
	ErrInvalidHazardID = errors.New("invalid hazard id")
)

type HazardRepository interface {
	List(ctx context.Context, filter *models.HazardFilter, params *utils.PaginationParams) ([]*models.Hazard, int64, error)
	GetByID(ctx context.Context, id string) (*models.Hazard, error)
	Create(ctx context.Context, hazard *models.Hazard) (*models.Hazard, error)
	Update(ctx context.Context, id string, update *validators.HazardUpdate) (*models.Hazard, error)
	// Delete removes the record and returns it so callers can clean up its
	// media files.
	Delete(ctx context.Context, id string) (*models.Hazard, error)
}
