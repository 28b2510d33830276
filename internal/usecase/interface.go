package usecase

import (
	"context"

	"shift-reconciliation/internal/domain"
)

// ShiftRepository defines the interface for reading and storing shift records.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go ShiftRepository
type ShiftRepository interface {
	// FindShift reports whether a shift exists for key and returns its id.
	FindShift(ctx context.Context, key domain.ShiftKey) (id string, found bool, err error)
	// ClosingReadings returns the closing meter readings stored for key.
	ClosingReadings(ctx context.Context, key domain.ShiftKey) (domain.PreviousShiftReadings, error)
	// SaveShift creates the shift, or replaces it when payload.Overwrite is set.
	SaveShift(ctx context.Context, payload domain.SubmissionPayload) (id string, err error)
}
