package usecase

import (
	"context"

	"go.uber.org/zap"

	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/logger"
)

// CarryForwardResolver proposes opening readings from the previous shift's closing readings.
type CarryForwardResolver struct {
	repo ShiftRepository
	log  *zap.Logger
}

// NewCarryForwardResolver creates a resolver backed by repo.
func NewCarryForwardResolver(repo ShiftRepository, log *zap.Logger) *CarryForwardResolver {
	return &CarryForwardResolver{repo: repo, log: logger.OrNop(log)}
}

// Lookup fetches the closing readings of the shift before key. Lookup failures
// are logged and reported as a missing predecessor so editing can go on.
func (r *CarryForwardResolver) Lookup(ctx context.Context, key domain.ShiftKey) domain.PreviousShiftReadings {
	prev, err := key.Previous()
	if err != nil {
		r.log.Debug("no predecessor for shift", zap.Stringer("shift", key), zap.Error(err))
		return domain.PreviousShiftReadings{}
	}

	readings, err := r.repo.ClosingReadings(ctx, prev)
	if err != nil {
		r.log.Warn("previous shift lookup failed, skipping carry-forward",
			zap.Stringer("shift", key),
			zap.Stringer("previous", prev),
			zap.Error(err),
		)
		return domain.PreviousShiftReadings{}
	}
	if !readings.Exists {
		r.log.Info("no previous shift recorded", zap.Stringer("previous", prev))
	}
	return readings
}

// Resolve clears stale carried-forward openings from d, then fills empty openings
// from the predecessor shift when one is recorded.
func (r *CarryForwardResolver) Resolve(ctx context.Context, d domain.ShiftDraft) domain.ShiftDraft {
	cleared := domain.ClearCarryForward(d)
	return domain.ApplyCarryForward(cleared, r.Lookup(ctx, d.Key()))
}
