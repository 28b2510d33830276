package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/logger"
)

// DuplicateState is what is known about an existing record for a shift key.
type DuplicateState string

const (
	DuplicateUnknown DuplicateState = "unknown"
	DuplicateAbsent  DuplicateState = "absent"
	DuplicatePresent DuplicateState = "present"
)

// DuplicateStatus is the outcome of a duplicate check. ShiftID is set only
// when State is DuplicatePresent.
type DuplicateStatus struct {
	State   DuplicateState `json:"state"`
	ShiftID string         `json:"shift_id,omitempty"`
}

// Present reports whether a record already exists for the checked key.
func (s DuplicateStatus) Present() bool {
	return s.State == DuplicatePresent
}

// DuplicateGuard checks whether a shift has already been recorded.
type DuplicateGuard struct {
	repo ShiftRepository
	log  *zap.Logger
}

// NewDuplicateGuard creates a guard backed by repo.
func NewDuplicateGuard(repo ShiftRepository, log *zap.Logger) *DuplicateGuard {
	return &DuplicateGuard{repo: repo, log: logger.OrNop(log)}
}

// Check looks up key. A failed lookup yields DuplicateUnknown rather than an error.
func (g *DuplicateGuard) Check(ctx context.Context, key domain.ShiftKey) DuplicateStatus {
	id, found, err := g.repo.FindShift(ctx, key)
	if err != nil {
		g.log.Warn("duplicate check failed", zap.Stringer("shift", key), zap.Error(err))
		return DuplicateStatus{State: DuplicateUnknown}
	}
	if !found {
		return DuplicateStatus{State: DuplicateAbsent}
	}
	g.log.Info("shift already recorded", zap.Stringer("shift", key), zap.String("shift_id", id))
	return DuplicateStatus{State: DuplicatePresent, ShiftID: id}
}

// OverwriteDialog is the confirmation step shown while a duplicate is present.
// It has no dismiss action: the caller either confirms or changes the shift.
type OverwriteDialog struct {
	Title   string
	Body    string
	ShiftID string
	Confirm func() error
}

// NewOverwriteDialog builds the dialog for key. It returns nil unless status is
// DuplicatePresent. confirm runs the overwriting submission.
func NewOverwriteDialog(key domain.ShiftKey, status DuplicateStatus, confirm func() error) *OverwriteDialog {
	if !status.Present() {
		return nil
	}
	return &OverwriteDialog{
		Title:   "Shift already recorded",
		Body:    fmt.Sprintf("A %s shift for %s has already been submitted. Submitting again will replace it.", key.Type, key.Date),
		ShiftID: status.ShiftID,
		Confirm: confirm,
	}
}
