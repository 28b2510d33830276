package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"shift-reconciliation/internal/calculator"
	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/logger"
	"shift-reconciliation/internal/validation"
)

// ErrOverwriteNotConfirmed is returned when a shift is already recorded and the
// caller did not confirm replacing it.
var ErrOverwriteNotConfirmed = errors.New("shift already recorded, overwrite not confirmed")

// ValidationError blocks submission of a draft with field errors.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("shift has %d validation error(s): %s", len(e.Result.Messages), strings.Join(e.Result.Messages, "; "))
}

// DuplicateShiftError carries the id of the record a submission would replace.
type DuplicateShiftError struct {
	Key     domain.ShiftKey
	ShiftID string
}

func (e *DuplicateShiftError) Error() string {
	return fmt.Sprintf("shift %s already recorded as %s", e.Key, e.ShiftID)
}

func (e *DuplicateShiftError) Unwrap() error {
	return ErrOverwriteNotConfirmed
}

// SubmitOptions carries the operator's decisions for a submission.
type SubmitOptions struct {
	// ConfirmOverwrite must be set to replace a shift that is already recorded.
	ConfirmOverwrite bool
}

// SubmitResult is what a successful submission stored.
type SubmitResult struct {
	ShiftID string                   `json:"shift_id"`
	Payload domain.SubmissionPayload `json:"payload"`
}

// ReconciliationUseCase orchestrates validating, totalling and storing a shift.
type ReconciliationUseCase struct {
	station domain.StationConfig
	repo    ShiftRepository
	guard   *DuplicateGuard
	today   func() string
	log     *zap.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase. today returns
// the station-local date used to reject future shifts.
func NewReconciliationUseCase(station domain.StationConfig, repo ShiftRepository, today func() string, log *zap.Logger) *ReconciliationUseCase {
	log = logger.OrNop(log)
	return &ReconciliationUseCase{
		station: station,
		repo:    repo,
		guard:   NewDuplicateGuard(repo, log),
		today:   today,
		log:     log,
	}
}

// Preview validates d and computes its totals without storing anything. Totals
// are returned even when the draft has field errors.
func (uc *ReconciliationUseCase) Preview(d domain.ShiftDraft) (domain.ReconciliationResult, validation.Result) {
	return calculator.Reconcile(d), validation.ValidateShift(uc.station, d, uc.today())
}

// Submit performs the full submission of a shift draft.
func (uc *ReconciliationUseCase) Submit(ctx context.Context, d domain.ShiftDraft, opts SubmitOptions) (*SubmitResult, error) {
	key := d.Key()

	// Step 1: Validation
	res := validation.ValidateShift(uc.station, d, uc.today())
	if !res.Valid() {
		uc.log.Info("shift rejected by validation",
			zap.Stringer("shift", key),
			zap.Strings("errors", res.Messages),
		)
		return nil, &ValidationError{Result: res}
	}

	// Step 2: Totals
	totals := calculator.Reconcile(d)

	// Step 3: Duplicate check, fresh for every submission
	status := uc.guard.Check(ctx, key)
	if status.Present() && !opts.ConfirmOverwrite {
		return nil, &DuplicateShiftError{Key: key, ShiftID: status.ShiftID}
	}

	// Step 4: Payload
	payload := calculator.BuildPayload(d, totals)
	if status.Present() {
		payload.Overwrite = true
		payload.ReplacesShiftID = status.ShiftID
	}

	// Step 5: Persist
	id, err := uc.repo.SaveShift(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("could not save shift %s: %w", key, err)
	}

	uc.log.Info("shift submitted",
		zap.Stringer("shift", key),
		zap.String("shift_id", id),
		zap.Bool("overwrite", payload.Overwrite),
		zap.String("expected_cash", totals.ExpectedCash.String()),
		zap.String("cash_status", string(totals.CashStatus)),
	)
	return &SubmitResult{ShiftID: id, Payload: payload}, nil
}
