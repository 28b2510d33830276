package usecase

import (
	"context"
	"errors"
	"sync"

	"shift-reconciliation/internal/domain"
)

// ErrStaleLookup is returned when the session moved to another shift while a
// lookup was in flight. The late response is discarded.
var ErrStaleLookup = errors.New("shift changed while lookup was in flight")

// Session owns the draft of one editing session. Lookups run outside the lock
// and only land if the draft still has the shift key they were started for.
type Session struct {
	mu        sync.Mutex
	draft     domain.ShiftDraft
	duplicate DuplicateStatus

	resolver *CarryForwardResolver
	guard    *DuplicateGuard
}

// NewSession starts a session on an empty draft for the given shift.
func NewSession(station domain.StationConfig, date string, shiftType domain.ShiftType, resolver *CarryForwardResolver, guard *DuplicateGuard) *Session {
	return &Session{
		draft:     domain.NewShiftDraft(station, date, shiftType),
		duplicate: DuplicateStatus{State: DuplicateUnknown},
		resolver:  resolver,
		guard:     guard,
	}
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() domain.ShiftDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// Duplicate returns the last duplicate status recorded for the current shift.
func (s *Session) Duplicate() DuplicateStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duplicate
}

// SetShift moves the session to another date and shift type. Carried-forward
// openings from the old shift are cleared and the duplicate status is reset.
func (s *Session) SetShift(date string, shiftType domain.ShiftType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Date = date
	s.draft.Type = shiftType
	s.resetLocked()
}

// Update applies an edit to a copy of the draft and keeps it only if fn succeeds.
func (s *Session) Update(fn func(d *domain.ShiftDraft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.draft.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	keyChanged := next.Key() != s.draft.Key()
	s.draft = next
	if keyChanged {
		s.resetLocked()
	}
	return nil
}

// DetachOpening records an operator value over an opening reading.
func (s *Session) DetachOpening(fuelID string, nozzle int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := domain.DetachOpening(s.draft, fuelID, nozzle, value)
	if err != nil {
		return err
	}
	s.draft = next
	return nil
}

// ResolveOpenings fills empty openings from the previous shift's closing readings.
func (s *Session) ResolveOpenings(ctx context.Context) error {
	key := s.key()

	prev := s.resolver.Lookup(ctx, key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.Key() != key {
		return ErrStaleLookup
	}
	s.draft = domain.ApplyCarryForward(domain.ClearCarryForward(s.draft), prev)
	return nil
}

// CheckDuplicate refreshes the duplicate status for the current shift.
func (s *Session) CheckDuplicate(ctx context.Context) (DuplicateStatus, error) {
	key := s.key()

	status := s.guard.Check(ctx, key)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft.Key() != key {
		return DuplicateStatus{State: DuplicateUnknown}, ErrStaleLookup
	}
	s.duplicate = status
	return status, nil
}

func (s *Session) key() domain.ShiftKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Key()
}

func (s *Session) resetLocked() {
	s.draft = domain.ClearCarryForward(s.draft)
	s.duplicate = DuplicateStatus{State: DuplicateUnknown}
}
