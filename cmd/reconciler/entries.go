package main

import (
	"fmt"
	"strings"

	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/gateway"
	"shift-reconciliation/internal/usecase"
)

// parseAssignments reads a "MS=2.5,HSD=1" flag value.
func parseAssignments(s string) (map[string]string, error) {
	out := make(map[string]string)
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected FUEL=VALUE, got %q", part)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// parseDigital reads a "MS=500/200/0" flag value: paytm/phonepe/other per fuel.
// Trailing amounts may be left out.
func parseDigital(s string) (map[string]domain.DigitalPayments, error) {
	assignments, err := parseAssignments(s)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.DigitalPayments, len(assignments))
	for fuelID, value := range assignments {
		parts := strings.Split(value, "/")
		if len(parts) > 3 {
			return nil, fmt.Errorf("fuel %s: expected paytm/phonepe/other, got %q", fuelID, value)
		}
		for len(parts) < 3 {
			parts = append(parts, "")
		}
		out[fuelID] = domain.DigitalPayments{
			Paytm:   strings.TrimSpace(parts[0]),
			PhonePe: strings.TrimSpace(parts[1]),
			Other:   strings.TrimSpace(parts[2]),
		}
	}
	return out, nil
}

// entries is everything the operator handed in for one shift.
type entries struct {
	readings   []gateway.ReadingRow
	lines      []gateway.LineRow
	testing    map[string]string
	digital    map[string]domain.DigitalPayments
	actualCash string
}

// apply merges the entries into d.
func (e entries) apply(d *domain.ShiftDraft) error {
	for _, r := range e.readings {
		if err := d.SetReading(r.FuelTypeID, r.Nozzle, r.Opening, r.Closing); err != nil {
			return err
		}
	}
	for _, l := range e.lines {
		entry := domain.LineEntry{PartyName: l.PartyName, Category: l.Category, Amount: l.Amount, Remarks: l.Remarks}
		if err := d.AddLine(l.Kind, entry); err != nil {
			return err
		}
	}
	for fuelID, litres := range e.testing {
		if err := d.SetTesting(fuelID, litres); err != nil {
			return err
		}
	}
	for fuelID, payments := range e.digital {
		if err := d.SetDigital(fuelID, payments); err != nil {
			return err
		}
	}
	d.ActualCash = e.actualCash
	return nil
}

// applyPreviousFile fills still-empty opening readings from a previous-readings
// JSON file.
func applyPreviousFile(s *usecase.Session, path string) error {
	prev, err := gateway.ReadPreviousReadingsFile(path)
	if err != nil {
		return err
	}
	return s.Update(func(d *domain.ShiftDraft) error {
		*d = domain.ApplyCarryForward(*d, prev)
		return nil
	})
}
