package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shift-reconciliation/internal/domain"
)

// EmptyShiftMessage is reported for each fuel when no nozzle in the shift has
// both an opening and a closing reading.
const EmptyShiftMessage = "enter at least one opening and closing reading"

// Parse coerces raw operator input into a number. ok is false when the input
// is empty or is not a finite number.
func Parse(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// IsEmpty reports whether the operator has not entered anything.
func IsEmpty(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

// IsNonNegativeNumber accepts empty input (not entered yet) or a number >= 0.
func IsNonNegativeNumber(value string) bool {
	if IsEmpty(value) {
		return true
	}
	d, ok := Parse(value)
	return ok && !d.IsNegative()
}

// IsClosingGreaterOrEqualOpening accepts the pair when either side is empty,
// otherwise closing must not be below opening. Unparseable values are left to
// IsNonNegativeNumber.
func IsClosingGreaterOrEqualOpening(opening, closing string) bool {
	o, okOpen := Parse(opening)
	c, okClose := Parse(closing)
	if !okOpen || !okClose {
		return true
	}
	return c.GreaterThanOrEqual(o)
}

// IsPastOrTodayDate reports whether date is a valid YYYY-MM-DD date not after today.
// Both are station-local calendar dates, so string comparison is exact.
func IsPastOrTodayDate(date, today string) bool {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return false
	}
	return date <= today
}

// Result collects every problem found in a draft.
type Result struct {
	Messages []string            `json:"messages"`
	Fields   map[string]struct{} `json:"-"`
}

func newResult() Result {
	return Result{Messages: []string{}, Fields: make(map[string]struct{})}
}

func (r *Result) add(field, format string, args ...any) {
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
	if field != "" {
		r.Fields[field] = struct{}{}
	}
}

// Valid reports whether no problem was found.
func (r Result) Valid() bool {
	return len(r.Messages) == 0
}

// HasField reports whether the field key was flagged.
func (r Result) HasField(key string) bool {
	_, ok := r.Fields[key]
	return ok
}

// ValidateShift checks every field of the draft against the station
// configuration. It never stops at the first problem.
func ValidateShift(cfg domain.StationConfig, d domain.ShiftDraft, today string) Result {
	res := newResult()

	switch {
	case IsEmpty(d.Date):
		res.add(domain.FieldShiftDate, "Shift date is required")
	case !IsPastOrTodayDate(d.Date, today):
		res.add(domain.FieldShiftDate, "Shift date %s must be a valid date not later than %s", d.Date, today)
	}
	if _, err := domain.ParseShiftType(string(d.Type)); err != nil {
		res.add(domain.FieldShiftType, "Shift type must be morning or night")
	}

	entries := make(map[string]domain.FuelEntry, len(d.Fuels))
	for _, f := range d.Fuels {
		if _, ok := cfg.Fuel(f.FuelTypeID); !ok {
			res.add(domain.FuelField(f.FuelTypeID, "id"), "Fuel type %q is not configured for this station", f.FuelTypeID)
			continue
		}
		if _, dup := entries[f.FuelTypeID]; dup {
			res.add(domain.FuelField(f.FuelTypeID, "id"), "Fuel type %q is entered more than once", f.FuelTypeID)
			continue
		}
		entries[f.FuelTypeID] = f
	}

	readingPairs := 0
	for _, fuel := range cfg.Fuels {
		entry, ok := entries[fuel.ID]
		if !ok {
			res.add(domain.FuelField(fuel.ID, "id"), "%s: no entry in this shift", fuel.Name)
			continue
		}
		readingPairs += validateFuel(&res, fuel, entry)
	}
	if readingPairs == 0 {
		for _, fuel := range cfg.Fuels {
			res.add(domain.FuelField(fuel.ID, "readings"), "%s: %s", fuel.Name, EmptyShiftMessage)
		}
	}

	validateLines(&res, domain.LineCredit, "Credit sale", d.CreditSales, cfg.CreditTypes)
	validateLines(&res, domain.LineExpense, "Expense", d.Expenses, cfg.ExpenseCategories)
	validateLines(&res, domain.LineCollection, "Collection", d.Collections, cfg.CashModes)

	for i, l := range d.LubeSales {
		if !IsNonNegativeNumber(l.Amount) {
			res.add(domain.LineField(domain.LineLube, i, "amount"), "Lube sale %d: amount must be a non-negative number", i+1)
		}
	}

	if !IsNonNegativeNumber(d.ActualCash) {
		res.add(domain.FieldActualCash, "Actual cash must be a non-negative number")
	}

	return res
}

// validateFuel checks one fuel's readings and amounts and returns how many
// nozzles have both readings entered.
func validateFuel(res *Result, fuel domain.FuelType, e domain.FuelEntry) int {
	if len(e.Opening) != fuel.NozzleCount || len(e.Closing) != fuel.NozzleCount {
		res.add(domain.FuelField(fuel.ID, "nozzles"), "%s: expected %d nozzles, got %d opening and %d closing readings",
			fuel.Name, fuel.NozzleCount, len(e.Opening), len(e.Closing))
	}

	pairs := 0
	dispensed := decimal.Zero
	n := min(len(e.Opening), len(e.Closing))
	for i := 0; i < n; i++ {
		nozzle := i + 1
		opening, closing := e.Opening[i].Value, e.Closing[i].Value
		okOpen := IsNonNegativeNumber(opening)
		okClose := IsNonNegativeNumber(closing)
		if !okOpen {
			res.add(domain.OpeningField(fuel.ID, nozzle), "%s nozzle %d: opening reading must be a non-negative number", fuel.Name, nozzle)
		}
		if !okClose {
			res.add(domain.ClosingField(fuel.ID, nozzle), "%s nozzle %d: closing reading must be a non-negative number", fuel.Name, nozzle)
		}
		if okOpen && okClose && !IsClosingGreaterOrEqualOpening(opening, closing) {
			res.add(domain.ClosingField(fuel.ID, nozzle), "%s nozzle %d: closing reading must be greater than or equal to opening reading", fuel.Name, nozzle)
		}
		if !IsEmpty(opening) && !IsEmpty(closing) {
			pairs++
			o, parsedOpen := Parse(opening)
			c, parsedClose := Parse(closing)
			if parsedOpen && parsedClose && c.GreaterThan(o) {
				dispensed = dispensed.Add(c.Sub(o))
			}
		}
	}

	// Testing litres are apportioned over the complete nozzle pairs.
	if testing, ok := Parse(e.TestingLitres); ok && testing.IsPositive() {
		switch {
		case pairs == 0:
			res.add(domain.FuelField(fuel.ID, "testing"), "%s: testing litres need at least one nozzle with opening and closing readings", fuel.Name)
		case testing.GreaterThan(dispensed):
			res.add(domain.FuelField(fuel.ID, "testing"), "%s: testing litres %s exceed the %s litres dispensed", fuel.Name, testing, dispensed)
		}
	}

	amounts := []struct {
		field, label, value string
	}{
		{"testing", "testing litres", e.TestingLitres},
		{"unit_price", "unit price", e.UnitPrice},
		{"paytm", "Paytm amount", e.Digital.Paytm},
		{"phonepe", "PhonePe amount", e.Digital.PhonePe},
		{"other", "other digital amount", e.Digital.Other},
	}
	for _, a := range amounts {
		if !IsNonNegativeNumber(a.value) {
			res.add(domain.FuelField(fuel.ID, a.field), "%s: %s must be a non-negative number", fuel.Name, a.label)
		}
	}
	return pairs
}

func validateLines(res *Result, kind domain.LineKind, label string, lines []domain.LineEntry, categories []string) {
	for i, l := range lines {
		if !IsNonNegativeNumber(l.Amount) {
			res.add(domain.LineField(kind, i, "amount"), "%s %d: amount must be a non-negative number", label, i+1)
		}
		if !IsEmpty(l.Category) && !containsFold(categories, l.Category) {
			res.add(domain.LineField(kind, i, "category"), "%s %d: unknown category %q", label, i+1, l.Category)
		}
	}
}

func containsFold(names []string, name string) bool {
	name = strings.TrimSpace(name)
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
