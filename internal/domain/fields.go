package domain

import "fmt"

// OpeningField is the field key of a nozzle's opening reading (nozzle is 1-based).
func OpeningField(fuelID string, nozzle int) string {
	return fmt.Sprintf("fuel.%s.opening.%d", fuelID, nozzle)
}

// ClosingField is the field key of a nozzle's closing reading.
func ClosingField(fuelID string, nozzle int) string {
	return fmt.Sprintf("fuel.%s.closing.%d", fuelID, nozzle)
}

// FuelField is the field key of a per-fuel input such as "testing" or "paytm".
func FuelField(fuelID, name string) string {
	return fmt.Sprintf("fuel.%s.%s", fuelID, name)
}

// LineField is the field key of an input on the index-th entry of a line list.
func LineField(kind LineKind, index int, name string) string {
	return fmt.Sprintf("%s.%d.%s", kind, index, name)
}

// Field keys of the shift-wide inputs.
const (
	FieldShiftDate  = "shift_date"
	FieldShiftType  = "shift_type"
	FieldActualCash = "actual_cash"
)
