package domain

import (
	"github.com/shopspring/decimal"
)

// PreviousShiftReadings are the closing readings persisted for a shift, keyed by
// fuel type id and then by 1-based nozzle number.
type PreviousShiftReadings struct {
	Exists   bool                               `json:"exists"`
	Readings map[string]map[int]decimal.Decimal `json:"readings,omitempty"`
}

// ClearCarryForward returns a copy of the draft with every carried-forward
// opening reading blanked. Operator-entered values are kept.
func ClearCarryForward(d ShiftDraft) ShiftDraft {
	out := d.Clone()
	for i := range out.Fuels {
		for n, r := range out.Fuels[i].Opening {
			if r.IsCarriedForward() {
				out.Fuels[i].Opening[n] = Reading{}
			}
		}
	}
	return out
}

// ApplyCarryForward returns a copy of the draft where each empty opening reading
// takes the previous shift's closing reading for the same fuel and nozzle.
// Filled fields are marked as carried forward. Nothing changes when prev does
// not exist.
func ApplyCarryForward(d ShiftDraft, prev PreviousShiftReadings) ShiftDraft {
	out := d.Clone()
	if !prev.Exists {
		return out
	}
	for i := range out.Fuels {
		closing, ok := prev.Readings[out.Fuels[i].FuelTypeID]
		if !ok {
			continue
		}
		for n := range out.Fuels[i].Opening {
			if !out.Fuels[i].Opening[n].IsEmpty() {
				continue
			}
			v, ok := closing[n+1]
			if !ok {
				continue
			}
			out.Fuels[i].Opening[n] = Reading{Value: v.String(), Source: SourceCarryForward}
		}
	}
	return out
}

// DetachOpening returns a copy of the draft where the operator has overwritten
// an opening reading, carried forward or not.
func DetachOpening(d ShiftDraft, fuelID string, nozzle int, value string) (ShiftDraft, error) {
	out := d.Clone()
	f, err := out.fuel(fuelID)
	if err != nil {
		return d, err
	}
	if nozzle < 1 || nozzle > len(f.Opening) {
		return d, errNoNozzle(fuelID, nozzle)
	}
	f.Opening[nozzle-1] = Reading{Value: value, Source: SourceOperator}
	return out, nil
}

// CarriedForwardFields lists the field keys currently holding carried-forward values.
func CarriedForwardFields(d ShiftDraft) []string {
	var keys []string
	for _, f := range d.Fuels {
		for n, r := range f.Opening {
			if r.IsCarriedForward() {
				keys = append(keys, OpeningField(f.FuelTypeID, n+1))
			}
		}
	}
	return keys
}
