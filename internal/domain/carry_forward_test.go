package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func previousReadings() PreviousShiftReadings {
	return PreviousShiftReadings{
		Exists: true,
		Readings: map[string]map[int]decimal.Decimal{
			"MS":  {1: decimal.RequireFromString("1500.25"), 2: decimal.RequireFromString("2200")},
			"HSD": {1: decimal.RequireFromString("800.5")},
		},
	}
}

func TestApplyCarryForward(t *testing.T) {
	d := NewShiftDraft(testStation(), "2024-03-10", ShiftMorning)
	_ = d.SetReading("MS", 2, "2199", "")

	got := ApplyCarryForward(d, previousReadings())

	assert.Equal(t, Reading{Value: "1500.25", Source: SourceCarryForward}, got.Fuels[0].Opening[0])
	assert.Equal(t, Reading{Value: "2199", Source: SourceOperator}, got.Fuels[0].Opening[1], "operator value wins")
	assert.Equal(t, Reading{Value: "800.5", Source: SourceCarryForward}, got.Fuels[1].Opening[0])
	assert.True(t, got.Fuels[0].Closing[0].IsEmpty(), "closing readings are never filled")

	assert.True(t, d.Fuels[0].Opening[0].IsEmpty(), "input draft is not modified")
	assert.Equal(t, []string{OpeningField("MS", 1), OpeningField("HSD", 1)}, CarriedForwardFields(got))
}

func TestApplyCarryForward_NoHistory(t *testing.T) {
	d := NewShiftDraft(testStation(), "2024-03-10", ShiftMorning)

	got := ApplyCarryForward(d, PreviousShiftReadings{Exists: false})

	assert.Empty(t, CarriedForwardFields(got))
	assert.Equal(t, d, got)
}

func TestApplyCarryForward_PartialHistory(t *testing.T) {
	d := NewShiftDraft(testStation(), "2024-03-10", ShiftMorning)
	prev := PreviousShiftReadings{
		Exists: true,
		Readings: map[string]map[int]decimal.Decimal{
			"MS":  {2: decimal.RequireFromString("10")},
			"CNG": {1: decimal.RequireFromString("5")},
		},
	}

	got := ApplyCarryForward(d, prev)

	assert.Equal(t, []string{OpeningField("MS", 2)}, CarriedForwardFields(got))
}

func TestClearCarryForward_NoStaleValues(t *testing.T) {
	d := NewShiftDraft(testStation(), "2024-03-10", ShiftMorning)
	_ = d.SetReading("HSD", 1, "790", "")
	filled := ApplyCarryForward(d, previousReadings())
	require.NotEmpty(t, CarriedForwardFields(filled))

	// Operator switches to the night shift: the morning's auto-fill must go.
	filled.Type = ShiftNight
	cleared := ClearCarryForward(filled)

	assert.Empty(t, CarriedForwardFields(cleared))
	assert.True(t, cleared.Fuels[0].Opening[0].IsEmpty())
	assert.True(t, cleared.Fuels[0].Opening[1].IsEmpty())
	assert.Equal(t, "790", cleared.Fuels[1].Opening[0].Value, "operator value survives")

	refilled := ApplyCarryForward(cleared, PreviousShiftReadings{
		Exists:   true,
		Readings: map[string]map[int]decimal.Decimal{"MS": {2: decimal.RequireFromString("3000")}},
	})
	assert.Equal(t, []string{OpeningField("MS", 2)}, CarriedForwardFields(refilled))
	assert.True(t, refilled.Fuels[0].Opening[0].IsEmpty())
}

func TestDetachOpening(t *testing.T) {
	filled := ApplyCarryForward(NewShiftDraft(testStation(), "2024-03-10", ShiftMorning), previousReadings())

	got, err := DetachOpening(filled, "MS", 1, "1501")
	require.NoError(t, err)

	assert.Equal(t, Reading{Value: "1501", Source: SourceOperator}, got.Fuels[0].Opening[0])
	assert.True(t, filled.Fuels[0].Opening[0].IsCarriedForward())
	assert.Equal(t, []string{OpeningField("MS", 2), OpeningField("HSD", 1)}, CarriedForwardFields(got))

	_, err = DetachOpening(filled, "MS", 5, "1")
	assert.Error(t, err)
	_, err = DetachOpening(filled, "LPG", 1, "1")
	assert.Error(t, err)
}
