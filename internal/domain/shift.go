package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used for shift dates.
const DateLayout = "2006-01-02"

// ShiftType identifies which half of the station day a shift covers.
type ShiftType string

const (
	ShiftMorning ShiftType = "morning"
	ShiftNight   ShiftType = "night"
)

// ParseShiftType converts user input into a ShiftType.
func ParseShiftType(s string) (ShiftType, error) {
	switch ShiftType(strings.ToLower(strings.TrimSpace(s))) {
	case ShiftMorning:
		return ShiftMorning, nil
	case ShiftNight:
		return ShiftNight, nil
	}
	return "", fmt.Errorf("unknown shift type %q", s)
}

// ShiftKey identifies a shift record: one per (date, type) at a station.
type ShiftKey struct {
	Date string    `json:"shift_date"`
	Type ShiftType `json:"shift_type"`
}

func (k ShiftKey) String() string {
	return k.Date + "/" + string(k.Type)
}

// Previous returns the shift immediately before k. A morning shift follows the
// previous day's night shift; a night shift follows the same day's morning.
func (k ShiftKey) Previous() (ShiftKey, error) {
	day, err := time.Parse(DateLayout, k.Date)
	if err != nil {
		return ShiftKey{}, fmt.Errorf("invalid shift date %q: %w", k.Date, err)
	}
	switch k.Type {
	case ShiftMorning:
		return ShiftKey{Date: day.AddDate(0, 0, -1).Format(DateLayout), Type: ShiftNight}, nil
	case ShiftNight:
		return ShiftKey{Date: k.Date, Type: ShiftMorning}, nil
	}
	return ShiftKey{}, fmt.Errorf("unknown shift type %q", k.Type)
}

// ReadingSource records who put a value into a meter reading field.
type ReadingSource string

const (
	SourceOperator     ReadingSource = "operator"
	SourceCarryForward ReadingSource = "carry_forward"
)

// Reading is the raw text of one meter reading field. An empty value means the
// operator has not entered it yet.
type Reading struct {
	Value  string        `json:"value"`
	Source ReadingSource `json:"source,omitempty"`
}

// IsEmpty reports whether nothing has been entered.
func (r Reading) IsEmpty() bool {
	return strings.TrimSpace(r.Value) == ""
}

// IsCarriedForward reports whether the value was filled from the previous shift.
func (r Reading) IsCarriedForward() bool {
	return r.Source == SourceCarryForward
}

// DigitalPayments are the amounts received through payment apps for one fuel.
type DigitalPayments struct {
	Paytm   string `json:"paytm"`
	PhonePe string `json:"phonepe"`
	Other   string `json:"other"`
}

// FuelEntry holds the shift's readings for one fuel type. Opening and Closing
// are indexed by nozzle, nozzle 1 at index 0.
type FuelEntry struct {
	FuelTypeID    string          `json:"fuel_type_id"`
	Opening       []Reading       `json:"opening_readings"`
	Closing       []Reading       `json:"closing_readings"`
	TestingLitres string          `json:"testing_litres"`
	UnitPrice     string          `json:"unit_price"`
	Digital       DigitalPayments `json:"digital_payments"`
}

// LineEntry is a credit sale, an expense or a credit collection.
type LineEntry struct {
	PartyName string `json:"party_name"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Remarks   string `json:"remarks,omitempty"`
}

// LubeEntry is a lubricant sale with its payment mode.
type LubeEntry struct {
	Amount      string `json:"amount"`
	PaymentMode string `json:"payment_mode"`
}

// LineKind names the list a LineEntry belongs to.
type LineKind string

const (
	LineCredit     LineKind = "credit"
	LineExpense    LineKind = "expense"
	LineCollection LineKind = "collection"
	LineLube       LineKind = "lube"
)

// ShiftDraft is the operator's in-progress input for one shift.
type ShiftDraft struct {
	Date        string      `json:"shift_date"`
	Type        ShiftType   `json:"shift_type"`
	Fuels       []FuelEntry `json:"fuel_entries"`
	CreditSales []LineEntry `json:"credit_sales"`
	Expenses    []LineEntry `json:"expenses"`
	Collections []LineEntry `json:"collections"`
	LubeSales   []LubeEntry `json:"lube_sales"`
	ActualCash  string      `json:"actual_cash"`
}

// NewShiftDraft creates an empty draft with one fuel entry per configured fuel,
// sized to the fuel's nozzle count and priced at its current price.
func NewShiftDraft(cfg StationConfig, date string, shiftType ShiftType) ShiftDraft {
	draft := ShiftDraft{
		Date:  date,
		Type:  shiftType,
		Fuels: make([]FuelEntry, 0, len(cfg.Fuels)),
	}
	for _, f := range cfg.Fuels {
		draft.Fuels = append(draft.Fuels, FuelEntry{
			FuelTypeID: f.ID,
			Opening:    make([]Reading, f.NozzleCount),
			Closing:    make([]Reading, f.NozzleCount),
			UnitPrice:  f.UnitPrice.String(),
		})
	}
	return draft
}

// Key returns the (date, type) pair of the draft.
func (d ShiftDraft) Key() ShiftKey {
	return ShiftKey{Date: d.Date, Type: d.Type}
}

// Clone returns a deep copy of the draft.
func (d ShiftDraft) Clone() ShiftDraft {
	out := d
	out.Fuels = make([]FuelEntry, len(d.Fuels))
	for i, f := range d.Fuels {
		f.Opening = append([]Reading(nil), f.Opening...)
		f.Closing = append([]Reading(nil), f.Closing...)
		out.Fuels[i] = f
	}
	out.CreditSales = append([]LineEntry(nil), d.CreditSales...)
	out.Expenses = append([]LineEntry(nil), d.Expenses...)
	out.Collections = append([]LineEntry(nil), d.Collections...)
	out.LubeSales = append([]LubeEntry(nil), d.LubeSales...)
	return out
}

func (d *ShiftDraft) fuel(fuelID string) (*FuelEntry, error) {
	for i := range d.Fuels {
		if d.Fuels[i].FuelTypeID == fuelID {
			return &d.Fuels[i], nil
		}
	}
	return nil, fmt.Errorf("fuel type %q is not part of this shift", fuelID)
}

func errNoNozzle(fuelID string, nozzle int) error {
	return fmt.Errorf("fuel type %q has no nozzle %d", fuelID, nozzle)
}

// SetReading records operator-entered readings for a nozzle (1-based). Empty
// arguments leave the existing value in place.
func (d *ShiftDraft) SetReading(fuelID string, nozzle int, opening, closing string) error {
	f, err := d.fuel(fuelID)
	if err != nil {
		return err
	}
	if nozzle < 1 || nozzle > len(f.Opening) || nozzle > len(f.Closing) {
		return errNoNozzle(fuelID, nozzle)
	}
	if opening != "" {
		f.Opening[nozzle-1] = Reading{Value: opening, Source: SourceOperator}
	}
	if closing != "" {
		f.Closing[nozzle-1] = Reading{Value: closing, Source: SourceOperator}
	}
	return nil
}

// SetTesting records the litres dispensed for testing for a fuel.
func (d *ShiftDraft) SetTesting(fuelID, litres string) error {
	f, err := d.fuel(fuelID)
	if err != nil {
		return err
	}
	f.TestingLitres = litres
	return nil
}

// SetDigital records the digital payments received against a fuel.
func (d *ShiftDraft) SetDigital(fuelID string, payments DigitalPayments) error {
	f, err := d.fuel(fuelID)
	if err != nil {
		return err
	}
	f.Digital = payments
	return nil
}

// AddLine appends an entry to the list named by kind. For lube sales the
// entry's Category is taken as the payment mode.
func (d *ShiftDraft) AddLine(kind LineKind, entry LineEntry) error {
	switch kind {
	case LineCredit:
		d.CreditSales = append(d.CreditSales, entry)
	case LineExpense:
		d.Expenses = append(d.Expenses, entry)
	case LineCollection:
		d.Collections = append(d.Collections, entry)
	case LineLube:
		d.LubeSales = append(d.LubeSales, LubeEntry{Amount: entry.Amount, PaymentMode: entry.Category})
	default:
		return fmt.Errorf("unknown entry kind %q", kind)
	}
	return nil
}
