package domain

import "github.com/shopspring/decimal"

// CashStatus describes what the counted cash says about the drawer.
type CashStatus string

const (
	CashBalanced   CashStatus = "balanced"
	CashShort      CashStatus = "short"
	CashOver       CashStatus = "over"
	CashNotCounted CashStatus = "not_counted"
)

// FuelSale is the calculated sale for one fuel type.
type FuelSale struct {
	FuelTypeID  string          `json:"fuel_type_id"`
	GrossLitres decimal.Decimal `json:"gross_litres"`
	SaleLitres  decimal.Decimal `json:"sale_litres"`
	SaleAmount  decimal.Decimal `json:"sale_amount"`
	Digital     decimal.Decimal `json:"digital_amount"`
	Cash        decimal.Decimal `json:"cash_amount"`
}

// ReconciliationResult is the full set of shift totals. It is derived from a
// draft and never updated in place; every change produces a new result.
type ReconciliationResult struct {
	FuelSales             []FuelSale      `json:"fuel_sales"`
	TotalFuelSale         decimal.Decimal `json:"total_fuel_sale"`
	TotalDigitalFromFuel  decimal.Decimal `json:"total_digital_from_fuel"`
	CashFromFuel          decimal.Decimal `json:"cash_from_fuel"`
	TotalCreditSales      decimal.Decimal `json:"total_credit_sales"`
	TotalExpenses         decimal.Decimal `json:"total_expenses"`
	CashCollections       decimal.Decimal `json:"cash_collections"`
	DigitalCollections    decimal.Decimal `json:"digital_collections"`
	TotalCreditCollection decimal.Decimal `json:"total_credit_collection"`
	CashLubeSales         decimal.Decimal `json:"cash_lube_sales"`
	DigitalLubeSales      decimal.Decimal `json:"digital_lube_sales"`
	TotalLubeSales        decimal.Decimal `json:"total_lube_sales"`
	ExpectedCash          decimal.Decimal `json:"expected_cash"`
	TotalDigitalPayments  decimal.Decimal `json:"total_digital_payments"`
	ActualCash            decimal.Decimal `json:"actual_cash"`

	// CashDifference is ExpectedCash minus ActualCash: positive when the drawer
	// is short, negative when it holds more than expected.
	CashDifference decimal.Decimal `json:"cash_difference"`
	CashStatus     CashStatus      `json:"cash_status"`
}

// NozzleReadingRow is one nozzle's readings as submitted for storage.
type NozzleReadingRow struct {
	FuelTypeID     string          `json:"fuel_type_id"`
	NozzleNumber   int             `json:"nozzle_number"`
	OpeningReading decimal.Decimal `json:"opening_reading"`
	ClosingReading decimal.Decimal `json:"closing_reading"`
	TestingLitres  decimal.Decimal `json:"testing_litres"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
}

// DigitalPaymentRow holds the app payments received against one fuel.
type DigitalPaymentRow struct {
	FuelTypeID string          `json:"fuel_type_id"`
	Paytm      decimal.Decimal `json:"paytm"`
	PhonePe    decimal.Decimal `json:"phonepe"`
	Other      decimal.Decimal `json:"other"`
}

// LineRow is a submitted credit sale, expense, collection or lube sale.
type LineRow struct {
	Kind      LineKind        `json:"kind"`
	PartyName string          `json:"party_name,omitempty"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Remarks   string          `json:"remarks,omitempty"`
}

// SubmissionPayload is what gets handed to the shift store on submit.
type SubmissionPayload struct {
	Key             ShiftKey             `json:"shift"`
	Overwrite       bool                 `json:"overwrite"`
	ReplacesShiftID string               `json:"replaces_shift_id,omitempty"`
	FuelReadings    []NozzleReadingRow   `json:"fuel_readings"`
	DigitalPayments []DigitalPaymentRow  `json:"digital_payments"`
	CreditSales     []LineRow            `json:"credit_sales"`
	Expenses        []LineRow            `json:"expenses"`
	Collections     []LineRow            `json:"collections"`
	LubeSales       []LineRow            `json:"lube_sales"`
	Totals          ReconciliationResult `json:"totals"`
}
