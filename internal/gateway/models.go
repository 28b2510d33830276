package gateway

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shift-reconciliation/internal/domain"
)

// Decimal columns are stored as text so SQLite keeps every digit.

// ShiftModel is the persisted shift header with its totals.
type ShiftModel struct {
	ID                    uuid.UUID       `gorm:"type:text;primaryKey"`
	ShiftDate             string          `gorm:"type:text;not null;uniqueIndex:idx_shift_date_type"`
	ShiftType             string          `gorm:"type:text;not null;uniqueIndex:idx_shift_date_type"`
	TotalFuelSale         decimal.Decimal `gorm:"type:text;not null"`
	TotalDigitalPayments  decimal.Decimal `gorm:"type:text;not null"`
	TotalCreditSales      decimal.Decimal `gorm:"type:text;not null"`
	TotalExpenses         decimal.Decimal `gorm:"type:text;not null"`
	TotalCreditCollection decimal.Decimal `gorm:"type:text;not null"`
	TotalLubeSales        decimal.Decimal `gorm:"type:text;not null"`
	ExpectedCash          decimal.Decimal `gorm:"type:text;not null"`
	ActualCash            decimal.Decimal `gorm:"type:text;not null"`
	CashDifference        decimal.Decimal `gorm:"type:text;not null"`
	CashStatus            string          `gorm:"type:text;not null"`
	CreatedAt             time.Time       `gorm:"not null"`
	UpdatedAt             time.Time       `gorm:"not null"`
}

func (ShiftModel) TableName() string { return "shifts" }

// NozzleReadingModel is one nozzle's readings within a shift.
type NozzleReadingModel struct {
	ID             uint            `gorm:"primaryKey"`
	ShiftID        uuid.UUID       `gorm:"type:text;not null;index"`
	FuelTypeID     string          `gorm:"type:text;not null"`
	NozzleNumber   int             `gorm:"not null"`
	OpeningReading decimal.Decimal `gorm:"type:text;not null"`
	ClosingReading decimal.Decimal `gorm:"type:text;not null"`
	TestingLitres  decimal.Decimal `gorm:"type:text;not null"`
	UnitPrice      decimal.Decimal `gorm:"type:text;not null"`
}

func (NozzleReadingModel) TableName() string { return "shift_nozzle_readings" }

// ShiftLineModel stores credit sales, expenses, collections and lube sales.
type ShiftLineModel struct {
	ID        uint            `gorm:"primaryKey"`
	ShiftID   uuid.UUID       `gorm:"type:text;not null;index"`
	Kind      string          `gorm:"type:text;not null"`
	PartyName string          `gorm:"type:text"`
	Category  string          `gorm:"type:text"`
	Amount    decimal.Decimal `gorm:"type:text;not null"`
	Remarks   string          `gorm:"type:text"`
}

func (ShiftLineModel) TableName() string { return "shift_lines" }

// DigitalPaymentModel holds the app payments for one fuel within a shift.
type DigitalPaymentModel struct {
	ID         uint            `gorm:"primaryKey"`
	ShiftID    uuid.UUID       `gorm:"type:text;not null;index"`
	FuelTypeID string          `gorm:"type:text;not null"`
	Paytm      decimal.Decimal `gorm:"type:text;not null"`
	PhonePe    decimal.Decimal `gorm:"type:text;not null"`
	Other      decimal.Decimal `gorm:"type:text;not null"`
}

func (DigitalPaymentModel) TableName() string { return "shift_digital_payments" }

// allModels lists every table the shift store migrates.
func allModels() []any {
	return []any{&ShiftModel{}, &NozzleReadingModel{}, &ShiftLineModel{}, &DigitalPaymentModel{}}
}

// fromTotals copies the payload totals onto the header.
func (m *ShiftModel) fromTotals(t domain.ReconciliationResult) {
	m.TotalFuelSale = t.TotalFuelSale
	m.TotalDigitalPayments = t.TotalDigitalPayments
	m.TotalCreditSales = t.TotalCreditSales
	m.TotalExpenses = t.TotalExpenses
	m.TotalCreditCollection = t.TotalCreditCollection
	m.TotalLubeSales = t.TotalLubeSales
	m.ExpectedCash = t.ExpectedCash
	m.ActualCash = t.ActualCash
	m.CashDifference = t.CashDifference
	m.CashStatus = string(t.CashStatus)
}

func childModels(shiftID uuid.UUID, p domain.SubmissionPayload) ([]NozzleReadingModel, []DigitalPaymentModel, []ShiftLineModel) {
	readings := make([]NozzleReadingModel, 0, len(p.FuelReadings))
	for _, r := range p.FuelReadings {
		readings = append(readings, NozzleReadingModel{
			ShiftID:        shiftID,
			FuelTypeID:     r.FuelTypeID,
			NozzleNumber:   r.NozzleNumber,
			OpeningReading: r.OpeningReading,
			ClosingReading: r.ClosingReading,
			TestingLitres:  r.TestingLitres,
			UnitPrice:      r.UnitPrice,
		})
	}

	payments := make([]DigitalPaymentModel, 0, len(p.DigitalPayments))
	for _, d := range p.DigitalPayments {
		payments = append(payments, DigitalPaymentModel{
			ShiftID:    shiftID,
			FuelTypeID: d.FuelTypeID,
			Paytm:      d.Paytm,
			PhonePe:    d.PhonePe,
			Other:      d.Other,
		})
	}

	var lines []ShiftLineModel
	for _, group := range [][]domain.LineRow{p.CreditSales, p.Expenses, p.Collections, p.LubeSales} {
		for _, l := range group {
			lines = append(lines, ShiftLineModel{
				ShiftID:   shiftID,
				Kind:      string(l.Kind),
				PartyName: l.PartyName,
				Category:  l.Category,
				Amount:    l.Amount,
				Remarks:   l.Remarks,
			})
		}
	}
	return readings, payments, lines
}
