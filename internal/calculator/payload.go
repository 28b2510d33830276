package calculator

import (
	"strings"

	"github.com/shopspring/decimal"

	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/validation"
)

// testingPlaces is the precision of per-nozzle testing litres.
const testingPlaces = 3

// BuildPayload turns a draft and its totals into the rows the shift store
// persists. Only nozzles with both readings entered produce a reading row; a
// fuel's testing litres are split evenly over those rows and the last row takes
// the rounding remainder. A fuel without a complete pair has no rows to carry
// its testing litres; validation rejects that draft before submission.
func BuildPayload(d domain.ShiftDraft, totals domain.ReconciliationResult) domain.SubmissionPayload {
	p := domain.SubmissionPayload{
		Key:             d.Key(),
		FuelReadings:    []domain.NozzleReadingRow{},
		DigitalPayments: []domain.DigitalPaymentRow{},
		CreditSales:     lineRows(domain.LineCredit, d.CreditSales),
		Expenses:        lineRows(domain.LineExpense, d.Expenses),
		Collections:     lineRows(domain.LineCollection, d.Collections),
		LubeSales:       lubeRows(d.LubeSales),
		Totals:          totals,
	}

	for _, f := range d.Fuels {
		p.FuelReadings = append(p.FuelReadings, nozzleRows(f)...)

		paytm, _ := validation.Parse(f.Digital.Paytm)
		phonepe, _ := validation.Parse(f.Digital.PhonePe)
		other, _ := validation.Parse(f.Digital.Other)
		if paytm.IsPositive() || phonepe.IsPositive() || other.IsPositive() {
			p.DigitalPayments = append(p.DigitalPayments, domain.DigitalPaymentRow{
				FuelTypeID: f.FuelTypeID,
				Paytm:      paytm,
				PhonePe:    phonepe,
				Other:      other,
			})
		}
	}
	return p
}

func nozzleRows(f domain.FuelEntry) []domain.NozzleReadingRow {
	var rows []domain.NozzleReadingRow
	price, _ := validation.Parse(f.UnitPrice)
	for i := 0; i < len(f.Opening) && i < len(f.Closing); i++ {
		opening, okOpen := validation.Parse(f.Opening[i].Value)
		closing, okClose := validation.Parse(f.Closing[i].Value)
		if !okOpen || !okClose {
			continue
		}
		rows = append(rows, domain.NozzleReadingRow{
			FuelTypeID:     f.FuelTypeID,
			NozzleNumber:   i + 1,
			OpeningReading: opening,
			ClosingReading: closing,
			UnitPrice:      price,
		})
	}

	testing, _ := validation.Parse(f.TestingLitres)
	shares := ApportionTesting(testing, len(rows))
	for i := range rows {
		rows[i].TestingLitres = shares[i]
	}
	return rows
}

// ApportionTesting splits total litres into n shares rounded to millilitres.
// The last share absorbs the remainder so the shares add up to total exactly.
func ApportionTesting(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	shares := make([]decimal.Decimal, n)
	share := total.DivRound(decimal.NewFromInt(int64(n)), testingPlaces)
	allocated := decimal.Zero
	for i := 0; i < n-1; i++ {
		shares[i] = share
		allocated = allocated.Add(share)
	}
	shares[n-1] = total.Sub(allocated)
	return shares
}

func lineRows(kind domain.LineKind, lines []domain.LineEntry) []domain.LineRow {
	rows := []domain.LineRow{}
	for _, l := range lines {
		if !Counts(l) {
			continue
		}
		amount, _ := validation.Parse(l.Amount)
		rows = append(rows, domain.LineRow{
			Kind:      kind,
			PartyName: strings.TrimSpace(l.PartyName),
			Category:  strings.TrimSpace(l.Category),
			Amount:    amount,
			Remarks:   l.Remarks,
		})
	}
	return rows
}

func lubeRows(lubes []domain.LubeEntry) []domain.LineRow {
	rows := []domain.LineRow{}
	for _, l := range lubes {
		amount, ok := validation.Parse(l.Amount)
		if !ok {
			continue
		}
		rows = append(rows, domain.LineRow{
			Kind:     domain.LineLube,
			Category: strings.TrimSpace(l.PaymentMode),
			Amount:   amount,
		})
	}
	return rows
}
