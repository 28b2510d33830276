// Package calculator turns a shift draft into reconciled totals. Every function
// here is pure: inputs are never modified and results depend only on inputs.
package calculator

import (
	"github.com/shopspring/decimal"

	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/validation"
)

// Round rounds to whole currency units, half away from zero (1000.5 -> 1001,
// -1000.5 -> -1001).
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// roundRaw parses and rounds raw operator input; unparseable input counts as zero.
func roundRaw(raw string) decimal.Decimal {
	d, _ := validation.Parse(raw)
	return Round(d)
}

// NozzleDelta returns the litres dispensed by one nozzle. A nozzle contributes
// only when both readings are entered, and a closing reading below the opening
// (meter reset) contributes zero rather than negative litres.
func NozzleDelta(opening, closing string) decimal.Decimal {
	o, okOpen := validation.Parse(opening)
	c, okClose := validation.Parse(closing)
	if !okOpen || !okClose {
		return decimal.Zero
	}
	delta := c.Sub(o)
	if delta.IsNegative() {
		return decimal.Zero
	}
	return delta
}

// CalculateFuelSale computes litres sold and the cash/digital split for one fuel.
func CalculateFuelSale(e domain.FuelEntry) domain.FuelSale {
	gross := decimal.Zero
	for i := 0; i < len(e.Opening) && i < len(e.Closing); i++ {
		gross = gross.Add(NozzleDelta(e.Opening[i].Value, e.Closing[i].Value))
	}

	testing, _ := validation.Parse(e.TestingLitres)
	price, _ := validation.Parse(e.UnitPrice)

	saleLitres := gross.Sub(testing)
	saleAmount := Round(saleLitres.Mul(price))
	digital := roundRaw(e.Digital.Paytm).
		Add(roundRaw(e.Digital.PhonePe)).
		Add(roundRaw(e.Digital.Other))

	return domain.FuelSale{
		FuelTypeID:  e.FuelTypeID,
		GrossLitres: gross,
		SaleLitres:  saleLitres,
		SaleAmount:  saleAmount,
		Digital:     digital,
		Cash:        saleAmount.Sub(digital),
	}
}

// FuelTotals aggregates the sales of every fuel in a shift.
type FuelTotals struct {
	Sales         []domain.FuelSale
	TotalFuelSale decimal.Decimal
	TotalDigital  decimal.Decimal
	Cash          decimal.Decimal
}

// CalculateFuelSales computes every fuel's sale and the shift-wide fuel totals.
// Cash may be negative when digital receipts exceed the sale amount.
func CalculateFuelSales(entries []domain.FuelEntry) FuelTotals {
	t := FuelTotals{
		Sales:         make([]domain.FuelSale, 0, len(entries)),
		TotalFuelSale: decimal.Zero,
		TotalDigital:  decimal.Zero,
	}
	for _, e := range entries {
		sale := CalculateFuelSale(e)
		t.Sales = append(t.Sales, sale)
		t.TotalFuelSale = t.TotalFuelSale.Add(sale.SaleAmount)
		t.TotalDigital = t.TotalDigital.Add(sale.Digital)
	}
	t.Cash = t.TotalFuelSale.Sub(t.TotalDigital)
	return t
}
