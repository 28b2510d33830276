package calculator

import (
	"strings"

	"github.com/shopspring/decimal"

	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/validation"
)

// CashMode is the category and payment-mode name that marks a cash receipt.
// Every other name is treated as a digital receipt.
const CashMode = "cash"

// IsCash reports whether a category or payment mode names cash.
func IsCash(mode string) bool {
	return strings.EqualFold(strings.TrimSpace(mode), CashMode)
}

// Counts reports whether a line entry takes part in totals: it needs both a
// party name and an amount.
func Counts(l domain.LineEntry) bool {
	if strings.TrimSpace(l.PartyName) == "" {
		return false
	}
	_, ok := validation.Parse(l.Amount)
	return ok
}

// SumLines adds up the rounded amounts of the counted entries.
func SumLines(lines []domain.LineEntry) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if Counts(l) {
			total = total.Add(roundRaw(l.Amount))
		}
	}
	return total
}

// Split is an amount partitioned into cash and digital receipts.
type Split struct {
	Cash    decimal.Decimal
	Digital decimal.Decimal
}

// Total returns cash plus digital.
func (s Split) Total() decimal.Decimal {
	return s.Cash.Add(s.Digital)
}

func (s Split) add(mode string, amount decimal.Decimal) Split {
	if IsCash(mode) {
		s.Cash = s.Cash.Add(amount)
	} else {
		s.Digital = s.Digital.Add(amount)
	}
	return s
}

// SplitCollections partitions credit collections by category.
func SplitCollections(lines []domain.LineEntry) Split {
	s := Split{Cash: decimal.Zero, Digital: decimal.Zero}
	for _, l := range lines {
		if Counts(l) {
			s = s.add(l.Category, roundRaw(l.Amount))
		}
	}
	return s
}

// SplitLubeSales partitions lube sales by payment mode. Entries without an
// amount are skipped.
func SplitLubeSales(lubes []domain.LubeEntry) Split {
	s := Split{Cash: decimal.Zero, Digital: decimal.Zero}
	for _, l := range lubes {
		if _, ok := validation.Parse(l.Amount); ok {
			s = s.add(l.PaymentMode, roundRaw(l.Amount))
		}
	}
	return s
}
