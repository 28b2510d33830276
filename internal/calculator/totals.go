package calculator

import (
	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/validation"
)

// Reconcile derives the full set of shift totals from a draft.
//
//	expected cash = cash from fuel + cash lube sales - credit sales - expenses + cash collections
//	cash difference = expected cash - actual cash   (positive: drawer is short)
func Reconcile(d domain.ShiftDraft) domain.ReconciliationResult {
	fuel := CalculateFuelSales(d.Fuels)
	credit := SumLines(d.CreditSales)
	expenses := SumLines(d.Expenses)
	collections := SplitCollections(d.Collections)
	lube := SplitLubeSales(d.LubeSales)

	expected := Round(fuel.Cash.
		Add(lube.Cash).
		Sub(credit).
		Sub(expenses).
		Add(collections.Cash))

	actual, counted := validation.Parse(d.ActualCash)
	difference := Round(expected.Sub(actual))

	return domain.ReconciliationResult{
		FuelSales:             fuel.Sales,
		TotalFuelSale:         fuel.TotalFuelSale,
		TotalDigitalFromFuel:  fuel.TotalDigital,
		CashFromFuel:          fuel.Cash,
		TotalCreditSales:      credit,
		TotalExpenses:         expenses,
		CashCollections:       collections.Cash,
		DigitalCollections:    collections.Digital,
		TotalCreditCollection: collections.Total(),
		CashLubeSales:         lube.Cash,
		DigitalLubeSales:      lube.Digital,
		TotalLubeSales:        lube.Total(),
		ExpectedCash:          expected,
		TotalDigitalPayments:  fuel.TotalDigital.Add(collections.Digital).Add(lube.Digital),
		ActualCash:            actual,
		CashDifference:        difference,
		CashStatus:            cashStatus(counted, difference.Sign()),
	}
}

func cashStatus(counted bool, sign int) domain.CashStatus {
	switch {
	case !counted:
		return domain.CashNotCounted
	case sign > 0:
		return domain.CashShort
	case sign < 0:
		return domain.CashOver
	default:
		return domain.CashBalanced
	}
}
