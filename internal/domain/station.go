package domain

import (
	"github.com/shopspring/decimal"
)

// FuelType is a fuel sold at the station as configured by the owner.
type FuelType struct {
	ID          string          `json:"id" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	NozzleCount int             `json:"nozzles" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"current_price"`
}

// StationConfig is a read-only snapshot of the station settings an engine run works against.
// Category lists are canonical names; any object-shaped input is flattened at load time.
type StationConfig struct {
	Fuels             []FuelType `json:"fuels" validate:"dive"`
	CreditTypes       []string   `json:"credit_types"`
	CashModes         []string   `json:"cash_modes"`
	ExpenseCategories []string   `json:"expense_categories"`
}

// Fuel returns the fuel type with the given id.
func (c StationConfig) Fuel(id string) (FuelType, bool) {
	for _, f := range c.Fuels {
		if f.ID == id {
			return f, true
		}
	}
	return FuelType{}, false
}

// WithFuel returns a copy of the configuration with fuel added, or replacing the
// fuel that has the same id.
func (c StationConfig) WithFuel(fuel FuelType) StationConfig {
	next := c.clone()
	for i := range next.Fuels {
		if next.Fuels[i].ID == fuel.ID {
			next.Fuels[i] = fuel
			return next
		}
	}
	next.Fuels = append(next.Fuels, fuel)
	return next
}

// WithNozzleCount returns a copy of the configuration where the given fuel has n nozzles.
// Unknown fuel ids leave the copy unchanged.
func (c StationConfig) WithNozzleCount(fuelID string, n int) StationConfig {
	next := c.clone()
	for i := range next.Fuels {
		if next.Fuels[i].ID == fuelID {
			next.Fuels[i].NozzleCount = n
		}
	}
	return next
}

// WithUnitPrice returns a copy of the configuration with a new current price for a fuel.
func (c StationConfig) WithUnitPrice(fuelID string, price decimal.Decimal) StationConfig {
	next := c.clone()
	for i := range next.Fuels {
		if next.Fuels[i].ID == fuelID {
			next.Fuels[i].UnitPrice = price
		}
	}
	return next
}

func (c StationConfig) clone() StationConfig {
	return StationConfig{
		Fuels:             append([]FuelType(nil), c.Fuels...),
		CreditTypes:       append([]string(nil), c.CreditTypes...),
		CashModes:         append([]string(nil), c.CashModes...),
		ExpenseCategories: append([]string(nil), c.ExpenseCategories...),
	}
}
