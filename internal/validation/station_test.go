package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"shift-reconciliation/internal/domain"
)

func TestValidateStation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *domain.StationConfig)
		wantErr string
	}{
		{name: "valid station", mutate: func(cfg *domain.StationConfig) {}},
		{
			name:    "no fuels",
			mutate:  func(cfg *domain.StationConfig) { cfg.Fuels = nil },
			wantErr: "no fuel types",
		},
		{
			name:    "zero nozzles",
			mutate:  func(cfg *domain.StationConfig) { cfg.Fuels[0].NozzleCount = 0 },
			wantErr: "NozzleCount",
		},
		{
			name:    "missing name",
			mutate:  func(cfg *domain.StationConfig) { cfg.Fuels[1].Name = "" },
			wantErr: "Name",
		},
		{
			name:    "duplicate id",
			mutate:  func(cfg *domain.StationConfig) { cfg.Fuels[1].ID = "MS" },
			wantErr: "duplicate fuel type id",
		},
		{
			name:    "negative price",
			mutate:  func(cfg *domain.StationConfig) { cfg.Fuels[0].UnitPrice = decimal.NewFromInt(-1) },
			wantErr: "negative price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testStation()
			tt.mutate(&cfg)

			err := ValidateStation(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
