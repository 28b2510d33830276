package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationYAML = `
app:
  name: highway-station
  timezone: UTC
log:
  level: debug
  format: json
database:
  path: /tmp/shifts.db
station:
  fuels:
    - id: MS
      name: Petrol
      nozzles: 2
      current_price: "102.50"
    - id: HSD
      name: Diesel
      nozzles: 1
      current_price: 89.6
  credit_types:
    - Fleet
    - name: Government
  cash_modes: [Cash, UPI]
  expense_categories:
    - name: Staff
    - name: staff
    - Maintenance
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "station.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, stationYAML))
	require.NoError(t, err)

	assert.Equal(t, "highway-station", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Equal(t, "/tmp/shifts.db", cfg.Database.Path)

	require.Len(t, cfg.Station.Fuels, 2)
	ms := cfg.Station.Fuels[0]
	assert.Equal(t, "MS", ms.ID)
	assert.Equal(t, "Petrol", ms.Name)
	assert.Equal(t, 2, ms.NozzleCount)
	assert.Equal(t, "102.5", ms.UnitPrice.String())
	assert.Equal(t, "89.6", cfg.Station.Fuels[1].UnitPrice.String())

	assert.Equal(t, []string{"Fleet", "Government"}, cfg.Station.CreditTypes)
	assert.Equal(t, []string{"Cash", "UPI"}, cfg.Station.CashModes)
	assert.Equal(t, []string{"Staff", "Maintenance"}, cfg.Station.ExpenseCategories)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("FUELSHIFT_LOG_LEVEL", "warn")
	t.Setenv("FUELSHIFT_DATABASE_PATH", ":memory:")

	cfg, err := Load(writeConfig(t, stationYAML))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":memory:", cfg.Database.Path)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no fuels",
			content: "station:\n  cash_modes: [Cash]\n",
		},
		{
			name:    "zero nozzles",
			content: "station:\n  fuels:\n    - {id: MS, name: Petrol, nozzles: 0, current_price: 100}\n",
		},
		{
			name:    "bad price",
			content: "station:\n  fuels:\n    - {id: MS, name: Petrol, nozzles: 1, current_price: cheap}\n",
		},
		{
			name:    "bad timezone",
			content: "app:\n  timezone: Mars/Olympus\nstation:\n  fuels:\n    - {id: MS, name: Petrol, nozzles: 1, current_price: 100}\n",
		},
		{
			name:    "fuels not a list",
			content: "station:\n  fuels: MS\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNormalizeCategories(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    []string
		wantErr bool
	}{
		{name: "nil", raw: nil, want: []string{}},
		{name: "comma separated", raw: "Cash, UPI,,cash", want: []string{"Cash", "UPI"}},
		{name: "string slice", raw: []string{" Fleet ", ""}, want: []string{"Fleet"}},
		{
			name: "mixed shapes",
			raw:  []any{"Staff", map[string]any{"name": "Rent"}, map[string]any{"label": "x"}},
			want: []string{"Staff", "Rent"},
		},
		{name: "bad entry", raw: []any{42}, wantErr: true},
		{name: "bad list", raw: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCategories(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToday_UsesConfiguredZone(t *testing.T) {
	cfg, err := Load(writeConfig(t, stationYAML))
	require.NoError(t, err)

	// 23:30 UTC on the 9th is still the 9th in UTC.
	now := time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-09", cfg.App.Today(now))

	ahead := AppConfig{location: time.FixedZone("IST", 5*3600+1800)}
	assert.Equal(t, "2024-03-10", ahead.Today(now))
}
