package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/validation"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Log      LogConfig
	Database DatabaseConfig
	Station  domain.StationConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name     string
	Env      string
	Timezone string // IANA name of the station's local time zone

	location *time.Location
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// DatabaseConfig holds the shift store settings
type DatabaseConfig struct {
	Path string // SQLite file, or ":memory:"
}

// Load reads configuration from a YAML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with FUELSHIFT_ prefix (e.g., FUELSHIFT_LOG_LEVEL)
// 2. the file at path, or station.yaml found in . or ./config when path is empty
// 3. Built-in defaults
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("station")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("FUELSHIFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	station, err := loadStation(v)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:     v.GetString("app.name"),
			Env:      v.GetString("app.env"),
			Timezone: v.GetString("app.timezone"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("database.path"),
		},
		Station: station,
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "fuel-shift"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Timezone == "" {
		cfg.App.Timezone = "Local"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "shifts.db"
	}
}

func (c *Config) validate() error {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return fmt.Errorf("invalid app.timezone %q: %w", c.App.Timezone, err)
	}
	c.App.location = loc

	if err := validation.ValidateStation(c.Station); err != nil {
		return err
	}
	return nil
}

// Today returns the station-local calendar date of now as YYYY-MM-DD.
func (a AppConfig) Today(now time.Time) string {
	loc := a.location
	if loc == nil {
		loc = time.Local
	}
	return now.In(loc).Format(domain.DateLayout)
}

func loadStation(v *viper.Viper) (domain.StationConfig, error) {
	var station domain.StationConfig

	fuels, err := parseFuels(v.Get("station.fuels"))
	if err != nil {
		return station, err
	}
	station.Fuels = fuels

	lists := []struct {
		key string
		dst *[]string
	}{
		{"station.credit_types", &station.CreditTypes},
		{"station.cash_modes", &station.CashModes},
		{"station.expense_categories", &station.ExpenseCategories},
	}
	for _, l := range lists {
		names, err := NormalizeCategories(v.Get(l.key))
		if err != nil {
			return station, fmt.Errorf("%s: %w", l.key, err)
		}
		*l.dst = names
	}
	return station, nil
}

func parseFuels(raw any) ([]domain.FuelType, error) {
	if raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("station.fuels must be a list, got %T", raw)
	}

	fuels := make([]domain.FuelType, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("station.fuels[%d] must be a mapping, got %T", i, item)
		}
		fuel := domain.FuelType{
			ID:        field(m, "id"),
			Name:      field(m, "name"),
			UnitPrice: decimal.Zero,
		}
		if s := field(m, "nozzles"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("station.fuels[%d].nozzles: %w", i, err)
			}
			fuel.NozzleCount = n
		}
		if s := field(m, "current_price"); s != "" {
			price, err := decimal.NewFromString(s)
			if err != nil {
				return nil, fmt.Errorf("station.fuels[%d].current_price: %w", i, err)
			}
			fuel.UnitPrice = price
		}
		fuels = append(fuels, fuel)
	}
	return fuels, nil
}

func field(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// NormalizeCategories flattens a configured category list into canonical names.
// Entries may be plain strings or mappings with a "name" key; a single string is
// read as a comma-separated list (the shape environment overrides arrive in).
// Blank and repeated names (case-insensitive) are dropped.
func NormalizeCategories(raw any) ([]string, error) {
	var names []string
	switch val := raw.(type) {
	case nil:
		return []string{}, nil
	case string:
		names = strings.Split(val, ",")
	case []string:
		names = val
	case []any:
		for i, item := range val {
			switch it := item.(type) {
			case string:
				names = append(names, it)
			case map[string]any:
				names = append(names, field(it, "name"))
			default:
				return nil, fmt.Errorf("entry %d: unsupported category shape %T", i, item)
			}
		}
	default:
		return nil, fmt.Errorf("unsupported category list shape %T", raw)
	}

	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		key := strings.ToLower(n)
		if n == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, n)
	}
	return out, nil
}
