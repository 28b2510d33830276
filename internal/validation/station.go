package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"shift-reconciliation/internal/domain"
)

var structValidator = validator.New()

// ValidateStation checks a station configuration before any shift is built on it.
func ValidateStation(cfg domain.StationConfig) error {
	if len(cfg.Fuels) == 0 {
		return errors.New("station has no fuel types configured")
	}
	if err := structValidator.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid station config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid station config: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Fuels))
	for _, f := range cfg.Fuels {
		if seen[f.ID] {
			return fmt.Errorf("duplicate fuel type id %q", f.ID)
		}
		seen[f.ID] = true
		if f.UnitPrice.IsNegative() {
			return fmt.Errorf("fuel type %q has a negative price", f.ID)
		}
	}
	return nil
}
