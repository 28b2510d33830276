package gateway

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"shift-reconciliation/internal/domain"
)

const nozzleKeyPrefix = "nozzle_"

// NozzleKey is the wire key for a 1-based nozzle number.
func NozzleKey(n int) string {
	return nozzleKeyPrefix + strconv.Itoa(n)
}

// ParseNozzleKey extracts the nozzle number from a "nozzle_N" key.
func ParseNozzleKey(key string) (int, error) {
	raw, ok := strings.CutPrefix(key, nozzleKeyPrefix)
	if !ok {
		return 0, fmt.Errorf("invalid nozzle key %q", key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid nozzle key %q", key)
	}
	return n, nil
}

// previousReadingsDoc is the exchanged form of a shift's closing readings:
// {"exists": true, "readings": {"MS": {"nozzle_1": 1200.5}}}.
type previousReadingsDoc struct {
	Exists   bool                                  `json:"exists"`
	Readings map[string]map[string]decimal.Decimal `json:"readings,omitempty"`
}

// DecodePreviousReadings parses closing readings in the exchanged form.
// Readings are ignored unless exists is true.
func DecodePreviousReadings(data []byte) (domain.PreviousShiftReadings, error) {
	var doc previousReadingsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.PreviousShiftReadings{}, fmt.Errorf("could not parse previous readings: %w", err)
	}
	if !doc.Exists {
		return domain.PreviousShiftReadings{}, nil
	}

	out := domain.PreviousShiftReadings{
		Exists:   true,
		Readings: make(map[string]map[int]decimal.Decimal, len(doc.Readings)),
	}
	for fuelID, nozzles := range doc.Readings {
		byNozzle := make(map[int]decimal.Decimal, len(nozzles))
		for key, value := range nozzles {
			n, err := ParseNozzleKey(key)
			if err != nil {
				return domain.PreviousShiftReadings{}, fmt.Errorf("fuel %s: %w", fuelID, err)
			}
			byNozzle[n] = value
		}
		out.Readings[fuelID] = byNozzle
	}
	return out, nil
}

// EncodePreviousReadings renders closing readings in the exchanged form.
func EncodePreviousReadings(p domain.PreviousShiftReadings) ([]byte, error) {
	doc := previousReadingsDoc{Exists: p.Exists}
	if p.Exists {
		doc.Readings = make(map[string]map[string]decimal.Decimal, len(p.Readings))
		for fuelID, nozzles := range p.Readings {
			byKey := make(map[string]decimal.Decimal, len(nozzles))
			for n, value := range nozzles {
				byKey[NozzleKey(n)] = value
			}
			doc.Readings[fuelID] = byKey
		}
	}
	return json.Marshal(doc)
}

// ReadPreviousReadingsFile loads closing readings exchanged as a JSON file.
func ReadPreviousReadingsFile(path string) (domain.PreviousShiftReadings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.PreviousShiftReadings{}, fmt.Errorf("failed to open previous readings file %s: %w", path, err)
	}
	return DecodePreviousReadings(data)
}
