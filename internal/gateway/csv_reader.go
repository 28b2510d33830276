package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"shift-reconciliation/internal/domain"
)

// ReadingRow is one nozzle's meter readings as exported from the forecourt sheet.
// Readings stay raw text so the validator can report on them.
type ReadingRow struct {
	FuelTypeID string
	Nozzle     int
	Opening    string
	Closing    string
}

// LineRow is a credit sale, expense, collection or lube sale from the day book sheet.
type LineRow struct {
	Kind      domain.LineKind
	PartyName string
	Category  string
	Amount    string
	Remarks   string
}

// CSVEntryReader reads shift entries exported as CSV files.
type CSVEntryReader struct{}

// NewCSVEntryReader creates a new reader instance.
func NewCSVEntryReader() *CSVEntryReader {
	return &CSVEntryReader{}
}

// ReadReadings reads a fuel_type_id,nozzle,opening,closing file.
func (r *CSVEntryReader) ReadReadings(ctx context.Context, path string) ([]ReadingRow, error) {
	var rows []ReadingRow
	err := readCSV(ctx, path, 4, func(line int, record []string) error {
		nozzle, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil || nozzle < 1 {
			return fmt.Errorf("line %d: could not parse nozzle '%s'", line, record[1])
		}
		rows = append(rows, ReadingRow{
			FuelTypeID: strings.TrimSpace(record[0]),
			Nozzle:     nozzle,
			Opening:    strings.TrimSpace(record[2]),
			Closing:    strings.TrimSpace(record[3]),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadLines reads a kind,party_name,category,amount,remarks file.
func (r *CSVEntryReader) ReadLines(ctx context.Context, path string) ([]LineRow, error) {
	var rows []LineRow
	err := readCSV(ctx, path, 5, func(line int, record []string) error {
		kind := domain.LineKind(strings.ToLower(strings.TrimSpace(record[0])))
		switch kind {
		case domain.LineCredit, domain.LineExpense, domain.LineCollection, domain.LineLube:
		default:
			return fmt.Errorf("line %d: unknown entry kind '%s'", line, record[0])
		}
		rows = append(rows, LineRow{
			Kind:      kind,
			PartyName: strings.TrimSpace(record[1]),
			Category:  strings.TrimSpace(record[2]),
			Amount:    strings.TrimSpace(record[3]),
			Remarks:   strings.TrimSpace(record[4]),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// readCSV skips the header and hands each record to fn with its 1-based line number.
func readCSV(ctx context.Context, path string, fields int, fn func(line int, record []string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open entry file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = fields
	// Skip header
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading record from %s: %w", path, err)
		}
		if err := fn(line, record); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
}
