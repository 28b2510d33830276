package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"shift-reconciliation/internal/config"
	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/gateway"
	"shift-reconciliation/internal/logger"
	"shift-reconciliation/internal/usecase"
)

const (
	exitInvalid   = 1
	exitDuplicate = 2
)

func main() {
	// Define command-line flags
	configPath := flag.String("config", "", "Path to station.yaml (default: ./station.yaml or ./config/station.yaml)")
	readingsFile := flag.String("readings", "", "CSV of nozzle readings: fuel_type_id,nozzle,opening,closing")
	linesFile := flag.String("lines", "", "CSV of credit sales, expenses, collections and lube sales: kind,party_name,category,amount,remarks")
	previousFile := flag.String("previous", "", "JSON of the previous shift's closing readings, used when the store has none")
	dateStr := flag.String("date", "", "Shift date (YYYY-MM-DD), defaults to today at the station")
	shiftStr := flag.String("shift", "morning", "Shift type: morning or night")
	actualCash := flag.String("actual-cash", "", "Cash counted in the drawer")
	testingStr := flag.String("testing", "", "Testing litres per fuel, e.g. MS=5,HSD=2.5")
	digitalStr := flag.String("digital", "", "Digital payments per fuel as paytm/phonepe/other, e.g. MS=500/200/0")
	overwrite := flag.Bool("overwrite", false, "Replace the shift if it is already recorded")
	dryRun := flag.Bool("dry-run", false, "Print totals and validation messages without saving")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zapLogger, err := logger.New(&logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	shiftType, err := domain.ParseShiftType(*shiftStr)
	if err != nil {
		log.Fatalf("Error parsing shift: %v", err)
	}
	date := *dateStr
	if date == "" {
		date = cfg.App.Today(time.Now())
	}

	ctx := context.Background()
	in, err := loadEntries(ctx, *readingsFile, *linesFile, *testingStr, *digitalStr, *actualCash)
	if err != nil {
		log.Fatalf("Error reading entries: %v", err)
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Open the shift store (the outermost layer)
	db, err := gateway.OpenDatabase(cfg.Database.Path, logger.NewGormLogger(zapLogger, logger.GormLevel(cfg.Log.Level)))
	if err != nil {
		log.Fatalf("Error opening shift store: %v", err)
	}
	defer gateway.CloseDatabase(db) //nolint:errcheck
	repo := gateway.NewGormShiftRepository(db)

	// 2. Create the usecases and inject the repository
	today := func() string { return cfg.App.Today(time.Now()) }
	reconciliation := usecase.NewReconciliationUseCase(cfg.Station, repo, today, zapLogger)
	session := usecase.NewSession(cfg.Station, date, shiftType,
		usecase.NewCarryForwardResolver(repo, zapLogger),
		usecase.NewDuplicateGuard(repo, zapLogger),
	)

	// --- Build the draft ---
	if err := session.Update(in.apply); err != nil {
		log.Fatalf("Error applying entries: %v", err)
	}
	if err := session.ResolveOpenings(ctx); err != nil {
		log.Fatalf("Error resolving opening readings: %v", err)
	}
	if *previousFile != "" {
		if err := applyPreviousFile(session, *previousFile); err != nil {
			log.Fatalf("Error applying previous readings: %v", err)
		}
	}
	draft := session.Draft()

	if *dryRun {
		totals, res := reconciliation.Preview(draft)
		printJSON(map[string]any{
			"shift":         draft.Key(),
			"carry_forward": domain.CarriedForwardFields(draft),
			"errors":        res.Messages,
			"totals":        totals,
		})
		return
	}

	// --- Execute the Usecase ---
	submit := func(confirm bool) error {
		result, err := reconciliation.Submit(ctx, draft, usecase.SubmitOptions{ConfirmOverwrite: confirm})
		if err != nil {
			return err
		}
		printJSON(result)
		return nil
	}

	status, err := session.CheckDuplicate(ctx)
	if err != nil {
		log.Fatalf("Error checking for an existing shift: %v", err)
	}
	if dialog := usecase.NewOverwriteDialog(draft.Key(), status, func() error { return submit(true) }); dialog != nil {
		if !*overwrite {
			fmt.Fprintf(os.Stderr, "%s\n%s\nRun again with -overwrite to replace shift %s.\n", dialog.Title, dialog.Body, dialog.ShiftID)
			os.Exit(exitDuplicate)
		}
		err = dialog.Confirm()
	} else {
		err = submit(false)
	}

	var validationErr *usecase.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &validationErr):
		printJSON(map[string]any{"errors": validationErr.Result.Messages})
		os.Exit(exitInvalid)
	case errors.Is(err, usecase.ErrOverwriteNotConfirmed), errors.Is(err, gateway.ErrShiftExists):
		zapLogger.Warn("shift was recorded by someone else meanwhile", zap.Error(err))
		fmt.Fprintf(os.Stderr, "%v\nRun again with -overwrite to replace it.\n", err)
		os.Exit(exitDuplicate)
	default:
		log.Fatalf("Submission failed: %v", err)
	}
}

func loadEntries(ctx context.Context, readingsFile, linesFile, testing, digital, actualCash string) (entries, error) {
	in := entries{actualCash: actualCash}
	reader := gateway.NewCSVEntryReader()

	var err error
	if readingsFile != "" {
		if in.readings, err = reader.ReadReadings(ctx, readingsFile); err != nil {
			return in, err
		}
	}
	if linesFile != "" {
		if in.lines, err = reader.ReadLines(ctx, linesFile); err != nil {
			return in, err
		}
	}
	if in.testing, err = parseAssignments(testing); err != nil {
		return in, fmt.Errorf("-testing: %w", err)
	}
	if in.digital, err = parseDigital(digital); err != nil {
		return in, fmt.Errorf("-digital: %w", err)
	}
	return in, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to generate JSON output: %v", err)
	}
	fmt.Println(string(output))
}
