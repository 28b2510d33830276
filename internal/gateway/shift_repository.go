package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"shift-reconciliation/internal/domain"
)

// ErrShiftExists is returned when a shift is already recorded for the key and
// the payload does not ask to replace it.
var ErrShiftExists = errors.New("shift already recorded")

// GormShiftRepository implements the usecase ShiftRepository using GORM.
type GormShiftRepository struct {
	db *gorm.DB
}

// NewGormShiftRepository creates a new GormShiftRepository
func NewGormShiftRepository(db *gorm.DB) *GormShiftRepository {
	return &GormShiftRepository{db: db}
}

// FindShift finds the shift recorded for key.
func (r *GormShiftRepository) FindShift(ctx context.Context, key domain.ShiftKey) (string, bool, error) {
	model, err := findShift(r.db.WithContext(ctx), key)
	if err != nil {
		return "", false, err
	}
	if model == nil {
		return "", false, nil
	}
	return model.ID.String(), true, nil
}

// ClosingReadings returns the closing reading of every nozzle recorded for key.
func (r *GormShiftRepository) ClosingReadings(ctx context.Context, key domain.ShiftKey) (domain.PreviousShiftReadings, error) {
	db := r.db.WithContext(ctx)
	model, err := findShift(db, key)
	if err != nil || model == nil {
		return domain.PreviousShiftReadings{}, err
	}

	var readings []NozzleReadingModel
	if err := db.Where("shift_id = ?", model.ID).
		Order("fuel_type_id ASC, nozzle_number ASC").
		Find(&readings).Error; err != nil {
		return domain.PreviousShiftReadings{}, fmt.Errorf("failed to load readings of shift %s: %w", key, err)
	}

	out := domain.PreviousShiftReadings{
		Exists:   true,
		Readings: make(map[string]map[int]decimal.Decimal),
	}
	for _, rd := range readings {
		if out.Readings[rd.FuelTypeID] == nil {
			out.Readings[rd.FuelTypeID] = make(map[int]decimal.Decimal)
		}
		out.Readings[rd.FuelTypeID][rd.NozzleNumber] = rd.ClosingReading
	}
	return out, nil
}

// SaveShift creates the shift, or replaces the recorded one in place when the
// payload asks to overwrite it. The header and all child rows change in one
// transaction.
func (r *GormShiftRepository) SaveShift(ctx context.Context, payload domain.SubmissionPayload) (string, error) {
	var id uuid.UUID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := findShift(tx, payload.Key)
		if err != nil {
			return err
		}

		switch {
		case existing == nil:
			model := ShiftModel{
				ID:        uuid.New(),
				ShiftDate: payload.Key.Date,
				ShiftType: string(payload.Key.Type),
			}
			model.fromTotals(payload.Totals)
			if err := tx.Create(&model).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrShiftExists
				}
				return err
			}
			id = model.ID

		case !payload.Overwrite:
			return fmt.Errorf("%w: %s", ErrShiftExists, existing.ID)

		case payload.ReplacesShiftID != "" && payload.ReplacesShiftID != existing.ID.String():
			return fmt.Errorf("%w: confirmed overwrite of %s but found %s", ErrShiftExists, payload.ReplacesShiftID, existing.ID)

		default:
			existing.fromTotals(payload.Totals)
			if err := tx.Save(existing).Error; err != nil {
				return err
			}
			if err := deleteChildren(tx, existing.ID); err != nil {
				return err
			}
			id = existing.ID
		}

		return createChildren(tx, id, payload)
	})
	if err != nil {
		return "", fmt.Errorf("failed to save shift %s: %w", payload.Key, err)
	}
	return id.String(), nil
}

func findShift(db *gorm.DB, key domain.ShiftKey) (*ShiftModel, error) {
	var model ShiftModel
	if err := db.Where("shift_date = ? AND shift_type = ?", key.Date, string(key.Type)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up shift %s: %w", key, err)
	}
	return &model, nil
}

func deleteChildren(tx *gorm.DB, shiftID uuid.UUID) error {
	for _, model := range []any{&NozzleReadingModel{}, &DigitalPaymentModel{}, &ShiftLineModel{}} {
		if err := tx.Where("shift_id = ?", shiftID).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func createChildren(tx *gorm.DB, shiftID uuid.UUID, payload domain.SubmissionPayload) error {
	readings, payments, lines := childModels(shiftID, payload)
	if len(readings) > 0 {
		if err := tx.Create(&readings).Error; err != nil {
			return err
		}
	}
	if len(payments) > 0 {
		if err := tx.Create(&payments).Error; err != nil {
			return err
		}
	}
	if len(lines) > 0 {
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
	}
	return nil
}
