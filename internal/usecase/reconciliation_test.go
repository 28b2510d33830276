package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shift-reconciliation/internal/domain"
	"shift-reconciliation/internal/usecase"
	mock_usecase "shift-reconciliation/internal/usecase/mocks"
)

func fixedToday() string { return "2024-03-10" }

func submittableDraft() domain.ShiftDraft {
	d := domain.NewShiftDraft(testStation(), "2024-03-09", domain.ShiftNight)
	_ = d.SetReading("MS", 1, "1000", "1200")
	d.ActualCash = "20000"
	return d
}

func TestReconciliationUseCase_Submit(t *testing.T) {
	key := domain.ShiftKey{Date: "2024-03-09", Type: domain.ShiftNight}

	tests := []struct {
		name          string
		opts          usecase.SubmitOptions
		foundID       string
		found         bool
		findErr       error
		saveErr       error
		wantSave      bool
		wantOverwrite bool
		wantReplaces  string
		wantErrIs     error
		wantDupErr    bool
	}{
		{
			name:     "new shift is created",
			wantSave: true,
		},
		{
			name:       "existing shift without confirmation is refused",
			foundID:    "shift-1",
			found:      true,
			wantErrIs:  usecase.ErrOverwriteNotConfirmed,
			wantDupErr: true,
		},
		{
			name:          "existing shift with confirmation is replaced",
			opts:          usecase.SubmitOptions{ConfirmOverwrite: true},
			foundID:       "shift-1",
			found:         true,
			wantSave:      true,
			wantOverwrite: true,
			wantReplaces:  "shift-1",
		},
		{
			name:     "failed duplicate check never requests an overwrite",
			opts:     usecase.SubmitOptions{ConfirmOverwrite: true},
			findErr:  errors.New("connection reset"),
			wantSave: true,
		},
		{
			name:     "store failure is returned",
			saveErr:  errors.New("disk full"),
			wantSave: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mock_usecase.NewMockShiftRepository(ctrl)
			uc := usecase.NewReconciliationUseCase(testStation(), mockRepo, fixedToday, nil)

			mockRepo.EXPECT().FindShift(gomock.Any(), key).Return(tt.foundID, tt.found, tt.findErr)

			var saved domain.SubmissionPayload
			if tt.wantSave {
				mockRepo.EXPECT().SaveShift(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p domain.SubmissionPayload) (string, error) {
						saved = p
						if tt.saveErr != nil {
							return "", tt.saveErr
						}
						return "shift-2", nil
					})
			}

			got, err := uc.Submit(context.Background(), submittableDraft(), tt.opts)

			if tt.wantErrIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrIs)
			}
			if tt.wantDupErr {
				var dupErr *usecase.DuplicateShiftError
				require.ErrorAs(t, err, &dupErr)
				assert.Equal(t, tt.foundID, dupErr.ShiftID)
				assert.Nil(t, got)
				return
			}
			if tt.saveErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.saveErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "shift-2", got.ShiftID)
			assert.Equal(t, tt.wantOverwrite, saved.Overwrite)
			assert.Equal(t, tt.wantReplaces, saved.ReplacesShiftID)
			assert.Equal(t, key, saved.Key)
			require.Len(t, saved.FuelReadings, 1)
			assert.Equal(t, "20500", saved.Totals.ExpectedCash.String())
			assert.Equal(t, "500", saved.Totals.CashDifference.String())
			assert.Equal(t, domain.CashShort, saved.Totals.CashStatus)
		})
	}
}

func TestReconciliationUseCase_Submit_ValidationBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_usecase.NewMockShiftRepository(ctrl)
	uc := usecase.NewReconciliationUseCase(testStation(), mockRepo, fixedToday, nil)

	d := domain.NewShiftDraft(testStation(), "2024-03-11", domain.ShiftMorning)

	got, err := uc.Submit(context.Background(), d, usecase.SubmitOptions{ConfirmOverwrite: true})

	assert.Nil(t, got)
	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, vErr.Result.HasField(domain.FieldShiftDate))
	assert.Len(t, vErr.Result.Messages, 3)
}

func TestReconciliationUseCase_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := usecase.NewReconciliationUseCase(testStation(), mock_usecase.NewMockShiftRepository(ctrl), fixedToday, nil)

	d := submittableDraft()
	d.ActualCash = "-1"

	totals, res := uc.Preview(d)

	assert.False(t, res.Valid())
	assert.True(t, res.HasField(domain.FieldActualCash))
	assert.Equal(t, "20500", totals.TotalFuelSale.String())
}
