package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"offboarding-service/internal/apperror"
	"offboarding-service/internal/models"
)

func TestMapDatabaseError(t *testing.T) {
	t.Run("unique violation becomes conflict", func(t *testing.T) {
		err := mapDatabaseError(&pgconn.PgError{Code: "23505"})
		assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
		assert.Equal(t, "Employee ID already exists", err.Error())
	})

	t.Run("other pg errors pass through", func(t *testing.T) {
		src := &pgconn.PgError{Code: "23503"}
		err := mapDatabaseError(src)
		assert.Equal(t, apperror.CodeInternal, apperror.GetCode(err))
	})

	t.Run("deadline becomes unavailable", func(t *testing.T) {
		err := mapDatabaseError(context.DeadlineExceeded)
		assert.Equal(t, apperror.CodeUnavailable, apperror.GetCode(err))
	})

	t.Run("cancellation becomes unavailable", func(t *testing.T) {
		err := mapDatabaseError(context.Canceled)
		assert.Equal(t, apperror.CodeUnavailable, apperror.GetCode(err))
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		src := errors.New("boom")
		assert.Equal(t, src, mapDatabaseError(src))
	})
}

// A submission failing validation must never reach the store; a nil *gorm.DB
// would panic on any touch, so these calls prove the short-circuit.
func TestSubmitRejectsBeforeStore(t *testing.T) {
	svc := NewOffboardingService(nil, time.Second)

	input := validInput()
	input.EmpID = "ATS0000"

	_, err := svc.Submit(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
}

func TestRecordToDTO(t *testing.T) {
	now := time.Now()
	record := models.OffboardingRecord{
		ID:             7,
		EmpName:        "Jane Doe",
		Position:       "Engineer",
		Department:     "Engineering",
		EmpID:          "ATS0123",
		Feedback:       "Great team, sad to leave.",
		FinalSalary:    75000,
		Bonus:          5000,
		Acknowledgment: "I acknowledge receipt of my final pay.",
		CreatedAt:      now,
	}

	dto := recordToDTO(record)
	assert.Equal(t, uint(7), dto.ID)
	assert.Equal(t, "ATS0123", dto.EmpID)
	assert.Equal(t, 75000.0, dto.FinalSalary)
	assert.Equal(t, now, dto.CreatedAt)
}
