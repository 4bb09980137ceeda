package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"offboarding-service/internal/apperror"
	"offboarding-service/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type OffboardingService struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewOffboardingService(db *gorm.DB, queryTimeout time.Duration) *OffboardingService {
	return &OffboardingService{
		db:           db,
		queryTimeout: queryTimeout,
	}
}

func (s *OffboardingService) Submit(ctx context.Context, input SubmitInput) (RecordDTO, error) {
	normalized, err := validateSubmission(input)
	if err != nil {
		return RecordDTO{}, err
	}

	record := models.OffboardingRecord{
		EmpName:        normalized.EmpName,
		Position:       normalized.Position,
		Department:     normalized.Department,
		EmpID:          normalized.EmpID,
		Feedback:       normalized.Feedback,
		FinalSalary:    *normalized.FinalSalary,
		Bonus:          *normalized.Bonus,
		Acknowledgment: normalized.Acknowledgment,
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return RecordDTO{}, mapDatabaseError(err)
	}

	return recordToDTO(record), nil
}

func (s *OffboardingService) List(ctx context.Context) ([]RecordDTO, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var records []models.OffboardingRecord
	if err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		return nil, mapDatabaseError(err)
	}

	result := make([]RecordDTO, 0, len(records))
	for _, record := range records {
		result = append(result, recordToDTO(record))
	}
	return result, nil
}

func (s *OffboardingService) Health(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// withTimeout bounds every store call so a stuck connection fails the
// request instead of hanging it.
func (s *OffboardingService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

func recordToDTO(record models.OffboardingRecord) RecordDTO {
	return RecordDTO{
		ID:             record.ID,
		EmpName:        record.EmpName,
		Position:       record.Position,
		Department:     record.Department,
		EmpID:          record.EmpID,
		Feedback:       record.Feedback,
		FinalSalary:    record.FinalSalary,
		Bonus:          record.Bonus,
		Acknowledgment: record.Acknowledgment,
		CreatedAt:      record.CreatedAt,
	}
}

func mapDatabaseError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperror.New(apperror.CodeConflict, "Employee ID already exists")
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperror.New(apperror.CodeUnavailable, "database unavailable")
	}
	return err
}
