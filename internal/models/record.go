package models

import "time"

// OffboardingRecord is one persisted exit submission. Rows are written once
// and never updated or deleted; emp_id carries the uniqueness guarantee.
type OffboardingRecord struct {
	ID             uint      `gorm:"primaryKey"`
	EmpName        string    `gorm:"type:varchar(200);not null"`
	Position       string    `gorm:"type:varchar(200);not null"`
	Department     string    `gorm:"type:varchar(50);not null"`
	EmpID          string    `gorm:"column:emp_id;type:varchar(10);not null;uniqueIndex"`
	Feedback       string    `gorm:"type:text;not null"`
	FinalSalary    float64   `gorm:"type:numeric(12,2);not null"`
	Bonus          float64   `gorm:"type:numeric(12,2);not null"`
	Acknowledgment string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
