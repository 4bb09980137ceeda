package service

import (
	"context"
	"time"
)

// Departments accepted on a submission. The form offers exactly these four.
var Departments = []string{"Engineering", "Marketing", "HR", "Finance"}

// SubmitInput carries a decoded submission into the validator. The numeric
// fields are pointers so "missing" and "zero" stay distinguishable and a bad
// value fails its own rule instead of the whole payload.
type SubmitInput struct {
	EmpName        string
	Position       string
	Department     string
	EmpID          string
	Feedback       string
	FinalSalary    *float64
	Bonus          *float64
	Acknowledgment string
}

type RecordDTO struct {
	ID             uint      `json:"id"`
	EmpName        string    `json:"empName"`
	Position       string    `json:"position"`
	Department     string    `json:"department"`
	EmpID          string    `json:"empId"`
	Feedback       string    `json:"feedback"`
	FinalSalary    float64   `json:"finalSalary"`
	Bonus          float64   `json:"bonus"`
	Acknowledgment string    `json:"acknowledgment"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Manager interface {
	Submit(ctx context.Context, input SubmitInput) (RecordDTO, error)
	List(ctx context.Context) ([]RecordDTO, error)
	Health(ctx context.Context) error
}
