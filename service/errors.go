package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation failed")
	ErrScheduleTooLong = errors.New("repayment schedule too long")
)

// ValidationError reports the first input rule that failed. DebtID and
// DebtName are set when the rule belongs to a single debt.
type ValidationError struct {
	DebtID   int64
	DebtName string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// HasDebt reports whether the error refers to a specific debt.
func (e *ValidationError) HasDebt() bool {
	switch e.Field {
	case "principal", "interest_rate", "minimum_payment", "id":
		return true
	}
	return false
}

func debtValidationError(id int64, name, displayName, field, subject, rule string) *ValidationError {
	return &ValidationError{
		DebtID:   id,
		DebtName: name,
		Field:    field,
		Message:  fmt.Sprintf("%s for %s %s", subject, displayName, rule),
	}
}

func inputValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// ScheduleTooLongError is returned when paying everything off would take
// longer than Limit months.
type ScheduleTooLongError struct {
	Months int
	Limit  int
}

func (e *ScheduleTooLongError) Error() string {
	return fmt.Sprintf("repayment period exceeds %d years (%d months), please review your debt details", e.Limit/12, e.Limit)
}

func (e *ScheduleTooLongError) Is(target error) bool { return target == ErrScheduleTooLong }
