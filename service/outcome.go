package service

import (
	"errors"

	"debt-repayment/metrics"
)

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, ErrScheduleTooLong):
		return metrics.OutcomeTooLong
	default:
		return metrics.OutcomeInternalErr
	}
}
