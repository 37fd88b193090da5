package service

import (
	"math"

	"debt-repayment/domain"
)

// EstimatePayoff computes how long a single debt takes to pay off at a fixed
// monthly payment using the closed-form amortization formula.
func EstimatePayoff(input domain.PayoffEstimateInput) (domain.PayoffEstimate, error) {
	debt := domain.Debt{
		Principal:      input.Principal,
		InterestRate:   input.InterestRate,
		MinimumPayment: input.MonthlyPayment,
	}
	if err := validateDebts([]domain.Debt{debt}); err != nil {
		return domain.PayoffEstimate{}, err
	}
	if input.Principal > MaxPrincipal {
		return domain.PayoffEstimate{}, inputValidationError("principal", "principal exceeds the maximum of %.2f", MaxPrincipal)
	}
	if input.InterestRate > MaxInterestRate {
		return domain.PayoffEstimate{}, inputValidationError("interest_rate", "interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}

	rate := (input.InterestRate / 100) / 12
	months := payoffMonths(input.Principal, rate, input.MonthlyPayment)
	if months > MaxRepaymentMonths {
		return domain.PayoffEstimate{}, &ScheduleTooLongError{Months: months, Limit: MaxRepaymentMonths}
	}

	// Every month but the last pays the full amount; the last one pays
	// whatever is left plus its interest.
	n := float64(months - 1)
	remaining := input.Principal - input.MonthlyPayment*n
	if rate > 0 {
		growth := math.Pow(1+rate, n)
		remaining = input.Principal*growth - input.MonthlyPayment*(growth-1)/rate
	}
	lastPayment := remaining * (1 + rate)
	totalPaid := input.MonthlyPayment*n + lastPayment

	return domain.PayoffEstimate{
		Months:        months,
		TotalPaid:     roundTo2Decimals(totalPaid),
		TotalInterest: roundTo2Decimals(totalPaid - input.Principal),
	}, nil
}

// payoffMonths returns the number of payments needed, rounding any partial
// final month up.
func payoffMonths(principal, monthlyRate, payment float64) int {
	var n float64
	if monthlyRate == 0 {
		n = principal / payment
	} else {
		n = -math.Log(1-monthlyRate*principal/payment) / math.Log(1+monthlyRate)
	}
	// Absorb float noise so that an exact number of payments is not rounded up.
	months := int(math.Ceil(n - 1e-9))
	if months < 1 {
		months = 1
	}
	return months
}

// roundTo2Decimals rounds to whole cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
