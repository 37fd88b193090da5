package service

import (
	"errors"
	"math"
	"testing"

	"debt-repayment/domain"
)

func TestEstimatePayoff(t *testing.T) {
	tests := []struct {
		name          string
		input         domain.PayoffEstimateInput
		wantMonths    int
		wantTotalPaid float64
		wantInterest  float64
	}{
		{
			name:          "zero interest divides evenly",
			input:         domain.PayoffEstimateInput{Principal: 1200, InterestRate: 0, MonthlyPayment: 100},
			wantMonths:    12,
			wantTotalPaid: 1200,
			wantInterest:  0,
		},
		{
			name:          "zero interest with a smaller last payment",
			input:         domain.PayoffEstimateInput{Principal: 1050, InterestRate: 0, MonthlyPayment: 100},
			wantMonths:    11,
			wantTotalPaid: 1050,
			wantInterest:  0,
		},
		{
			name:          "12% card",
			input:         domain.PayoffEstimateInput{Principal: 1200, InterestRate: 12, MonthlyPayment: 110},
			wantMonths:    12,
			wantTotalPaid: 1277.11,
			wantInterest:  77.11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimatePayoff(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Months != tt.wantMonths {
				t.Errorf("Months = %d, want %d", got.Months, tt.wantMonths)
			}
			if math.Abs(got.TotalPaid-tt.wantTotalPaid) > tolerance {
				t.Errorf("TotalPaid = %v, want %v", got.TotalPaid, tt.wantTotalPaid)
			}
			if math.Abs(got.TotalInterest-tt.wantInterest) > tolerance {
				t.Errorf("TotalInterest = %v, want %v", got.TotalInterest, tt.wantInterest)
			}
		})
	}
}

func TestEstimatePayoff_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.PayoffEstimateInput
		wantErr error
	}{
		{"payment below interest", domain.PayoffEstimateInput{Principal: 100, InterestRate: 24, MonthlyPayment: 1}, ErrValidation},
		{"zero principal", domain.PayoffEstimateInput{Principal: 0, InterestRate: 5, MonthlyPayment: 10}, ErrValidation},
		{"rate over the maximum", domain.PayoffEstimateInput{Principal: 100, InterestRate: 2000, MonthlyPayment: 500}, ErrValidation},
		{"principal over the maximum", domain.PayoffEstimateInput{Principal: 2e9, InterestRate: 0, MonthlyPayment: 1e9}, ErrValidation},
		{"more than 600 months", domain.PayoffEstimateInput{Principal: 100000, InterestRate: 0, MonthlyPayment: 100}, ErrScheduleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EstimatePayoff(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
