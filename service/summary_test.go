package service

import (
	"testing"

	"debt-repayment/domain"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "0 months"},
		{1, "1 month"},
		{11, "11 months"},
		{12, "1 year"},
		{13, "1 year 1 month"},
		{27, "2 years 3 months"},
		{600, "50 years"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.months); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "£0.00"},
		{77.123, "£77.12"},
		{1234.5, "£1,234.50"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	result := domain.RepaymentResult{
		TotalMonths:   14,
		TotalInterest: 12.5,
		TotalPaid:     1012.5,
		MonthlyPayments: []domain.MonthlyPayment{
			{Month: 1, Balance: 900, InterestPaid: 10, PrincipalPaid: 100},
			{Month: 2, Balance: 0, InterestPaid: 2.5, PrincipalPaid: 900},
		},
	}

	summary := BuildSummary(result)

	if summary.Years != 1 || summary.Months != 2 {
		t.Errorf("duration = %d years %d months, want 1 and 2", summary.Years, summary.Months)
	}
	if summary.Duration != "1 year 2 months" {
		t.Errorf("Duration = %q", summary.Duration)
	}
	if summary.TotalPaid != "£1,012.50" {
		t.Errorf("TotalPaid = %q", summary.TotalPaid)
	}
	if len(summary.Chart) != 2 {
		t.Fatalf("got %d chart points, want 2", len(summary.Chart))
	}
	want := domain.ChartPoint{Month: 2, RemainingBalance: 0, InterestPaid: 2.5, PrincipalPaid: 900}
	if summary.Chart[1] != want {
		t.Errorf("chart[1] = %+v, want %+v", summary.Chart[1], want)
	}
}
