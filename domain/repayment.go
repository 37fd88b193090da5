package domain

import "time"

type MonthlyPayment struct {
	Month         int     `json:"month"`
	Balance       float64 `json:"balance"`
	InterestPaid  float64 `json:"interest_paid"`
	PrincipalPaid float64 `json:"principal_paid"`
}

type RepaymentResult struct {
	TotalMonths     int              `json:"total_months"`
	TotalInterest   float64          `json:"total_interest"`
	TotalPaid       float64          `json:"total_paid"`
	MonthlyPayments []MonthlyPayment `json:"monthly_payments"`
}

// ChartPoint is one month of the three series a renderer plots.
type ChartPoint struct {
	Month            int     `json:"month"`
	RemainingBalance float64 `json:"remaining_balance"`
	InterestPaid     float64 `json:"interest_paid"`
	PrincipalPaid    float64 `json:"principal_paid"`
}

type Summary struct {
	Years         int          `json:"years"`
	Months        int          `json:"months"`
	Duration      string       `json:"duration"`
	TotalInterest string       `json:"total_interest"`
	TotalPaid     string       `json:"total_paid"`
	Chart         []ChartPoint `json:"chart"`
}

// RepaymentPlan is a simulated schedule as returned to API clients.
type RepaymentPlan struct {
	ID        string          `json:"id"`
	Strategy  Strategy        `json:"strategy"`
	CreatedAt time.Time       `json:"created_at"`
	Cached    bool            `json:"cached"`
	Result    RepaymentResult `json:"result"`
	Summary   Summary         `json:"summary"`
}
