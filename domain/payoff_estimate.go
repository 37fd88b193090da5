package domain

type PayoffEstimateInput struct {
	Principal      float64 `json:"principal"`
	InterestRate   float64 `json:"interest_rate"`
	MonthlyPayment float64 `json:"monthly_payment"`
}

type PayoffEstimate struct {
	Months        int     `json:"months"`
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
}
