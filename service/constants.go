package service

const (
	MaxRepaymentMonths = 600 // 50 years
	MaxDebtsPerRequest = 50

	// Limits for the single-debt estimate, kept from the loan calculator.
	MaxPrincipal    = 1_000_000_000.0
	MaxInterestRate = 1000.0 // percent per year
)
