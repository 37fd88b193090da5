package domain

// Strategy decides the order in which debts receive extra payments.
type Strategy string

const (
	StrategySnowball  Strategy = "snowball"  // smallest principal first
	StrategyAvalanche Strategy = "avalanche" // highest rate first
	StrategyCustom    Strategy = "custom"    // order as entered
)

// Valid reports whether s is one of the known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategySnowball, StrategyAvalanche, StrategyCustom:
		return true
	}
	return false
}

type Debt struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Principal      float64 `json:"principal"`
	InterestRate   float64 `json:"interest_rate"` // annual, percent
	MinimumPayment float64 `json:"minimum_payment"`
}

// DisplayName returns the name used in user-facing messages.
func (d Debt) DisplayName() string {
	if d.Name == "" {
		return "a debt"
	}
	return d.Name
}

// MonthlyInterest is the interest a balance accrues in one month at the debt's rate.
func (d Debt) MonthlyInterest(balance float64) float64 {
	return (d.InterestRate / 100 / 12) * balance
}

type RepaymentInput struct {
	Debts          []Debt   `json:"debts"`
	Strategy       Strategy `json:"strategy"`
	ExtraPayment   float64  `json:"extra_payment"`
	OneTimePayment float64  `json:"one_time_payment"`
}
