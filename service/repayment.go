package service

import (
	"fmt"
	"math"
	"sort"

	"debt-repayment/domain"
)

// workingDebt is a debt together with its balance at one point of the simulation.
type workingDebt struct {
	domain.Debt
	Balance float64
}

// Simulate computes the month-by-month repayment schedule for debts.
//
// Debts are paid in the priority order given by strategy. Every month each
// outstanding debt receives its minimum payment and the first one still owing
// also receives the whole extraPayment. oneTimePayment is applied once, before
// the first month, to the highest-priority debt.
//
// Simulate fails with *ValidationError before doing any work when the input is
// invalid, and with *ScheduleTooLongError when repayment would take more than
// MaxRepaymentMonths. No partial result is returned on failure.
func Simulate(
	debts []domain.Debt,
	strategy domain.Strategy,
	extraPayment float64,
	oneTimePayment float64,
) (domain.RepaymentResult, error) {

	if err := validateDebts(debts); err != nil {
		return domain.RepaymentResult{}, err
	}
	if !strategy.Valid() {
		return domain.RepaymentResult{}, inputValidationError("strategy", "unknown repayment strategy %q", strategy)
	}
	if !(extraPayment >= 0) {
		return domain.RepaymentResult{}, inputValidationError("extra_payment", "extra payment cannot be negative")
	}
	if !(oneTimePayment >= 0) {
		return domain.RepaymentResult{}, inputValidationError("one_time_payment", "one-time payment cannot be negative")
	}

	ordered := orderDebts(debts, strategy)
	working := make([]workingDebt, len(ordered))
	for i, debt := range ordered {
		working[i] = workingDebt{Debt: debt, Balance: debt.Principal}
	}

	var totalInterest, totalPrincipal float64

	if oneTimePayment > 0 && len(working) > 0 {
		applied := math.Min(oneTimePayment, working[0].Balance)
		working[0].Balance -= applied
		totalPrincipal += applied
	}

	payments := []domain.MonthlyPayment{}
	month := 0
	for hasBalance(working) {
		month++

		var payment domain.MonthlyPayment
		working, payment = advanceMonth(working, month, extraPayment)
		payments = append(payments, payment)

		totalInterest += payment.InterestPaid
		totalPrincipal += payment.PrincipalPaid

		if month > MaxRepaymentMonths {
			return domain.RepaymentResult{}, &ScheduleTooLongError{Months: month, Limit: MaxRepaymentMonths}
		}
	}

	return domain.RepaymentResult{
		TotalMonths:     month,
		TotalInterest:   totalInterest,
		TotalPaid:       totalInterest + totalPrincipal,
		MonthlyPayments: payments,
	}, nil
}

// validateDebts checks every debt in order and stops at the first failure.
func validateDebts(debts []domain.Debt) error {
	for _, debt := range debts {
		name := debt.DisplayName()
		if !(debt.Principal > 0) {
			return debtValidationError(debt.ID, debt.Name, name, "principal", "principal", "must be greater than 0")
		}
		if !(debt.InterestRate >= 0) {
			return debtValidationError(debt.ID, debt.Name, name, "interest_rate", "interest rate", "cannot be negative")
		}
		if !(debt.MinimumPayment > 0) {
			return debtValidationError(debt.ID, debt.Name, name, "minimum_payment", "minimum payment", "must be greater than 0")
		}
		interest := debt.MonthlyInterest(debt.Principal)
		if debt.MinimumPayment <= interest {
			return debtValidationError(debt.ID, debt.Name, name, "minimum_payment", "minimum payment",
				fmt.Sprintf("must be greater than monthly interest (%.2f)", interest))
		}
	}
	return nil
}

// orderDebts returns a copy of debts sorted by strategy. Ties keep their
// input order.
func orderDebts(debts []domain.Debt, strategy domain.Strategy) []domain.Debt {
	ordered := make([]domain.Debt, len(debts))
	copy(ordered, debts)

	switch strategy {
	case domain.StrategySnowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Principal < ordered[j].Principal
		})
	case domain.StrategyAvalanche:
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].InterestRate > ordered[j].InterestRate
		})
	}
	return ordered
}

func hasBalance(debts []workingDebt) bool {
	for _, debt := range debts {
		if debt.Balance > 0 {
			return true
		}
	}
	return false
}

// advanceMonth pays one month against current and returns the new balances
// with the month's record. current is not modified.
//
// A payment larger than what a debt still owes is not passed on to the next
// debt; the surplus is simply not paid that month.
func advanceMonth(current []workingDebt, month int, extraPayment float64) ([]workingDebt, domain.MonthlyPayment) {
	next := make([]workingDebt, len(current))
	copy(next, current)

	record := domain.MonthlyPayment{Month: month}
	remainingExtra := extraPayment

	for i := range next {
		debt := &next[i]
		if debt.Balance <= 0 {
			continue
		}

		interest := debt.MonthlyInterest(debt.Balance)
		payment := debt.MinimumPayment

		// The first debt reached here is the highest-priority one still owing.
		if remainingExtra > 0 {
			payment += remainingExtra
			remainingExtra = 0
		}

		interestPortion := math.Min(interest, debt.Balance)
		principalPortion := math.Min(payment-interestPortion, debt.Balance)

		debt.Balance -= principalPortion
		record.InterestPaid += interestPortion
		record.PrincipalPaid += principalPortion
	}

	for _, debt := range next {
		record.Balance += debt.Balance
	}
	return next, record
}
