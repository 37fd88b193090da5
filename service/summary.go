package service

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"debt-repayment/domain"
)

const currencySymbol = "£"

// BuildSummary prepares a result for display: the payoff time in years and
// months, formatted totals and the chart series.
func BuildSummary(result domain.RepaymentResult) domain.Summary {
	years, months := result.TotalMonths/12, result.TotalMonths%12

	chart := make([]domain.ChartPoint, 0, len(result.MonthlyPayments))
	for _, p := range result.MonthlyPayments {
		chart = append(chart, domain.ChartPoint{
			Month:            p.Month,
			RemainingBalance: p.Balance,
			InterestPaid:     p.InterestPaid,
			PrincipalPaid:    p.PrincipalPaid,
		})
	}

	return domain.Summary{
		Years:         years,
		Months:        months,
		Duration:      FormatDuration(result.TotalMonths),
		TotalInterest: FormatCurrency(result.TotalInterest),
		TotalPaid:     FormatCurrency(result.TotalPaid),
		Chart:         chart,
	}
}

// FormatDuration renders a month count as "2 years 3 months", leaving out
// zero parts.
func FormatDuration(totalMonths int) string {
	years, months := totalMonths/12, totalMonths%12

	var parts []string
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if months > 0 {
		parts = append(parts, plural(months, "month"))
	}
	if len(parts) == 0 {
		return "0 months"
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// FormatCurrency renders an amount with two decimals and thousands grouping.
func FormatCurrency(amount float64) string {
	p := message.NewPrinter(language.BritishEnglish)
	return currencySymbol + p.Sprintf("%.2f", roundTo2Decimals(amount))
}
