package core

import "github.com/shopspring/decimal"

// Report is an immutable spending summary over a closed date interval.
type Report struct {
	TotalIncome       Money   `json:"totalIncome"`
	TotalExpenses     Money   `json:"totalExpenses"`
	NetBalance        Money   `json:"netBalance"`
	NeedsSpending     Money   `json:"needsSpending"`
	WantsSpending     Money   `json:"wantsSpending"`
	SavingsSpending   Money   `json:"savingsSpending"`
	StartDate         Date    `json:"startDate"`
	EndDate           Date    `json:"endDate"`
	NeedsPercentage   float64 `json:"needsPercentage"`
	WantsPercentage   float64 `json:"wantsPercentage"`
	SavingsPercentage float64 `json:"savingsPercentage"`
}

// BuildReport derives net balance and classification percentages from the
// raw sums. Percentages are bucket/totalExpenses*100, computed in decimal
// at four fractional digits half-up. When there are no expenses every
// percentage is exactly 0; never an error, never NaN.
func BuildReport(start, end Date, income, expenses, needs, wants, savings Money) Report {
	r := Report{
		TotalIncome:     income,
		TotalExpenses:   expenses,
		NetBalance:      income.Sub(expenses),
		NeedsSpending:   needs,
		WantsSpending:   wants,
		SavingsSpending: savings,
		StartDate:       start,
		EndDate:         end,
	}
	if expenses.IsPositive() {
		r.NeedsPercentage = percentOf(needs, expenses)
		r.WantsPercentage = percentOf(wants, expenses)
		r.SavingsPercentage = percentOf(savings, expenses)
	}
	return r
}

func percentOf(part, total Money) float64 {
	ratio := decimal.NewFromInt(part.Cents).
		DivRound(decimal.NewFromInt(total.Cents), 4).
		Mul(decimal.NewFromInt(100))
	f, _ := ratio.Float64()
	return f
}
