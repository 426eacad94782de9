package payoff

// Comparison holds the avalanche and snowball strategies for the same debts.
type Comparison struct {
	Avalanche   Strategy `json:"avalanche"`
	Snowball    Strategy `json:"snowball"`
	Savings     float64  `json:"savings"`     // Interest saved with avalanche, negative if snowball is cheaper
	MonthsSaved int      `json:"monthsSaved"` // Months saved with avalanche, negative if snowball is faster
}

// Compare runs the avalanche and snowball strategies on the same debts.
func Compare(debts []Debt, extraPayment float64) Comparison {
	return CompareWith(debts, extraPayment, Options{})
}

// CompareWith is Compare with the per-debt figures of both strategies
// computed as selected in opts.
func CompareWith(debts []Debt, extraPayment float64, opts Options) Comparison {
	avalanche := plan(TypeAvalanche, OrderAvalanche(debts), extraPayment, opts)
	snowball := plan(TypeSnowball, OrderSnowball(debts), extraPayment, opts)

	return Comparison{
		Avalanche:   avalanche,
		Snowball:    snowball,
		Savings:     snowball.TotalInterest - avalanche.TotalInterest,
		MonthsSaved: snowball.MonthsToPayoff - avalanche.MonthsToPayoff,
	}
}

// Recommended returns the strategy with less interest. On a tie, it is
// avalanche.
func (c Comparison) Recommended() StrategyType {
	if c.Savings < 0 {
		return TypeSnowball
	}
	return TypeAvalanche
}
