package payoff

import "fmt"

// Resource is an organization that can help with debt problems.
type Resource struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url,omitempty" yaml:"url"`
}

// RiskLevel classifies a debt-to-income ratio.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Rules are the thresholds of the advisory heuristics.
//
// They are rules of thumb, not financial guidance. All amounts are in the
// currency of the debts, rates and ratios are in percent.
type Rules struct {
	HighInterestRate         float64              `yaml:"highInterestRate"`         // Debts above this rate count as high interest for consolidation
	ConsolidationMinDebts    int                  `yaml:"consolidationMinDebts"`    // Minimum number of high interest debts to suggest consolidation
	ConsolidationMaxBalance  float64              `yaml:"consolidationMaxBalance"`  // Consolidation is only suggested below this total balance
	AssumedConsolidationRate float64              `yaml:"assumedConsolidationRate"` // Rate of the consolidation loan used to estimate savings
	DebtToIncomeSafe         float64              `yaml:"debtToIncomeSafe"`         // Ratios below are safe
	DebtToIncomeModerate     float64              `yaml:"debtToIncomeModerate"`     // Ratios below are moderate
	DebtToIncomeLimit        float64              `yaml:"debtToIncomeLimit"`        // Ratios above are critical and trigger the counseling advice
	RefinanceRates           map[DebtType]float64 `yaml:"refinanceRates"`           // Refinancing is suggested above these rates
	Resources                []Resource           `yaml:"resources"`                // Listed when consolidation or refinancing is suggested
}

// DefaultRules returns the rules used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		HighInterestRate:         10,
		ConsolidationMinDebts:    2,
		ConsolidationMaxBalance:  20000,
		AssumedConsolidationRate: 10,
		DebtToIncomeSafe:         28,
		DebtToIncomeModerate:     36,
		DebtToIncomeLimit:        43,
		RefinanceRates: map[DebtType]float64{
			CreditCard:   15,
			PersonalLoan: 12,
			CarLoan:      8,
		},
		Resources: []Resource{
			{
				Name:        "Latvian Financial and Capital Market Commission",
				Description: "Regulatory authority for financial services in Latvia",
				URL:         "https://www.fktk.lv/en/",
			},
			{
				Name:        "Consumer Rights Protection Centre (PTAC)",
				Description: "Consumer protection and debt counseling services",
				URL:         "https://www.ptac.gov.lv/en",
			},
		},
	}
}

// Advice bundles the restructuring suggestions for a set of debts.
type Advice struct {
	ConsolidationSuggestion bool       `json:"consolidationSuggestion"`
	RefinancingSuggestion   bool       `json:"refinancingSuggestion"`
	PotentialSavings        float64    `json:"potentialSavings"` // Interest saved by consolidating, 0 unless consolidation is suggested
	Reasons                 []string   `json:"reasons"`
	Resources               []Resource `json:"resources"`
	RefinanceCandidates     []string   `json:"refinanceCandidates"` // IDs of the debts that should be refinanced
	TotalMonthlyPayments    float64    `json:"totalMonthlyPayments"`
	WeightedAverageRate     float64    `json:"weightedAverageRate"`
	DebtToIncomeRatio       float64    `json:"debtToIncomeRatio"`
	RiskLevel               RiskLevel  `json:"riskLevel"`
}

// TotalMonthlyPayments is the sum of the monthly payments of all debts.
func TotalMonthlyPayments(debts []Debt) float64 {
	var sum float64
	for _, d := range debts {
		sum += d.MonthlyPayment
	}
	return sum
}

func totalBalance(debts []Debt) float64 {
	var sum float64
	for _, d := range debts {
		sum += d.CurrentBalance
	}
	return sum
}

// WeightedAverageRate is the mean interest rate weighted by current balance.
func WeightedAverageRate(debts []Debt) float64 {
	total := totalBalance(debts)
	if total == 0 {
		return 0
	}

	var weighted float64
	for _, d := range debts {
		weighted += d.CurrentBalance * d.InterestRate
	}

	return weighted / total
}

// DebtToIncomeRatio returns the monthly debt payments as a percentage of the
// monthly income. It is 0 when there is no income.
func DebtToIncomeRatio(monthlyDebtPayments, monthlyIncome float64) float64 {
	if monthlyIncome == 0 {
		return 0
	}
	return monthlyDebtPayments / monthlyIncome * 100
}

// ConsolidationSavings is the interest saved by replacing all debts with a
// single personal loan at consolidatedRate that is paid with the sum of
// all monthly payments. Both sides are simulated with the avalanche strategy
// and no extra payment.
func ConsolidationSavings(debts []Debt, consolidatedRate float64) float64 {
	current := Avalanche(debts, 0)

	balance := totalBalance(debts)
	payment := TotalMonthlyPayments(debts)

	consolidated := Avalanche([]Debt{{
		ID:             "consolidated",
		Name:           "Consolidated Loan",
		Type:           PersonalLoan,
		TotalAmount:    balance,
		CurrentBalance: balance,
		InterestRate:   consolidatedRate,
		MinimumPayment: payment * 0.5,
		MonthlyPayment: payment,
	}}, 0)

	return current.TotalInterest - consolidated.TotalInterest
}

// ShouldConsolidate reports if enough debts carry a high interest rate
// while the total balance is still small enough for a consolidation loan.
func (r Rules) ShouldConsolidate(debts []Debt) bool {
	var highInterest int
	for _, d := range debts {
		if d.InterestRate > r.HighInterestRate {
			highInterest++
		}
	}

	if highInterest < r.ConsolidationMinDebts {
		return false
	}

	return totalBalance(debts) < r.ConsolidationMaxBalance
}

// ShouldRefinance reports if the rate of the debt is high for its type.
// Types without a configured rate are never refinanced.
func (r Rules) ShouldRefinance(d Debt) bool {
	limit, ok := r.RefinanceRates[d.Type]
	if !ok {
		return false
	}
	return d.InterestRate > limit
}

// RiskLevel classifies a debt-to-income ratio in percent.
func (r Rules) RiskLevel(dti float64) RiskLevel {
	switch {
	case dti < r.DebtToIncomeSafe:
		return RiskSafe
	case dti < r.DebtToIncomeModerate:
		return RiskModerate
	case dti <= r.DebtToIncomeLimit:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// Advise collects the restructuring suggestions for the debts of someone
// with the given monthly income.
func (r Rules) Advise(debts []Debt, monthlyIncome float64) Advice {
	a := Advice{
		Reasons:             []string{},
		Resources:           []Resource{},
		RefinanceCandidates: []string{},
	}

	a.ConsolidationSuggestion = r.ShouldConsolidate(debts)
	for _, d := range debts {
		if r.ShouldRefinance(d) {
			a.RefinanceCandidates = append(a.RefinanceCandidates, d.ID)
		}
	}
	a.RefinancingSuggestion = len(a.RefinanceCandidates) > 0

	if a.ConsolidationSuggestion {
		a.PotentialSavings = ConsolidationSavings(debts, r.AssumedConsolidationRate)
		a.Reasons = append(a.Reasons,
			fmt.Sprintf("You have %d debts with varying interest rates.", len(debts)),
			"Consolidating into one loan could simplify payments and potentially save money.",
		)
	}

	if a.RefinancingSuggestion {
		a.Reasons = append(a.Reasons, fmt.Sprintf("You have %d high-interest debt(s) that could be refinanced.", len(a.RefinanceCandidates)))
	}

	a.TotalMonthlyPayments = TotalMonthlyPayments(debts)
	a.WeightedAverageRate = WeightedAverageRate(debts)
	a.DebtToIncomeRatio = DebtToIncomeRatio(a.TotalMonthlyPayments, monthlyIncome)
	a.RiskLevel = r.RiskLevel(a.DebtToIncomeRatio)

	if a.DebtToIncomeRatio > r.DebtToIncomeLimit {
		a.Reasons = append(a.Reasons,
			fmt.Sprintf("Your debt-to-income ratio (%.1f%%) is above the recommended %g%% limit.", a.DebtToIncomeRatio, r.DebtToIncomeLimit),
			"Consider seeking professional debt counseling.",
		)
	}

	if a.ConsolidationSuggestion || a.RefinancingSuggestion {
		a.Resources = append(a.Resources, r.Resources...)
	}

	return a
}

// ShouldConsolidate applies DefaultRules.
func ShouldConsolidate(debts []Debt) bool {
	return DefaultRules().ShouldConsolidate(debts)
}

// ShouldRefinance applies DefaultRules.
func ShouldRefinance(d Debt) bool {
	return DefaultRules().ShouldRefinance(d)
}

// RestructuringAdvice applies DefaultRules.
func RestructuringAdvice(debts []Debt, monthlyIncome float64) Advice {
	return DefaultRules().Advise(debts, monthlyIncome)
}
