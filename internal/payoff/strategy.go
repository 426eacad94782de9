package payoff

import (
	"cmp"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// StrategyType identifies the order in which debts receive extra payments.
type StrategyType string

const (
	TypeAvalanche StrategyType = "avalanche" // Highest interest rate first
	TypeSnowball  StrategyType = "snowball"  // Smallest balance first
	TypeCustom    StrategyType = "custom"    // Order chosen by the user
)

var ErrUnknownStrategy = errors.New("unknown payoff strategy")

// ParseStrategyType parses the name of a strategy.
func ParseStrategyType(s string) (StrategyType, error) {
	switch t := StrategyType(s); t {
	case TypeAvalanche, TypeSnowball, TypeCustom:
		return t, nil
	}

	return "", fmt.Errorf("%w: %q, must be one of avalanche, snowball, custom", ErrUnknownStrategy, s)
}

// PerDebt selects where the per-debt figures of a strategy come from.
type PerDebt int

const (
	// PerDebtIsolated computes PayoffMonth and TotalInterestPaid of every debt
	// with its own payment in isolation, ignoring extra payments and freed up
	// payments. The per-debt figures then do not add up to the totals of
	// the strategy.
	PerDebtIsolated PerDebt = iota

	// PerDebtSimulated takes PayoffMonth and TotalInterestPaid from the
	// simulation of the whole strategy.
	PerDebtSimulated
)

// Options tune how a strategy is calculated.
type Options struct {
	PerDebt PerDebt
}

// Strategy is the result of simulating one payoff order.
type Strategy struct {
	Type           StrategyType   `json:"type"`
	Debts          []DebtWithPlan `json:"debts"` // In strategy order
	TotalInterest  float64        `json:"totalInterest"`
	MonthsToPayoff int            `json:"monthsToPayoff"` // MaxMonths when the simulation did not converge
	TotalPaid      float64        `json:"totalPaid"`
	Converged      bool           `json:"converged"`
}

// OrderAvalanche returns the debts sorted by interest rate, highest first.
// Debts with equal rates keep their relative order.
func OrderAvalanche(debts []Debt) []Debt {
	sorted := slices.Clone(debts)
	slices.SortStableFunc(sorted, func(a, b Debt) int {
		return cmp.Compare(b.InterestRate, a.InterestRate)
	})
	return sorted
}

// OrderSnowball returns the debts sorted by current balance, smallest first.
// Debts with equal balances keep their relative order.
func OrderSnowball(debts []Debt) []Debt {
	sorted := slices.Clone(debts)
	slices.SortStableFunc(sorted, func(a, b Debt) int {
		return cmp.Compare(a.CurrentBalance, b.CurrentBalance)
	})
	return sorted
}

// OrderCustom returns the debts in the order of ids.
//
// IDs that do not identify a debt are ignored, and so are debts whose ID
// is not in ids. Repeated IDs are only used once.
func OrderCustom(debts []Debt, ids []string) []Debt {
	byID := make(map[string]Debt, len(debts))
	for _, d := range debts {
		if _, ok := byID[d.ID]; !ok {
			byID[d.ID] = d
		}
	}

	ordered := make([]Debt, 0, len(ids))
	for _, id := range ids {
		d, ok := byID[id]
		if !ok {
			continue
		}

		ordered = append(ordered, d)
		delete(byID, id)
	}

	return ordered
}

// Order sorts debts for a strategy type. ids is only used for TypeCustom.
func Order(t StrategyType, debts []Debt, ids []string) ([]Debt, error) {
	switch t {
	case TypeAvalanche:
		return OrderAvalanche(debts), nil
	case TypeSnowball:
		return OrderSnowball(debts), nil
	case TypeCustom:
		return OrderCustom(debts, ids), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, t)
}

// Avalanche pays off the debt with the highest interest rate first.
func Avalanche(debts []Debt, extraPayment float64) Strategy {
	return plan(TypeAvalanche, OrderAvalanche(debts), extraPayment, Options{})
}

// Snowball pays off the debt with the smallest balance first.
func Snowball(debts []Debt, extraPayment float64) Strategy {
	return plan(TypeSnowball, OrderSnowball(debts), extraPayment, Options{})
}

// Custom pays off debts in the order of ids, see OrderCustom.
func Custom(debts []Debt, ids []string, extraPayment float64) Strategy {
	return plan(TypeCustom, OrderCustom(debts, ids), extraPayment, Options{})
}

// Calculate computes the strategy of type t. ids is only used for TypeCustom.
func Calculate(t StrategyType, debts []Debt, ids []string, extraPayment float64, opts Options) (Strategy, error) {
	ordered, err := Order(t, debts, ids)
	if err != nil {
		return Strategy{}, err
	}

	return plan(t, ordered, extraPayment, opts), nil
}

func plan(t StrategyType, ordered []Debt, extraPayment float64, opts Options) Strategy {
	strategy := Strategy{
		Type:  t,
		Debts: make([]DebtWithPlan, 0, len(ordered)),
	}

	if len(ordered) == 0 {
		strategy.Converged = true
		return strategy
	}

	sim := Simulate(ordered, extraPayment)
	strategy.TotalInterest = sim.TotalInterest
	strategy.TotalPaid = sim.TotalPaid
	strategy.MonthsToPayoff = sim.MonthsToPayoff
	strategy.Converged = sim.Converged

	for i, d := range ordered {
		p := DebtWithPlan{
			Debt:  d,
			Order: i + 1,
		}

		if opts.PerDebt == PerDebtSimulated {
			p.PayoffMonth = sim.PaidOffIn[i]
			p.TotalInterestPaid = sim.InterestByDebt[i]
		} else {
			p.PayoffMonth = PayoffMonths(d.CurrentBalance, d.MonthlyPayment, d.InterestRate)
			p.TotalInterestPaid = TotalInterest(d.CurrentBalance, d.MonthlyPayment, d.InterestRate)
		}

		strategy.Debts = append(strategy.Debts, p)
	}

	return strategy
}
