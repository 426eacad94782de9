package payoff

import (
	"golang.org/x/exp/slices"
)

// MaxMonths is the number of months after which a simulation stops even
// if debts are still owing. A simulation stopped this way did not converge,
// its month count is not a real timeline.
const MaxMonths = 1000

// DebtMonth is what happened to a single debt in one simulated month.
type DebtMonth struct {
	ID        string  `json:"id"`
	Order     int     `json:"order"`     // 1-based position in the strategy order
	Payment   float64 `json:"payment"`   // Total payment including any extra payment
	Interest  float64 `json:"interest"`  // Interest charged this month
	Principal float64 `json:"principal"` // Payment minus interest
	Balance   float64 `json:"balance"`   // Balance at the end of the month
	PaidOff   bool    `json:"paidOff"`   // The balance reached zero this month
}

// Month is one simulated month.
type Month struct {
	Number    int         `json:"month"`     // 1-based
	ExtraPool float64     `json:"extraPool"` // Extra payment available to the focus debt this month
	Focus     string      `json:"focus"`     // ID of the debt receiving the extra payment
	Interest  float64     `json:"interest"`
	Paid      float64     `json:"paid"`
	Freed     float64     `json:"freed"` // Monthly payments released by debts paid off this month
	Debts     []DebtMonth `json:"debts"` // Debts that were owing at the start of the month
}

// Simulation is the full result of simulating a strategy order month by month.
type Simulation struct {
	Months         []Month
	MonthsToPayoff int
	TotalInterest  float64
	TotalPaid      float64
	Converged      bool

	// PaidOffIn holds the month each debt reached a zero balance, indexed
	// like the ordered debts. Debts without a positive starting balance
	// have 0, debts still owing at the end have Unpayable.
	PaidOffIn []int

	// InterestByDebt holds the interest charged to each debt during the
	// simulation, indexed like the ordered debts.
	InterestByDebt []float64
}

// state is the simulation state between two months.
type state struct {
	month    int
	balances []float64
	pool     float64 // extra payment available in the next month
}

func (s state) owing() bool {
	return firstOwing(s.balances) >= 0
}

func firstOwing(balances []float64) int {
	for i, b := range balances {
		if b > 0 {
			return i
		}
	}
	return -1
}

// step simulates one month. It does not modify prev.
//
// The focus debt is the first debt in priority order that is owing at
// the start of the month. It gets the extra payment pool on top of its own
// payment. Debts paid off during the month release their monthly payment
// into the pool, it becomes available from the next month on.
func step(debts []Debt, prev state) (state, Month) {
	next := state{
		month:    prev.month + 1,
		balances: slices.Clone(prev.balances),
		pool:     prev.pool,
	}

	m := Month{
		Number:    next.month,
		ExtraPool: prev.pool,
	}

	focus := firstOwing(prev.balances)
	if focus >= 0 {
		m.Focus = debts[focus].ID
	}

	for i, d := range debts {
		balance := prev.balances[i]
		if balance <= 0 {
			continue
		}

		interest := balance * d.monthlyRate()
		payment := d.MonthlyPayment
		if i == focus {
			payment += prev.pool
		}

		// Never pay more than what is owed
		remaining := 0.0
		if owed := balance + interest; payment >= owed {
			payment = owed
		} else {
			remaining = balance - (payment - interest)
		}

		paidOff := remaining <= 0
		if paidOff {
			remaining = 0
			next.pool += d.MonthlyPayment
			m.Freed += d.MonthlyPayment
		}
		next.balances[i] = remaining

		m.Interest += interest
		m.Paid += payment
		m.Debts = append(m.Debts, DebtMonth{
			ID:        d.ID,
			Order:     i + 1,
			Payment:   payment,
			Interest:  interest,
			Principal: payment - interest,
			Balance:   remaining,
			PaidOff:   paidOff,
		})
	}

	return next, m
}

// Simulate pays off the ordered debts month by month. The first owing
// debt receives extraPayment in addition to its own monthly payment, and
// every paid off debt adds its monthly payment to that extra amount.
//
// The simulation stops when all debts are paid off or after MaxMonths.
func Simulate(ordered []Debt, extraPayment float64) Simulation {
	s := state{
		balances: make([]float64, len(ordered)),
		pool:     extraPayment,
	}

	sim := Simulation{
		PaidOffIn:      make([]int, len(ordered)),
		InterestByDebt: make([]float64, len(ordered)),
	}

	for i, d := range ordered {
		s.balances[i] = d.CurrentBalance
		if d.CurrentBalance > 0 {
			sim.PaidOffIn[i] = Unpayable
		}
	}

	for s.owing() && s.month < MaxMonths {
		var m Month
		s, m = step(ordered, s)

		sim.TotalInterest += m.Interest
		sim.TotalPaid += m.Paid
		for _, dm := range m.Debts {
			sim.InterestByDebt[dm.Order-1] += dm.Interest
			if dm.PaidOff {
				sim.PaidOffIn[dm.Order-1] = m.Number
			}
		}

		sim.Months = append(sim.Months, m)
	}

	sim.MonthsToPayoff = s.month
	sim.Converged = !s.owing()

	return sim
}
