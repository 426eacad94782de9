package v1

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pockets-budget/backend/internal/models"
	"github.com/pockets-budget/backend/internal/payoff"
	"github.com/pockets-budget/backend/internal/types"
	ez_uuid "github.com/pockets-budget/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// AdviceRules are the thresholds used for restructuring advice. They are
// replaced with the configured rules on startup.
var AdviceRules = payoff.DefaultRules()

const (
	perDebtIsolated  = "isolated"
	perDebtSimulated = "simulated"
)

// PlanQuery are the parameters for all payoff calculations of a profile.
type PlanQuery struct {
	Strategy     string `form:"strategy" example:"avalanche"`                                                       // avalanche, snowball or custom. Defaults to avalanche.
	ExtraPayment string `form:"extraPayment" example:"50"`                                                          // Paid every month on top of the monthly payments. Defaults to 0.
	Order        string `form:"order" example:"2b5d3f37-e8b5-4b2a-9d63-ac0e5b7c3a26,c1c4a7b2-2d4f-4a9b-8f0e-5a2f0c7d1e3b"` // Comma separated debt IDs for the custom strategy. Defaults to the priority of the debts.
	PerDebt      string `form:"perDebt" example:"isolated"`                                                         // isolated or simulated. Defaults to isolated.
	Month        string `form:"month" example:"2024-03"`                                                            // Month of the first payment in YYYY-MM format. Defaults to the current month.
}

type planParams struct {
	Strategy     payoff.StrategyType
	ExtraPayment decimal.Decimal
	Order        []uuid.UUID
	PerDebt      string
	Month        types.Month
}

func (q PlanQuery) parse(now time.Time) (planParams, error) {
	p := planParams{
		Strategy: payoff.TypeAvalanche,
		PerDebt:  perDebtIsolated,
		Month:    types.MonthOf(now),
	}

	if q.Strategy != "" {
		t, err := payoff.ParseStrategyType(strings.ToLower(q.Strategy))
		if err != nil {
			return planParams{}, err
		}
		p.Strategy = t
	}

	if q.ExtraPayment != "" {
		extra, err := decimal.NewFromString(q.ExtraPayment)
		if err != nil || extra.IsNegative() {
			return planParams{}, errExtraPaymentInvalid
		}
		p.ExtraPayment = extra
	}

	if q.Order != "" {
		ids, err := ez_uuid.ParseList(q.Order)
		if err != nil {
			return planParams{}, fmt.Errorf("the order parameter is invalid: %w", err)
		}
		p.Order = ids
	}

	switch q.PerDebt {
	case "", perDebtIsolated:
	case perDebtSimulated:
		p.PerDebt = perDebtSimulated
	default:
		return planParams{}, errPerDebtInvalid
	}

	if q.Month != "" {
		month, err := types.ParseMonth(q.Month)
		if err != nil {
			return planParams{}, err
		}
		p.Month = month
	}

	return p, nil
}

// order returns the debt IDs for the custom strategy. Without an explicit
// order, debts are paid off in the order they are passed in.
func (p planParams) order(debts []payoff.Debt) []string {
	ids := make([]string, 0, len(debts))
	if len(p.Order) == 0 {
		for _, d := range debts {
			ids = append(ids, d.ID)
		}
		return ids
	}

	for _, id := range p.Order {
		ids = append(ids, id.String())
	}
	return ids
}

// query returns the parameters as query string values.
func (p planParams) query() url.Values {
	v := url.Values{}
	v.Set("strategy", string(p.Strategy))
	v.Set("extraPayment", p.ExtraPayment.String())
	v.Set("month", p.Month.String())

	if len(p.Order) > 0 {
		ids := make([]string, 0, len(p.Order))
		for _, id := range p.Order {
			ids = append(ids, id.String())
		}
		v.Set("order", strings.Join(ids, ","))
	}

	return v
}

func (p planParams) options() payoff.Options {
	if p.PerDebt == perDebtSimulated {
		return payoff.Options{PerDebt: payoff.PerDebtSimulated}
	}
	return payoff.Options{PerDebt: payoff.PerDebtIsolated}
}

// payoffMonth is the calendar month in which a debt is paid off when
// payments start in start. It is nil when there is nothing to pay off
// or the debt is never paid off.
func payoffMonth(start types.Month, months int) *types.Month {
	if months <= 0 {
		return nil
	}

	m := start.AddDate(0, months-1)
	return &m
}

type PlanDebtLinks struct {
	Debt string `json:"debt" example:"https://example.com/api/v1/debts/2b5d3f37-e8b5-4b2a-9d63-ac0e5b7c3a26"` // The debt
}

// PlanDebt is a debt as part of a payoff plan.
type PlanDebt struct {
	ID                uuid.UUID       `json:"id" example:"2b5d3f37-e8b5-4b2a-9d63-ac0e5b7c3a26"`
	Name              string          `json:"name" example:"Credit card"`
	Type              payoff.DebtType `json:"type" example:"credit_card"`
	CurrentBalance    decimal.Decimal `json:"currentBalance" example:"2450.17"`
	InterestRate      decimal.Decimal `json:"interestRate" example:"19.9"`
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment" example:"120"`
	Order             int             `json:"order" example:"1"`                // Position in the payoff order, starting at 1
	PayoffMonths      int             `json:"payoffMonths" example:"24"`        // Months until the debt is paid off, -1 if it is never paid off
	PayoffDate        *types.Month    `json:"payoffDate" example:"2026-02"`     // Month in which the debt is paid off, null if it is never paid off
	TotalInterestPaid decimal.Decimal `json:"totalInterestPaid" example:"427.31"` // Interest paid on the debt
	Links             PlanDebtLinks   `json:"links"`
}

type PlanLinks struct {
	Profile  string `json:"profile" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`          // The profile
	Schedule string `json:"schedule" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/schedule"` // The month by month schedule for the same parameters
}

// Plan is a payoff plan for all active debts of a profile.
type Plan struct {
	Strategy       payoff.StrategyType `json:"strategy" example:"avalanche"`
	ExtraPayment   decimal.Decimal     `json:"extraPayment" example:"50"`
	PerDebt        string              `json:"perDebt" example:"isolated"` // isolated: per debt figures are computed for every debt on its own with its monthly payment. simulated: per debt figures are taken from the simulation of the whole plan.
	StartMonth     types.Month         `json:"startMonth" example:"2024-03"`
	Currency       string              `json:"currency" example:"EUR"`
	Debts          []PlanDebt          `json:"debts"` // In payoff order
	TotalInterest  decimal.Decimal     `json:"totalInterest" example:"1304.18"`
	TotalPaid      decimal.Decimal     `json:"totalPaid" example:"15750.35"`
	MonthsToPayoff int                 `json:"monthsToPayoff" example:"31"`   // Months until all debts are paid off. When the plan does not converge, this is the simulation limit.
	DebtFreeDate   *types.Month        `json:"debtFreeDate" example:"2026-09"` // Month in which the last debt is paid off, null if the plan does not converge
	Converged      bool                `json:"converged" example:"true"`      // false if some debts are never paid off
	Links          PlanLinks           `json:"links"`
}

func newPlan(c *gin.Context, profile models.Profile, p planParams, s payoff.Strategy) Plan {
	base := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/profiles/%s", base, profile.ID)

	plan := Plan{
		Strategy:       s.Type,
		ExtraPayment:   p.ExtraPayment,
		PerDebt:        p.PerDebt,
		StartMonth:     p.Month,
		Currency:       profile.Currency,
		Debts:          make([]PlanDebt, 0, len(s.Debts)),
		TotalInterest:  money(s.TotalInterest),
		TotalPaid:      money(s.TotalPaid),
		MonthsToPayoff: s.MonthsToPayoff,
		Converged:      s.Converged,
		Links: PlanLinks{
			Profile:  self,
			Schedule: self + "/schedule?" + p.query().Encode(),
		},
	}

	if s.Converged {
		plan.DebtFreeDate = payoffMonth(p.Month, s.MonthsToPayoff)
	}

	for _, d := range s.Debts {
		plan.Debts = append(plan.Debts, PlanDebt{
			ID:                uuid.MustParse(d.ID),
			Name:              d.Name,
			Type:              d.Type,
			CurrentBalance:    money(d.CurrentBalance),
			InterestRate:      money(d.InterestRate),
			MonthlyPayment:    money(d.MonthlyPayment),
			Order:             d.Order,
			PayoffMonths:      d.PayoffMonth,
			PayoffDate:        payoffMonth(p.Month, d.PayoffMonth),
			TotalInterestPaid: money(d.TotalInterestPaid),
			Links: PlanDebtLinks{
				Debt: fmt.Sprintf("%s/v1/debts/%s", base, d.ID),
			},
		})
	}

	return plan
}

type PlanResponse struct {
	Data  *Plan   `json:"data"`                                                       // Data for the plan
	Error *string `json:"error" example:"the strategy must be one of avalanche, snowball, custom"` // The error, if any occurred
}

// Comparison compares the avalanche and snowball strategies for the same debts.
type Comparison struct {
	Avalanche   Plan                `json:"avalanche"`
	Snowball    Plan                `json:"snowball"`
	Savings     decimal.Decimal     `json:"savings" example:"112.47"`       // Interest saved with avalanche, negative if snowball is cheaper
	MonthsSaved int                 `json:"monthsSaved" example:"1"`        // Months saved with avalanche, negative if snowball is faster
	Recommended payoff.StrategyType `json:"recommended" example:"avalanche"` // The strategy with less interest
}

type ComparisonResponse struct {
	Data  *Comparison `json:"data"`                                                          // Data for the comparison
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ScheduleDebtMonth is what happens to one debt in one month.
type ScheduleDebtMonth struct {
	ID        uuid.UUID       `json:"id" example:"2b5d3f37-e8b5-4b2a-9d63-ac0e5b7c3a26"`
	Order     int             `json:"order" example:"1"`
	Payment   decimal.Decimal `json:"payment" example:"170"`    // Payment including any extra payment
	Interest  decimal.Decimal `json:"interest" example:"40.63"` // Interest charged this month
	Principal decimal.Decimal `json:"principal" example:"129.37"`
	Balance   decimal.Decimal `json:"balance" example:"2320.80"` // Balance at the end of the month
	PaidOff   bool            `json:"paidOff" example:"false"`   // The debt was paid off this month
}

// ScheduleMonth is one month of a payoff schedule.
type ScheduleMonth struct {
	Number    int                 `json:"number" example:"1"`      // Number of the month, starting at 1
	Month     types.Month         `json:"month" example:"2024-03"` // The calendar month
	Focus     *uuid.UUID          `json:"focus"`                   // The debt receiving the extra payment
	ExtraPool decimal.Decimal     `json:"extraPool" example:"50"`  // Extra payment available for the focus debt
	Interest  decimal.Decimal     `json:"interest" example:"98.12"`
	Paid      decimal.Decimal     `json:"paid" example:"720"`
	Freed     decimal.Decimal     `json:"freed" example:"0"` // Monthly payments of debts paid off this month, added to the extra payment from the next month on
	Debts     []ScheduleDebtMonth `json:"debts"`
}

// Schedule is the month by month simulation of a strategy.
type Schedule struct {
	Strategy       payoff.StrategyType `json:"strategy" example:"avalanche"`
	ExtraPayment   decimal.Decimal     `json:"extraPayment" example:"50"`
	StartMonth     types.Month         `json:"startMonth" example:"2024-03"`
	MonthsToPayoff int                 `json:"monthsToPayoff" example:"31"`
	Converged      bool                `json:"converged" example:"true"`
	Months         []ScheduleMonth     `json:"months"`
}

func newSchedule(p planParams, sim payoff.Simulation) Schedule {
	s := Schedule{
		Strategy:       p.Strategy,
		ExtraPayment:   p.ExtraPayment,
		StartMonth:     p.Month,
		MonthsToPayoff: sim.MonthsToPayoff,
		Converged:      sim.Converged,
		Months:         make([]ScheduleMonth, 0, len(sim.Months)),
	}

	for _, m := range sim.Months {
		month := ScheduleMonth{
			Number:    m.Number,
			Month:     p.Month.AddDate(0, m.Number-1),
			ExtraPool: money(m.ExtraPool),
			Interest:  money(m.Interest),
			Paid:      money(m.Paid),
			Freed:     money(m.Freed),
			Debts:     make([]ScheduleDebtMonth, 0, len(m.Debts)),
		}

		if m.Focus != "" {
			focus := uuid.MustParse(m.Focus)
			month.Focus = &focus
		}

		for _, d := range m.Debts {
			month.Debts = append(month.Debts, ScheduleDebtMonth{
				ID:        uuid.MustParse(d.ID),
				Order:     d.Order,
				Payment:   money(d.Payment),
				Interest:  money(d.Interest),
				Principal: money(d.Principal),
				Balance:   money(d.Balance),
				PaidOff:   d.PaidOff,
			})
		}

		s.Months = append(s.Months, month)
	}

	return s
}

type ScheduleResponse struct {
	Data  *Schedule `json:"data"`                                                          // Data for the schedule
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// Advice are the restructuring suggestions for the debts of a profile.
type Advice struct {
	ConsolidationSuggestion bool              `json:"consolidationSuggestion" example:"true"` // Consolidating the debts into one loan is worth a look
	RefinancingSuggestion   bool              `json:"refinancingSuggestion" example:"true"`   // Some debts have a high interest rate for their type
	PotentialSavings        decimal.Decimal   `json:"potentialSavings" example:"212.40"`      // Estimated interest saved by consolidating
	Reasons                 []string          `json:"reasons"`                                // Explanations for the suggestions
	Resources               []payoff.Resource `json:"resources"`                              // Organizations that can help
	RefinanceCandidates     []uuid.UUID       `json:"refinanceCandidates"`                    // IDs of the debts that should be refinanced
	MonthlyIncome           decimal.Decimal   `json:"monthlyIncome" example:"3250"`
	TotalMonthlyPayments    decimal.Decimal   `json:"totalMonthlyPayments" example:"640"`
	WeightedAverageRate     decimal.Decimal   `json:"weightedAverageRate" example:"12.81"` // Average interest rate weighted by balance, in percent
	DebtToIncomeRatio       decimal.Decimal   `json:"debtToIncomeRatio" example:"19.69"`   // Monthly payments as percentage of the monthly income
	RiskLevel               payoff.RiskLevel  `json:"riskLevel" example:"safe" enums:"safe,moderate,high,critical"`
}

func newAdvice(profile models.Profile, a payoff.Advice) Advice {
	advice := Advice{
		ConsolidationSuggestion: a.ConsolidationSuggestion,
		RefinancingSuggestion:   a.RefinancingSuggestion,
		PotentialSavings:        money(a.PotentialSavings),
		Reasons:                 a.Reasons,
		Resources:               a.Resources,
		RefinanceCandidates:     make([]uuid.UUID, 0, len(a.RefinanceCandidates)),
		MonthlyIncome:           profile.MonthlyIncome,
		TotalMonthlyPayments:    money(a.TotalMonthlyPayments),
		WeightedAverageRate:     money(a.WeightedAverageRate),
		DebtToIncomeRatio:       money(a.DebtToIncomeRatio),
		RiskLevel:               a.RiskLevel,
	}

	for _, id := range a.RefinanceCandidates {
		advice.RefinanceCandidates = append(advice.RefinanceCandidates, uuid.MustParse(id))
	}

	return advice
}

type AdviceResponse struct {
	Data  *Advice `json:"data"`                                                          // Data for the advice
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
