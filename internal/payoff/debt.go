// Package payoff implements the debt payoff planning engine.
//
// All functions are pure: they never read the clock, never perform I/O
// and never modify the debts passed to them. They can be called
// concurrently without synchronization.
package payoff

import (
	"time"
)

// DebtType is the kind of a debt. It only influences the advisory
// heuristics, never the simulation.
type DebtType string

const (
	CreditCard   DebtType = "credit_card"
	PersonalLoan DebtType = "personal_loan"
	Mortgage     DebtType = "mortgage"
	CarLoan      DebtType = "car_loan"
	StudentLoan  DebtType = "student_loan"
	Other        DebtType = "other"
)

// DebtTypes lists all known debt types.
var DebtTypes = []DebtType{CreditCard, PersonalLoan, Mortgage, CarLoan, StudentLoan, Other}

// Valid reports if t is one of the known debt types.
func (t DebtType) Valid() bool {
	for _, known := range DebtTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Debt is a single debt as supplied by the storage layer.
//
// The engine does not enforce CurrentBalance <= TotalAmount or
// MonthlyPayment >= MinimumPayment, that is the job of whoever
// creates the debt.
type Debt struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           DebtType  `json:"type"`
	TotalAmount    float64   `json:"totalAmount"`    // Original principal
	CurrentBalance float64   `json:"currentBalance"` // Outstanding principal
	InterestRate   float64   `json:"interestRate"`   // Nominal annual rate in percent, 15.5 means 15.5 %
	MinimumPayment float64   `json:"minimumPayment"`
	MonthlyPayment float64   `json:"monthlyPayment"` // What the user actually pays every month
	CreatedAt      time.Time `json:"createdAt"`
	Notes          string    `json:"notes,omitempty"`
}

// monthlyRate is the periodic rate for one month.
func (d Debt) monthlyRate() float64 {
	return monthlyRate(d.InterestRate)
}

// DebtWithPlan is a debt with the figures a strategy computed for it.
type DebtWithPlan struct {
	Debt
	PayoffMonth       int     `json:"payoffMonth"`       // Months until the balance is zero, or Unpayable
	TotalInterestPaid float64 `json:"totalInterestPaid"` // Interest over the lifetime of the debt
	Order             int     `json:"order"`             // 1-based priority in the strategy
}
