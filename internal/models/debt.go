package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pockets-budget/backend/internal/payoff"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Debt is a debt of a profile.
type Debt struct {
	DefaultModel
	Profile        Profile         `json:"-"`
	ProfileID      uuid.UUID       `gorm:"uniqueIndex:debt_name_profile"`
	Name           string          `gorm:"uniqueIndex:debt_name_profile"`
	Note           string
	Type           payoff.DebtType
	TotalAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The original principal
	CurrentBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InterestRate   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Annual rate in percent
	MinimumPayment decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	MonthlyPayment decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Priority       uint            // Position in the custom payoff order, lowest first
	Archived       bool
}

var (
	ErrDebtNameNotUnique              = errors.New("the debt name must be unique for the profile")
	ErrDebtTypeNotValid               = errors.New("the debt type is not valid")
	ErrDebtTotalAmountNotPositive     = errors.New("the total amount must be larger than zero")
	ErrDebtBalanceNegative            = errors.New("the current balance must not be negative")
	ErrDebtBalanceAboveTotal          = errors.New("the current balance must not be larger than the total amount")
	ErrDebtInterestRateNegative       = errors.New("the interest rate must not be negative")
	ErrDebtMinimumPaymentNotPositive  = errors.New("the minimum payment must be larger than zero")
	ErrDebtMonthlyPaymentBelowMinimum = errors.New("the monthly payment must not be lower than the minimum payment")
)

func (d *Debt) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	return d.checkIntegrity(tx, d.ProfileID)
}

func (d *Debt) BeforeUpdate(tx *gorm.DB) error {
	if !tx.Statement.Changed("ProfileID") {
		return nil
	}

	switch toSave := tx.Statement.Dest.(type) {
	case Debt:
		return d.checkIntegrity(tx, toSave.ProfileID)
	case *Debt:
		return d.checkIntegrity(tx, toSave.ProfileID)
	}

	return nil
}

// checkIntegrity verifies that the profile exists.
func (d *Debt) checkIntegrity(tx *gorm.DB, profileID uuid.UUID) error {
	return tx.First(&Profile{}, profileID).Error
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Note = strings.TrimSpace(d.Note)

	if d.Type == "" {
		d.Type = payoff.Other
	}

	return nil
}

func (d *Debt) AfterSave(_ *gorm.DB) error {
	if !d.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrDebtTypeNotValid, d.Type)
	}

	if !d.TotalAmount.IsPositive() {
		return ErrDebtTotalAmountNotPositive
	}

	if d.CurrentBalance.IsNegative() {
		return ErrDebtBalanceNegative
	}

	if d.CurrentBalance.GreaterThan(d.TotalAmount) {
		return ErrDebtBalanceAboveTotal
	}

	if d.InterestRate.IsNegative() {
		return ErrDebtInterestRateNegative
	}

	if !d.MinimumPayment.IsPositive() {
		return ErrDebtMinimumPaymentNotPositive
	}

	if d.MonthlyPayment.LessThan(d.MinimumPayment) {
		return ErrDebtMonthlyPaymentBelowMinimum
	}

	return nil
}

// Payoff returns the debt in the representation of the payoff engine.
func (d Debt) Payoff() payoff.Debt {
	return payoff.Debt{
		ID:             d.ID.String(),
		Name:           d.Name,
		Type:           d.Type,
		TotalAmount:    d.TotalAmount.InexactFloat64(),
		CurrentBalance: d.CurrentBalance.InexactFloat64(),
		InterestRate:   d.InterestRate.InexactFloat64(),
		MinimumPayment: d.MinimumPayment.InexactFloat64(),
		MonthlyPayment: d.MonthlyPayment.InexactFloat64(),
		CreatedAt:      d.CreatedAt,
		Notes:          d.Note,
	}
}

// ActiveDebts returns all debts of a profile that are not archived, in
// priority order.
func ActiveDebts(db *gorm.DB, profileID uuid.UUID) ([]Debt, error) {
	var debts []Debt
	err := db.
		Where("profile_id = ? AND archived = ?", profileID, false).
		Order("priority ASC, name ASC").
		Find(&debts).Error
	if err != nil {
		return nil, fmt.Errorf("getting debts for profile %s failed: %w", profileID, err)
	}

	return debts, nil
}

// PayoffDebts converts debts to the representation of the payoff engine.
func PayoffDebts(debts []Debt) []payoff.Debt {
	out := make([]payoff.Debt, 0, len(debts))
	for _, d := range debts {
		out = append(out, d.Payoff())
	}
	return out
}
