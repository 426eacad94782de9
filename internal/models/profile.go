package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// DefaultCurrency is used for profiles that do not specify one.
const DefaultCurrency = "EUR"

// Profile is the person whose debts are planned. Its income is used for
// the debt-to-income ratio.
type Profile struct {
	DefaultModel
	Name          string          `gorm:"uniqueIndex:profile_name"`
	Note          string
	MonthlyIncome decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency      string
}

var (
	ErrProfileNameNotUnique    = errors.New("the profile name must be unique")
	ErrProfileIncomeNegative   = errors.New("the monthly income must not be negative")
	ErrProfileCurrencyNotValid = errors.New("the currency must be an ISO 4217 currency code")
)

func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))

	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}

	return nil
}

func (p *Profile) AfterSave(_ *gorm.DB) error {
	if p.MonthlyIncome.IsNegative() {
		return ErrProfileIncomeNegative
	}

	if _, err := currency.ParseISO(p.Currency); err != nil {
		return fmt.Errorf("%w, %q is not", ErrProfileCurrencyNotValid, p.Currency)
	}

	return nil
}

// BeforeDelete deletes all debts of the profile.
func (p *Profile) BeforeDelete(tx *gorm.DB) error {
	return tx.Where("profile_id = ?", p.ID).Delete(&Debt{}).Error
}

// CurrencySymbol returns the symbol for the currency of the profile, e.g.
// "€" for EUR. Unknown currencies return the stored code.
func (p Profile) CurrencySymbol() string {
	unit, err := currency.ParseISO(p.Currency)
	if err != nil {
		return p.Currency
	}

	return fmt.Sprintf("%s", currency.Symbol(unit))
}
