package models_test

import (
	"strings"
	"testing"

	"github.com/pockets-budget/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestProfileTrimWhitespace() {
	name := "\t Ilze  "
	note := "  Saving for a flat "

	profile := suite.createTestProfile(models.Profile{
		Name:     name,
		Note:     note,
		Currency: " usd",
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), profile.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), profile.Note)
	assert.Equal(suite.T(), "USD", profile.Currency)
}

func (suite *TestSuiteStandard) TestProfileDefaultCurrency() {
	profile := suite.createTestProfile(models.Profile{})
	assert.Equal(suite.T(), models.DefaultCurrency, profile.Currency)
	assert.Equal(suite.T(), "€", profile.CurrencySymbol())
}

func (suite *TestSuiteStandard) TestProfileAfterSave() {
	tests := []struct {
		name     string
		income   decimal.Decimal
		currency string
		err      error
	}{
		{"Valid", decimal.NewFromFloat(2150.5), "EUR", nil},
		{"No income", decimal.Zero, "GBP", nil},
		{"Negative income", decimal.NewFromFloat(-1), "EUR", models.ErrProfileIncomeNegative},
		{"Unknown currency", decimal.NewFromFloat(1000), "XYZ", models.ErrProfileCurrencyNotValid},
		{"Not a code", decimal.NewFromFloat(1000), "€", models.ErrProfileCurrencyNotValid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			p := models.Profile{
				MonthlyIncome: tt.income,
				Currency:      tt.currency,
			}

			err := p.AfterSave(&gorm.DB{})
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestProfileNameNotUnique() {
	_ = suite.createTestProfile(models.Profile{Name: "Jānis"})

	err := models.DB.Create(&models.Profile{Name: "Jānis"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrProfileNameNotUnique)
}

func (suite *TestSuiteStandard) TestProfileDeleteDeletesDebts() {
	profile := suite.createTestProfile(models.Profile{})
	other := suite.createTestProfile(models.Profile{})

	_ = suite.createTestDebt(testDebt(profile.ID, "Card"))
	_ = suite.createTestDebt(testDebt(profile.ID, "Car"))
	kept := suite.createTestDebt(testDebt(other.ID, "Card"))

	suite.Require().Nil(models.DB.Delete(&profile).Error)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Debt{}).Where("profile_id = ?", profile.ID).Count(&count).Error)
	assert.Zero(suite.T(), count)

	suite.Require().Nil(models.DB.First(&models.Debt{}, kept.ID).Error)
}

func (suite *TestSuiteStandard) TestProfileCurrencySymbol() {
	assert.Equal(suite.T(), "€", models.Profile{Currency: "EUR"}.CurrencySymbol())
	assert.Equal(suite.T(), "not-a-currency", models.Profile{Currency: "not-a-currency"}.CurrencySymbol())
}
