package v1

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pockets-budget/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ProfileEditable represents all user configurable parameters
type ProfileEditable struct {
	Name          string          `json:"name" example:"Household" default:""`                 // Name of the profile
	Note          string          `json:"note" example:"Debts we share" default:""`            // A longer description of the profile
	MonthlyIncome decimal.Decimal `json:"monthlyIncome" example:"3250" default:"0"`            // Monthly net income, used for the debt-to-income ratio
	Currency      string          `json:"currency" example:"EUR" default:"EUR" maxLength:"3"` // ISO 4217 code of the currency of all debts of the profile
}

func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		Name:          editable.Name,
		Note:          editable.Note,
		MonthlyIncome: editable.MonthlyIncome,
		Currency:      strings.ToUpper(strings.TrimSpace(editable.Currency)),
	}
}

type ProfileLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf"`            // The profile itself
	Debts      string `json:"debts" example:"https://example.com/api/v1/debts?profile=550dc009-cea6-4c12-b2a5-03446eb7b7cf"`      // Debts of this profile
	Plan       string `json:"plan" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/plan"`       // Payoff plan
	Comparison string `json:"comparison" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/comparison"` // Comparison of avalanche and snowball
	Schedule   string `json:"schedule" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/schedule"`   // Month by month payment schedule
	Advice     string `json:"advice" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf/advice"`       // Restructuring advice
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	Links ProfileLinks `json:"links"`

	// These fields are computed
	CurrencySymbol string `json:"currencySymbol" example:"€"` // Symbol of the currency
}

func newProfile(c *gin.Context, model models.Profile) Profile {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/profiles/%s", url, model.ID)

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			Name:          model.Name,
			Note:          model.Note,
			MonthlyIncome: model.MonthlyIncome,
			Currency:      model.Currency,
		},
		CurrencySymbol: model.CurrencySymbol(),
		Links: ProfileLinks{
			Self:       self,
			Debts:      fmt.Sprintf("%s/v1/debts?profile=%s", url, model.ID),
			Plan:       self + "/plan",
			Comparison: self + "/comparison",
			Schedule:   self + "/schedule",
			Advice:     self + "/advice",
		},
	}
}

type ProfileListResponse struct {
	Data       []Profile   `json:"data"`                                                          // List of profiles
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProfileCreateResponse struct {
	Data  []ProfileResponse `json:"data"`                                                          // List of the created profiles or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *ProfileCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProfileResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`                                                          // Data for the profile
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProfileQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Currency string `form:"currency"`                   // By currency code
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first profile returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of profiles to return. Defaults to 50.
}

func (f ProfileQueryFilter) model() models.Profile {
	return models.Profile{
		Currency: strings.ToUpper(f.Currency),
	}
}
