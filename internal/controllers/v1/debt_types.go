package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pockets-budget/backend/internal/models"
	"github.com/pockets-budget/backend/internal/payoff"
	ez_uuid "github.com/pockets-budget/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// DebtEditable represents all user configurable parameters
type DebtEditable struct {
	ProfileID      uuid.UUID       `json:"profileId" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`                                                       // ID of the profile the debt belongs to
	Name           string          `json:"name" example:"Credit card" default:""`                                                                          // Name of the debt, unique per profile
	Note           string          `json:"note" example:"The one with the cashback" default:""`                                                            // A longer description of the debt
	Type           payoff.DebtType `json:"type" example:"credit_card" default:"other" enums:"credit_card,personal_loan,mortgage,car_loan,student_loan,other"` // Kind of the debt
	TotalAmount    decimal.Decimal `json:"totalAmount" example:"3000"`                                                                                     // The original principal
	CurrentBalance decimal.Decimal `json:"currentBalance" example:"2450.17"`                                                                               // The principal still owed
	InterestRate   decimal.Decimal `json:"interestRate" example:"19.9"`                                                                                    // Nominal annual interest rate in percent
	MinimumPayment decimal.Decimal `json:"minimumPayment" example:"60"`                                                                                    // Minimum monthly payment required by the lender
	MonthlyPayment decimal.Decimal `json:"monthlyPayment" example:"120"`                                                                                   // What is actually paid every month
	Priority       uint            `json:"priority" example:"1" default:"0"`                                                                               // Position in the custom payoff order, lowest first
	Archived       bool            `json:"archived" example:"false" default:"false"`                                                                       // Archived debts are not part of payoff plans
}

func (editable DebtEditable) model() models.Debt {
	return models.Debt{
		ProfileID:      editable.ProfileID,
		Name:           editable.Name,
		Note:           editable.Note,
		Type:           editable.Type,
		TotalAmount:    editable.TotalAmount,
		CurrentBalance: editable.CurrentBalance,
		InterestRate:   editable.InterestRate,
		MinimumPayment: editable.MinimumPayment,
		MonthlyPayment: editable.MonthlyPayment,
		Priority:       editable.Priority,
		Archived:       editable.Archived,
	}
}

type DebtLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/debts/2b5d3f37-e8b5-4b2a-9d63-ac0e5b7c3a26"`       // The debt itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profiles/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The profile the debt belongs to
}

type Debt struct {
	models.DefaultModel
	DebtEditable
	Links DebtLinks `json:"links"`

	// These fields are computed for the debt on its own, without
	// any extra payments
	PayoffMonths  int             `json:"payoffMonths" example:"24"`      // Months until the debt is paid off, -1 if the monthly payment does not cover the interest
	TotalInterest decimal.Decimal `json:"totalInterest" example:"427.31"` // Interest paid until the debt is paid off
}

func newDebt(c *gin.Context, model models.Debt) Debt {
	url := c.GetString(string(models.DBContextURL))
	d := model.Payoff()

	return Debt{
		DefaultModel: model.DefaultModel,
		DebtEditable: DebtEditable{
			ProfileID:      model.ProfileID,
			Name:           model.Name,
			Note:           model.Note,
			Type:           model.Type,
			TotalAmount:    model.TotalAmount,
			CurrentBalance: model.CurrentBalance,
			InterestRate:   model.InterestRate,
			MinimumPayment: model.MinimumPayment,
			MonthlyPayment: model.MonthlyPayment,
			Priority:       model.Priority,
			Archived:       model.Archived,
		},
		Links: DebtLinks{
			Self:    fmt.Sprintf("%s/v1/debts/%s", url, model.ID),
			Profile: fmt.Sprintf("%s/v1/profiles/%s", url, model.ProfileID),
		},
		PayoffMonths:  payoff.PayoffMonths(d.CurrentBalance, d.MonthlyPayment, d.InterestRate),
		TotalInterest: money(payoff.TotalInterest(d.CurrentBalance, d.MonthlyPayment, d.InterestRate)),
	}
}

type DebtListResponse struct {
	Data       []Debt      `json:"data"`                                                          // List of debts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DebtCreateResponse struct {
	Data  []DebtResponse `json:"data"`                                                          // List of the created debts or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (d *DebtCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DebtResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DebtResponse struct {
	Data  *Debt   `json:"data"`                                                          // Data for the debt
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// DebtPayment is a one-off payment on a debt
type DebtPayment struct {
	Amount decimal.Decimal `json:"amount" example:"150"` // The amount paid, must be larger than zero
}

type DebtQueryFilter struct {
	ProfileID ez_uuid.UUID    `form:"profile"`                    // By ID of the profile
	Name      string          `form:"name" filterField:"false"`   // By name
	Note      string          `form:"note" filterField:"false"`   // By note
	Type      payoff.DebtType `form:"type"`                       // By type
	Archived  bool            `form:"archived"`                   // Is the debt archived?
	Match     string          `form:"match" filterField:"false"`  // By glob pattern on the name, e.g. "*card*"
	Search    string          `form:"search" filterField:"false"` // By string in name or note
	Offset    uint            `form:"offset" filterField:"false"` // The offset of the first debt returned. Defaults to 0.
	Limit     int             `form:"limit" filterField:"false"`  // Maximum number of debts to return. Defaults to 50.
}

func (f DebtQueryFilter) model() models.Debt {
	return models.Debt{
		ProfileID: f.ProfileID.UUID,
		Type:      f.Type,
		Archived:  f.Archived,
	}
}
