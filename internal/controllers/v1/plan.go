package v1

import (
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pockets-budget/backend/internal/models"
	"github.com/pockets-budget/backend/internal/payoff"
	"github.com/rs/zerolog/log"
)

// payoffInputs reads the profile, its active debts and the plan parameters
// for a request. If it returns false, the error has already been written.
func payoffInputs(c *gin.Context, writeError func(int, error)) (models.Profile, []payoff.Debt, planParams, bool) {
	profile, ok := getProfile(c, writeError)
	if !ok {
		return models.Profile{}, nil, planParams{}, false
	}

	var query PlanQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		writeError(http.StatusBadRequest, err)
		return models.Profile{}, nil, planParams{}, false
	}

	params, err := query.parse(time.Now())
	if err != nil {
		writeError(http.StatusBadRequest, err)
		return models.Profile{}, nil, planParams{}, false
	}

	debts, err := models.ActiveDebts(models.DB, profile.ID)
	if err != nil {
		writeError(status(err), err)
		return models.Profile{}, nil, planParams{}, false
	}

	return profile, models.PayoffDebts(debts), params, true
}

// logCap logs strategies that were stopped at the simulation limit.
func logCap(c *gin.Context, profile models.Profile, s payoff.Strategy) {
	if s.Converged {
		return
	}

	log.Debug().
		Str("request-id", requestid.Get(c)).
		Str("profile", profile.ID.String()).
		Str("strategy", string(s.Type)).
		Int("months", s.MonthsToPayoff).
		Msg("Payoff simulation stopped at the month limit")
}

// @Summary		Get payoff plan
// @Description	Returns the payoff plan for all debts of the profile that are not archived
// @Tags			Payoff
// @Produce		json
// @Success		200				{object}	PlanResponse
// @Failure		400				{object}	PlanResponse
// @Failure		404				{object}	PlanResponse
// @Failure		500				{object}	PlanResponse
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			strategy		query		string	false	"avalanche, snowball or custom. Defaults to avalanche."
// @Param			extraPayment	query		string	false	"Paid every month on top of the monthly payments. Defaults to 0."
// @Param			order			query		string	false	"Comma separated debt IDs for the custom strategy. Defaults to the priority of the debts."
// @Param			perDebt			query		string	false	"isolated or simulated. Defaults to isolated."
// @Param			month			query		string	false	"Month of the first payment in YYYY-MM format. Defaults to the current month."
// @Router			/v1/profiles/{id}/plan [get]
func GetPlan(c *gin.Context) {
	writeError := func(code int, err error) {
		s := err.Error()
		c.JSON(code, PlanResponse{
			Error: &s,
		})
	}

	profile, debts, params, ok := payoffInputs(c, writeError)
	if !ok {
		return
	}

	base := c.GetString(string(models.DBContextURL))
	cached(c, "plan", []any{base, profile.ID, profile.Currency, debts, params}, func() (int, PlanResponse) {
		strategy, err := payoff.Calculate(params.Strategy, debts, params.order(debts), params.ExtraPayment.InexactFloat64(), params.options())
		if err != nil {
			s := err.Error()
			return status(err), PlanResponse{Error: &s}
		}

		observePlan(strategy)
		logCap(c, profile, strategy)

		data := newPlan(c, profile, params, strategy)
		return http.StatusOK, PlanResponse{Data: &data}
	})
}

// @Summary		Compare strategies
// @Description	Compares the avalanche and snowball strategies for all debts of the profile that are not archived
// @Tags			Payoff
// @Produce		json
// @Success		200				{object}	ComparisonResponse
// @Failure		400				{object}	ComparisonResponse
// @Failure		404				{object}	ComparisonResponse
// @Failure		500				{object}	ComparisonResponse
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			extraPayment	query		string	false	"Paid every month on top of the monthly payments. Defaults to 0."
// @Param			perDebt			query		string	false	"isolated or simulated. Defaults to isolated."
// @Param			month			query		string	false	"Month of the first payment in YYYY-MM format. Defaults to the current month."
// @Router			/v1/profiles/{id}/comparison [get]
func GetComparison(c *gin.Context) {
	writeError := func(code int, err error) {
		s := err.Error()
		c.JSON(code, ComparisonResponse{
			Error: &s,
		})
	}

	profile, debts, params, ok := payoffInputs(c, writeError)
	if !ok {
		return
	}

	// The strategy and order parameters do not apply here
	params.Strategy = ""
	params.Order = nil

	base := c.GetString(string(models.DBContextURL))
	cached(c, "comparison", []any{base, profile.ID, profile.Currency, debts, params}, func() (int, ComparisonResponse) {
		comparison := payoff.CompareWith(debts, params.ExtraPayment.InexactFloat64(), params.options())

		avalancheParams := params
		avalancheParams.Strategy = payoff.TypeAvalanche
		snowballParams := params
		snowballParams.Strategy = payoff.TypeSnowball

		for _, s := range []payoff.Strategy{comparison.Avalanche, comparison.Snowball} {
			observePlan(s)
			logCap(c, profile, s)
		}

		return http.StatusOK, ComparisonResponse{
			Data: &Comparison{
				Avalanche:   newPlan(c, profile, avalancheParams, comparison.Avalanche),
				Snowball:    newPlan(c, profile, snowballParams, comparison.Snowball),
				Savings:     money(comparison.Savings),
				MonthsSaved: comparison.MonthsSaved,
				Recommended: comparison.Recommended(),
			},
		}
	})
}

// @Summary		Get payoff schedule
// @Description	Returns the month by month payments for all debts of the profile that are not archived
// @Tags			Payoff
// @Produce		json
// @Success		200				{object}	ScheduleResponse
// @Failure		400				{object}	ScheduleResponse
// @Failure		404				{object}	ScheduleResponse
// @Failure		500				{object}	ScheduleResponse
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			strategy		query		string	false	"avalanche, snowball or custom. Defaults to avalanche."
// @Param			extraPayment	query		string	false	"Paid every month on top of the monthly payments. Defaults to 0."
// @Param			order			query		string	false	"Comma separated debt IDs for the custom strategy. Defaults to the priority of the debts."
// @Param			month			query		string	false	"Month of the first payment in YYYY-MM format. Defaults to the current month."
// @Router			/v1/profiles/{id}/schedule [get]
func GetSchedule(c *gin.Context) {
	writeError := func(code int, err error) {
		s := err.Error()
		c.JSON(code, ScheduleResponse{
			Error: &s,
		})
	}

	profile, debts, params, ok := payoffInputs(c, writeError)
	if !ok {
		return
	}

	// Per debt figures are not part of a schedule
	params.PerDebt = ""

	base := c.GetString(string(models.DBContextURL))
	cached(c, "schedule", []any{base, profile.ID, debts, params}, func() (int, ScheduleResponse) {
		ordered, err := payoff.Order(params.Strategy, debts, params.order(debts))
		if err != nil {
			s := err.Error()
			return status(err), ScheduleResponse{Error: &s}
		}

		sim := payoff.Simulate(ordered, params.ExtraPayment.InexactFloat64())
		if !sim.Converged {
			log.Debug().
				Str("request-id", requestid.Get(c)).
				Str("profile", profile.ID.String()).
				Str("strategy", string(params.Strategy)).
				Msg("Payoff schedule stopped at the month limit")
		}

		data := newSchedule(params, sim)
		return http.StatusOK, ScheduleResponse{Data: &data}
	})
}

// @Summary		Get restructuring advice
// @Description	Returns suggestions for consolidating and refinancing the debts of the profile that are not archived
// @Tags			Payoff
// @Produce		json
// @Success		200	{object}	AdviceResponse
// @Failure		400	{object}	AdviceResponse
// @Failure		404	{object}	AdviceResponse
// @Failure		500	{object}	AdviceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id}/advice [get]
func GetAdvice(c *gin.Context) {
	writeError := func(code int, err error) {
		s := err.Error()
		c.JSON(code, AdviceResponse{
			Error: &s,
		})
	}

	profile, ok := getProfile(c, writeError)
	if !ok {
		return
	}

	stored, err := models.ActiveDebts(models.DB, profile.ID)
	if err != nil {
		writeError(status(err), err)
		return
	}
	debts := models.PayoffDebts(stored)

	cached(c, "advice", []any{profile.ID, profile.MonthlyIncome, debts, AdviceRules}, func() (int, AdviceResponse) {
		advice := AdviceRules.Advise(debts, profile.MonthlyIncome.InexactFloat64())

		data := newAdvice(profile, advice)
		return http.StatusOK, AdviceResponse{Data: &data}
	})
}
