package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pockets-budget/backend/internal/httputil"
	"github.com/pockets-budget/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// RegisterDebtRoutes registers the routes for debts with
// the RouterGroup that is passed.
func RegisterDebtRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDebtList)
		r.GET("", GetDebts)
		r.POST("", CreateDebts)
	}

	// Debt with ID
	{
		r.OPTIONS("/:id", OptionsDebtDetail)
		r.GET("/:id", GetDebt)
		r.PATCH("/:id", UpdateDebt)
		r.DELETE("/:id", DeleteDebt)
	}

	// Payments for a debt
	{
		r.OPTIONS("/:id/payments", OptionsDebtPayments)
		r.POST("/:id/payments", CreateDebtPayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Router			/v1/debts [options]
func OptionsDebtList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [options]
func OptionsDebtDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Debt{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id}/payments [options]
func OptionsDebtPayments(c *gin.Context) {
	resourceOptionsDetail(c, models.Debt{}, httputil.OptionsPost)
}

// @Summary		Create debts
// @Description	Creates new debts
// @Tags			Debts
// @Produce		json
// @Success		201		{object}	DebtCreateResponse
// @Failure		400		{object}	DebtCreateResponse
// @Failure		404		{object}	DebtCreateResponse
// @Failure		500		{object}	DebtCreateResponse
// @Param			debts	body		[]DebtEditable	true	"Debts"
// @Router			/v1/debts [post]
func CreateDebts(c *gin.Context) {
	var editables []DebtEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DebtCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DebtCreateResponse{}

	for _, editable := range editables {
		debt := editable.model()

		err = models.DB.Create(&debt).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDebt(c, debt)
		r.Data = append(r.Data, DebtResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get debts
// @Description	Returns a list of debts, ordered by priority and name
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtListResponse
// @Failure		400	{object}	DebtListResponse
// @Failure		500	{object}	DebtListResponse
// @Router			/v1/debts [get]
// @Param			profile		query	string	false	"Filter by profile ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			type		query	string	false	"Filter by type"
// @Param			archived	query	bool	false	"Is the debt archived?"
// @Param			match		query	string	false	"Filter by a glob pattern on the name, e.g. '*card*'"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Debt returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Debts to return. Defaults to 50."
func GetDebts(c *gin.Context) {
	var filter DebtQueryFilter
	if err := c.ShouldBind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DebtListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("priority ASC, name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)
	limit := listLimit(setFields, filter.Limit)

	var debts []models.Debt
	var count int64

	// Glob patterns cannot be expressed in SQL portably, these
	// are matched on all debts and paginated afterwards
	if filter.Match != "" {
		var all []models.Debt
		err := q.Find(&all).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), DebtListResponse{
				Error: &s,
			})
			return
		}

		matching := make([]models.Debt, 0, len(all))
		for _, debt := range all {
			if glob.Glob(filter.Match, debt.Name) {
				matching = append(matching, debt)
			}
		}

		count = int64(len(matching))
		debts = page(matching, filter.Offset, limit)
	} else {
		q = q.Offset(int(filter.Offset)).Limit(limit)

		err := q.Find(&debts).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), DebtListResponse{
				Error: &s,
			})
			return
		}

		err = q.Limit(-1).Offset(-1).Count(&count).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), DebtListResponse{
				Error: &e,
			})
			return
		}
	}

	data := make([]Debt, 0)
	for _, debt := range debts {
		data = append(data, newDebt(c, debt))
	}

	c.JSON(http.StatusOK, DebtListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// getDebt binds the ID from the URI and reads the debt. When it fails,
// the error has already been written with writeError.
func getDebt(c *gin.Context, writeError func(status int, err error)) (models.Debt, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		writeError(status(err), err)
		return models.Debt{}, false
	}

	var debt models.Debt
	err = models.DB.First(&debt, uri.ID).Error
	if err != nil {
		writeError(status(err), err)
		return models.Debt{}, false
	}

	return debt, true
}

func debtError(c *gin.Context) func(int, error) {
	return func(code int, err error) {
		s := err.Error()
		c.JSON(code, DebtResponse{
			Error: &s,
		})
	}
}

// @Summary		Get debt
// @Description	Returns a specific debt
// @Tags			Debts
// @Produce		json
// @Success		200	{object}	DebtResponse
// @Failure		400	{object}	DebtResponse
// @Failure		404	{object}	DebtResponse
// @Failure		500	{object}	DebtResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [get]
func GetDebt(c *gin.Context) {
	debt, ok := getDebt(c, debtError(c))
	if !ok {
		return
	}

	data := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &data})
}

// @Summary		Update debt
// @Description	Update an existing debt. Only values to be updated need to be specified.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			debt	body		DebtEditable	true	"Debt"
// @Router			/v1/debts/{id} [patch]
func UpdateDebt(c *gin.Context) {
	debt, ok := getDebt(c, debtError(c))
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, DebtEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	var data DebtEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&debt).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	r := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &r})
}

// @Summary		Make payment
// @Description	Records a one-off payment on a debt. The amount is subtracted from the current balance, which never goes below zero.
// @Tags			Debts
// @Accept			json
// @Produce		json
// @Success		200		{object}	DebtResponse
// @Failure		400		{object}	DebtResponse
// @Failure		404		{object}	DebtResponse
// @Failure		500		{object}	DebtResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		DebtPayment	true	"Payment"
// @Router			/v1/debts/{id}/payments [post]
func CreateDebtPayment(c *gin.Context) {
	debt, ok := getDebt(c, debtError(c))
	if !ok {
		return
	}

	var payment DebtPayment
	err := httputil.BindData(c, &payment)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}

	if !payment.Amount.IsPositive() {
		s := errPaymentAmountNotPositive.Error()
		c.JSON(http.StatusBadRequest, DebtResponse{
			Error: &s,
		})
		return
	}

	// Overpayments settle the debt
	balance := decimal.Max(debt.CurrentBalance.Sub(payment.Amount), decimal.Zero)

	err = models.DB.Model(&debt).Select("CurrentBalance").Updates(models.Debt{CurrentBalance: balance}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DebtResponse{
			Error: &s,
		})
		return
	}
	debt.CurrentBalance = balance

	r := newDebt(c, debt)
	c.JSON(http.StatusOK, DebtResponse{Data: &r})
}

// @Summary		Delete debt
// @Description	Deletes a debt
// @Tags			Debts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/debts/{id} [delete]
func DeleteDebt(c *gin.Context) {
	debt, ok := getDebt(c, func(code int, err error) {
		c.JSON(code, httpError{
			Error: err.Error(),
		})
	})
	if !ok {
		return
	}

	err := models.DB.Delete(&debt).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
