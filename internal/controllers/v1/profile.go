package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pockets-budget/backend/internal/httputil"
	"github.com/pockets-budget/backend/internal/models"
)

// RegisterProfileRoutes registers the routes for profiles with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProfileList)
		r.GET("", GetProfiles)
		r.POST("", CreateProfiles)
	}

	// Profile with ID
	{
		r.OPTIONS("/:id", OptionsProfileDetail)
		r.GET("/:id", GetProfile)
		r.PATCH("/:id", UpdateProfile)
		r.DELETE("/:id", DeleteProfile)
	}

	// Payoff planning for the profile
	{
		r.OPTIONS("/:id/plan", OptionsProfilePayoff)
		r.GET("/:id/plan", GetPlan)
		r.OPTIONS("/:id/comparison", OptionsProfilePayoff)
		r.GET("/:id/comparison", GetComparison)
		r.OPTIONS("/:id/schedule", OptionsProfilePayoff)
		r.GET("/:id/schedule", GetSchedule)
		r.OPTIONS("/:id/advice", OptionsProfilePayoff)
		r.GET("/:id/advice", GetAdvice)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Router			/v1/profiles [options]
func OptionsProfileList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profiles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [options]
func OptionsProfileDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Profile{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payoff
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id}/plan [options]
// @Router			/v1/profiles/{id}/comparison [options]
// @Router			/v1/profiles/{id}/schedule [options]
// @Router			/v1/profiles/{id}/advice [options]
func OptionsProfilePayoff(c *gin.Context) {
	resourceOptionsDetail(c, models.Profile{}, httputil.OptionsGet)
}

// @Summary		Create profiles
// @Description	Creates new profiles
// @Tags			Profiles
// @Produce		json
// @Success		201			{object}	ProfileCreateResponse
// @Failure		400			{object}	ProfileCreateResponse
// @Failure		500			{object}	ProfileCreateResponse
// @Param			profiles	body		[]ProfileEditable	true	"Profiles"
// @Router			/v1/profiles [post]
func CreateProfiles(c *gin.Context) {
	var editables []ProfileEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ProfileCreateResponse{}

	for _, editable := range editables {
		profile := editable.model()

		err = models.DB.Create(&profile).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newProfile(c, profile)
		r.Data = append(r.Data, ProfileResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get profiles
// @Description	Returns a list of profiles
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileListResponse
// @Failure		400	{object}	ProfileListResponse
// @Failure		500	{object}	ProfileListResponse
// @Router			/v1/profiles [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			note		query	string	false	"Filter by note"
// @Param			currency	query	string	false	"Filter by currency code"
// @Param			search		query	string	false	"Search for this text in name and note"
// @Param			offset		query	uint	false	"The offset of the first Profile returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Profiles to return. Defaults to 50."
func GetProfiles(c *gin.Context) {
	var filter ProfileQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := models.DB.
		Order("name ASC").
		Where(&where, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Name, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	limit := listLimit(setFields, filter.Limit)
	q = q.Limit(limit)

	var profiles []models.Profile
	err := q.Find(&profiles).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Profile, 0)
	for _, profile := range profiles {
		data = append(data, newProfile(c, profile))
	}

	c.JSON(http.StatusOK, ProfileListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// getProfile binds the ID from the URI and reads the profile. When it
// returns an error, it has already been written to the response.
func getProfile(c *gin.Context, writeError func(status int, err error)) (models.Profile, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		writeError(status(err), err)
		return models.Profile{}, false
	}

	var profile models.Profile
	err = models.DB.First(&profile, uri.ID).Error
	if err != nil {
		writeError(status(err), err)
		return models.Profile{}, false
	}

	return profile, true
}

func profileError(c *gin.Context) func(int, error) {
	return func(code int, err error) {
		s := err.Error()
		c.JSON(code, ProfileResponse{
			Error: &s,
		})
	}
}

// @Summary		Get profile
// @Description	Returns a specific profile
// @Tags			Profiles
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		400	{object}	ProfileResponse
// @Failure		404	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [get]
func GetProfile(c *gin.Context) {
	profile, ok := getProfile(c, profileError(c))
	if !ok {
		return
	}

	data := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Update an existing profile. Only values to be updated need to be specified.
// @Tags			Profiles
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		404		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profiles/{id} [patch]
func UpdateProfile(c *gin.Context) {
	profile, ok := getProfile(c, profileError(c))
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	var data ProfileEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&profile).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &s,
		})
		return
	}

	r := newProfile(c, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &r})
}

// @Summary		Delete profile
// @Description	Deletes a profile and all of its debts
// @Tags			Profiles
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/profiles/{id} [delete]
func DeleteProfile(c *gin.Context) {
	profile, ok := getProfile(c, func(code int, err error) {
		c.JSON(code, httpError{
			Error: err.Error(),
		})
	})
	if !ok {
		return
	}

	err := models.DB.Delete(&profile).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
