package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pockets-budget/backend/internal/httputil"
	"github.com/pockets-budget/backend/internal/models"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"the database is not reachable"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httpError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}

	if err != nil {
		log.Error().Err(err).Msg("Health check failed")
		c.JSON(http.StatusInternalServerError, httpError{
			Error: models.ErrGeneral.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
