package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pockets-budget/backend/internal/models"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS
// request for a specific resource. allow writes the allow header for the
// resource once it has been found.
func resourceOptionsDetail[R models.Profile | models.Debt](c *gin.Context, resource R, allow gin.HandlerFunc) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	allow(c)
}
