package controllers

import (
	"errors"
	"net/http"

	"github.com/Anubhavy999/engineering-resource-mgmt/logging"
	"github.com/Anubhavy999/engineering-resource-mgmt/utils"

	"github.com/gin-gonic/gin"
)

// fail maps a domain error onto the response. Unexpected errors are logged
// and surface as a generic 500; nothing is retried.
func fail(c *gin.Context, err error) {
	var apiErr *utils.APIError
	if errors.As(err, &apiErr) {
		c.JSON(utils.StatusFor(apiErr), gin.H{"message": apiErr.Message})
		return
	}

	logging.Logger.Errorf("unexpected error on %s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error."})
}
