package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/student-roster/pkg/errors"
	"github.com/noah-isme/student-roster/pkg/response"
)

// intParam parses a path parameter as an int and writes a 400 when it is not one.
func intParam(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		appErr := appErrors.WithField(appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, name+" must be an integer"), name)
		response.Error(c, appErr)
		return 0, false
	}
	return value, true
}
