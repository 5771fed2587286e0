package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/tutor-contacts/internal/httperr"
)

// pathID reads a positive numeric path parameter, writing a 400 when it
// is missing or malformed.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_"+name, "The "+name+" must be a positive number")
		return 0, false
	}
	return uint(id), true
}
