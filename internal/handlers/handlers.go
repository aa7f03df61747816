package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID reads the numeric :id path parameter.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// setTotalCount exposes the collection size to API clients.
func setTotalCount(c *gin.Context, count int) {
	c.Header("X-Total-Count", strconv.Itoa(count))
}
