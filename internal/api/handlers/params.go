package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// intQuery reads an optional integer query parameter. A missing or empty
// parameter yields zero; a non-numeric value is an error.
func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
