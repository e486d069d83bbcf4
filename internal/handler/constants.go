package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"curateurs-backoffice/internal/domain"
)

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

const msgInvalidBody = "invalid request body"

// respond writes an envelope result with its own status.
func respond(c *gin.Context, r domain.Result) {
	c.JSON(r.Status, r)
}

// respondError maps a read error to an envelope carrying its message.
func respondError(c *gin.Context, err error) {
	status := domain.StatusFor(err)
	c.JSON(status, domain.Fail(status, err.Error()))
}
