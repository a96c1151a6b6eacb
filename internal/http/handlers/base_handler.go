// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridequote/internal/modules/quote"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// writeQuoteError maps quote errors to HTTP statuses. Validation failures
// are the caller's fault; everything else (provider, config, transport) is
// a 500 with the descriptive message intact.
func writeQuoteError(c *gin.Context, err error) {
	var ve *quote.ValidationError
	if errors.As(err, &ve) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, err.Error())
}
