package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hmfarooq/storefront-api/apperr"
)

// Fail writes the envelope every handler uses for errors, with the status
// derived from the error's kind.
func Fail(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"success": false, "error": apperr.Message(err)})
}

// BadRequest writes a plain validation failure.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
}
