package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/http/dto"
)

// noRoute answers unknown paths with the standard error envelope.
func noRoute(c *gin.Context) {
	dto.RespondWithCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
}

// noMethod answers known paths requested with an unsupported method.
func noMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(
		dto.ErrorCodeBadRequest,
		"method "+c.Request.Method+" is not allowed on "+c.Request.URL.Path,
	).WithTraceID(dto.GetTraceID(c)))
}
