package handlers

import (
	"net/http"
	"parley/internal/utils"

	"github.com/gin-gonic/gin"
)

// jsonError writes the uniform error body used by every endpoint.
func jsonError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// actingAuthor reads the author_id query parameter. There is no session
// layer; the caller-supplied identity is trusted as-is. Writes the 422
// response itself when the parameter is missing or malformed.
func actingAuthor(c *gin.Context) (uint, bool) {
	id, ok := utils.ParseID(c.Query("author_id"))
	if !ok {
		jsonError(c, http.StatusUnprocessableEntity, "author_id is required")
		return 0, false
	}
	return id, true
}

// pathID reads a numeric :id route parameter.
func pathID(c *gin.Context, what string) (uint, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		jsonError(c, http.StatusUnprocessableEntity, "invalid "+what+" id")
		return 0, false
	}
	return id, true
}
