package handlers

import (
	"log"
	"net/http"
	"strconv"

	"databridge-api/internal/apperr"
	"databridge-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// fail writes the caller-visible message for taxonomy errors. Anything else
// is logged with the request id and reported as 500 with fallback as the
// only text the caller sees.
func fail(c *gin.Context, err error, fallback string) {
	if e, ok := apperr.As(err); ok && e.Kind != apperr.Internal {
		c.JSON(e.Kind.Status(), gin.H{"message": e.Message})
		return
	}
	log.Printf("[%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// idParam parses :id; ok is false after a 400 has been written.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
