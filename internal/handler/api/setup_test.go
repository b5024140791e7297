//go:build unit

package api_test

import (
	"net/http"

	"salon-queue/internal/domain/actor"
	"salon-queue/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

// fakeAuth stands in for the JWT middleware: any bearer token authenticates as act.
func fakeAuth(act actor.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, act)
		c.Next()
	}
}

// optionalFakeAuth sets act only when a token is present, like OptionalAuth.
func optionalFakeAuth(act actor.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			middleware.SetActor(c, act)
		}
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
	return gin.New()
}
