package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

var corsOptions = cors.Options{
	AllowedOrigins:   []string{"*"},
	AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
	AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
	AllowCredentials: false,
	MaxAge:           300,
}

// CORSMiddleware lets the admin panel call the API from another origin.
// Preflight requests are answered here and never reach the handlers.
func CORSMiddleware() gin.HandlerFunc {
	c := cors.New(corsOptions)

	return func(ctx *gin.Context) {
		passed := false

		c.Handler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			passed = true
			ctx.Request = r
			ctx.Next()
		})).ServeHTTP(ctx.Writer, ctx.Request)

		if !passed {
			ctx.Abort()
		}
	}
}
