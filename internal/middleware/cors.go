package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSAllowedHeaders are the request headers browsers may send cross-origin.
var CORSAllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

// CORS allows any origin to call the API. Preflight requests are answered with
// 204 and an empty body.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:    CORSAllowedHeaders,
		MaxAge:          24 * time.Hour,
	})
}
