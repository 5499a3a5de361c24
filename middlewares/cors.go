package middlewares

import "github.com/gin-gonic/gin"

// The exact header set every response must carry; clients depend on it
// being identical across handlers.
const (
	CORSAllowOrigin  = "*"
	CORSAllowHeaders = "authorization, x-client-info, apikey, content-type"
	CORSAllowMethods = "POST, OPTIONS"
)

// CORSMiddlewares stamps the fixed CORS header set onto every response.
// Preflight handling itself lives in the handlers, which answer OPTIONS
// with 200 before any body parsing.
func CORSMiddlewares() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", CORSAllowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", CORSAllowHeaders)
		c.Writer.Header().Set("Access-Control-Allow-Methods", CORSAllowMethods)

		c.Next()
	}
}
