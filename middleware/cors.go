package middleware

import "github.com/gin-gonic/gin"

// CORSMiddleware allows basic cross-origin access, which keeps local
// testing and embedding the booking form elsewhere painless. Tighten to
// an allow-list if that ever matters.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
