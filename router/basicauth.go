package router

import (
	"crypto/subtle"
	"net/http"

	"yirestaurant/config"
	"yirestaurant/controllers"

	"github.com/gin-gonic/gin"
)

// BasicAuth guards the admin endpoints with the operator credentials
// from the configuration. Both comparisons always run, in constant time,
// so a wrong username costs the same as a wrong password.
func BasicAuth(cfg config.Configuration) gin.HandlerFunc {
	username := []byte(cfg.Admin.Username)
	password := []byte(cfg.Admin.Password)

	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		userOK := subtle.ConstantTimeCompare([]byte(user), username) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), password) == 1
		if !ok || !userOK || !passOK {
			c.Header("WWW-Authenticate", `Basic realm="restricted"`)
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		c.Next()
	}
}
