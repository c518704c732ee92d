package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SesionIDKey     = "sesion_id"
	sesionCookie    = "ferreteria_sesion"
	sesionMaxAgeSec = 60 * 60 * 24 * 30
)

// Sesion gives every visitor an anonymous session id via cookie. The cart
// lives under this id, so browsing and quoting work before login.
func Sesion() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sesionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(sesionCookie, id, sesionMaxAgeSec, "/", "", false, true)
		}
		c.Set(SesionIDKey, id)
		c.Next()
	}
}

// GetSesionID retrieves the anonymous session id set by Sesion.
func GetSesionID(c *gin.Context) string {
	return c.GetString(SesionIDKey)
}
