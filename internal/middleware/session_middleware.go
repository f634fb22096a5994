package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

// Cookie lifetime for a guest session. The stores behind it are in-memory, so
// a session outliving the process simply starts over empty.
const sessionMaxAge = 60 * 60 * 24 * 30

// Session resolves the caller's session ID, minting one when the cookie is
// missing or malformed. Every cart and wishlist is keyed by this ID: one
// logical store instance per session.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}

		c.Set("session_id_validated", sid)
		c.Next()
	}
}
