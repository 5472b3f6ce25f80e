package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VipinRD/auctioneer/internal/logger"
	"github.com/VipinRD/auctioneer/internal/session"
)

// Logout destroys the session and clears the cookie. Logging out
// without a session, or twice, succeeds the same way.
func (h *Handler) Logout(c *gin.Context) {

	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		// Deleting the session must be visible to every validate that
		// follows, so the store delete happens before the response.
		_ = h.sessionStore.Delete(c.Request.Context(), cookie.Value)

		logger.Info("logout", map[string]any{
			"ip": c.ClientIP(),
		})
	}

	session.ClearCookie(c.Writer, h.cookieOpts)

	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
