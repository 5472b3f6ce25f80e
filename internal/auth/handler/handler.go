package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VipinRD/auctioneer/internal/auth/credentials"
	"github.com/VipinRD/auctioneer/internal/middleware"
	"github.com/VipinRD/auctioneer/internal/session"
)

type Handler struct {
	credentialService *credentials.Service
	sessionStore      session.Store
	sessionTTL        time.Duration
	cookieOpts        session.CookieOptions
}

func NewHandler(
	credentialService *credentials.Service,
	sessionStore session.Store,
	sessionTTL time.Duration,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		credentialService: credentialService,
		sessionStore:      sessionStore,
		sessionTTL:        sessionTTL,
		cookieOpts:        cookieOpts,
	}
}

// RegisterRoutes mounts the auth surface under the given group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, guard *middleware.AuthMiddleware) {
	r.POST("/user", h.Register)
	r.GET("/user/verify", h.Verify)

	r.POST("/auth/login", h.Login)
	r.GET("/auth/logout", h.Logout)

	restricted := r.Group("/auth")
	restricted.Use(middleware.GinRequireAuth(guard))
	restricted.POST("/restricted", h.Restricted)
}

// Restricted is the protected stand-in view. Reaching it at all means
// the guard resolved a user.
func (h *Handler) Restricted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "This is logged in view"})
}
