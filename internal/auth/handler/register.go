package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VipinRD/auctioneer/internal/auth/credentials"
	"github.com/VipinRD/auctioneer/internal/logger"
)

type registerRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, token, err := h.credentialService.Register(
		c.Request.Context(),
		req.Name,
		req.Email,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, credentials.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Email"})
		case errors.Is(err, credentials.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exist"})
		case errors.Is(err, credentials.ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": "password required"})
		default:
			logger.Error("register failed", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		}
		return
	}

	logger.Info("user registered", map[string]any{
		"user_id": userID,
	})

	// TODO: send the verification token by email once an outbound
	// mailer exists; until then /user/verify consumes it directly.
	_ = token

	c.JSON(http.StatusOK, gin.H{"status": "registered"})
}

// Verify consumes a verification token and marks the account verified.
func (h *Handler) Verify(c *gin.Context) {
	token := c.Query("token")

	if err := h.credentialService.Verify(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verification token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "verified"})
}
