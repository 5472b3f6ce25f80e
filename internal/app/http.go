package app

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/VipinRD/auctioneer/internal/auth/credentials"
	"github.com/VipinRD/auctioneer/internal/auth/handler"
	"github.com/VipinRD/auctioneer/internal/config"
	"github.com/VipinRD/auctioneer/internal/middleware"
	"github.com/VipinRD/auctioneer/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	credentialService := credentials.NewService(infra.Users)

	cookieOpts := session.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}

	authHandler := handler.NewHandler(
		credentialService,
		sessionStore,
		cfg.SessionTTL,
		cookieOpts,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	if len(cfg.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowCredentials = true
		router.Use(cors.New(corsCfg))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// API Routes
	// ----------------------------

	api := router.Group("/api")
	authHandler.RegisterRoutes(api, authMiddleware)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.Mongo.Close(context.Background())
	}, nil
}
