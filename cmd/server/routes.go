package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"hubtel-wallet.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler          *handlers.AuthHandler
	profileHandler       *handlers.ProfileHandler
	catalogHandler       *handlers.CatalogHandler
	walletAccountHandler *handlers.WalletAccountHandler
	phoneHandler         *handlers.PhoneHandler
	authMiddleware       gin.HandlerFunc
	idempotency          gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		c.Header("Access-Control-Expose-Headers", "X-Request-ID, X-Idempotency-Hit")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/health", h.Health)
}

func registerMetricsRoute(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.DELETE("/me", d.authMiddleware, d.authHandler.DeleteMe)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
			auth.PUT("/account-type", d.authMiddleware, d.authHandler.ChangeAccountType)
		}

		// :id on profiles is a UUID or a legal name for reads
		profiles := v1.Group("/profiles")
		profiles.Use(d.authMiddleware)
		{
			profiles.POST("", d.profileHandler.CreateProfile)
			profiles.GET("", d.profileHandler.ListProfiles)
			profiles.GET("/:id", d.profileHandler.GetProfile)
			profiles.PUT("/:id", d.profileHandler.UpdateProfile)
			profiles.DELETE("/:id", d.profileHandler.DeleteProfile)
			profiles.GET("/:id/wallet-accounts", d.walletAccountHandler.ListWalletAccounts)
		}

		// catalog reads are public
		v1.GET("/account-types", d.catalogHandler.ListAccountTypes)
		v1.GET("/card-schemes", d.catalogHandler.ListCardSchemes)
		v1.GET("/sim-schemes", d.catalogHandler.ListSimSchemes)
		v1.POST("/account-types", d.authMiddleware, d.catalogHandler.CreateAccountType)
		v1.POST("/card-schemes", d.authMiddleware, d.catalogHandler.CreateCardScheme)
		v1.POST("/sim-schemes", d.authMiddleware, d.catalogHandler.CreateSimScheme)

		walletAccounts := v1.Group("/wallet-accounts")
		walletAccounts.Use(d.authMiddleware)
		{
			walletAccounts.POST("", d.idempotency, d.walletAccountHandler.CreateWalletAccount)
			walletAccounts.GET("/:id", d.walletAccountHandler.GetWalletAccount)
			walletAccounts.DELETE("/:id", d.walletAccountHandler.DeleteWalletAccount)
		}

		v1.GET("/phone-numbers/:number/operator", d.phoneHandler.GetOperator)
	}
}
