package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gitau-joseph/projectz/internal/interfaces/http/handlers"
	"github.com/Gitau-joseph/projectz/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler       *handlers.AuthHandler
	dashboardHandler  *handlers.DashboardHandler
	kycHandler        *handlers.KYCHandler
	depositHandler    *handlers.DepositHandler
	withdrawalHandler *handlers.WithdrawalHandler
	adminHandler      *handlers.AdminHandler
	authMiddleware    gin.HandlerFunc
	adminMiddleware   gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
		}

		// Dashboard (protected)
		v1.GET("/dashboard", d.authMiddleware, d.dashboardHandler.Get)

		// KYC routes (protected)
		kyc := v1.Group("/kyc")
		kyc.Use(d.authMiddleware)
		{
			kyc.POST("", d.kycHandler.Submit)
			kyc.GET("", d.kycHandler.Latest)
		}

		// Deposit routes (protected)
		deposits := v1.Group("/deposits")
		deposits.Use(d.authMiddleware)
		{
			deposits.POST("", d.depositHandler.Submit)
			deposits.GET("", d.depositHandler.List)
			deposits.GET("/address", d.depositHandler.Address)
			deposits.GET("/address/qr", d.depositHandler.AddressQR)
		}

		// Withdrawal routes (protected)
		withdrawals := v1.Group("/withdrawals")
		withdrawals.Use(d.authMiddleware)
		{
			withdrawals.POST("", d.withdrawalHandler.Withdraw)
			withdrawals.GET("/eligibility", d.withdrawalHandler.Eligibility)
		}

		// Admin routes (protected, admin flag re-checked per request)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, d.adminMiddleware)
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.POST("/users/:id/credit", d.adminHandler.CreditUser)
			admin.POST("/users/:id/debit", d.adminHandler.DebitUser)

			admin.GET("/kyc", d.adminHandler.ListKYC)
			admin.POST("/kyc/:id/review", d.adminHandler.ReviewKYC)

			admin.GET("/deposits", d.adminHandler.ListDeposits)
			admin.POST("/deposits/:id/approve", d.adminHandler.ApproveDeposit)
			admin.POST("/deposits/:id/reject", d.adminHandler.RejectDeposit)

			admin.GET("/stats", d.adminHandler.Stats)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", middleware.MetricsHandler())
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
