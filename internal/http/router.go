package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "westudy/internal/config"
	h "westudy/internal/http/handlers"
	"westudy/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	requireAuth := middleware.RequireAuth([]byte(env.JWTSecret))
	authLimiter := middleware.NewLimiterStore(env.AuthRatePerMinute, env.AuthRatePerMinute, 5*time.Minute)
	messageLimiter := middleware.NewLimiterStore(env.MessageRatePerMinute, env.MessageRatePerMinute, 5*time.Minute)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", middleware.RateLimit(authLimiter), h.Login)
		auth.POST("/register", middleware.RateLimit(authLimiter), h.Register)
		auth.POST("/forgot-password", middleware.RateLimit(authLimiter), h.ForgotPassword)
		auth.GET("/me", requireAuth, h.Me)
		auth.POST("/logout", requireAuth, h.Logout)

		// Listings (public browse surface)
		api.GET("/listings", h.GetListings)
		api.GET("/listings/:id", h.GetListingByID)
		api.GET("/categories", h.GetCategories)
		api.GET("/universities", h.GetUniversities)

		// Bookings
		bookings := api.Group("/bookings", requireAuth)
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetBookings)
		bookings.POST("/:id/unlock", h.UnlockBooking)
		bookings.GET("/:id/voucher", h.GetBookingVoucher)

		// Messages
		messages := api.Group("/messages", requireAuth)
		messages.GET("/conversations", h.GetConversations)
		messages.POST("/conversations", middleware.RateLimit(messageLimiter), h.StartConversation)
		messages.GET("/conversations/:id", h.GetMessages)
		messages.POST("/conversations/:id", middleware.RateLimit(messageLimiter), h.SendMessage)

		// Admin
		admin := api.Group("/admin", requireAuth, middleware.RequireAdmin())
		admin.GET("/stats", h.GetAdminStats)
		admin.GET("/revenue/monthly", h.GetMonthlyRevenue)
		admin.GET("/listings/pending", h.GetPendingListings)
		admin.PUT("/listings/:id/approve", h.ApproveListing)
		admin.PUT("/listings/:id/reject", h.RejectListing)
		admin.POST("/listings", h.CreateListing)
		admin.GET("/users", h.GetUsers)
	}

	return r
}
