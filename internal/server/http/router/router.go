package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/novelnest/userservice/internal/metrics"
	"github.com/novelnest/userservice/internal/server/http/handlers"
	"github.com/novelnest/userservice/internal/server/http/middleware"
)

const serviceBanner = "NovelNest: User Service is running!"

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.UserFacade, logger *slog.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ObserveRequests(m))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	purchaseHandler := handlers.NewPurchaseHandler(facade)

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, serviceBanner)
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	auth := engine.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	authProtected := auth.Group("")
	authProtected.Use(middleware.AuthRequired(facade))
	authProtected.GET("/user", authHandler.Profile)

	user := engine.Group("/api/user")
	user.Use(middleware.AuthRequired(facade))
	user.GET("/purchases", purchaseHandler.List)

	return engine
}
