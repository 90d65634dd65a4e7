package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Abhijeetcode911/customgpt-payment/internal/config"
	pkgAuth "github.com/Abhijeetcode911/customgpt-payment/internal/pkg/auth"
	"github.com/Abhijeetcode911/customgpt-payment/internal/server/http/handlers"
	"github.com/Abhijeetcode911/customgpt-payment/internal/server/http/middleware"
)

// Params lists router dependencies.
type Params struct {
	fx.In

	Facade   handlers.PaymentFacade
	Verifier pkgAuth.KeyVerifier
	Config   *config.Config
	Logger   *slog.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(p.Facade, p.Logger)
	callbackHandler := handlers.NewCallbackHandler(p.Facade, p.Config.ConfirmationPath, p.Logger)

	engine.GET("/healthz", handlers.Health)
	engine.POST("/payment/callback", callbackHandler.Handle)

	api := engine.Group("/api")
	if p.Verifier != nil && p.Verifier.Enabled() {
		api.Use(middleware.APIKeyRequired(p.Verifier))
	}
	razorpay := api.Group("/payments/razorpay")
	razorpay.POST("/create_order", orderHandler.Create)
	razorpay.POST("/verify", orderHandler.Verify)

	return engine
}
