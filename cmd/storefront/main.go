package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/cache"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/config"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/health"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/blimarket-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/blimarket-storefront/internal/services"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/session"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/blimarket-storefront/internal/upstream"
	"github.com/jonboulle/clockwork"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.InitTracing(context.Background(), cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTracing(ctx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	clock := clockwork.NewRealClock()
	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg.RateConfig, clock)
	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	// Downstream clients
	cartClient := upstream.NewClient("cart", cfg.Services.CartURL, cfg.Upstream)
	memberClient := upstream.NewClient("member", cfg.Services.MemberURL, cfg.Upstream)
	productClient := upstream.NewClient("product", cfg.Services.ProductURL, cfg.Upstream)

	cookieCfg := cfg.Cookies
	cookieCfg.Secure = cookieCfg.Secure || cfg.IsProduction()
	cookies := session.NewCookieWriter(cookieCfg)

	cartService := service.NewCartService(cartClient, session.NewGuestIDGenerator(clock), service.CartOptions{
		MintGuestIDs: cfg.GuestCart.MintLocally,
	})
	cartHandler := handlers.NewCartHandler(cartService, cookies)
	authService := service.NewAuthService(memberClient, cartService, rateLimiter)
	authHandler := handlers.NewAuthHandler(authService, cookies)
	catalogService := service.NewCatalogService(productClient, productCache)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	memberService := service.NewMemberService(memberClient)
	memberHandler := handlers.NewMemberHandler(memberService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error registering health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Cart
	routerMux.HandleFunc("POST /api/v1/cart", cartHandler.AddItem())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("PUT /api/v1/cart/item/{sku}", cartHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /api/v1/cart/{sku}", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/cart/merge", cartHandler.MergeCart())
	routerMux.HandleFunc("GET /cart-count", cartHandler.CartCount())

	// Legacy cart paths used by older storefront pages
	routerMux.HandleFunc("POST /api/cart", cartHandler.AddItem())
	routerMux.HandleFunc("GET /api/cart", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/cart", cartHandler.ClearCart())
	routerMux.HandleFunc("PUT /api/cart/item/{sku}", cartHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /api/cart/{sku}", cartHandler.RemoveItem())

	// Auth
	routerMux.HandleFunc("POST /api/auth/login", authHandler.Login())
	routerMux.HandleFunc("POST /api/auth/register", authHandler.Register())
	routerMux.HandleFunc("POST /api/auth/logout", authHandler.Logout())
	routerMux.HandleFunc("POST /api/auth/forgot-password", authHandler.ForgotPassword())
	routerMux.HandleFunc("POST /api/auth/reset-password", authHandler.ResetPassword())
	routerMux.HandleFunc("GET /logout", authHandler.LogoutRedirect())

	// Catalog
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())

	// Members
	routerMux.HandleFunc("GET /api/v1/members/me", middleware.RequireMember(memberHandler.Profile()))
	routerMux.HandleFunc("PUT /api/members/{id}", middleware.RequireMember(memberHandler.UpdateProfile()))

	// Session, health, metrics
	routerMux.HandleFunc("GET /api/v1/session", handlers.Session())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = middleware.SecurityHeaders(cfg.Security)(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}
