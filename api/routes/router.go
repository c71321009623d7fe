package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cropsense/cropsense-backend/api/controllers"
	"github.com/cropsense/cropsense-backend/api/middleware"
	"github.com/cropsense/cropsense-backend/internal/admin"
	"github.com/cropsense/cropsense-backend/internal/auth"
	"github.com/cropsense/cropsense-backend/internal/cropanalysis"
	"github.com/cropsense/cropsense-backend/internal/items"
	"github.com/cropsense/cropsense-backend/internal/marketplace"
	"github.com/cropsense/cropsense-backend/internal/orders"
	"github.com/cropsense/cropsense-backend/internal/weather"
	"github.com/cropsense/cropsense-backend/pkg/auth/session"
	"github.com/cropsense/cropsense-backend/pkg/config"
	"github.com/cropsense/cropsense-backend/pkg/db"
	"github.com/cropsense/cropsense-backend/pkg/logger"
	"github.com/cropsense/cropsense-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessions session.AccessSessionChecker,
	authService auth.Service,
	itemsService *items.Service,
	ordersService *orders.Service,
	weatherService *weather.Service,
	cropService *cropanalysis.Service,
	marketplaceService *marketplace.Service,
	adminService *admin.Service,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	signinPolicy := middleware.NewAuthRateLimitPolicy(
		"signin",
		cfg.AuthRateLimit.SigninWindow,
		cfg.AuthRateLimit.SigninIPLimit,
		cfg.AuthRateLimit.SigninUserLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupUserLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, redisClient, logg))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		// Public marketplace surface. Orders carry the purchaser in the
		// request body, so placement does not require a session.
		r.Group(func(r chi.Router) {
			r.With(middleware.AuthRateLimit(signupPolicy, redisClient, logg)).Post("/auth/signup", controllers.Signup(authService, logg))
			r.With(middleware.AuthRateLimit(signinPolicy, redisClient, logg)).Post("/auth/signin", controllers.Signin(authService, logg))
			// Refresh accepts an expired access token, so it cannot sit
			// behind the auth middleware.
			r.Post("/auth/refresh", controllers.Refresh(authService, logg))

			r.Get("/items", controllers.ListItems(itemsService, logg))
			r.Get("/items/{itemId}", controllers.GetItem(itemsService, logg))

			r.Post("/orders", controllers.PlaceOrder(ordersService, logg))
			r.Get("/orders", controllers.ListOrders(ordersService, logg))

			r.Route("/weather", func(r chi.Router) {
				r.Get("/current", controllers.CurrentWeather(weatherService))
				r.Get("/forecast", controllers.WeatherForecast(weatherService, logg))
				r.Get("/agricultural", controllers.AgriculturalInsights(weatherService))
				r.Get("/zones", controllers.WeatherZones(weatherService))
				r.Get("/alerts", controllers.WeatherAlerts(weatherService))
			})

			r.Route("/marketplace", func(r chi.Router) {
				r.Get("/sellers", controllers.MarketplaceSellers(marketplaceService, logg))
				r.Get("/sellers/{sellerId}", controllers.MarketplaceSeller(marketplaceService, logg))
				r.Get("/products", controllers.MarketplaceProducts(marketplaceService, logg))
				r.Get("/products/{productId}", controllers.MarketplaceProduct(marketplaceService, logg))
				r.Get("/categories", controllers.MarketplaceCategories(marketplaceService))
				r.Post("/quote", controllers.MarketplaceQuote(marketplaceService, logg))
			})

			r.Route("/crop-analysis", func(r chi.Router) {
				r.Get("/", controllers.ListCropAnalyses(cropService))
				r.Post("/", controllers.CreateCropAnalysis(cropService, logg))
				r.Get("/{analysisId}", controllers.GetCropAnalysis(cropService, logg))
				r.Get("/{analysisId}/recommendations", controllers.CropRecommendations(cropService, logg))
			})
		})

		// Session-bound surface.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))

			r.Get("/auth/profile", controllers.Profile(authService, logg))
			r.Post("/auth/logout", controllers.Logout(authService, logg))

			r.Post("/items", controllers.CreateItem(itemsService, logg))
			r.Get("/items/mine", controllers.ListOwnItems(itemsService, logg))
			r.Put("/items/{itemId}", controllers.UpdateItem(itemsService, logg))
			r.Delete("/items/{itemId}", controllers.DeleteItem(itemsService, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))
			r.Use(middleware.RequireRole("admin", logg))

			r.Get("/tables", controllers.AdminTables(adminService))
			r.Get("/tables/{table}", controllers.AdminBrowseTable(adminService, logg))
		})
	})

	return r
}
