package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anonymous-namo-1/golden-era/api/controllers"
	"github.com/anonymous-namo-1/golden-era/api/middleware"
	"github.com/anonymous-namo-1/golden-era/internal/cart"
	"github.com/anonymous-namo-1/golden-era/internal/leads"
	"github.com/anonymous-namo-1/golden-era/internal/orders"
	product "github.com/anonymous-namo-1/golden-era/internal/products"
	"github.com/anonymous-namo-1/golden-era/internal/stores"
	"github.com/anonymous-namo-1/golden-era/internal/wishlist"
	"github.com/anonymous-namo-1/golden-era/pkg/config"
	"github.com/anonymous-namo-1/golden-era/pkg/db"
	"github.com/anonymous-namo-1/golden-era/pkg/logger"
	"github.com/anonymous-namo-1/golden-era/pkg/metrics"
	"github.com/anonymous-namo-1/golden-era/pkg/redis"
)

// NewRouter wires middleware and every storefront route. redisClient,
// registry and httpMetrics may be nil; the features that depend on them are
// then disabled.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	productService product.Service,
	cartService cart.Service,
	wishlistService wishlist.Service,
	leadService leads.Service,
	storeService stores.Service,
	orderService orders.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID(logg),
		middleware.Recoverer(logg),
		middleware.Logging(logg),
	)
	if httpMetrics != nil {
		r.Use(middleware.Metrics(httpMetrics))
	}
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	var (
		idempotencyStore redis.IdempotencyStore
		rateLimiter      redis.RateLimiter
		readiness        = map[string]db.Pinger{"mongo": dbP}
	)
	if redisClient != nil {
		idempotencyStore = redisClient
		rateLimiter = redisClient
		readiness["redis"] = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, readiness, logg))
	})

	if registry != nil && cfg.Metrics.Enabled {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	}

	leadLimit := middleware.RateLimit(
		middleware.NewRateLimitPolicy("leads", cfg.RateLimit.LeadWindow, cfg.RateLimit.LeadIPLimit, cfg.RateLimit.LeadEmailLimit),
		rateLimiter,
		logg,
	)
	orderIdempotency := middleware.Idempotency(idempotencyStore, cfg.Idempotency.OrderTTL, logg)

	api := func(r chi.Router) {
		r.Get("/", controllers.Root())

		r.Get("/products", controllers.ProductList(productService, logg))
		r.Get("/products/related/{id}", controllers.ProductRelated(productService, logg))
		r.Get("/products/{id}", controllers.ProductDetail(productService, logg))
		r.Get("/search/suggestions", controllers.SearchSuggestions(productService, logg))
		r.Get("/categories", controllers.Categories(productService, logg))
		r.Post("/quiz-results", controllers.QuizResults(productService, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartList(cartService, logg))
			r.Post("/", controllers.CartAdd(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Put("/{id}", controllers.CartUpdate(cartService, logg))
			r.Delete("/{id}", controllers.CartRemove(cartService, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistList(wishlistService, logg))
			r.Post("/", controllers.WishlistAdd(wishlistService, logg))
			r.Delete("/{id}", controllers.WishlistRemove(wishlistService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(leadLimit)
			r.Post("/appointments", controllers.BookAppointment(leadService, logg))
			r.Post("/exchange-leads", controllers.SubmitExchangeLead(leadService, logg))
			r.Post("/contact", controllers.SubmitContact(leadService, logg))
			r.Post("/store-queries", controllers.SubmitStoreQuery(leadService, logg))
			r.Post("/newsletter", controllers.Subscribe(leadService, logg))
		})

		r.Get("/stores", controllers.StoreLocator(storeService, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(orderService, logg))
			r.With(orderIdempotency).Post("/", controllers.CreateOrder(orderService, logg))
		})
	}

	if prefix := cfg.App.APIPrefix; prefix != "" {
		r.Route(prefix, api)
	} else {
		r.Group(api)
	}

	return r
}
