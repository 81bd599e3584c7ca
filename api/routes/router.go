package routes

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/tusharoffice40/Whole-X/api/controllers"
	"github.com/tusharoffice40/Whole-X/api/middleware"
	advisorsvc "github.com/tusharoffice40/Whole-X/internal/advisor"
	cartsvc "github.com/tusharoffice40/Whole-X/internal/cart"
	"github.com/tusharoffice40/Whole-X/internal/catalog"
	ordersvc "github.com/tusharoffice40/Whole-X/internal/orders"
	viewsvc "github.com/tusharoffice40/Whole-X/internal/views"
	"github.com/tusharoffice40/Whole-X/pkg/config"
	"github.com/tusharoffice40/Whole-X/pkg/logger"
	"github.com/tusharoffice40/Whole-X/pkg/metrics"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	sessions *session.Manager,
	catalogService catalog.Service,
	cartService cartsvc.Service,
	ordersService ordersvc.Service,
	viewsService viewsvc.Service,
	advisorService advisorsvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
		middleware.Metrics(),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(sessions, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(catalogService, logg))
			r.Get("/categories", controllers.CatalogCategories(catalogService, logg))
			r.Post("/describe", controllers.CatalogDescribe(catalogService, logg))
			r.Get("/{productId}", controllers.CatalogGet(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Put("/items/{productId}", controllers.CartUpdateItem(cartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
		})

		r.Post("/checkout", controllers.Checkout(ordersService, logg))
		r.Get("/orders", controllers.OrdersList(ordersService, logg))

		r.Route("/view", func(r chi.Router) {
			r.Get("/", controllers.ViewFetch(viewsService, logg))
			r.Post("/navigate", controllers.ViewNavigate(viewsService, logg))
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", controllers.SessionFetch(logg))
			r.Put("/role", controllers.SessionSetRole(logg))
		})

		r.Route("/advisor", func(r chi.Router) {
			r.Get("/", controllers.AdvisorTranscript(advisorService, logg))
			r.Post("/messages", controllers.AdvisorSend(advisorService, logg))
		})
	})

	return r
}
