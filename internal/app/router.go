package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vetclinic/vetclinic/internal/clinic/clients"
	"github.com/vetclinic/vetclinic/internal/clinic/medicines"
	"github.com/vetclinic/vetclinic/internal/clinic/pets"
	"github.com/vetclinic/vetclinic/internal/clinic/products"
	"github.com/vetclinic/vetclinic/internal/clinic/providers"
	clinicshared "github.com/vetclinic/vetclinic/internal/clinic/shared"
	"github.com/vetclinic/vetclinic/internal/clinic/vets"
	"github.com/vetclinic/vetclinic/internal/observability"
	"github.com/vetclinic/vetclinic/internal/platform/httpx"
	"github.com/vetclinic/vetclinic/internal/shared"
	"github.com/vetclinic/vetclinic/web"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	Pages            *clinicshared.Pages
	SessionManager   *shared.SessionManager
	CSRFManager      *shared.CSRFManager
	ClientsHandler   *clients.Handler
	PetsHandler      *pets.Handler
	MedicinesHandler *medicines.Handler
	ProductsHandler  *products.Handler
	ProvidersHandler *providers.Handler
	VetsHandler      *vets.Handler
	Metrics          *observability.Metrics
	RequestLogging   bool
}

// NewRouter constructs the chi.Router with the clinic defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	if params.RequestLogging {
		r.Use(chimw.Logger)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		params.Pages.Render(w, r, "pages/home.html", "Inicio", nil, http.StatusOK)
	})

	r.Route("/clients", params.ClientsHandler.MountRoutes)
	r.Route("/pets", params.PetsHandler.MountRoutes)
	r.Route("/medicines", params.MedicinesHandler.MountRoutes)
	r.Route("/products", params.ProductsHandler.MountRoutes)
	r.Route("/providers", params.ProvidersHandler.MountRoutes)
	r.Route("/vets", params.VetsHandler.MountRoutes)

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	return r
}

// staticCacheHandler lets browsers keep static assets for an hour.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
