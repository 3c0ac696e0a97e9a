package web

import (
	"log/slog"
	"net/http"

	"swiss-app/internal/store"
	"swiss-app/internal/swiss"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	store     store.Store
	swiss     *swiss.Service
	templates *Templates
	logger    *slog.Logger
	metrics   *Metrics
	registry  *prometheus.Registry
	admin     AdminOptions
}

type Options struct {
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Admin    AdminOptions
}

func NewServer(store store.Store, templates *Templates, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	return &Server{
		store:     store,
		swiss:     swiss.NewService(store, logger),
		templates: templates,
		logger:    logger,
		metrics:   NewMetrics(registry),
		registry:  registry,
		admin:     opts.Admin,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.metrics.Instrument)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/", s.handleHome)

	r.Get("/players", s.handlePlayersList)
	r.Post("/players", s.handlePlayerRegister)
	r.Get("/players/count", s.handlePlayersCount)
	r.Get("/matches", s.handleMatchesList)
	r.Post("/matches", s.handleMatchReport)
	r.Get("/standings", s.handleStandings)
	r.Get("/pairings", s.handlePairings)

	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin(s.admin))
		r.Delete("/players", s.handlePlayersReset)
		r.Delete("/matches", s.handleMatchesReset)
	})

	return r
}
