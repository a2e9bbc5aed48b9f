// Package api serves a read-only web view of the ledger next to the
// bot: Discord OAuth2 login, per-channel participants, history and
// settlement status, plus Prometheus metrics.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"golang.org/x/oauth2"

	"github.com/svazhnov/kotelbot/internal/config"
	"github.com/svazhnov/kotelbot/internal/ledger"
)

type API struct {
	router      *mux.Router
	svc         *ledger.Service
	config      *config.Config
	oauthConfig *oauth2.Config
	jwtSecret   []byte
	thresholds  ledger.Thresholds
}

func New(cfg *config.Config, svc *ledger.Service) *API {
	api := &API{
		router:    mux.NewRouter(),
		svc:       svc,
		config:    cfg,
		jwtSecret: []byte(cfg.JWTSecret),
		thresholds: ledger.Thresholds{
			Surplus: cfg.SurplusThreshold,
			Deficit: cfg.DeficitThreshold,
		},
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURI,
			Scopes:       []string{"identify"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://discord.com/api/oauth2/authorize",
				TokenURL: "https://discord.com/api/oauth2/token",
			},
		},
	}

	api.setupRoutes()
	return api
}

func (a *API) setupRoutes() {
	// Auth endpoints
	a.router.HandleFunc("/api/auth/login", a.handleLogin).Methods("GET")
	a.router.HandleFunc("/api/auth/callback", a.handleCallback).Methods("GET")
	a.router.HandleFunc("/api/auth/logout", a.handleLogout).Methods("POST")

	// Telemetry
	a.router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Protected endpoints
	protected := a.router.PathPrefix("/api").Subrouter()
	protected.Use(a.authMiddleware)

	protected.HandleFunc("/channels/{channel_id}/participants", a.handleParticipants).Methods("GET")
	protected.HandleFunc("/channels/{channel_id}/history", a.handleHistory).Methods("GET")
	protected.HandleFunc("/channels/{channel_id}/status", a.handleStatus).Methods("GET")
}

func (a *API) Start() error {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}

	handler := cors.New(corsOptions).Handler(a.router)

	slog.Info("API server listening", "bind", a.config.WebBind)
	return http.ListenAndServe(a.config.WebBind, handler)
}
