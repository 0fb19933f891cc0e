// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/basketbot/admin-console/internal/api"
	"github.com/basketbot/admin-console/internal/api/auth"
	"github.com/basketbot/admin-console/internal/api/dashboard"
	"github.com/basketbot/admin-console/internal/api/debt"
	"github.com/basketbot/admin-console/internal/api/events"
	"github.com/basketbot/admin-console/internal/api/finance"
	"github.com/basketbot/admin-console/internal/api/integration"
	"github.com/basketbot/admin-console/internal/api/invitations"
	"github.com/basketbot/admin-console/internal/api/leaguetable"
	"github.com/basketbot/admin-console/internal/api/matches"
	"github.com/basketbot/admin-console/internal/api/members"
	"github.com/basketbot/admin-console/internal/api/players"
	"github.com/basketbot/admin-console/internal/api/settings"
	"github.com/basketbot/admin-console/internal/api/teamselect"
	"github.com/basketbot/admin-console/internal/backend"
	"github.com/basketbot/admin-console/internal/config"
	"github.com/basketbot/admin-console/internal/proxy"
	"github.com/basketbot/admin-console/internal/ratelimit"
)

func newServer(cfg *config.Config) (*http.Server, error) {
	client := backend.New(cfg.Backend.Origin, cfg.Backend.Timeout)
	limiter := ratelimit.New(nil)

	auth.InitHandlers(client, limiter, cfg.TrustProxy)
	teamselect.InitHandlers(client)
	dashboard.InitHandlers(client)
	players.InitHandlers(client)
	matches.InitHandlers(client)
	members.InitHandlers(client)
	debt.InitHandlers(client)
	finance.InitHandlers(client)
	events.InitHandlers(client)
	invitations.InitHandlers(client)
	leaguetable.InitHandlers(client)
	settings.InitHandlers(client)
	integration.InitHandlers(client)

	router, err := newRouter(cfg, client)
	if err != nil {
		return nil, err
	}

	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
	)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

func newRouter(cfg *config.Config, client *backend.Client) (chi.Router, error) {
	r := chi.NewRouter()

	// Bot backend passthrough. The proxy keeps the backend unreachable
	// from the outside while the console stays the single public origin.
	apiProxy, err := proxy.New(cfg.Backend.Origin)
	if err != nil {
		return nil, err
	}
	r.Route("/api", func(sub chi.Router) {
		if cfg.App.PublicBaseURL != "" {
			sub.Use(cors.Handler(cors.Options{
				AllowedOrigins:   []string{cfg.App.PublicBaseURL},
				AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Content-Type"},
				AllowCredentials: true,
				MaxAge:           300,
			}))
		}
		sub.Handle("/*", apiProxy)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/login", auth.HandleLoginPage)
	r.Post("/login", auth.HandleLogin)
	r.Post("/logout", auth.HandleLogout)

	// Everything below requires a live backend session.
	r.Group(func(g chi.Router) {
		g.Use(api.WithSession(client))

		g.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		})

		g.Get("/team-select", teamselect.HandlePage)
		g.Post("/team-select", teamselect.HandleSelect)
		g.Get("/system-setup", settings.HandleSystemPage)
		g.Post("/system-setup", settings.HandleSystemSave)

		g.Get("/dashboard", dashboard.HandlePage)

		g.Get("/players", players.HandlePage)
		g.Post("/players", players.HandleCreate)
		g.Post("/players/{id}", players.HandleUpdate)
		g.Post("/players/{id}/delete", players.HandleDelete)

		g.Get("/matches", matches.HandlePage)
		g.Post("/matches", matches.HandleCreate)
		g.Post("/matches/{id}", matches.HandleUpdate)
		g.Post("/matches/{id}/result", matches.HandleResult)
		g.Post("/matches/{id}/cancel", matches.HandleCancel)
		g.Post("/matches/{id}/send-to-channel", matches.HandleSendToChannel)
		g.Get("/matches/{id}/stats", matches.HandleStatsFragment)
		g.Post("/matches/{id}/stats", matches.HandleStatsSave)
		g.Get("/matches/{id}/attendance", matches.HandleAttendanceFragment)
		g.Post("/matches/{id}/attendance", matches.HandleAttendanceSave)
		g.Get("/matches/{id}/card", matches.HandleCard)
		g.Get("/matches/{id}/player-card", matches.HandlePlayerCard)
		g.Get("/matches/modal/close", matches.HandleModalClose)

		g.Get("/members", members.HandlePage)
		g.Post("/members/{telegramUserId}", members.HandleUpdate)
		g.Post("/members/{telegramUserId}/role", members.HandleRole)
		g.Get("/members/{telegramUserId}/attendance", members.HandleAttendanceFragment)

		g.Get("/debt", debt.HandlePage)
		g.Post("/debt", debt.HandleSet)
		g.Post("/debt/paid/{playerId}", debt.HandlePaid)
		g.Post("/debt/notify", debt.HandleNotify)

		g.Get("/finance", finance.HandlePage)
		g.Post("/finance", finance.HandleCreate)
		g.Post("/finance/{id}/delete", finance.HandleDelete)
		g.Get("/finance/report/export", finance.HandleExport)

		g.Get("/calendar", events.HandlePage)
		g.Post("/calendar", events.HandleCreate)
		g.Post("/calendar/{id}/delete", events.HandleDelete)

		g.Get("/invitations", invitations.HandlePage)
		g.Post("/invitations", invitations.HandleCreate)
		g.Post("/invitations/{code}/delete", invitations.HandleDelete)
		g.Get("/invitations/{code}/qr", invitations.HandleQR)

		g.Get("/league-table", leaguetable.HandlePage)
		g.Post("/league-table", leaguetable.HandleCreate)
		g.Post("/league-table/{id}/delete", leaguetable.HandleDelete)

		g.Get("/settings", settings.HandlePage)
		g.Post("/settings", settings.HandleSave)
		g.Post("/settings/notify", settings.HandleNotify)

		g.Get("/integration", integration.HandlePage)
	})

	return r, nil
}
