package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AdamBeresnev/worldcup-sim/internal/httputil"
	"github.com/AdamBeresnev/worldcup-sim/internal/middleware"
	"github.com/AdamBeresnev/worldcup-sim/internal/service"
	"github.com/AdamBeresnev/worldcup-sim/internal/tournament"
	"github.com/AdamBeresnev/worldcup-sim/views"
	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func newRouter(svc *service.TournamentService, sessionManager *scs.SessionManager, gate *middleware.AdminGate, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request"},
		ExposedHeaders:   []string{"ETag"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(sessionManager.LoadAndSave)
	r.Use(gate.LoadAdmin)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if err := views.Render(w, r, views.Index(svc.Snapshot())); err != nil {
			httputil.InternalServerError(w, "Failed to render index", err)
		}
	})

	r.Post("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}
		if err := gate.Login(r.Context(), r.Form.Get("passcode")); err != nil {
			if errors.Is(err, middleware.ErrAdminDisabled) || errors.Is(err, middleware.ErrInvalidPasscode) {
				httputil.Unauthorized(w, err.Error(), err)
				return
			}
			httputil.InternalServerError(w, "Failed to log in", err)
			return
		}
		redirectHome(w, r)
	})

	r.Post("/admin/logout", func(w http.ResponseWriter, r *http.Request) {
		if err := gate.Logout(r.Context()); err != nil {
			httputil.InternalServerError(w, "Failed to log out", err)
			return
		}
		redirectHome(w, r)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", func(w http.ResponseWriter, r *http.Request) {
			httputil.WriteJSON(w, http.StatusOK, tournament.Teams())
		})

		r.Get("/stadiums", func(w http.ResponseWriter, r *http.Request) {
			httputil.WriteJSON(w, http.StatusOK, tournament.Stadiums())
		})

		r.Get("/matches", func(w http.ResponseWriter, r *http.Request) {
			writeSnapshot(w, svc.Snapshot(), func(s service.Snapshot) any { return s.Matches })
		})

		r.Get("/standings", func(w http.ResponseWriter, r *http.Request) {
			writeSnapshot(w, svc.Snapshot(), func(s service.Snapshot) any { return s.Standings })
		})

		r.Get("/qualifiers", func(w http.ResponseWriter, r *http.Request) {
			writeSnapshot(w, svc.Snapshot(), func(s service.Snapshot) any { return s.Qualifiers })
		})

		r.Get("/bracket", func(w http.ResponseWriter, r *http.Request) {
			writeSnapshot(w, svc.Snapshot(), func(s service.Snapshot) any { return s.Knockout })
		})

		r.Get("/snapshot", func(w http.ResponseWriter, r *http.Request) {
			writeSnapshot(w, svc.Snapshot(), func(s service.Snapshot) any { return s })
		})

		r.Group(func(r chi.Router) {
			r.Use(gate.RequireAdmin)

			r.Post("/matches/{id}/score", func(w http.ResponseWriter, r *http.Request) {
				if err := r.ParseForm(); err != nil {
					httputil.BadRequest(w, "Invalid form data", err)
					return
				}
				home, err := service.ParseScore(r.Form.Get("home_score"))
				if err != nil {
					httputil.BadRequest(w, err.Error(), err)
					return
				}
				away, err := service.ParseScore(r.Form.Get("away_score"))
				if err != nil {
					httputil.BadRequest(w, err.Error(), err)
					return
				}

				match, err := svc.SetScore(r.Context(), chi.URLParam(r, "id"), home, away)
				if err != nil {
					writeServiceError(w, "Failed to set score", err)
					return
				}

				if wantsHTML(r) {
					redirectHome(w, r)
					return
				}
				httputil.WriteJSON(w, http.StatusOK, match)
			})

			r.Post("/reset", func(w http.ResponseWriter, r *http.Request) {
				if err := svc.ResetAll(r.Context()); err != nil {
					writeServiceError(w, "Failed to reset tournament", err)
					return
				}

				if wantsHTML(r) {
					redirectHome(w, r)
					return
				}
				w.WriteHeader(http.StatusNoContent)
			})
		})
	})

	return r
}

// writeSnapshot sends one part of a snapshot, tagged with its revision.
func writeSnapshot(w http.ResponseWriter, snap service.Snapshot, part func(service.Snapshot) any) {
	w.Header().Set("ETag", `"`+snap.Revision.String()+`"`)
	httputil.WriteJSON(w, http.StatusOK, part(snap))
}

func writeServiceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrMatchNotFound):
		httputil.NotFound(w, "Match not found", err)
	case errors.Is(err, service.ErrInvalidScore), errors.Is(err, service.ErrPartialScore):
		httputil.BadRequest(w, err.Error(), err)
	default:
		httputil.InternalServerError(w, msg, err)
	}
}

// wantsHTML is true for plain browser form posts, which get sent back to the
// index page instead of a JSON body.
func wantsHTML(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "" && strings.Contains(r.Header.Get("Accept"), "text/html")
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
