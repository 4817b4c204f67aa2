package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"
)

type ContextKey string

const AdminKey ContextKey = "admin"

const adminSessionKey = "isAdmin"

var (
	ErrAdminDisabled   = errors.New("admin login is disabled")
	ErrInvalidPasscode = errors.New("invalid passcode")
)

// AdminGate guards the mutation endpoints with a shared passcode. A
// successful login marks the scs session as admin.
type AdminGate struct {
	sessions *scs.SessionManager
	passcode string
}

func NewAdminGate(sessions *scs.SessionManager, passcode string) *AdminGate {
	return &AdminGate{sessions: sessions, passcode: passcode}
}

func (g *AdminGate) Login(ctx context.Context, passcode string) error {
	if g.passcode == "" {
		return ErrAdminDisabled
	}
	if subtle.ConstantTimeCompare([]byte(passcode), []byte(g.passcode)) != 1 {
		return ErrInvalidPasscode
	}

	// New token on privilege change
	if err := g.sessions.RenewToken(ctx); err != nil {
		return fmt.Errorf("failed to renew session: %w", err)
	}
	g.sessions.Put(ctx, adminSessionKey, true)
	return nil
}

func (g *AdminGate) Logout(ctx context.Context) error {
	return g.sessions.Destroy(ctx)
}

func (g *AdminGate) isAdmin(ctx context.Context) bool {
	return g.passcode != "" && g.sessions.GetBool(ctx, adminSessionKey)
}

// LoadAdmin puts the admin flag of the session into the request context so
// views can read it with IsAdmin.
func (g *AdminGate) LoadAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), AdminKey, g.isAdmin(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *AdminGate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.isAdmin(r.Context()) {
			slog.Warn("rejected admin request", "path", r.URL.Path)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func IsAdmin(ctx context.Context) bool {
	admin, ok := ctx.Value(AdminKey).(bool)
	return ok && admin
}
