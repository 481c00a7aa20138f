package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-zajac/ghroast/internal/app"
	"github.com/sirupsen/logrus"
)

// Service can roast github users.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/ghroast/internal/api/http Service
type Service interface {
	Roast(ctx context.Context, login string) (*app.Roast, error)
	TotalRoasts(ctx context.Context) (int64, error)
}

// NewMux creates router for app's http server.
// clientLimiter is optional.
func NewMux(service Service, timeout time.Duration, clientLimiter *ClientLimiter, l logrus.FieldLogger) http.Handler {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(NewRequestLogMiddleware(l))
	if clientLimiter != nil {
		r.Use(NewClientRateLimitMiddleware(clientLimiter))
	}

	r.Post("/roast", timeoutMiddleware(NewRoastHandler(loginFromBody, service, l)))
	r.Get("/roast/{login}", timeoutMiddleware(NewRoastHandler(loginFromPath, service, l)))
	r.Get("/stats", timeoutMiddleware(NewStatsHandler(service, l)))

	return r
}
