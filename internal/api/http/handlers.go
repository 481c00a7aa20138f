package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/ghroast/internal/app"
	"github.com/sirupsen/logrus"
)

const maxRequestBodySize = 64 * 1024

// RoastRequest is the body of POST /roast.
type RoastRequest struct {
	Username string `json:"username"`
}

// RoastResponse is returned by roast endpoints.
type RoastResponse struct {
	Name               string  `json:"name"`
	Login              string  `json:"login"`
	AvatarURL          string  `json:"avatarUrl"`
	HTMLURL            string  `json:"htmlUrl"`
	TotalContributions int     `json:"totalContributions"`
	TotalStars         int     `json:"totalStars"`
	MostUsedLanguage   *string `json:"mostUsedLanguage"`
	Roast              string  `json:"roast"`
	TotalRoasts        int64   `json:"totalRoasts"`
}

// StatsResponse is returned by GET /stats.
type StatsResponse struct {
	TotalRoasts int64 `json:"totalRoasts"`
}

func newRoastResponse(r *app.Roast) RoastResponse {
	resp := RoastResponse{
		Name:               r.Profile.Name,
		Login:              r.Profile.Login,
		AvatarURL:          r.Profile.AvatarURL,
		HTMLURL:            r.Profile.HTMLURL,
		TotalContributions: r.TotalContributions,
		TotalStars:         r.TotalStars,
		Roast:              r.Text,
		TotalRoasts:        r.TotalRoasts,
	}
	if r.HasLanguage {
		lang := r.MostUsedLanguage
		resp.MostUsedLanguage = &lang
	}

	return resp
}

// NewRoastHandler creates handlerfunc returning roast response.
func NewRoastHandler(
	getLogin func(*http.Request) (string, error),
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		login, err := getLogin(r)
		if err != nil {
			writeError(w, err, l)
			return
		}

		roast, err := service.Roast(r.Context(), login)
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, newRoastResponse(roast), l)
	}
}

// NewStatsHandler creates handlerfunc returning global roast stats.
func NewStatsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := service.TotalRoasts(r.Context())
		if err != nil {
			writeError(w, err, l)
			return
		}

		writeJSON(w, StatsResponse{TotalRoasts: total}, l)
	}
}

func loginFromBody(r *http.Request) (string, error) {
	var req RoastRequest
	body := io.LimitReader(r.Body, maxRequestBodySize)
	if err := jsoniter.ConfigFastest.NewDecoder(body).Decode(&req); err != nil {
		return "", app.InvalidRequestError("invalid request body")
	}

	return req.Username, nil
}

func loginFromPath(r *http.Request) (string, error) {
	return chi.URLParam(r, "login"), nil
}

// errorStatus maps app errors to http statuses.
func errorStatus(err error) int {
	switch {
	case app.IsInvalidRequestError(err):
		return http.StatusBadRequest
	case app.IsTooManyRequestsError(err):
		return http.StatusTooManyRequests
	case app.IsTimeoutError(err):
		return http.StatusGatewayTimeout
	case app.IsUpstreamFetchError(err), app.IsGraphQLError(err), app.IsGenerationError(err):
		return http.StatusBadGateway
	case errors.Is(err, errTooManyClientRequests):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes raw error message, clients show it to the user as is.
func writeError(w http.ResponseWriter, err error, l logrus.FieldLogger) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		l.Errorf("handler error: %v", err)
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, v interface{}, l logrus.FieldLogger) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	if err := jsoniter.ConfigFastest.NewEncoder(w).Encode(v); err != nil {
		l.Errorf("encoding response: %v", err)
	}
}
