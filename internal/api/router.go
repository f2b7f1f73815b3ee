// Package api exposes the read side of the app as a JSON API for the web
// front end.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/alexanderramin/taskora/internal/contract"
	"github.com/alexanderramin/taskora/internal/domain"
	"github.com/alexanderramin/taskora/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Services are the use cases the API serves.
type Services struct {
	Analytics    service.AnalyticsService
	Pricing      service.PricingService
	Achievements service.AchievementService
	Dashboard    service.DashboardService
}

type Router struct {
	mux         *chi.Mux
	svc         Services
	defaultUser string
	logger      *zap.Logger
}

// NewRouter builds the API. Requests are attributed to the X-User-ID header,
// falling back to defaultUser.
func NewRouter(svc Services, defaultUser string, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Router{
		mux:         chi.NewRouter(),
		svc:         svc,
		defaultUser: defaultUser,
		logger:      logger.Named("api"),
	}
	r.mux.Use(chimiddleware.Recoverer)
	r.mux.Use(chimiddleware.RequestID)
	r.mux.Use(r.logRequests)

	r.mux.Route("/api", func(api chi.Router) {
		api.Get("/health", r.health)
		api.Get("/analytics", r.analytics)
		api.Get("/board", r.board)
		api.Get("/pricing/tiers", r.pricingTiers)
		api.Get("/plan", r.plan)
		api.Get("/achievements", r.achievements)
		api.Get("/dashboard", r.dashboard)
	})
	return r
}

func (r *Router) Handler() http.Handler {
	return r.mux
}

func (r *Router) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (r *Router) analytics(w http.ResponseWriter, req *http.Request) {
	resp, err := r.svc.Analytics.GetAnalytics(req.Context(), contract.AnalyticsRequest{
		UserID:  r.userID(req),
		TribeID: req.URL.Query().Get("tribe"),
	})
	r.respond(w, resp, err)
}

func (r *Router) board(w http.ResponseWriter, req *http.Request) {
	resp, err := r.svc.Analytics.GetBoard(req.Context(), r.userID(req))
	r.respond(w, resp, err)
}

func (r *Router) pricingTiers(w http.ResponseWriter, req *http.Request) {
	resp, err := r.svc.Pricing.Tiers(req.Context())
	r.respond(w, resp, err)
}

func (r *Router) plan(w http.ResponseWriter, req *http.Request) {
	resp, err := r.svc.Pricing.CurrentPlan(req.Context(), r.userID(req))
	r.respond(w, resp, err)
}

func (r *Router) achievements(w http.ResponseWriter, req *http.Request) {
	resp, err := r.svc.Achievements.Progress(req.Context(), r.userID(req))
	r.respond(w, resp, err)
}

func (r *Router) dashboard(w http.ResponseWriter, req *http.Request) {
	resp, err := r.svc.Dashboard.Dashboard(req.Context(), r.userID(req))
	r.respond(w, resp, err)
}

func (r *Router) userID(req *http.Request) string {
	if id := req.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return r.defaultUser
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (r *Router) respond(w http.ResponseWriter, body any, err error) {
	if err == nil {
		writeJSON(w, http.StatusOK, body)
		return
	}
	status, code := classify(err)
	if status >= http.StatusInternalServerError {
		r.logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, map[string]errorBody{"error": {Code: code, Message: err.Error()}})
}

func classify(err error) (int, string) {
	var ce *contract.Error
	switch {
	case errors.As(err, &ce):
		switch ce.Code {
		case contract.ErrForbidden:
			return http.StatusForbidden, string(ce.Code)
		default:
			return http.StatusBadRequest, string(ce.Code)
		}
	case errors.Is(err, domain.ErrInvalidData):
		return http.StatusUnprocessableEntity, "INVALID_DATA"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (r *Router) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		r.logger.Debug("request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", chimiddleware.GetReqID(req.Context())),
		)
	})
}
