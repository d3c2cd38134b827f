package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/prasetyadi/pkl-placement/internal/handler"
)

func NewRouter(h *handler.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/companies", func(r chi.Router) {
		r.Post("/", h.CreateCompany)
		r.Get("/", h.ListCompanies)
		r.Get("/{id}", h.GetCompany)
	})

	r.Route("/students", func(r chi.Router) {
		r.Post("/", h.CreateStudent)
		r.Get("/{id}", h.GetStudent)
		r.Get("/{id}/invitations", h.ListStudentInvitations)
		r.Get("/{id}/groups", h.ListStudentGroups)
	})

	r.Route("/groups", func(r chi.Router) {
		r.Post("/", h.CreateGroup)
		r.Get("/{id}", h.GetGroup)
		r.Put("/{id}", h.UpdateGroup)
		r.Post("/{id}/invitations", h.InviteMember)
		r.Post("/{id}/submit", h.SubmitGroup)
		r.Post("/{id}/withdraw", h.WithdrawGroup)
		r.Post("/{id}/approve", h.ApproveGroup)
		r.Post("/{id}/reject", h.RejectGroup)
	})

	r.Route("/invitations", func(r chi.Router) {
		r.Post("/{id}/respond", h.RespondInvitation)
		r.Delete("/{id}", h.RevokeInvitation)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
