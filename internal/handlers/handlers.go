package handlers

import (
	"net/http"

	_ "github.com/blackvant/backend/docs"
	depositshandlers "github.com/blackvant/backend/internal/handlers/deposits"
	profithandlers "github.com/blackvant/backend/internal/handlers/profit"
	statshandlers "github.com/blackvant/backend/internal/handlers/stats"
	usershandlers "github.com/blackvant/backend/internal/handlers/users"
	withdrawalshandlers "github.com/blackvant/backend/internal/handlers/withdrawals"
	"github.com/blackvant/backend/internal/service"
	"github.com/blackvant/backend/pkg/auth"
	"github.com/blackvant/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type ProfitHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Distribute(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type StatsHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler       UserHandler
	DepositHandler    DepositHandler
	WithdrawalHandler WithdrawalHandler
	ProfitHandler     ProfitHandler
	StatsHandler      StatsHandler

	authMiddleware func(next http.Handler) http.Handler
}

func New(s *service.Services, verifier auth.TokenVerifier) *Handlers {
	return &Handlers{
		UserHandler:       usershandlers.New(),
		DepositHandler:    depositshandlers.New(s.DepositService),
		WithdrawalHandler: withdrawalshandlers.New(s.WithdrawalService),
		ProfitHandler:     profithandlers.New(s.ProfitService),
		StatsHandler:      statshandlers.New(s.StatsService),
		authMiddleware:    auth.Middleware(verifier, s.AuthService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "BlackVant backend running"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authMiddleware)

		r.Get("/me", h.UserHandler.Me)
		r.Route("/me/deposits", func(r chi.Router) {
			r.Get("/", h.DepositHandler.ListOwn)
			r.Post("/", h.DepositHandler.Create)
		})
		r.Route("/me/withdrawals", func(r chi.Router) {
			r.Get("/", h.WithdrawalHandler.ListOwn)
			r.Post("/", h.WithdrawalHandler.Create)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAdmin)

			r.Get("/deposits/pending", h.DepositHandler.ListPending)
			r.Post("/deposits/{id}/approve", h.DepositHandler.Approve)
			r.Post("/deposits/{id}/reject", h.DepositHandler.Reject)

			r.Get("/withdrawals/pending", h.WithdrawalHandler.ListPending)
			r.Post("/withdrawals/{id}/approve", h.WithdrawalHandler.Approve)
			r.Post("/withdrawals/{id}/reject", h.WithdrawalHandler.Reject)

			r.Get("/stats", h.StatsHandler.Overview)

			r.Route("/profit", func(r chi.Router) {
				r.Post("/calculate", h.ProfitHandler.Calculate)
				r.Post("/distribute", h.ProfitHandler.Distribute)
				r.Get("/history", h.ProfitHandler.History)
				r.Get("/export", h.ProfitHandler.Export)
			})
		})
	})

	return r
}
