package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/blackvant/backend/docs"
	"github.com/blackvant/backend/internal/domain"
	"github.com/blackvant/backend/internal/handlers/deposits"
	"github.com/blackvant/backend/internal/handlers/profit"
	"github.com/blackvant/backend/internal/handlers/stats"
	"github.com/blackvant/backend/internal/handlers/withdrawals"
	"github.com/blackvant/backend/internal/service"
	"github.com/blackvant/backend/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       auth.NewMockIdentitySource(ctrl),
		DepositService:    deposits.NewMockService(ctrl),
		WithdrawalService: withdrawals.NewMockService(ctrl),
		ProfitService:     profit.NewMockService(ctrl),
		StatsService:      stats.NewMockService(ctrl),
	}
	verifier := auth.NewMockTokenVerifier(ctrl)

	h := New(services, verifier)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func newTestHandlers(ctrl *gomock.Controller, user *domain.User) *Handlers {
	mockUserHandler := NewMockUserHandler(ctrl)
	mockDepositHandler := NewMockDepositHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)
	mockProfitHandler := NewMockProfitHandler(ctrl)
	mockStatsHandler := NewMockStatsHandler(ctrl)

	mockUserHandler.EXPECT().Me(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().ListOwn(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().ListPending(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().Reject(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().ListOwn(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().ListPending(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().Approve(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().Reject(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfitHandler.EXPECT().Calculate(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfitHandler.EXPECT().Distribute(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfitHandler.EXPECT().History(gomock.Any(), gomock.Any()).AnyTimes()
	mockProfitHandler.EXPECT().Export(gomock.Any(), gomock.Any()).AnyTimes()
	mockStatsHandler.EXPECT().Overview(gomock.Any(), gomock.Any()).AnyTimes()

	mockVerifier := auth.NewMockTokenVerifier(ctrl)
	mockIdentity := auth.NewMockIdentitySource(ctrl)
	if user != nil {
		claims := &auth.Claims{Email: user.Email}
		claims.Subject = user.SubjectID
		mockVerifier.EXPECT().Verify("valid-token").Return(claims, nil).AnyTimes()
		mockIdentity.EXPECT().Identify(gomock.Any(), user.SubjectID, user.Email).Return(user, nil).AnyTimes()
	}

	return &Handlers{
		UserHandler:       mockUserHandler,
		DepositHandler:    mockDepositHandler,
		WithdrawalHandler: mockWithdrawalHandler,
		ProfitHandler:     mockProfitHandler,
		StatsHandler:      mockStatsHandler,
		authMiddleware:    auth.Middleware(mockVerifier, mockIdentity),
	}
}

func TestInitRoutesUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newTestHandlers(ctrl, nil)
	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/", http.StatusOK},
		{"GET", "/api/v1/me", http.StatusUnauthorized},
		{"GET", "/api/v1/me/deposits/", http.StatusUnauthorized},
		{"POST", "/api/v1/me/deposits/", http.StatusUnauthorized},
		{"GET", "/api/v1/me/withdrawals/", http.StatusUnauthorized},
		{"POST", "/api/v1/me/withdrawals/", http.StatusUnauthorized},
		{"GET", "/api/v1/admin/deposits/pending", http.StatusUnauthorized},
		{"POST", "/api/v1/admin/deposits/1/approve", http.StatusUnauthorized},
		{"POST", "/api/v1/admin/deposits/1/reject", http.StatusUnauthorized},
		{"GET", "/api/v1/admin/withdrawals/pending", http.StatusUnauthorized},
		{"POST", "/api/v1/admin/withdrawals/1/approve", http.StatusUnauthorized},
		{"POST", "/api/v1/admin/withdrawals/1/reject", http.StatusUnauthorized},
		{"GET", "/api/v1/admin/stats", http.StatusUnauthorized},
		{"POST", "/api/v1/admin/profit/calculate", http.StatusUnauthorized},
		{"POST", "/api/v1/admin/profit/distribute", http.StatusUnauthorized},
		{"GET", "/api/v1/admin/profit/history", http.StatusUnauthorized},
		{"GET", "/api/v1/admin/profit/export", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutesRoleEnforcement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name   string
		role   string
		url    string
		status int
	}{
		{"client reads own profile", domain.RoleClient, "/api/v1/me", http.StatusOK},
		{"client denied admin stats", domain.RoleClient, "/api/v1/admin/stats", http.StatusForbidden},
		{"client denied profit history", domain.RoleClient, "/api/v1/admin/profit/history", http.StatusForbidden},
		{"admin reads stats", domain.RoleAdmin, "/api/v1/admin/stats", http.StatusOK},
		{"admin reads profit history", domain.RoleAdmin, "/api/v1/admin/profit/history", http.StatusOK},
		{"superadmin reads stats", domain.RoleSuperadmin, "/api/v1/admin/stats", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{ID: 1, SubjectID: "sub-1", Email: "user@example.com", Role: tt.role}
			h := newTestHandlers(ctrl, user)
			router := chi.NewRouter()
			h.InitRoutes(router)

			req := httptest.NewRequest("GET", tt.url, nil)
			req.Header.Set("Authorization", "Bearer valid-token")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
