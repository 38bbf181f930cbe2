package stats

import (
	"context"
	"net/http"

	"github.com/blackvant/backend/internal/dto"
	"github.com/blackvant/backend/internal/service/statsservice"
	"github.com/blackvant/backend/pkg/utils"
)

type Service interface {
	Overview(ctx context.Context) (*statsservice.Stats, error)
}

type StatsHandler struct {
	statsService Service
}

func New(statsService Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Overview godoc
//
//	@Summary		Platform statistics
//	@Description	Aggregate totals for the admin dashboard.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/stats [get]
func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Overview(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate stats")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO{
		TotalUsers:               stats.TotalUsers,
		TotalDepositsApproved:    stats.TotalDepositsApproved,
		TotalWithdrawalsApproved: stats.TotalWithdrawalsApproved,
		PendingDeposits:          stats.PendingDeposits,
		PendingWithdrawals:       stats.PendingWithdrawals,
		TotalInvestmentPool:      stats.TotalInvestmentPool,
		TodayDistributed:         stats.TodayDistributed,
	})
}
