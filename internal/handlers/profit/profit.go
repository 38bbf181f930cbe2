package profit

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/blackvant/backend/internal/domain"
	"github.com/blackvant/backend/internal/dto"
	"github.com/blackvant/backend/internal/service/profitservice"
	"github.com/blackvant/backend/pkg/auth"
	"github.com/blackvant/backend/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Preview(ctx context.Context, percent decimal.Decimal) (*profitservice.Summary, error)
	Distribute(ctx context.Context, in profitservice.DistributeInput) (*profitservice.Result, error)
	History(ctx context.Context, page, pageSize int) ([]domain.ProfitDistribution, int, error)
	Export(ctx context.Context) ([]domain.ProfitDistribution, error)
}

type ProfitHandler struct {
	profitService Service
}

func New(profitService Service) *ProfitHandler {
	return &ProfitHandler{
		profitService: profitService,
	}
}

const dateLayout = "2006-01-02"

// Calculate godoc
//
//	@Summary		Preview a profit distribution
//	@Description	Compute each eligible user's share for the given percent without persisting anything.
//	@Tags			Profit
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProfitRequestDTO	true	"Distribution parameters"
//	@Success		200		{object}	dto.ProfitPreviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing required fields"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/profit/calculate [post]
func (h *ProfitHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DeclaredProfit.IsZero() || req.DistributionPercent.IsZero() || req.DistributionDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	summary, err := h.profitService.Preview(r.Context(), req.DistributionPercent)
	if err != nil {
		switch {
		case errors.Is(err, profitservice.ErrInvalidPercent):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	preview := make([]dto.ProfitPayoutPreviewDTO, len(summary.Payouts))
	for i, p := range summary.Payouts {
		preview[i] = dto.ProfitPayoutPreviewDTO{
			UserID:             p.UserID,
			Email:              p.Email,
			InvestmentSnapshot: p.InvestmentSnapshot,
			ShareAmount:        p.ShareAmount,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfitPreviewResponseDTO{
		InvestmentPool:    summary.InvestmentPool,
		TotalToDistribute: summary.TotalDistributed,
		RecipientsCount:   summary.RecipientsCount,
		Preview:           preview,
	})
}

// Distribute godoc
//
//	@Summary		Commit a profit distribution
//	@Description	Recompute shares inside one transaction, persist the distribution and payouts, and credit each recipient's profit balance.
//	@Tags			Profit
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProfitRequestDTO	true	"Distribution parameters"
//	@Success		200		{object}	dto.ProfitDistributeResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing required fields"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/profit/distribute [post]
func (h *ProfitHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	admin := auth.UserFromContext(r.Context())

	var req dto.ProfitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DistributionDate == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	date, err := time.Parse(dateLayout, req.DistributionDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid distribution date")
		return
	}

	result, err := h.profitService.Distribute(r.Context(), profitservice.DistributeInput{
		DeclaredProfit: req.DeclaredProfit,
		Percent:        req.DistributionPercent,
		Date:           date,
		AdminID:        admin.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, profitservice.ErrMissingFields), errors.Is(err, profitservice.ErrInvalidPercent):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProfitDistributeResponseDTO{
		Message:          "Profit distributed successfully",
		DistributionID:   result.DistributionID,
		Recipients:       result.RecipientsCount,
		TotalDistributed: result.TotalDistributed,
	})
}

// History godoc
//
//	@Summary		List distribution history
//	@Description	Past distributions, newest first, paginated.
//	@Tags			Profit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page		query		int	false	"Page number"		default(1)
//	@Param			pageSize	query		int	false	"Records per page"	default(20)
//	@Success		200			{object}	dto.ProfitHistoryResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		403			{object}	utils.Response	"Admin access required"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/profit/history [get]
func (h *ProfitHandler) History(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize < 1 {
		pageSize = 20
	}

	records, total, err := h.profitService.History(r.Context(), page, pageSize)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch distribution history")
		return
	}

	response := dto.ProfitHistoryResponseDTO{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Records:  make([]dto.ProfitDistributionDTO, len(records)),
	}
	for i, rec := range records {
		response.Records[i] = toDTO(rec)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toDTO(d domain.ProfitDistribution) dto.ProfitDistributionDTO {
	return dto.ProfitDistributionDTO{
		ID:                  d.ID,
		DeclaredProfit:      d.DeclaredProfit,
		DistributionPercent: d.DistributionPercent,
		DeclaredDate:        d.DeclaredDate,
		InvestmentPool:      d.InvestmentPool,
		TotalDistributed:    d.TotalDistributed,
		RecipientsCount:     d.RecipientsCount,
		CreatedByEmail:      d.CreatedByEmail,
		Status:              d.Status,
	}
}

// Export godoc
//
//	@Summary		Export distribution history
//	@Description	Full distribution history as a CSV attachment.
//	@Tags			Profit
//	@Security		BearerAuth
//	@Produce		text/csv
//	@Success		200	{string}	string	"CSV report"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/profit/export [get]
func (h *ProfitHandler) Export(w http.ResponseWriter, r *http.Request) {
	records, err := h.profitService.Export(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to export distribution history")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=profit-history.csv")

	cw := csv.NewWriter(w)
	cw.Write([]string{
		"Distribution ID", "Declared Date", "Declared Profit", "Percent",
		"Investment Pool", "Total Distributed", "Recipients", "Created By",
	})
	for _, rec := range records {
		cw.Write([]string{
			strconv.Itoa(rec.ID),
			rec.DeclaredDate.Format(dateLayout),
			rec.DeclaredProfit.String(),
			rec.DistributionPercent.String(),
			rec.InvestmentPool.String(),
			rec.TotalDistributed.String(),
			strconv.Itoa(rec.RecipientsCount),
			rec.CreatedByEmail,
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		zap.L().Error("can't write csv report", zap.Error(err))
	}
}
