package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/blackvant/backend/internal/domain"
	"github.com/blackvant/backend/internal/dto"
	"github.com/blackvant/backend/internal/service/withdrawalservice"
	"github.com/blackvant/backend/pkg/auth"
	"github.com/blackvant/backend/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, amount decimal.Decimal, currency, method, targetAddress string) (*domain.Withdrawal, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	ListPending(ctx context.Context) ([]domain.Withdrawal, error)
	Approve(ctx context.Context, id, reviewerID int, txID, note string) error
	Reject(ctx context.Context, id, reviewerID int, reason string) error
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

func toDTO(wd domain.Withdrawal) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
		ID:            wd.ID,
		UserID:        wd.UserID,
		Amount:        wd.Amount,
		Currency:      wd.Currency,
		Method:        wd.Method,
		TargetAddress: wd.TargetAddress,
		Status:        wd.Status,
		StatusReason:  wd.StatusReason,
		TxID:          wd.TxID,
		CreatedAt:     wd.CreatedAt,
	}
}

// Create godoc
//
//	@Summary		Request a withdrawal
//	@Description	Create a pending withdrawal; the amount is held from the profit balance immediately.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateWithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing required fields"
//	@Failure		402		{object}	utils.Response	"Insufficient profit balance"
//	@Failure		422		{object}	utils.Response	"Invalid card number"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/me/withdrawals [post]
func (h *WithdrawalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var req dto.CreateWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	withdrawal, err := h.withdrawalService.Create(r.Context(), user.ID, req.Amount, req.Currency, req.Method, req.TargetAddress)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrMissingFields):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, withdrawalservice.ErrInvalidCardNumber):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*withdrawal))
}

// ListOwn godoc
//
//	@Summary		List own withdrawals
//	@Description	Withdrawals of the authenticated user, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/me/withdrawals [get]
func (h *WithdrawalHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	withdrawals, err := h.withdrawalService.ListByUser(r.Context(), user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = toDTO(wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListPending godoc
//
//	@Summary		List pending withdrawals
//	@Description	All withdrawals awaiting review, newest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/withdrawals/pending [get]
func (h *WithdrawalHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawalService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch pending withdrawals")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = toDTO(wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Approve godoc
//
//	@Summary		Approve a withdrawal
//	@Description	Approve a pending withdrawal and record the external transfer reference. Funds were held at creation.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Withdrawal id"
//	@Param			request	body		dto.ReviewRequestDTO	false	"Review payload"
//	@Success		200		{object}	utils.Response			"Withdrawal approved"
//	@Failure		404		{object}	utils.Response			"Withdrawal not found"
//	@Failure		409		{object}	utils.Response			"Withdrawal already processed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/v1/admin/withdrawals/{id}/approve [post]
func (h *WithdrawalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	admin := auth.UserFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	var req dto.ReviewRequestDTO
	json.NewDecoder(r.Body).Decode(&req)

	if err := h.withdrawalService.Approve(r.Context(), id, admin.ID, req.TxID, req.Note); err != nil {
		respondReviewError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Withdrawal approved"})
}

// Reject godoc
//
//	@Summary		Reject a withdrawal
//	@Description	Reject a pending withdrawal and refund the held amount to the profit balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Withdrawal id"
//	@Param			request	body		dto.ReviewRequestDTO	false	"Review payload"
//	@Success		200		{object}	utils.Response			"Withdrawal rejected and profit refunded"
//	@Failure		404		{object}	utils.Response			"Withdrawal not found"
//	@Failure		409		{object}	utils.Response			"Withdrawal already processed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/v1/admin/withdrawals/{id}/reject [post]
func (h *WithdrawalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	admin := auth.UserFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	var req dto.ReviewRequestDTO
	json.NewDecoder(r.Body).Decode(&req)

	if err := h.withdrawalService.Reject(r.Context(), id, admin.ID, req.Reason); err != nil {
		respondReviewError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Withdrawal rejected and profit refunded"})
}

func respondReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, withdrawalservice.ErrWithdrawalNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, withdrawalservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
