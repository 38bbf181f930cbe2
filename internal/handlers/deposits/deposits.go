package deposits

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
	"github.com/blackvant/backend/internal/service/depositservice"
	"github.com/blackvant/backend/pkg/auth"
	"github.com/blackvant/backend/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, amount decimal.Decimal, currency, method, proofURL, txID string) (*domain.Deposit, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Deposit, error)
	ListPending(ctx context.Context) ([]domain.Deposit, error)
	Approve(ctx context.Context, id, reviewerID int) error
	Reject(ctx context.Context, id, reviewerID int, reason string) error
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

func toDTO(d domain.Deposit) dto.DepositResponseDTO {
	return dto.DepositResponseDTO{
		ID:           d.ID,
		UserID:       d.UserID,
		Amount:       d.Amount,
		Currency:     d.Currency,
		Method:       d.Method,
		ProofURL:     d.ProofURL,
		TxID:         d.TxID,
		Status:       d.Status,
		StatusReason: d.StatusReason,
		CreatedAt:    d.CreatedAt,
	}
}

// Create godoc
//
//	@Summary		Submit a deposit request
//	@Description	Create a pending deposit for the authenticated user.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing required fields"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/me/deposits [post]
func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var req dto.CreateDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deposit, err := h.depositService.Create(r.Context(), user.ID, req.Amount, req.Currency, req.Method, req.ProofURL, req.TxID)
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrMissingFields):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDTO(*deposit))
}

// ListOwn godoc
//
//	@Summary		List own deposits
//	@Description	Deposits of the authenticated user, newest first.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/me/deposits [get]
func (h *DepositHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	deposits, err := h.depositService.ListByUser(r.Context(), user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}

	response := make([]dto.DepositResponseDTO, len(deposits))
	for i, d := range deposits {
		response[i] = toDTO(d)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListPending godoc
//
//	@Summary		List pending deposits
//	@Description	All deposits awaiting review, newest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/deposits/pending [get]
func (h *DepositHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.depositService.ListPending(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch pending deposits")
		return
	}

	response := make([]dto.DepositResponseDTO, len(deposits))
	for i, d := range deposits {
		response[i] = toDTO(d)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Approve godoc
//
//	@Summary		Approve a deposit
//	@Description	Approve a pending deposit and credit the owner's investment balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Deposit id"
//	@Success		200	{object}	utils.Response	"Deposit approved"
//	@Failure		404	{object}	utils.Response	"Deposit not found"
//	@Failure		409	{object}	utils.Response	"Deposit already processed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/v1/admin/deposits/{id}/approve [post]
func (h *DepositHandler) Approve(w http.ResponseWriter, r *http.Request) {
	admin := auth.UserFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deposit id")
		return
	}

	if err := h.depositService.Approve(r.Context(), id, admin.ID); err != nil {
		respondReviewError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Deposit approved"})
}

// Reject godoc
//
//	@Summary		Reject a deposit
//	@Description	Reject a pending deposit with an optional reason.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Deposit id"
//	@Param			request	body		dto.ReviewRequestDTO	false	"Review payload"
//	@Success		200		{object}	utils.Response			"Deposit rejected"
//	@Failure		404		{object}	utils.Response			"Deposit not found"
//	@Failure		409		{object}	utils.Response			"Deposit already processed"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/v1/admin/deposits/{id}/reject [post]
func (h *DepositHandler) Reject(w http.ResponseWriter, r *http.Request) {
	admin := auth.UserFromContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deposit id")
		return
	}

	var req dto.ReviewRequestDTO
	json.NewDecoder(r.Body).Decode(&req)

	if err := h.depositService.Reject(r.Context(), id, admin.ID, req.Reason); err != nil {
		respondReviewError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Deposit rejected"})
}

func respondReviewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, depositservice.ErrDepositNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, depositservice.ErrAlreadyProcessed):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
