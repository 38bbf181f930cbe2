package users

import (
	"net/http"

	"github.com/blackvant/backend/internal/dto"
	"github.com/blackvant/backend/pkg/auth"
	"github.com/blackvant/backend/pkg/utils"
)

type UserHandler struct{}

func New() *UserHandler {
	return &UserHandler{}
}

// Me godoc
//
//	@Summary		Get own profile
//	@Description	Return the authenticated user's profile and balances.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile with balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Router			/api/v1/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		ID:                user.ID,
		Email:             user.Email,
		FullName:          user.FullName,
		Role:              user.Role,
		InvestmentBalance: user.InvestmentBalance,
		ProfitBalance:     user.ProfitBalance,
		CreatedAt:         user.CreatedAt,
	})
}
