package promo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/internal/dto"
	"github.com/avoronin/gameshop/internal/service/promoservice"
	"github.com/avoronin/gameshop/pkg/auth"
	"github.com/avoronin/gameshop/pkg/utils"
)

type Service interface {
	Unlock(ctx context.Context, userID int, code string) error
	GetLog(ctx context.Context, userID int) ([]domain.LogEntry, error)
}

type PromoHandler struct {
	promoService Service
}

func New(promoService Service) *PromoHandler {
	return &PromoHandler{
		promoService: promoService,
	}
}

// Unlock godoc
//
//	@Summary		Unlock the admin view
//	@Description	Submit the promo code. An exact match unlocks the action log for this session.
//	@Tags			Promo
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.PromoRequestDTO	true	"Promo code"
//	@Success		200		{object}	dto.PromoResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or wrong code"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/promo [post]
func (h *PromoHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PromoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.promoService.Unlock(r.Context(), userID, req.Code); err != nil {
		if errors.Is(err, promoservice.ErrInvalidPromoCode) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PromoResponseDTO{
		Message: "Admin view unlocked",
	})
}

// GetLog godoc
//
//	@Summary		Get the action log
//	@Description	Retrieve the in-memory action log, newest first. Requires a prior promo unlock.
//	@Tags			Promo
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.LogEntryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin view locked"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/admin/log [get]
func (h *PromoHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	entries, err := h.promoService.GetLog(r.Context(), userID)
	if err != nil {
		if errors.Is(err, promoservice.ErrAdminLocked) {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.LogEntryDTO, 0, len(entries))
	for _, entry := range entries {
		response = append(response, dto.LogEntryDTO{
			ID:     int(entry.ID),
			Action: entry.Action,
			Detail: entry.Detail,
			At:     entry.Time.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
