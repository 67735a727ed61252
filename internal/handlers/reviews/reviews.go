package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/internal/dto"
	"github.com/avoronin/gameshop/internal/service/reviewservice"
	"github.com/avoronin/gameshop/pkg/auth"
	"github.com/avoronin/gameshop/pkg/utils"
)

type Service interface {
	List(ctx context.Context) ([]domain.Review, error)
	Submit(ctx context.Context, userID int, rating int, text string) (*domain.Review, error)
}

type ReviewHandler struct {
	reviewService Service
}

func New(reviewService Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// GetReviews godoc
//
//	@Summary		List reviews
//	@Description	Retrieve the review board, newest first
//	@Tags			Reviews
//	@Produce		json
//	@Success		200	{array}		dto.ReviewResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reviews [get]
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.ReviewResponseDTO, 0, len(reviews))
	for _, review := range reviews {
		response = append(response, dto.ReviewResponseDTO{
			ID:     review.ID,
			Name:   review.Name,
			Rating: review.Rating,
			Text:   review.Text,
			Date:   review.Date,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SubmitReview godoc
//
//	@Summary		Submit a review
//	@Description	Add a review signed with the author's account name. The board persists across restarts.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.SubmitReviewRequestDTO	true	"Rating and text"
//	@Success		200		{object}	dto.ReviewResponseDTO
//	@Failure		400		{object}	utils.Response	"Empty text or rating out of range"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reviews [post]
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SubmitReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := h.reviewService.Submit(r.Context(), userID, req.Rating, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, reviewservice.ErrEmptyReviewText),
			errors.Is(err, reviewservice.ErrInvalidRating):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ReviewResponseDTO{
		ID:     review.ID,
		Name:   review.Name,
		Rating: review.Rating,
		Text:   review.Text,
		Date:   review.Date,
	})
}
