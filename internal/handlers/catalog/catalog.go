package catalog

import (
	"context"
	"errors"
	"net/http"

	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/internal/dto"
	"github.com/avoronin/gameshop/internal/service/catalogservice"
	"github.com/avoronin/gameshop/pkg/currency"
	"github.com/avoronin/gameshop/pkg/utils"
)

type Service interface {
	List(ctx context.Context, line domain.ProductLine) ([]domain.Offer, error)
	Deals(ctx context.Context) ([]domain.Offer, error)
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetOffers godoc
//
//	@Summary		List catalog offers
//	@Description	Retrieve catalog offers, optionally filtered by product line. Prices are rendered in the requested display currency.
//	@Tags			Catalog
//	@Produce		json
//	@Param			line		query		string	false	"Product line filter"	Enums(game-credits, in-app-gold, messaging-credits)
//	@Param			currency	query		string	false	"Display currency"		Enums(RUB, EUR, UAH)
//	@Success		200			{array}		dto.OfferDTO
//	@Failure		400			{object}	utils.Response	"Unknown product line or currency"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/offers [get]
func (h *CatalogHandler) GetOffers(w http.ResponseWriter, r *http.Request) {
	cur, ok := displayCurrency(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown currency")
		return
	}

	line := domain.ProductLine(r.URL.Query().Get("line"))
	offers, err := h.catalogService.List(r.Context(), line)
	if err != nil {
		if errors.Is(err, catalogservice.ErrUnknownProductLine) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOfferDTOs(offers, cur))
}

// GetDeals godoc
//
//	@Summary		List discounted offers
//	@Description	Retrieve only offers carrying a badge and a crossed-out old price
//	@Tags			Catalog
//	@Produce		json
//	@Param			currency	query		string	false	"Display currency"	Enums(RUB, EUR, UAH)
//	@Success		200			{array}		dto.OfferDTO
//	@Failure		400			{object}	utils.Response	"Unknown currency"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/offers/deals [get]
func (h *CatalogHandler) GetDeals(w http.ResponseWriter, r *http.Request) {
	cur, ok := displayCurrency(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown currency")
		return
	}

	offers, err := h.catalogService.Deals(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOfferDTOs(offers, cur))
}

func displayCurrency(r *http.Request) (currency.Currency, bool) {
	raw := r.URL.Query().Get("currency")
	if raw == "" {
		return currency.RUB, true
	}
	cur := currency.Currency(raw)
	if !currency.IsValid(cur) {
		return "", false
	}
	return cur, true
}

func toOfferDTOs(offers []domain.Offer, cur currency.Currency) []dto.OfferDTO {
	response := make([]dto.OfferDTO, 0, len(offers))
	for _, offer := range offers {
		item := dto.OfferDTO{
			ID:       offer.ID,
			Name:     offer.Name,
			Amount:   offer.Amount,
			Price:    offer.Price,
			OldPrice: offer.OldPrice,
			Badge:    offer.Badge,
			Line:     string(offer.Line),
			Display:  currency.Format(offer.Price, cur),
		}
		if offer.HasDiscount() {
			item.Economy = currency.Format(offer.Economy(), cur)
		}
		response = append(response, item)
	}
	return response
}
