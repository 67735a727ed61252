package cart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/internal/dto"
	"github.com/avoronin/gameshop/internal/service/cartservice"
	"github.com/avoronin/gameshop/pkg/auth"
	"github.com/avoronin/gameshop/pkg/currency"
	"github.com/avoronin/gameshop/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	GetCart(ctx context.Context, userID int) (domain.Session, error)
	AddToCart(ctx context.Context, userID int, offerID string) (domain.Session, error)
	RemoveFromCart(ctx context.Context, userID int, index int) (domain.Session, error)
	SetCurrency(ctx context.Context, userID int, cur currency.Currency) error
	SetDelivery(ctx context.Context, userID int, line domain.ProductLine, value string) error
	Checkout(ctx context.Context, userID int, paymentCredential string, delivery map[domain.ProductLine]string) (*cartservice.CheckoutResult, error)
}

type CartHandler struct {
	cartService Service
}

func New(cartService Service) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GetCart godoc
//
//	@Summary		Get the cart
//	@Description	Retrieve the current cart with prices in the session display currency
//	@Tags			Cart
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.CartResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	session, err := h.cartService.GetCart(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCartDTO(session))
}

// AddToCart godoc
//
//	@Summary		Add an offer to the cart
//	@Description	Append one instance of a catalog offer to the cart. The same offer may be added repeatedly.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.AddCartRequestDTO	true	"Offer to add"
//	@Success		200		{object}	dto.CartResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Offer not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/cart [post]
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddCartRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.cartService.AddToCart(r.Context(), userID, req.OfferID)
	if err != nil {
		if errors.Is(err, cartservice.ErrOfferNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCartDTO(session))
}

// RemoveFromCart godoc
//
//	@Summary		Remove a cart line
//	@Description	Remove the cart line at the given position. Other lines keep their relative order.
//	@Tags			Cart
//	@Produce		json
//	@Security		BearerAuth
//	@Param			index	path		int	true	"Zero-based cart line index"
//	@Success		200		{object}	dto.CartResponseDTO
//	@Failure		400		{object}	utils.Response	"Index out of range"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/cart/{index} [delete]
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid cart index")
		return
	}

	session, err := h.cartService.RemoveFromCart(r.Context(), userID, index)
	if err != nil {
		if errors.Is(err, cartservice.ErrCartIndexOutOfRange) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCartDTO(session))
}

// SetCurrency godoc
//
//	@Summary		Switch the display currency
//	@Description	Change the currency used to render all prices for this session. Base prices never change.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CurrencyRequestDTO	true	"Display currency"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Unknown currency"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/currency [put]
func (h *CartHandler) SetCurrency(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CurrencyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.cartService.SetCurrency(r.Context(), userID, currency.Currency(req.Currency)); err != nil {
		if errors.Is(err, cartservice.ErrUnknownCurrency) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Currency updated"})
}

// SetDelivery godoc
//
//	@Summary		Set a delivery identifier
//	@Description	Store the delivery identifier for one product line, e.g. a player ID or a phone number
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.DeliveryRequestDTO	true	"Product line and identifier"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Unknown product line"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/delivery [put]
func (h *CartHandler) SetDelivery(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DeliveryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.cartService.SetDelivery(r.Context(), userID, domain.ProductLine(req.Line), req.Value); err != nil {
		if errors.Is(err, cartservice.ErrUnknownProductLine) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Delivery info updated"})
}

// Checkout godoc
//
//	@Summary		Place the order
//	@Description	Validate the payment credential and delivery identifiers, persist the order and return the operator link. The cart is cleared only on success.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CheckoutRequestDTO	true	"Payment credential and optional delivery overrides"
//	@Success		200		{object}	dto.CheckoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Empty cart or missing delivery info"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.Response	"Invalid payment credential"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/checkout [post]
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	delivery := make(map[domain.ProductLine]string, len(req.Delivery))
	for line, value := range req.Delivery {
		delivery[domain.ProductLine(line)] = value
	}

	result, err := h.cartService.Checkout(r.Context(), userID, req.Card, delivery)
	if err != nil {
		var missing *cartservice.MissingDeliveryError
		switch {
		case errors.Is(err, cartservice.ErrInvalidPaymentCredential):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.As(err, &missing):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, cartservice.ErrEmptyCart),
			errors.Is(err, cartservice.ErrUnknownProductLine):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{
		Message: "Order placed",
		OrderID: result.Order.ID,
		Total:   result.Total,
		Link:    result.Link,
	})
}

func toCartDTO(session domain.Session) dto.CartResponseDTO {
	items := make([]dto.CartItemDTO, 0, len(session.Cart))
	for i, line := range session.Cart {
		items = append(items, dto.CartItemDTO{
			Index:   i,
			OfferID: line.Offer.ID,
			Name:    line.Offer.Name,
			Amount:  line.Offer.Amount,
			Line:    string(line.Offer.Line),
			Display: currency.Format(line.Offer.Price, session.Currency),
		})
	}
	return dto.CartResponseDTO{
		Items:    items,
		Currency: string(session.Currency),
		Total:    currency.Format(session.Total(), session.Currency),
	}
}
