package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/internal/dto"
	"github.com/avoronin/gameshop/internal/service/cartservice"
	"github.com/avoronin/gameshop/pkg/auth"
	"github.com/avoronin/gameshop/pkg/currency"
	"github.com/avoronin/gameshop/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const testUserID = 1

func NewMock(t *testing.T) (*CartHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, testUserID)
	return req.WithContext(ctx)
}

func testSession() domain.Session {
	return domain.Session{
		UserID:   testUserID,
		Currency: currency.RUB,
		Cart: []domain.CartLine{
			{Offer: domain.Offer{ID: "1", Name: "Стартовый набор", Amount: "100 кредитов", Price: 250, Line: domain.GameCredits}},
			{Offer: domain.Offer{ID: "s2", Name: "Базовый набор", Amount: "350 голды", Price: 550, Line: domain.InAppGold}},
		},
		Delivery: map[domain.ProductLine]string{},
	}
}

func TestGetCartHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedTotal string
	}{
		{
			name: "Cart with items",
			prepareMock: func() {
				service.EXPECT().GetCart(gomock.Any(), testUserID).Return(testSession(), nil)
			},
			expectedCode:  http.StatusOK,
			expectedTotal: "800₽",
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetCart(gomock.Any(), testUserID).Return(domain.Session{}, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.GetCart(rr, authRequest("GET", "/api/user/cart", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp dto.CartResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp.Items, 2)
				assert.Equal(t, tt.expectedTotal, resp.Total)
				assert.Equal(t, "RUB", resp.Currency)
			}
		})
	}
}

func TestAddToCartHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Offer added",
			body: `{"offer_id":"s2"}`,
			prepareMock: func() {
				service.EXPECT().AddToCart(gomock.Any(), testUserID, "s2").Return(testSession(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown offer",
			body: `{"offer_id":"nope"}`,
			prepareMock: func() {
				service.EXPECT().AddToCart(gomock.Any(), testUserID, "nope").Return(domain.Session{}, cartservice.ErrOfferNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: cartservice.ErrOfferNotFound.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.AddToCart(rr, authRequest("POST", "/api/user/cart", []byte(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestRemoveFromCartHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		index         string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:  "Line removed",
			index: "0",
			prepareMock: func() {
				service.EXPECT().RemoveFromCart(gomock.Any(), testUserID, 0).Return(testSession(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Index out of range",
			index: "9",
			prepareMock: func() {
				service.EXPECT().RemoveFromCart(gomock.Any(), testUserID, 9).Return(domain.Session{}, cartservice.ErrCartIndexOutOfRange)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: cartservice.ErrCartIndexOutOfRange.Error(),
		},
		{
			name:          "Non-numeric index",
			index:         "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid cart index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authRequest("DELETE", "/api/user/cart/"+tt.index, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("index", tt.index)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler.RemoveFromCart(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestSetCurrencyHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Currency switched",
			body: `{"currency":"EUR"}`,
			prepareMock: func() {
				service.EXPECT().SetCurrency(gomock.Any(), testUserID, currency.EUR).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown currency",
			body: `{"currency":"USD"}`,
			prepareMock: func() {
				service.EXPECT().SetCurrency(gomock.Any(), testUserID, currency.Currency("USD")).Return(cartservice.ErrUnknownCurrency)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: cartservice.ErrUnknownCurrency.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.SetCurrency(rr, authRequest("PUT", "/api/user/currency", []byte(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestSetDeliveryHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Delivery info stored",
			body: `{"line":"in-app-gold","value":"player-777"}`,
			prepareMock: func() {
				service.EXPECT().SetDelivery(gomock.Any(), testUserID, domain.InAppGold, "player-777").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown product line",
			body: `{"line":"loot-boxes","value":"x"}`,
			prepareMock: func() {
				service.EXPECT().SetDelivery(gomock.Any(), testUserID, domain.ProductLine("loot-boxes"), "x").Return(cartservice.ErrUnknownProductLine)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: cartservice.ErrUnknownProductLine.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.SetDelivery(rr, authRequest("PUT", "/api/user/delivery", []byte(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestCheckoutHandler(t *testing.T) {
	handler, service := NewMock(t)

	successResult := &cartservice.CheckoutResult{
		Order: &domain.Order{ID: 17, UserID: testUserID, Total: 800, Currency: currency.RUB},
		Total: "800₽",
		Link:  "https://t.me/gameshop_orders?text=order",
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Order placed",
			body: `{"card":"1234567812345678"}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), testUserID, "1234567812345678", map[domain.ProductLine]string{}).
					Return(successResult, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Delivery overrides forwarded",
			body: `{"card":"1234567812345678","delivery":{"in-app-gold":"player-777"}}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), testUserID, "1234567812345678", map[domain.ProductLine]string{domain.InAppGold: "player-777"}).
					Return(successResult, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid payment credential",
			body: `{"card":"123"}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), testUserID, "123", map[domain.ProductLine]string{}).
					Return(nil, cartservice.ErrInvalidPaymentCredential)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: cartservice.ErrInvalidPaymentCredential.Error(),
		},
		{
			name: "Missing delivery info",
			body: `{"card":"1234567812345678"}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), testUserID, "1234567812345678", map[domain.ProductLine]string{}).
					Return(nil, &cartservice.MissingDeliveryError{Line: domain.GameCredits})
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "missing delivery info for game-credits",
		},
		{
			name: "Empty cart",
			body: `{"card":"1234567812345678"}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), testUserID, "1234567812345678", map[domain.ProductLine]string{}).
					Return(nil, cartservice.ErrEmptyCart)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: cartservice.ErrEmptyCart.Error(),
		},
		{
			name: "Storage failure",
			body: `{"card":"1234567812345678"}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), testUserID, "1234567812345678", map[domain.ProductLine]string{}).
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Checkout(rr, authRequest("POST", "/api/user/checkout", []byte(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var resp dto.CheckoutResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, 17, resp.OrderID)
			assert.Equal(t, "800₽", resp.Total)
			assert.NotEmpty(t, resp.Link)
		})
	}
}
