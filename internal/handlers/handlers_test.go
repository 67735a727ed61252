package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/avoronin/gameshop/docs"
	"github.com/avoronin/gameshop/internal/handlers/auth"
	"github.com/avoronin/gameshop/internal/handlers/cart"
	"github.com/avoronin/gameshop/internal/handlers/catalog"
	"github.com/avoronin/gameshop/internal/handlers/promo"
	"github.com/avoronin/gameshop/internal/handlers/reviews"
	"github.com/avoronin/gameshop/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		CatalogService: catalog.NewMockService(ctrl),
		CartService:    cart.NewMockService(ctrl),
		ReviewService:  reviews.NewMockService(ctrl),
		PromoService:   promo.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockCatalogHandler := NewMockCatalogHandler(ctrl)
	mockCartHandler := NewMockCartHandler(ctrl)
	mockReviewHandler := NewMockReviewHandler(ctrl)
	mockPromoHandler := NewMockPromoHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().GetOffers(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().GetDeals(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().GetCart(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().AddToCart(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().RemoveFromCart(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().SetCurrency(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().SetDelivery(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().Checkout(gomock.Any(), gomock.Any()).AnyTimes()
	mockReviewHandler.EXPECT().GetReviews(gomock.Any(), gomock.Any()).AnyTimes()
	mockReviewHandler.EXPECT().SubmitReview(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromoHandler.EXPECT().Unlock(gomock.Any(), gomock.Any()).AnyTimes()
	mockPromoHandler.EXPECT().GetLog(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		CatalogHandler: mockCatalogHandler,
		CartHandler:    mockCartHandler,
		ReviewHandler:  mockReviewHandler,
		PromoHandler:   mockPromoHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/offers", http.StatusOK},
		{"GET", "/api/offers/deals", http.StatusOK},
		{"GET", "/api/reviews", http.StatusOK},
		{"POST", "/api/reviews", http.StatusUnauthorized},
		{"GET", "/api/user/cart", http.StatusUnauthorized},
		{"POST", "/api/user/cart", http.StatusUnauthorized},
		{"DELETE", "/api/user/cart/0", http.StatusUnauthorized},
		{"PUT", "/api/user/currency", http.StatusUnauthorized},
		{"PUT", "/api/user/delivery", http.StatusUnauthorized},
		{"POST", "/api/user/checkout", http.StatusUnauthorized},
		{"POST", "/api/user/promo", http.StatusUnauthorized},
		{"GET", "/api/user/admin/log", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
