package handlers

import (
	"net/http"

	_ "github.com/avoronin/gameshop/docs"
	authhandlers "github.com/avoronin/gameshop/internal/handlers/auth"
	carthandlers "github.com/avoronin/gameshop/internal/handlers/cart"
	cataloghandlers "github.com/avoronin/gameshop/internal/handlers/catalog"
	promohandlers "github.com/avoronin/gameshop/internal/handlers/promo"
	reviewhandlers "github.com/avoronin/gameshop/internal/handlers/reviews"
	"github.com/avoronin/gameshop/internal/service"
	"github.com/avoronin/gameshop/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	GetOffers(w http.ResponseWriter, r *http.Request)
	GetDeals(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	GetCart(w http.ResponseWriter, r *http.Request)
	AddToCart(w http.ResponseWriter, r *http.Request)
	RemoveFromCart(w http.ResponseWriter, r *http.Request)
	SetCurrency(w http.ResponseWriter, r *http.Request)
	SetDelivery(w http.ResponseWriter, r *http.Request)
	Checkout(w http.ResponseWriter, r *http.Request)
}

type ReviewHandler interface {
	GetReviews(w http.ResponseWriter, r *http.Request)
	SubmitReview(w http.ResponseWriter, r *http.Request)
}

type PromoHandler interface {
	Unlock(w http.ResponseWriter, r *http.Request)
	GetLog(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	CatalogHandler CatalogHandler
	CartHandler    CartHandler
	ReviewHandler  ReviewHandler
	PromoHandler   PromoHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		CatalogHandler: cataloghandlers.New(s.CatalogService),
		CartHandler:    carthandlers.New(s.CartService),
		ReviewHandler:  reviewhandlers.New(s.ReviewService),
		PromoHandler:   promohandlers.New(s.PromoService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/offers", func(r chi.Router) {
			r.Get("/", h.CatalogHandler.GetOffers)
			r.Get("/deals", h.CatalogHandler.GetDeals)
		})
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", h.ReviewHandler.GetReviews)
			r.With(auth.AuthMiddleware).Post("/", h.ReviewHandler.SubmitReview)
		})
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Route("/cart", func(r chi.Router) {
					r.Get("/", h.CartHandler.GetCart)
					r.Post("/", h.CartHandler.AddToCart)
					r.Delete("/{index}", h.CartHandler.RemoveFromCart)
				})
				r.Put("/currency", h.CartHandler.SetCurrency)
				r.Put("/delivery", h.CartHandler.SetDelivery)
				r.Post("/checkout", h.CartHandler.Checkout)
				r.Post("/promo", h.PromoHandler.Unlock)
				r.Get("/admin/log", h.PromoHandler.GetLog)
			})
		})
	})

	return r
}
