package service

import (
	"github.com/avoronin/gameshop/internal/config"
	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/internal/handlers/auth"
	"github.com/avoronin/gameshop/internal/handlers/cart"
	"github.com/avoronin/gameshop/internal/handlers/catalog"
	"github.com/avoronin/gameshop/internal/handlers/promo"
	"github.com/avoronin/gameshop/internal/handlers/reviews"

	pkgauth "github.com/avoronin/gameshop/pkg/auth"

	"github.com/avoronin/gameshop/internal/repo"
	authservice "github.com/avoronin/gameshop/internal/service/authservice"
	cartservice "github.com/avoronin/gameshop/internal/service/cartservice"
	catalogservice "github.com/avoronin/gameshop/internal/service/catalogservice"
	promoservice "github.com/avoronin/gameshop/internal/service/promoservice"
	reviewservice "github.com/avoronin/gameshop/internal/service/reviewservice"
)

type Services struct {
	AuthService    auth.Service
	CatalogService catalog.Service
	CartService    cart.Service
	ReviewService  reviews.Service
	PromoService   promo.Service
}

func New(repo *repo.Repositories, notifier cartservice.Notifier, cfg *config.Config) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.JWTService{}, repo.LogRepo)
	catalogService := catalogservice.New(domain.Catalog())
	cartService := cartservice.New(repo.SessionRepo, repo.OrderRepo, repo.UserRepo, catalogService, notifier, repo.LogRepo, cfg.OperatorHandle)
	reviewService := reviewservice.New(repo.StateRepo, repo.UserRepo, repo.LogRepo)
	promoService := promoservice.New(repo.SessionRepo, repo.LogRepo)

	return &Services{
		AuthService:    authService,
		CatalogService: catalogService,
		CartService:    cartService,
		ReviewService:  reviewService,
		PromoService:   promoService,
	}
}
