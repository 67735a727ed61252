package cartservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/avoronin/gameshop/internal/domain"
	logrepo "github.com/avoronin/gameshop/internal/repo/log-repo"
	sessionrepo "github.com/avoronin/gameshop/internal/repo/session-repo"
	"github.com/avoronin/gameshop/internal/service/catalogservice"
	"github.com/avoronin/gameshop/pkg/currency"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const testUserID = 1

func NewMock(t *testing.T) (*Service, *sessionrepo.Repository, *MockOrderRepo, *MockUserRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	sessions := sessionrepo.New()
	orderRepo := NewMockOrderRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	catalog := catalogservice.New(domain.Catalog())

	service := New(sessions, orderRepo, userRepo, catalog, notifier, logrepo.New(), "gameshop_orders")
	defer ctrl.Finish()
	return service, sessions, orderRepo, userRepo, notifier
}

func TestAddToCart(t *testing.T) {
	service, _, _, _, _ := NewMock(t)
	ctx := context.Background()

	session, err := service.AddToCart(ctx, testUserID, "1")
	assert.NoError(t, err)
	assert.Len(t, session.Cart, 1)
	assert.Equal(t, "Starter Pack", session.Cart[0].Offer.Name)

	// duplicates are allowed
	session, err = service.AddToCart(ctx, testUserID, "1")
	assert.NoError(t, err)
	assert.Len(t, session.Cart, 2)
	assert.Equal(t, 200, session.Total())
}

func TestAddToCart_UnknownOffer(t *testing.T) {
	service, sessions, _, _, _ := NewMock(t)
	ctx := context.Background()

	_, err := service.AddToCart(ctx, testUserID, "does-not-exist")
	assert.ErrorIs(t, err, ErrOfferNotFound)

	session, _ := sessions.Get(ctx, testUserID)
	assert.Empty(t, session.Cart)
}

func TestRemoveFromCart(t *testing.T) {
	service, _, _, _, _ := NewMock(t)
	ctx := context.Background()

	for _, id := range []string{"1", "s1", "2"} {
		_, err := service.AddToCart(ctx, testUserID, id)
		assert.NoError(t, err)
	}

	session, err := service.RemoveFromCart(ctx, testUserID, 1)
	assert.NoError(t, err)
	assert.Len(t, session.Cart, 2)
	assert.Equal(t, "1", session.Cart[0].Offer.ID)
	assert.Equal(t, "2", session.Cart[1].Offer.ID)

	_, err = service.RemoveFromCart(ctx, testUserID, 5)
	assert.ErrorIs(t, err, ErrCartIndexOutOfRange)
}

func TestSetCurrency(t *testing.T) {
	service, sessions, _, _, _ := NewMock(t)
	ctx := context.Background()

	assert.NoError(t, service.SetCurrency(ctx, testUserID, currency.EUR))
	session, _ := sessions.Get(ctx, testUserID)
	assert.Equal(t, currency.EUR, session.Currency)

	assert.ErrorIs(t, service.SetCurrency(ctx, testUserID, currency.Currency("USD")), ErrUnknownCurrency)
}

func TestSetDelivery(t *testing.T) {
	service, sessions, _, _, _ := NewMock(t)
	ctx := context.Background()

	assert.NoError(t, service.SetDelivery(ctx, testUserID, domain.GameCredits, "player123"))
	session, _ := sessions.Get(ctx, testUserID)
	assert.Equal(t, "player123", session.Delivery[domain.GameCredits])

	assert.ErrorIs(t, service.SetDelivery(ctx, testUserID, domain.ProductLine("gift-cards"), "x"), ErrUnknownProductLine)
}

func TestCurrencySwitchKeepsBaseTotal(t *testing.T) {
	service, _, _, _, _ := NewMock(t)
	ctx := context.Background()

	session, err := service.AddToCart(ctx, testUserID, "1") // 100 RUB base
	assert.NoError(t, err)
	assert.Equal(t, 100, session.Total())

	assert.NoError(t, service.SetCurrency(ctx, testUserID, currency.EUR))
	session, _ = service.GetCart(ctx, testUserID)
	assert.Equal(t, 100, session.Total())
	assert.Equal(t, "1€", currency.Format(session.Total(), session.Currency))

	assert.NoError(t, service.SetCurrency(ctx, testUserID, currency.UAH))
	session, _ = service.GetCart(ctx, testUserID)
	assert.Equal(t, "40₴", currency.Format(session.Total(), session.Currency))
}

func TestCheckout_EmptyCart(t *testing.T) {
	service, _, _, _, _ := NewMock(t)

	_, err := service.Checkout(context.Background(), testUserID, "1234567890123456", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_InvalidPaymentCredential(t *testing.T) {
	service, sessions, _, _, _ := NewMock(t)
	ctx := context.Background()

	_, err := service.AddToCart(ctx, testUserID, "1")
	assert.NoError(t, err)

	tests := []struct {
		name string
		card string
	}{
		{name: "Fifteen characters", card: "123456789012345"},
		{name: "Seventeen characters", card: "12345678901234567"},
		{name: "Empty", card: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Checkout(ctx, testUserID, tt.card, nil)
			assert.ErrorIs(t, err, ErrInvalidPaymentCredential)
		})
	}

	session, _ := sessions.Get(ctx, testUserID)
	assert.Len(t, session.Cart, 1, "failed checkout must not touch the cart")
}

func TestCheckout_MissingDeliveryInfo(t *testing.T) {
	service, sessions, _, _, _ := NewMock(t)
	ctx := context.Background()

	_, err := service.AddToCart(ctx, testUserID, "1") // game-credits
	assert.NoError(t, err)
	_, err = service.AddToCart(ctx, testUserID, "t1") // messaging-credits
	assert.NoError(t, err)

	_, err = service.Checkout(ctx, testUserID, "1234567890123456", map[domain.ProductLine]string{
		domain.GameCredits: "player123",
	})

	var missing *MissingDeliveryError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.MessagingCredits, missing.Line)

	session, _ := sessions.Get(ctx, testUserID)
	assert.Len(t, session.Cart, 2, "failed checkout must not touch the cart")
}

func TestCheckout_DeliveryCheckOrder(t *testing.T) {
	service, _, _, _, _ := NewMock(t)
	ctx := context.Background()

	// all three lines present, nothing filled in: game-credits is reported first
	for _, id := range []string{"t1", "s1", "1"} {
		_, err := service.AddToCart(ctx, testUserID, id)
		assert.NoError(t, err)
	}

	_, err := service.Checkout(ctx, testUserID, "1234567890123456", nil)
	var missing *MissingDeliveryError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, domain.GameCredits, missing.Line)
}

func TestCheckout_Success(t *testing.T) {
	service, sessions, orderRepo, userRepo, notifier := NewMock(t)
	ctx := context.Background()

	_, err := service.AddToCart(ctx, testUserID, "1") // 100
	assert.NoError(t, err)
	_, err = service.AddToCart(ctx, testUserID, "2") // 120
	assert.NoError(t, err)
	assert.NoError(t, service.SetCurrency(ctx, testUserID, currency.EUR))

	userRepo.EXPECT().FindByID(ctx, testUserID).Return(&domain.User{
		ID:    testUserID,
		Name:  "Игрок",
		Email: "player@mail.com",
	}, nil)
	orderRepo.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, order *domain.Order, items []domain.OrderItem) (*domain.Order, error) {
			assert.Equal(t, 220, order.Total)
			assert.Equal(t, currency.EUR, order.Currency)
			assert.Len(t, items, 2)
			order.ID = 42
			return order, nil
		})
	notifier.EXPECT().Enqueue(ctx, 42, gomock.Any()).Return(nil)

	result, err := service.Checkout(ctx, testUserID, "1234567890123456", map[domain.ProductLine]string{
		domain.GameCredits: "player123",
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, result.Order.ID)
	assert.Equal(t, "2€", result.Total)
	assert.True(t, strings.HasPrefix(result.Link, "https://t.me/gameshop_orders?text="))
	assert.Contains(t, result.Summary, "Игрок")
	assert.Contains(t, result.Summary, "player123")
	assert.Contains(t, result.Summary, "Starter Pack")

	session, _ := sessions.Get(ctx, testUserID)
	assert.Empty(t, session.Cart, "cart must be cleared after checkout")
	assert.Empty(t, session.Delivery, "delivery fields must be cleared after checkout")
	assert.Equal(t, currency.EUR, session.Currency, "currency choice survives checkout")
}

func TestCheckout_OrderSaveFails(t *testing.T) {
	service, sessions, orderRepo, userRepo, _ := NewMock(t)
	ctx := context.Background()

	_, err := service.AddToCart(ctx, testUserID, "1")
	assert.NoError(t, err)

	userRepo.EXPECT().FindByID(ctx, testUserID).Return(&domain.User{ID: testUserID, Name: "Игрок", Email: "player@mail.com"}, nil)
	orderRepo.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	_, err = service.Checkout(ctx, testUserID, "1234567890123456", map[domain.ProductLine]string{
		domain.GameCredits: "player123",
	})
	assert.Error(t, err)

	session, _ := sessions.Get(ctx, testUserID)
	assert.Len(t, session.Cart, 1, "cart survives a failed persist")
}

func TestCheckout_NotifierFailureDoesNotFailCheckout(t *testing.T) {
	service, _, orderRepo, userRepo, notifier := NewMock(t)
	ctx := context.Background()

	_, err := service.AddToCart(ctx, testUserID, "1")
	assert.NoError(t, err)

	userRepo.EXPECT().FindByID(ctx, testUserID).Return(&domain.User{ID: testUserID, Name: "Игрок", Email: "player@mail.com"}, nil)
	orderRepo.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, order *domain.Order, items []domain.OrderItem) (*domain.Order, error) {
			order.ID = 7
			return order, nil
		})
	notifier.EXPECT().Enqueue(ctx, 7, gomock.Any()).Return(errors.New("queue full"))

	result, err := service.Checkout(ctx, testUserID, "1234567890123456", map[domain.ProductLine]string{
		domain.GameCredits: "player123",
	})
	assert.NoError(t, err)
	assert.Equal(t, 7, result.Order.ID)
}
