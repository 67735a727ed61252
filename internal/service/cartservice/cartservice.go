package cartservice

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/pkg/currency"
	"go.uber.org/zap"
)

type SessionRepo interface {
	Get(ctx context.Context, userID int) (domain.Session, error)
	AppendLine(ctx context.Context, userID int, line domain.CartLine) error
	RemoveLine(ctx context.Context, userID int, index int) (bool, error)
	SetCurrency(ctx context.Context, userID int, cur currency.Currency) error
	SetDelivery(ctx context.Context, userID int, line domain.ProductLine, value string) error
	ClearOrder(ctx context.Context, userID int) error
}

type OrderRepo interface {
	Save(ctx context.Context, order *domain.Order, items []domain.OrderItem) (*domain.Order, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type Catalog interface {
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)
}

type Notifier interface {
	Enqueue(ctx context.Context, orderID int, text string) error
}

type LogRepo interface {
	Append(ctx context.Context, action, detail string) domain.LogEntry
}

type Service struct {
	sessionRepo    SessionRepo
	orderRepo      OrderRepo
	userRepo       UserRepo
	catalog        Catalog
	notifier       Notifier
	logRepo        LogRepo
	operatorHandle string
}

func New(sessionRepo SessionRepo, orderRepo OrderRepo, userRepo UserRepo, catalog Catalog, notifier Notifier, logRepo LogRepo, operatorHandle string) *Service {
	return &Service{
		sessionRepo:    sessionRepo,
		orderRepo:      orderRepo,
		userRepo:       userRepo,
		catalog:        catalog,
		notifier:       notifier,
		logRepo:        logRepo,
		operatorHandle: operatorHandle,
	}
}

const paymentCredentialLen = 16

var (
	ErrOfferNotFound            = errors.New("offer not found")
	ErrCartIndexOutOfRange      = errors.New("cart index out of range")
	ErrUnknownCurrency          = errors.New("unknown currency")
	ErrUnknownProductLine       = errors.New("unknown product line")
	ErrEmptyCart                = errors.New("cart is empty")
	ErrInvalidPaymentCredential = errors.New("payment credential must be exactly 16 characters")
)

// MissingDeliveryError reports the first product line in the cart without a
// delivery identifier. Lines are checked in the fixed catalog order.
type MissingDeliveryError struct {
	Line domain.ProductLine
}

func (e *MissingDeliveryError) Error() string {
	return fmt.Sprintf("missing delivery info for %s", e.Line)
}

// CheckoutResult is everything the caller needs after a successful checkout:
// the persisted order, the operator hand-off text and the pre-filled link.
type CheckoutResult struct {
	Order   *domain.Order
	Summary string
	Link    string
	Total   string
}

func (s *Service) GetCart(ctx context.Context, userID int) (domain.Session, error) {
	return s.sessionRepo.Get(ctx, userID)
}

func (s *Service) AddToCart(ctx context.Context, userID int, offerID string) (domain.Session, error) {
	offer, err := s.catalog.GetOffer(ctx, offerID)
	if err != nil {
		return domain.Session{}, err
	}
	if offer == nil {
		zap.L().Info("unknown offer requested", zap.String("offer_id", offerID))
		return domain.Session{}, ErrOfferNotFound
	}

	if err := s.sessionRepo.AppendLine(ctx, userID, domain.CartLine{Offer: *offer}); err != nil {
		return domain.Session{}, err
	}
	s.logRepo.Append(ctx, "cart.add", fmt.Sprintf("%s (%s)", offer.Name, offer.Amount))
	return s.sessionRepo.Get(ctx, userID)
}

func (s *Service) RemoveFromCart(ctx context.Context, userID int, index int) (domain.Session, error) {
	removed, err := s.sessionRepo.RemoveLine(ctx, userID, index)
	if err != nil {
		return domain.Session{}, err
	}
	if !removed {
		return domain.Session{}, ErrCartIndexOutOfRange
	}
	s.logRepo.Append(ctx, "cart.remove", fmt.Sprintf("line %d", index))
	return s.sessionRepo.Get(ctx, userID)
}

func (s *Service) SetCurrency(ctx context.Context, userID int, cur currency.Currency) error {
	if !currency.IsValid(cur) {
		return ErrUnknownCurrency
	}
	return s.sessionRepo.SetCurrency(ctx, userID, cur)
}

func (s *Service) SetDelivery(ctx context.Context, userID int, line domain.ProductLine, value string) error {
	if !domain.IsValidProductLine(line) {
		return ErrUnknownProductLine
	}
	return s.sessionRepo.SetDelivery(ctx, userID, line, value)
}

// Checkout runs the pre-commit validation gate and, only when every check
// passes, persists the order, queues the operator hand-off and resets the
// cart. Any validation failure leaves the session untouched.
func (s *Service) Checkout(ctx context.Context, userID int, paymentCredential string, delivery map[domain.ProductLine]string) (*CheckoutResult, error) {
	for line, value := range delivery {
		if err := s.SetDelivery(ctx, userID, line, value); err != nil {
			return nil, err
		}
	}

	session, err := s.sessionRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(session.Cart) == 0 {
		return nil, ErrEmptyCart
	}
	if len([]rune(paymentCredential)) != paymentCredentialLen {
		return nil, ErrInvalidPaymentCredential
	}
	cartLines := session.Lines()
	for _, line := range domain.ProductLines {
		if cartLines[line] && strings.TrimSpace(session.Delivery[line]) == "" {
			return nil, &MissingDeliveryError{Line: line}
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}

	order := &domain.Order{
		UserID:    userID,
		Total:     session.Total(),
		Currency:  session.Currency,
		CreatedAt: time.Now(),
	}
	items := make([]domain.OrderItem, 0, len(session.Cart))
	for _, line := range session.Cart {
		items = append(items, domain.OrderItem{
			OfferID: line.Offer.ID,
			Name:    line.Offer.Name,
			Amount:  line.Offer.Amount,
			Price:   line.Offer.Price,
		})
	}
	order, err = s.orderRepo.Save(ctx, order, items)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}

	summary := composeSummary(user, &session)
	link := "https://t.me/" + s.operatorHandle + "?text=" + url.QueryEscape(summary)

	// Hand-off is fire-and-forget: a full queue must not fail the checkout.
	if err := s.notifier.Enqueue(ctx, order.ID, summary); err != nil {
		zap.L().Error("can't enqueue operator hand-off", zap.Int("order_id", order.ID), zap.Error(err))
	}

	if err := s.sessionRepo.ClearOrder(ctx, userID); err != nil {
		return nil, err
	}

	total := currency.Format(order.Total, order.Currency)
	s.logRepo.Append(ctx, "checkout", fmt.Sprintf("order %d, %s", order.ID, total))
	zap.L().Info("order placed", zap.Int("order_id", order.ID), zap.Int("user_id", userID), zap.String("total", total))

	return &CheckoutResult{
		Order:   order,
		Summary: summary,
		Link:    link,
		Total:   total,
	}, nil
}

func composeSummary(user *domain.User, session *domain.Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Новый заказ от %s (%s)\n\n", user.Name, user.Email)
	for _, line := range session.Cart {
		fmt.Fprintf(&b, "- %s %s — %s\n", line.Offer.Name, line.Offer.Amount, currency.Format(line.Offer.Price, session.Currency))
	}
	fmt.Fprintf(&b, "\nИтого: %s\n", currency.Format(session.Total(), session.Currency))

	cartLines := session.Lines()
	b.WriteString("\nДоставка:\n")
	for _, line := range domain.ProductLines {
		if cartLines[line] {
			fmt.Fprintf(&b, "%s: %s\n", line, session.Delivery[line])
		}
	}
	return b.String()
}
