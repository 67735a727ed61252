package sessionrepo

import (
	"context"
	"sync"

	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/pkg/currency"
)

// Repository keeps per-user view state in process memory. State is created
// lazily with defaults and is gone after a restart; only reviews survive
// outside this store.
type Repository struct {
	mu       sync.RWMutex
	sessions map[int]*domain.Session
}

func New() *Repository {
	return &Repository{
		sessions: make(map[int]*domain.Session),
	}
}

// session returns the stored state for userID, creating defaults on first
// access. Callers must hold the lock.
func (r *Repository) session(userID int) *domain.Session {
	s, ok := r.sessions[userID]
	if !ok {
		s = domain.NewSession(userID)
		r.sessions[userID] = s
	}
	return s
}

// Get returns a copy of the session so callers can't mutate shared state.
func (r *Repository) Get(_ context.Context, userID int) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(userID)
	copied := domain.Session{
		UserID:        s.UserID,
		Currency:      s.Currency,
		Cart:          make([]domain.CartLine, len(s.Cart)),
		Delivery:      make(map[domain.ProductLine]string, len(s.Delivery)),
		PromoUnlocked: s.PromoUnlocked,
	}
	copy(copied.Cart, s.Cart)
	for line, value := range s.Delivery {
		copied.Delivery[line] = value
	}
	return copied, nil
}

func (r *Repository) AppendLine(_ context.Context, userID int, line domain.CartLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(userID)
	s.Cart = append(s.Cart, line)
	return nil
}

// RemoveLine drops the cart line at index, preserving the order of the rest.
// It reports false when the index is out of range.
func (r *Repository) RemoveLine(_ context.Context, userID int, index int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(userID)
	if index < 0 || index >= len(s.Cart) {
		return false, nil
	}
	s.Cart = append(s.Cart[:index], s.Cart[index+1:]...)
	return true, nil
}

func (r *Repository) SetCurrency(_ context.Context, userID int, cur currency.Currency) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session(userID).Currency = cur
	return nil
}

func (r *Repository) SetDelivery(_ context.Context, userID int, line domain.ProductLine, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session(userID).Delivery[line] = value
	return nil
}

func (r *Repository) SetPromoUnlocked(_ context.Context, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.session(userID).PromoUnlocked = true
	return nil
}

// ClearOrder resets the cart and delivery fields after a successful checkout.
// Currency choice and the promo flag survive.
func (r *Repository) ClearOrder(_ context.Context, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.session(userID)
	s.Cart = nil
	s.Delivery = make(map[domain.ProductLine]string)
	return nil
}
