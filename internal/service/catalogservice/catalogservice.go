package catalogservice

import (
	"context"
	"errors"

	"github.com/avoronin/gameshop/internal/domain"
)

// Service answers catalog queries over the static offer list. There is no
// repository behind it: the catalog is seeded once and never changes.
type Service struct {
	offers []domain.Offer
}

func New(offers []domain.Offer) *Service {
	return &Service{
		offers: offers,
	}
}

var ErrUnknownProductLine = errors.New("unknown product line")

// List returns offers for one product line, or the whole catalog when line
// is empty.
func (s *Service) List(_ context.Context, line domain.ProductLine) ([]domain.Offer, error) {
	if line == "" {
		offers := make([]domain.Offer, len(s.offers))
		copy(offers, s.offers)
		return offers, nil
	}
	if !domain.IsValidProductLine(line) {
		return nil, ErrUnknownProductLine
	}

	filtered := make([]domain.Offer, 0)
	for _, offer := range s.offers {
		if offer.Line == line {
			filtered = append(filtered, offer)
		}
	}
	return filtered, nil
}

// Deals returns offers with an active discount, i.e. both a badge and an old
// price.
func (s *Service) Deals(_ context.Context) ([]domain.Offer, error) {
	deals := make([]domain.Offer, 0)
	for _, offer := range s.offers {
		if offer.HasDiscount() {
			deals = append(deals, offer)
		}
	}
	return deals, nil
}

// GetOffer returns the offer with the given id, or nil when it is unknown.
func (s *Service) GetOffer(_ context.Context, id string) (*domain.Offer, error) {
	for _, offer := range s.offers {
		if offer.ID == id {
			found := offer
			return &found, nil
		}
	}
	return nil, nil
}
