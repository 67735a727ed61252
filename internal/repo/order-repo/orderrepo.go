package orderrepo

import (
	"context"

	"github.com/avoronin/gameshop/internal/domain"
	"github.com/avoronin/gameshop/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Save persists a completed order together with its line items. The order and
// its items commit atomically; a failure on any item rolls back everything.
func (r *Repository) Save(ctx context.Context, order *domain.Order, items []domain.OrderItem) (*domain.Order, error) {
	orderQuery := `
        INSERT INTO orders (user_id, total, currency, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	itemQuery := `
        INSERT INTO order_items (order_id, offer_id, name, amount, price)
        VALUES ($1, $2, $3, $4, $5)
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, orderQuery, order.UserID, order.Total, order.Currency, order.CreatedAt).Scan(&order.ID)
		if err != nil {
			zap.L().Error("can't save order", zap.Error(err))
			return err
		}
		for _, item := range items {
			_, err := r.db.Exec(ctx, itemQuery, order.ID, item.OfferID, item.Name, item.Amount, item.Price)
			if err != nil {
				zap.L().Error("can't save order item", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
