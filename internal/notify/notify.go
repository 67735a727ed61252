package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avoronin/gameshop/internal/config"
	"github.com/avoronin/gameshop/pkg/clients"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
	queueSize     = 64
)

// Message is one checkout hand-off destined for the operator channel.
type Message struct {
	OrderID int    `json:"order"`
	Text    string `json:"text"`
}

// Service delivers order summaries to the operator webhook. Delivery is
// fire-and-forget from the checkout's point of view: the order is already
// committed when a message enters the queue.
type Service struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
	queue      chan Message
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:        cfg.NotifyAddress,
		client:     client,
		workerPool: NewWorkerPool(4),
		queue:      make(chan Message, queueSize),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notify service started")
	go s.run(ctx)
}

// Enqueue hands a message to the dispatcher without blocking past queue
// capacity or context cancellation.
func (s *Service) Enqueue(ctx context.Context, orderID int, text string) error {
	msg := Message{OrderID: orderID, Text: text}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.queue <- msg:
		return nil
	default:
		return fmt.Errorf("notify queue is full, dropping order %d", orderID)
	}
}

func (s *Service) run(ctx context.Context) {
	var g errgroup.Group

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping notify service")
			if err := g.Wait(); err != nil {
				zap.L().Error("Error delivering hand-offs", zap.Error(err))
			}
			return
		case msg := <-s.queue:
			g.Go(func() error {
				return s.workerPool.AddTask(ctx, func() error {
					return s.deliver(ctx, msg)
				})
			})
		}
	}
}

func (s *Service) deliver(ctx context.Context, msg Message) error {
	if s.url == "" {
		// no webhook configured: the deep link handed to the client is the
		// only delivery channel
		zap.L().Info("Operator webhook disabled, hand-off kept client-side", zap.Int("order", msg.OrderID))
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode hand-off for order %d: %w", msg.OrderID, err)
	}

	url := s.url + "/api/notify"
	headers := http.Header{"Content-Type": []string{"application/json"}}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, err := s.client.Post(url, headers, body)
			if err == nil && statusCode == http.StatusOK {
				zap.L().Info("Hand-off delivered", zap.Int("order", msg.OrderID))
				return nil
			}

			if err != nil {
				zap.L().Warn("Hand-off delivery failed", zap.Int("order", msg.OrderID), zap.Int("attempt", attempt), zap.Error(err))
			} else {
				zap.L().Warn("Unexpected status code", zap.Int("status", statusCode), zap.Int("order", msg.OrderID), zap.Int("attempt", attempt))
			}

			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			return fmt.Errorf("failed to deliver hand-off for order %d after %d retries", msg.OrderID, maxRetries)
		}
	}
	return nil
}
