package notify

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/avoronin/gameshop/internal/config"
	"github.com/avoronin/gameshop/pkg/clients"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func NewMock(t *testing.T) (*Service, *clients.MockHTTPClientI) {
	cfg := &config.Config{NotifyAddress: "http://localhost:8082"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, client)

	logger := zap.NewExample()
	zap.ReplaceGlobals(logger)
	return service, client
}

func TestService_Start(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_Enqueue(t *testing.T) {
	service, _ := NewMock(t)

	err := service.Enqueue(context.Background(), 1, "order summary")
	assert.NoError(t, err)

	msg := <-service.queue
	assert.Equal(t, 1, msg.OrderID)
	assert.Equal(t, "order summary", msg.Text)
}

func TestService_Enqueue_CanceledContext(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := service.Enqueue(ctx, 1, "order summary")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_Enqueue_FullQueue(t *testing.T) {
	service, _ := NewMock(t)
	service.queue = make(chan Message, 1)

	assert.NoError(t, service.Enqueue(context.Background(), 1, "first"))
	err := service.Enqueue(context.Background(), 2, "second")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "queue is full")
}

func TestService_deliver(t *testing.T) {
	tests := []struct {
		name          string
		httpStatus    int
		clientErr     error
		callCount     int
		expectedError string
	}{
		{
			name:       "delivered on first attempt",
			httpStatus: http.StatusOK,
			callCount:  1,
		},
		{
			name:          "client error exhausts retries",
			clientErr:     errors.New("connection refused"),
			callCount:     3,
			expectedError: "failed to deliver hand-off for order 42 after 3 retries",
		},
		{
			name:          "unexpected status exhausts retries",
			httpStatus:    http.StatusInternalServerError,
			callCount:     3,
			expectedError: "failed to deliver hand-off for order 42 after 3 retries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client := NewMock(t)

			client.EXPECT().
				Post(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.httpStatus, []byte{}, tt.clientErr).
				Times(tt.callCount)

			err := service.deliver(context.Background(), Message{OrderID: 42, Text: "order summary"})

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_deliver_NoWebhook(t *testing.T) {
	service, client := NewMock(t)
	service.url = ""

	client.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := service.deliver(context.Background(), Message{OrderID: 7, Text: "order summary"})
	assert.NoError(t, err)
}

func TestService_deliver_CanceledContext(t *testing.T) {
	service, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := service.deliver(ctx, Message{OrderID: 7, Text: "order summary"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_run(t *testing.T) {
	service, client := NewMock(t)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerPool := NewMockWorkerPoolI(ctrl)
	service.workerPool = workerPool

	done := make(chan struct{})
	workerPool.EXPECT().
		AddTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, task Task) error {
			defer close(done)
			return task()
		}).
		Times(1)
	client.EXPECT().
		Post(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(http.StatusOK, []byte{}, nil).
		Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)

	assert.NoError(t, service.Enqueue(ctx, 9, "order summary"))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("hand-off was not dispatched")
	}
	cancel()
}

func TestWorkerPool(t *testing.T) {
	wp := NewWorkerPool(2)
	defer wp.Close()

	done := make(chan struct{})
	err := wp.AddTask(context.Background(), func() error {
		close(done)
		return nil
	})
	assert.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task was not executed")
	}
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := &WorkerPool{pool: make(chan Task)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
