package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/careerlane/job-board-be/internal/worker/domain"
	"github.com/careerlane/job-board-be/internal/worker/storage"
	"github.com/careerlane/job-board-be/shared/postgresql"
	"github.com/careerlane/job-board-be/shared/rabbitmq"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Config holds worker configuration
type Config struct {
	Logger        *slog.Logger
	DBClient      *postgresql.Client
	RabbitClient  *rabbitmq.Client
	Concurrency   int
	PrefetchCount int
}

// notificationStore is the slice of worker storage the processor needs;
// tests substitute a fake.
type notificationStore interface {
	GetApplicationDetail(ctx context.Context, applicationID int64) (*storage.ApplicationDetail, error)
	CreateNotification(ctx context.Context, n *storage.Notification) error
}

// Worker consumes application.submitted events and records a notification
// for each one.
type Worker struct {
	logger        *slog.Logger
	rabbitClient  *rabbitmq.Client
	storage       notificationStore
	acker         amqp.Acknowledger
	concurrency   int
	prefetchCount int
	workerID      string
	eventsChan    chan *domain.ApplicationMessage
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	return &Worker{
		logger:        cfg.Logger,
		rabbitClient:  cfg.RabbitClient,
		storage:       storage.NewStorage(cfg.DBClient.GetDB(), cfg.Logger),
		concurrency:   cfg.Concurrency,
		prefetchCount: cfg.PrefetchCount,
		workerID:      "notifier-" + uuid.New().String(),
		eventsChan:    make(chan *domain.ApplicationMessage),
		stopChan:      make(chan struct{}),
	}
}

// acknowledger returns the settlement target for pooled deliveries. The
// live worker settles on the current channel, re-resolved per message so a
// reconnect picks up the replacement; tests inject a fake.
func (w *Worker) acknowledger() amqp.Acknowledger {
	if w.acker != nil {
		return w.acker
	}
	if ch := w.rabbitClient.GetChannel(); ch != nil {
		return ch
	}
	return nil
}

// Start consumes events until the context is canceled
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting notification worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
	)

	deliveries, err := w.setupConsumer()
	if err != nil {
		return err
	}

	w.spawnWorkerPool(ctx)
	w.startMessageDispatcher(ctx, deliveries)

	return nil
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	w.logger.Info("Stopping notification worker...")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Notification worker stopped")
}
