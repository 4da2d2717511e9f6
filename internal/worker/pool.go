package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/careerlane/job-board-be/internal/worker/domain"
	"github.com/careerlane/job-board-be/shared/postgresql"
)

// spawnWorkerPool spawns the configured number of processing goroutines
func (w *Worker) spawnWorkerPool(ctx context.Context) {
	w.logger.Info("Spawning worker pool",
		slog.Int("concurrency", w.concurrency),
		slog.String("worker_id", w.workerID),
	)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.workerLoop(ctx, i)
	}
}

// workerLoop is the main processing loop for each pool goroutine
func (w *Worker) workerLoop(ctx context.Context, workerNum int) {
	defer w.wg.Done()

	workerName := fmt.Sprintf("%s-%d", w.workerID, workerNum)
	w.logger.Info("Worker goroutine started",
		slog.String("worker_name", workerName),
	)

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Worker goroutine stopping - stopChan closed",
				slog.String("worker_name", workerName),
			)
			return

		case <-ctx.Done():
			w.logger.Info("Worker goroutine stopping - context canceled",
				slog.String("worker_name", workerName),
			)
			return

		case msg, ok := <-w.eventsChan:
			if !ok {
				return
			}

			w.handleEvent(ctx, msg, workerName)
		}
	}
}

// handleEvent processes one event and settles its delivery
func (w *Worker) handleEvent(ctx context.Context, msg *domain.ApplicationMessage, workerName string) {
	err := w.processEvent(ctx, msg)

	ack := w.acknowledger()
	if ack == nil {
		w.logger.Error("Failed to get RabbitMQ channel for ACK/NACK",
			slog.String("worker_name", workerName),
			slog.Int64("application_id", msg.ApplicationID),
		)
		return
	}

	if err != nil {
		// Requeue only when the store is unreachable; everything else is
		// a permanent failure for this message
		requeue := postgresql.IsUnavailable(err)

		w.logger.Error("Event processing failed",
			slog.String("worker_name", workerName),
			slog.Int64("application_id", msg.ApplicationID),
			slog.Bool("requeue", requeue),
			slog.String("error", err.Error()),
		)

		if nackErr := ack.Nack(msg.DeliveryTag, false, requeue); nackErr != nil {
			w.logger.Error("Failed to NACK message",
				slog.String("worker_name", workerName),
				slog.String("error", nackErr.Error()),
			)
		}
		return
	}

	if ackErr := ack.Ack(msg.DeliveryTag, false); ackErr != nil {
		w.logger.Error("Failed to ACK message",
			slog.String("worker_name", workerName),
			slog.String("error", ackErr.Error()),
		)
	}
}
