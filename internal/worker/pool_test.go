package worker

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/careerlane/job-board-be/internal/worker/domain"
	"github.com/careerlane/job-board-be/internal/worker/storage"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settleCall struct {
	tag     uint64
	acked   bool
	requeue bool
}

// fakeAcknowledger records every settlement instead of talking to a channel
type fakeAcknowledger struct {
	calls []settleCall
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.calls = append(f.calls, settleCall{tag: tag, acked: true})
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.calls = append(f.calls, settleCall{tag: tag, requeue: requeue})
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.calls = append(f.calls, settleCall{tag: tag, requeue: requeue})
	return nil
}

func testWorkerWithAcker(store notificationStore, acker amqp.Acknowledger) *Worker {
	w := testWorker(store)
	w.acker = acker
	return w
}

func TestHandleEvent(t *testing.T) {
	detail := &storage.ApplicationDetail{
		ApplicationID: 7,
		JobID:         3,
		ApplicantName: "Jordan Doe",
		Email:         "jordan@example.com",
		AppliedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		JobTitle:      "Backend Engineer",
		CompanyName:   "Acme",
	}
	msg := &domain.ApplicationMessage{ApplicationID: 7, JobID: 3, DeliveryTag: 42}

	t.Run("successful processing acks the delivery", func(t *testing.T) {
		acker := &fakeAcknowledger{}
		w := testWorkerWithAcker(&fakeNotificationStore{detail: detail}, acker)

		w.handleEvent(context.Background(), msg, "notifier-test-0")

		require.Len(t, acker.calls, 1)
		assert.True(t, acker.calls[0].acked)
		assert.Equal(t, uint64(42), acker.calls[0].tag)
	})

	t.Run("unreachable store nacks with requeue", func(t *testing.T) {
		acker := &fakeAcknowledger{}
		store := &fakeNotificationStore{
			detailErr: fmt.Errorf("dial tcp 127.0.0.1:5432: %w", syscall.ECONNREFUSED),
		}
		w := testWorkerWithAcker(store, acker)

		w.handleEvent(context.Background(), msg, "notifier-test-0")

		require.Len(t, acker.calls, 1)
		assert.False(t, acker.calls[0].acked)
		assert.True(t, acker.calls[0].requeue)
		assert.Equal(t, uint64(42), acker.calls[0].tag)
	})

	t.Run("missing application nacks without requeue", func(t *testing.T) {
		acker := &fakeAcknowledger{}
		w := testWorkerWithAcker(&fakeNotificationStore{detailErr: domain.ErrApplicationNotFound}, acker)

		w.handleEvent(context.Background(), msg, "notifier-test-0")

		require.Len(t, acker.calls, 1)
		assert.False(t, acker.calls[0].acked)
		assert.False(t, acker.calls[0].requeue)
	})

	t.Run("other store failure nacks without requeue", func(t *testing.T) {
		acker := &fakeAcknowledger{}
		store := &fakeNotificationStore{detail: detail, createErr: errors.New("insert failed")}
		w := testWorkerWithAcker(store, acker)

		w.handleEvent(context.Background(), msg, "notifier-test-0")

		require.Len(t, acker.calls, 1)
		assert.False(t, acker.calls[0].acked)
		assert.False(t, acker.calls[0].requeue)
	})
}
