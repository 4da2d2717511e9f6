package worker

import (
	"context"
	"testing"

	"github.com/careerlane/job-board-be/internal/worker/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartMessageDispatcher(t *testing.T) {
	dispatch := func(t *testing.T, body string, tag uint64) (*fakeAcknowledger, chan *domain.ApplicationMessage) {
		t.Helper()

		acker := &fakeAcknowledger{}
		w := testWorker(nil)
		w.eventsChan = make(chan *domain.ApplicationMessage, 1)

		deliveries := make(chan amqp.Delivery, 1)
		deliveries <- amqp.Delivery{
			Acknowledger: acker,
			DeliveryTag:  tag,
			Body:         []byte(body),
		}
		close(deliveries)

		// Returns once the delivery channel drains
		w.startMessageDispatcher(context.Background(), deliveries)
		return acker, w.eventsChan
	}

	t.Run("malformed JSON is nacked without requeue", func(t *testing.T) {
		acker, events := dispatch(t, `{application_id: 7`, 9)

		require.Len(t, acker.calls, 1)
		assert.False(t, acker.calls[0].acked)
		assert.False(t, acker.calls[0].requeue)
		assert.Equal(t, uint64(9), acker.calls[0].tag)
		assert.Empty(t, events)
	})

	t.Run("missing application_id is nacked without requeue", func(t *testing.T) {
		acker, events := dispatch(t, `{"application_id":0,"job_id":3}`, 10)

		require.Len(t, acker.calls, 1)
		assert.False(t, acker.calls[0].acked)
		assert.False(t, acker.calls[0].requeue)
		assert.Empty(t, events)
	})

	t.Run("valid event is dispatched with its delivery tag", func(t *testing.T) {
		acker, events := dispatch(t, `{"application_id":7,"job_id":3}`, 11)

		assert.Empty(t, acker.calls)
		require.Len(t, events, 1)

		msg := <-events
		assert.Equal(t, int64(7), msg.ApplicationID)
		assert.Equal(t, int64(3), msg.JobID)
		assert.Equal(t, uint64(11), msg.DeliveryTag)
	})
}
