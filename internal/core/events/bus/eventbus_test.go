package bus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	delivered int
	lastErr   error
}

func (o *countingObserver) OnDelivered(_ string, handlers int, err error, _ time.Duration) {
	o.delivered += handlers
	o.lastErr = err
}

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	b := New()
	var got []string
	for _, name := range []string{"first", "second", "third"} {
		_, err := b.Subscribe("collision", func(e Event) error {
			got = append(got, name)
			return nil
		})
		require.NoError(t, err)
	}

	require.NoError(t, b.Publish(NewEvent("collision", "test", 1)))
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestPublishJoinsHandlerErrors(t *testing.T) {
	b := New()
	errA, errB := errors.New("a"), errors.New("b")
	_, _ = b.Subscribe("x", func(Event) error { return errA })
	_, _ = b.Subscribe("x", func(Event) error { return errB })

	err := b.Publish(NewEvent("x", "test", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	calls := 0
	sub, err := b.Subscribe("x", func(Event) error { calls++; return nil })
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID())

	_ = b.Publish(NewEvent("x", "test", nil))
	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	_ = b.Publish(NewEvent("x", "test", nil))

	assert.Equal(t, 1, calls)
	assert.False(t, sub.IsActive())
}

func TestSubscribeValidatesArguments(t *testing.T) {
	b := New()
	_, err := b.Subscribe("", func(Event) error { return nil })
	assert.ErrorIs(t, err, ErrEmptyEventType)
	_, err = b.Subscribe("x", nil)
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestMetricsOnlyWithObserver(t *testing.T) {
	b := New()
	_, _ = b.Subscribe("e", func(Event) error { return nil })
	_ = b.Publish(NewEvent("e", "s", nil))
	assert.Zero(t, b.Metrics().Published)

	obs := &countingObserver{}
	b.AddObserver(obs)
	require.NoError(t, b.PublishBatch(NewEvent("e", "s", nil), NewEvent("e", "s", nil)))

	m := b.Metrics()
	assert.Equal(t, uint64(2), m.Published)
	assert.Equal(t, uint64(2), m.DeliveredHandlers)
	assert.Equal(t, uint64(1), m.Subscribers)
	assert.Equal(t, 2, obs.delivered)

	b.RemoveObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	assert.Equal(t, uint64(2), b.Metrics().Published)
}
