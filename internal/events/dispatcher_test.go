package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()

	var calls []string
	d.Subscribe(EventEntityCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "first:"+e.EntityID)
		return nil
	})
	d.Subscribe(EventEntityCreated, func(_ context.Context, e Event) error {
		calls = append(calls, "second:"+e.EntityID)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventEntityCreated, EntityID: "d1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:d1", "second:d1"}, calls)
}

func TestPublishRunsAllHandlersDespiteFailure(t *testing.T) {
	d := NewInMemoryDispatcher()
	boom := errors.New("boom")

	ran := false
	d.Subscribe(EventEntityDeleted, func(context.Context, Event) error { return boom })
	d.Subscribe(EventEntityDeleted, func(context.Context, Event) error {
		ran = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventEntityDeleted})
	assert.ErrorIs(t, err, boom)
	assert.True(t, ran)
}

func TestPublishWithoutSubscribersIsNoOp(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), Event{Type: EventHoursLogged}))
}
