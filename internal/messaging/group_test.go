package messaging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/pagepulse/pagepulse/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSubscriber struct {
	closed bool
}

func (f *fakeSubscriber) Subscribe(_ context.Context, _ string) (<-chan *message.Message, error) {
	return make(chan *message.Message), nil
}

func (f *fakeSubscriber) Close() error {
	f.closed = true

	return nil
}

type fakeConsumer struct {
	startErr  error
	started   bool
	shutdowns int
}

func (f *fakeConsumer) Start(_ context.Context) error {
	if f.startErr != nil {
		return f.startErr
	}

	f.started = true

	return nil
}

func (f *fakeConsumer) Shutdown() error {
	f.shutdowns++

	return nil
}

func TestConsumerGroup_Start(t *testing.T) {
	t.Run("starts every consumer", func(t *testing.T) {
		subscriber := &fakeSubscriber{}
		group := messaging.NewConsumerGroup(subscriber, zap.NewNop())

		first := &fakeConsumer{}
		second := &fakeConsumer{}
		group.Add(first)
		group.Add(second)

		require.NoError(t, group.Start(context.Background()))
		assert.True(t, first.started)
		assert.True(t, second.started)
	})

	t.Run("shuts down started consumers when one fails", func(t *testing.T) {
		subscriber := &fakeSubscriber{}
		group := messaging.NewConsumerGroup(subscriber, zap.NewNop())

		first := &fakeConsumer{}
		failing := &fakeConsumer{startErr: errors.New("boom")}
		group.Add(first)
		group.Add(failing)

		err := group.Start(context.Background())

		require.Error(t, err)
		assert.Equal(t, 1, first.shutdowns)
	})
}

func TestConsumerGroup_Shutdown(t *testing.T) {
	subscriber := &fakeSubscriber{}
	group := messaging.NewConsumerGroup(subscriber, zap.NewNop())

	consumer := &fakeConsumer{}
	group.Add(consumer)

	require.NoError(t, group.Start(context.Background()))
	require.NoError(t, group.Shutdown())

	assert.Equal(t, 1, consumer.shutdowns)
	assert.True(t, subscriber.closed)
}
