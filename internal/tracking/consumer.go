package tracking

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/pagepulse/pagepulse/internal/messaging"
	"go.uber.org/zap"
)

// NewPageViewConsumer returns a consumer that appends published page-view
// events to the store. A failed append nacks the message so stream
// transports can redeliver it.
func NewPageViewConsumer(
	subscriber message.Subscriber,
	store Store,
	logger *zap.Logger,
) *messaging.Consumer[Event] {
	handler := func(ctx context.Context, event *Event) error {
		return store.Append(ctx, *event)
	}

	return messaging.NewConsumer(subscriber, TopicPageView, handler, logger)
}
