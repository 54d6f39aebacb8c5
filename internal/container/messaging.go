package container

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/pagepulse/pagepulse/internal/messaging"
	"github.com/pagepulse/pagepulse/internal/tracking"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// consumerGroupName identifies this service on the Redis Stream.
const consumerGroupName = "pagepulse"

// MessagingPackage provides the event transport: an in-process Go channel
// by default, Redis Streams for split deployments. The channel transport is
// one object serving as both publisher and subscriber, so it is provided
// once and shared.
func MessagingPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*gochannel.GoChannel, error) {
		return gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{}), nil
	})

	do.Provide(injector, func(i *do.Injector) (message.Subscriber, error) {
		options := do.MustInvoke[*Options](i)

		if options.EventsTransport == "redis" {
			client := do.MustInvoke[*redis.Client](i)

			return redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        client,
				ConsumerGroup: consumerGroupName,
			}, watermill.NopLogger{})
		}

		return do.MustInvoke[*gochannel.GoChannel](i), nil
	})

	do.Provide(injector, func(i *do.Injector) (*messaging.PublisherGroup, error) {
		options := do.MustInvoke[*Options](i)

		if options.EventsTransport == "redis" {
			client := do.MustInvoke[*redis.Client](i)

			publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
				Client: client,
			}, watermill.NopLogger{})
			if err != nil {
				return nil, err
			}

			return messaging.NewPublisherGroup(publisher), nil
		}

		return messaging.NewPublisherGroup(do.MustInvoke[*gochannel.GoChannel](i)), nil
	})

	do.Provide(injector, func(i *do.Injector) (messaging.Publish[tracking.Event], error) {
		group := do.MustInvoke[*messaging.PublisherGroup](i)

		return messaging.NewPublishFunc[tracking.Event](group.Publisher(), tracking.TopicPageView), nil
	})
}

// ConsumerGroupPackage provides the consumer group that appends published
// page views to the event store.
func ConsumerGroupPackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*messaging.ConsumerGroup, error) {
		subscriber := do.MustInvoke[message.Subscriber](i)
		eventStore := do.MustInvoke[tracking.Store](i)
		logger := do.MustInvoke[*zap.Logger](i)

		group := messaging.NewConsumerGroup(subscriber, logger)
		group.Add(tracking.NewPageViewConsumer(subscriber, eventStore, logger))

		return group, nil
	})
}
