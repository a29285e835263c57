// Package pubsub is the in-process event bus between the batcher and the
// workers that react to stored events (webhooks, live stream). It wraps a
// watermill GoChannel: delivery is at-most-once and nothing survives a
// restart.
package pubsub

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-pixel-analytics/internal/logger"
	"github.com/MKhiriev/go-pixel-analytics/internal/utils"
	"github.com/MKhiriev/go-pixel-analytics/models"
)

const (
	// TopicEvents carries every stored [models.Event].
	TopicEvents = "events.stored"

	// TopicNotifications carries ready-made [models.Notification] values
	// (alerts) for webhook delivery.
	TopicNotifications = "notifications"

	outputBuffer = 1024
)

var ErrBusClosed = errors.New("bus closed")

// Bus publishes and subscribes typed messages.
type Bus struct {
	pubSub *gochannel.GoChannel
	logger *logger.Logger
}

func NewBus(log *logger.Logger) *Bus {
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: outputBuffer,
	}, watermill.NewSlogLogger(log.Named("bus").Slog()))

	return &Bus{pubSub: pubSub, logger: log}
}

// PublishEvents publishes one message per event.
func (b *Bus) PublishEvents(events []models.Event) error {
	msgs := make([]*message.Message, 0, len(events))
	for _, e := range events {
		msg, err := newMessage(e.ID, e)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}
	return b.publish(TopicEvents, msgs...)
}

// PublishNotification publishes a notification for webhook delivery.
func (b *Bus) PublishNotification(n models.Notification) error {
	msg, err := newMessage(n.ID, n)
	if err != nil {
		return err
	}
	return b.publish(TopicNotifications, msg)
}

func (b *Bus) publish(topic string, msgs ...*message.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	if err := b.pubSub.Publish(topic, msgs...); err != nil {
		b.logger.Err(err).Str("topic", topic).Msg("error publishing messages")
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Subscribe returns the raw message channel of a topic. It is closed when ctx
// is done or the bus is closed. Every message must be acked.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	msgs, err := b.pubSub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBusClosed, err)
	}
	return msgs, nil
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// Consume decodes messages of type T and passes them to handle until msgs is
// closed or ctx is done. Messages are acked even when handling fails; the
// bus has no redelivery.
func Consume[T any](ctx context.Context, msgs <-chan *message.Message, log *logger.Logger, handle func(context.Context, T) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}

			var v T
			if err := json.Unmarshal(msg.Payload, &v); err != nil {
				log.Err(err).Str("message_id", msg.UUID).Msg("error decoding message")
			} else if err = handle(ctx, v); err != nil {
				log.Err(err).Str("message_id", msg.UUID).Msg("error handling message")
			}
			msg.Ack()
		}
	}
}

func newMessage(id string, v any) (*message.Message, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}
	if id == "" {
		id = utils.NewID()
	}
	return message.NewMessage(id, payload), nil
}
