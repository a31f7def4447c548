package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/bnema/assistant-shell/internal/domain"
	"github.com/bnema/assistant-shell/internal/ports"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// TopicActions carries action messages from renderer-side producers to the
// main-process registry.
const TopicActions = "shell.actions"

const outputBuffer = 64

// Bus is the in-process channel between action producers (HTTP handlers,
// the working-copy watcher) and the action registry.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger zerolog.Logger

	mu      sync.Mutex
	started bool
	done    chan struct{}
}

var _ ports.ActionPublisher = (*Bus)(nil)

func NewBus(logger zerolog.Logger) *Bus {
	pubsub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: outputBuffer}, newLoggerAdapter(logger))
	return &Bus{pubsub: pubsub, logger: logger, done: make(chan struct{})}
}

func (b *Bus) Publish(ctx context.Context, msg domain.ActionMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "encode action message")
	}

	wm := message.NewMessage(watermill.NewUUID(), payload)
	wm.Metadata.Set("action", msg.Action.String())
	if err := b.pubsub.Publish(TopicActions, wm); err != nil {
		return errors.Wrap(err, "publish action message")
	}
	return nil
}

// Start subscribes to TopicActions and forwards every message to dispatcher
// until ctx is done. The subscription exists when Start returns. Delivery
// order between separately published messages is not preserved.
func (b *Bus) Start(ctx context.Context, dispatcher ports.ActionDispatcher) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return errors.New("action bus already started")
	}

	messages, err := b.pubsub.Subscribe(ctx, TopicActions)
	if err != nil {
		return errors.Wrap(err, "subscribe to action topic")
	}
	b.started = true

	go func() {
		defer close(b.done)
		for wm := range messages {
			b.forward(wm, dispatcher)
		}
	}()

	return nil
}

// Done is closed once the forwarding loop has drained.
func (b *Bus) Done() <-chan struct{} {
	return b.done
}

func (b *Bus) Close() error {
	if err := b.pubsub.Close(); err != nil {
		return errors.Wrap(err, "close action bus")
	}
	return nil
}

func (b *Bus) forward(wm *message.Message, dispatcher ports.ActionDispatcher) {
	// There is no redelivery policy, so every message is acked.
	defer wm.Ack()

	var msg domain.ActionMessage
	if err := json.Unmarshal(wm.Payload, &msg); err != nil {
		b.logger.Error().Err(err).Str("message_uuid", wm.UUID).Msg("drop malformed action message")
		return
	}

	if err := b.dispatch(dispatcher, msg); err != nil {
		b.logger.Error().Err(err).Str("action", msg.Action.String()).Msg("action handler failed")
	}
}

func (b *Bus) dispatch(dispatcher ports.ActionDispatcher, msg domain.ActionMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action handler panicked: %v", r)
		}
	}()

	return dispatcher.Dispatch(msg)
}
