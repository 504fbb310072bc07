// Package worker runs the asynchronous notification dispatcher. Order
// handling never waits on the messaging platform: the service enqueues
// rendered messages and the dispatcher delivers them in the background,
// logging failures and moving on.
package worker

import (
	"context"

	"go.uber.org/zap"

	"florabot/internal/notify"
)

// Message is one outbound notification.
type Message struct {
	ChatID int64
	Text   string
	// Kind tags the message for the log: "customer", "admin", "status".
	Kind string
}

// Dispatcher consumes the outbound queue.
type Dispatcher struct {
	notifier notify.Notifier
	logger   *zap.Logger
	queue    chan Message
}

// NewDispatcher creates new Dispatcher instance with the given queue depth.
func NewDispatcher(notifier notify.Notifier, logger *zap.Logger, buffer int) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		logger:   logger,
		queue:    make(chan Message, buffer),
	}
}

// Enqueue hands a message to the dispatcher without blocking. When the
// queue is full the message is dropped and logged, which is the documented
// fire-and-forget contract.
func (d *Dispatcher) Enqueue(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("notification queue full, dropping message",
			zap.Int64("chatId", msg.ChatID), zap.String("kind", msg.Kind))
	}
}

// Run delivers queued messages until ctx is canceled.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("notification dispatcher is done")
			return
		case msg := <-d.queue:
			if err := d.notifier.Send(ctx, msg.ChatID, msg.Text); err != nil {
				d.logger.Warn("notification delivery failed",
					zap.Int64("chatId", msg.ChatID),
					zap.String("kind", msg.Kind),
					zap.Error(err))
			}
		}
	}
}
