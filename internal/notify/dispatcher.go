package notify

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Message is an outgoing email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a single message over the network.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg Message) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// Dispatcher hands messages to a fixed pool of background workers.
// Callers never block and never see delivery errors; every message is attempted at most once.
type Dispatcher struct {
	sender  Sender
	queue   chan Message
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	group  errgroup.Group
}

// NewDispatcher starts workers goroutines draining a queue of queueSize messages.
// Each delivery is bounded by timeout.
func NewDispatcher(sender Sender, workers, queueSize int, timeout time.Duration) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	d := &Dispatcher{
		sender:  sender,
		queue:   make(chan Message, queueSize),
		timeout: timeout,
	}
	for i := 0; i < workers; i++ {
		d.group.Go(d.work)
	}

	logger.Log.Infow("mail dispatcher started", "workers", workers, "queue_size", queueSize)
	return d
}

// Send enqueues a message and returns immediately.
// When the queue is full or the dispatcher is closed the message is dropped and logged.
func (d *Dispatcher) Send(to, subject, body string) {
	msg := Message{To: to, Subject: subject, Body: body}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logger.Log.Errorw("mail dropped, dispatcher closed", "to", to, "subject", subject)
		return
	}

	select {
	case d.queue <- msg:
	default:
		logger.Log.Errorw("mail dropped, queue full", "to", to, "subject", subject)
	}
}

// Close stops accepting messages and waits for queued ones to be attempted.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	return d.group.Wait()
}

func (d *Dispatcher) work() error {
	for msg := range d.queue {
		d.deliver(msg)
	}
	return nil
}

func (d *Dispatcher) deliver(msg Message) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Errorw("mail sender panicked", "to", msg.To, "subject", msg.Subject, "panic", rec)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.sender.Send(ctx, msg); err != nil {
		logger.Log.Errorw("failed to send mail", "to", msg.To, "subject", msg.Subject, "error", err)
		return
	}

	logger.Log.Infow("mail sent", "to", msg.To, "subject", msg.Subject)
}
