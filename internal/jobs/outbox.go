package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Nick-the-BinaryTree/allergy-albert/internal/model"
)

// Sender delivers a reply to a Messenger user
type Sender interface {
	Send(ctx context.Context, recipientID string, reply model.ReplyAction) error
}

// Delivery is one queued reply
type Delivery struct {
	RecipientID string
	Reply       model.ReplyAction
	RequestID   string
}

// Outbox sends replies in the background so the webhook can acknowledge
// Messenger immediately. Delivery failures are logged and dropped.
type Outbox struct {
	sender      Sender
	queue       chan Delivery
	workers     int
	sendTimeout time.Duration
	logger      *slog.Logger
	stopCh      chan struct{}
	wg          sync.WaitGroup
	running     bool
	mu          sync.Mutex
}

// OutboxConfig holds outbox settings
type OutboxConfig struct {
	QueueSize   int           // default 256
	Workers     int           // default 2
	SendTimeout time.Duration // per delivery, default 15s
	Logger      *slog.Logger
}

// NewOutbox creates a new delivery outbox
func NewOutbox(sender Sender, cfg OutboxConfig) *Outbox {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = 15 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Outbox{
		sender:      sender,
		queue:       make(chan Delivery, cfg.QueueSize),
		workers:     cfg.Workers,
		sendTimeout: cfg.SendTimeout,
		logger:      cfg.Logger,
		stopCh:      make(chan struct{}),
	}
}

// Start launches the delivery workers
func (o *Outbox) Start() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.running {
		return
	}
	o.running = true

	for i := 0; i < o.workers; i++ {
		o.wg.Add(1)
		go o.run()
	}
	o.logger.Info("outbox started", slog.Int("workers", o.workers))
}

// Stop stops accepting deliveries, flushes what is queued and waits for
// the workers to exit
func (o *Outbox) Stop() {
	o.mu.Lock()
	if !o.running {
		o.mu.Unlock()
		return
	}
	o.running = false
	close(o.stopCh)
	o.mu.Unlock()

	o.wg.Wait()
	o.logger.Info("outbox stopped")
}

// Enqueue queues a delivery without blocking. It returns false when the
// outbox is stopped or full.
func (o *Outbox) Enqueue(d Delivery) bool {
	if d.Reply.IsEmpty() {
		return false
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.running {
		return false
	}

	select {
	case o.queue <- d:
		return true
	default:
		o.logger.Warn("outbox full, dropping reply",
			slog.String("recipient_id", d.RecipientID),
			slog.String("request_id", d.RequestID),
		)
		return false
	}
}

// IsRunning returns whether the outbox is running
func (o *Outbox) IsRunning() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running
}

func (o *Outbox) run() {
	defer o.wg.Done()

	for {
		select {
		case d := <-o.queue:
			o.deliver(d)
		case <-o.stopCh:
			for {
				select {
				case d := <-o.queue:
					o.deliver(d)
				default:
					return
				}
			}
		}
	}
}

func (o *Outbox) deliver(d Delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), o.sendTimeout)
	defer cancel()

	if err := o.sender.Send(ctx, d.RecipientID, d.Reply); err != nil {
		o.logger.Error("failed calling send api",
			slog.String("recipient_id", d.RecipientID),
			slog.String("request_id", d.RequestID),
			slog.String("error", err.Error()),
		)
	}
}
