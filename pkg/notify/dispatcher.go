package notify

import (
	"context"
	"privacymon/pkg/domain"
	"privacymon/pkg/logger"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	defaultQueueSize   = 100
	defaultSendTimeout = 30 * time.Second
)

// Options configures a Dispatcher.
type Options struct {
	Brand        string
	DashboardURL string
	// QueueSize bounds pending messages. Alerts arriving while the queue is
	// full are dropped with a warning.
	QueueSize   int
	SendTimeout time.Duration
}

// Dispatcher is a Notifier that renders alerts and hands them to a Sender on
// a background goroutine. Enqueueing never blocks.
type Dispatcher struct {
	renderer    *Renderer
	sender      Sender
	sendTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan Message
	wg     sync.WaitGroup
}

var _ Notifier = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher. Call Start to begin delivery.
func NewDispatcher(sender Sender, options Options) *Dispatcher {
	if options.QueueSize <= 0 {
		options.QueueSize = defaultQueueSize
	}
	if options.SendTimeout <= 0 {
		options.SendTimeout = defaultSendTimeout
	}

	return &Dispatcher{
		renderer:    NewRenderer(options.Brand, options.DashboardURL),
		sender:      sender,
		sendTimeout: options.SendTimeout,
		queue:       make(chan Message, options.QueueSize),
	}
}

// Start launches the delivery loop. It returns immediately; the loop runs
// until Stop is called.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		for msg := range d.queue {
			d.deliver(ctx, msg)
		}
	}()
}

// Stop refuses new alerts, drains the queue and waits for delivery to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) {
	ctx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := d.sender.Send(ctx, msg); err != nil {
		logger.Error(ctx, "could not send notification", zap.String("subject", msg.Subject), zap.Error(err))

		return
	}

	logger.Debug(ctx, "notification sent", zap.String("subject", msg.Subject))
}

func (d *Dispatcher) enqueue(ctx context.Context, msg Message) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logger.Warn(ctx, "notification dropped, dispatcher stopped", zap.String("subject", msg.Subject))

		return
	}

	select {
	case d.queue <- msg:
	default:
		logger.Warn(ctx, "notification dropped, queue full", zap.String("subject", msg.Subject))
	}
}

// NotifyNewFindings queues an alert about newly recorded exposures. Empty
// finding lists are ignored.
func (d *Dispatcher) NotifyNewFindings(ctx context.Context,
	subjectName string,
	runner domain.RunnerKind,
	findings []domain.Finding,
) {
	if len(findings) == 0 {
		return
	}

	msg, err := d.renderer.NewFindings(subjectName, runner, findings)
	if err != nil {
		logger.Error(ctx, "could not render new findings notification", zap.Error(err))

		return
	}

	d.enqueue(ctx, msg)
}

// NotifyScanComplete queues a scan summary alert.
func (d *Dispatcher) NotifyScanComplete(ctx context.Context, summary ScanSummary) {
	msg, err := d.renderer.ScanComplete(summary)
	if err != nil {
		logger.Error(ctx, "could not render scan complete notification", zap.Error(err))

		return
	}

	d.enqueue(ctx, msg)
}
