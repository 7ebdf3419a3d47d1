package worker

import (
	"context"
	"log/slog"
	"time"
)

type Alert struct {
	OrderNo string
	Name    string
}

type Notifier interface {
	SendOrderAlert(ctx context.Context, orderNo, name string) error
}

// AlertDispatcher delivers order alerts off the request path. Delivery is
// best effort: failures are logged and swallowed, and a full queue drops the
// alert rather than block the submitting request.
type AlertDispatcher struct {
	notifier Notifier
	queue    chan Alert
	timeout  time.Duration
}

func NewAlertDispatcher(notifier Notifier) *AlertDispatcher {
	return &AlertDispatcher{
		notifier: notifier,
		queue:    make(chan Alert, 64),
		timeout:  10 * time.Second,
	}
}

func (d *AlertDispatcher) Enqueue(a Alert) {
	select {
	case d.queue <- a:
	default:
		slog.Warn("alert queue full, dropping alert", "order_no", a.OrderNo)
	}
}

func (d *AlertDispatcher) Start(ctx context.Context) {
	slog.Info("starting alert dispatcher")
	for {
		select {
		case <-ctx.Done():
			slog.Info("alert dispatcher stopped")
			return
		case a := <-d.queue:
			sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
			if err := d.notifier.SendOrderAlert(sendCtx, a.OrderNo, a.Name); err != nil {
				slog.Error("failed to send order alert", "order_no", a.OrderNo, "error", err)
			} else {
				slog.Info("order alert sent", "order_no", a.OrderNo)
			}
			cancel()
		}
	}
}
