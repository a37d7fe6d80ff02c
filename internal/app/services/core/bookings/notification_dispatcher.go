package bookings

import (
	"context"
	"sync"
)

// NotificationDispatcher runs notification tasks off the request path and
// lets the process wait for the ones still in flight on shutdown.
type NotificationDispatcher struct {
	wg sync.WaitGroup
}

func NewNotificationDispatcher() *NotificationDispatcher {
	return &NotificationDispatcher{}
}

func (d *NotificationDispatcher) Submit(task func()) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		task()
	}()
}

// Wait blocks until every submitted task returned or ctx is done.
func (d *NotificationDispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
