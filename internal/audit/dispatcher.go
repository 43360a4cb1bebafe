package audit

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	ActionRegistered    = "account_registered"
	ActionEmailFailed   = "confirmation_email_failed"
	ActionLogin         = "account_login"
	ActionVerified      = "account_verified"
	ActionUpdated       = "account_updated"
	ActionAvatarUpdated = "account_avatar_updated"
	ActionDeleted       = "account_deleted"
)

type Event struct {
	AccountID *string
	Action    string
	Entity    string
	Metadata  any
}

// AccountEvent builds an event about the account with the given id.
func AccountEvent(id, action string, metadata any) Event {
	return Event{AccountID: &id, Action: action, Entity: "user", Metadata: metadata}
}

// Dispatcher records events on a single background worker so audit writes
// never delay or fail a request. A nil Dispatcher discards events.
type Dispatcher struct {
	recorder Recorder
	log      logrus.FieldLogger
	queue    chan Event
	done     chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(recorder Recorder, log logrus.FieldLogger) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		log:      log,
		queue:    make(chan Event, 100),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.recorder.Record(ctx, ev); err != nil {
			d.log.WithError(err).WithField("action", ev.Action).Warn("audit write failed")
		}
		cancel()
	}
}

// Dispatch enqueues ev, dropping it when the queue is full or the
// dispatcher is closed.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.log.WithField("action", ev.Action).Warn("audit dispatcher closed, dropping event")
		return
	}
	select {
	case d.queue <- ev:
	default:
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}
