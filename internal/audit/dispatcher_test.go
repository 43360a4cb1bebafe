package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-accounts/internal/logger"
)

type memRecorder struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (r *memRecorder) Record(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func TestDispatcher_DeliversInOrder(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec, logger.Discard())

	d.Dispatch(AccountEvent("u1", ActionRegistered, nil))
	d.Dispatch(AccountEvent("u1", ActionVerified, map[string]string{"k": "v"}))
	d.Close()

	if assert.Len(t, rec.events, 2) {
		assert.Equal(t, ActionRegistered, rec.events[0].Action)
		assert.Equal(t, ActionVerified, rec.events[1].Action)
		assert.Equal(t, "u1", *rec.events[1].AccountID)
		assert.Equal(t, "user", rec.events[1].Entity)
	}
}

func TestDispatcher_RecorderErrorDoesNotStopWorker(t *testing.T) {
	rec := &memRecorder{err: errors.New("db down")}
	d := NewDispatcher(rec, logger.Discard())

	d.Dispatch(AccountEvent("u1", ActionLogin, nil))
	d.Dispatch(AccountEvent("u2", ActionLogin, nil))
	d.Close()

	assert.Len(t, rec.events, 2)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(AccountEvent("u1", ActionLogin, nil))
	d.Close()
}

func TestDispatcher_DispatchAfterCloseIsDropped(t *testing.T) {
	rec := &memRecorder{}
	d := NewDispatcher(rec, logger.Discard())

	d.Dispatch(AccountEvent("u1", ActionRegistered, nil))
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(AccountEvent("u1", ActionEmailFailed, nil))
	})
	d.Close()

	assert.Len(t, rec.events, 1)
}

func TestDispatcher_ConcurrentDispatchAndClose(t *testing.T) {
	d := NewDispatcher(&memRecorder{}, logger.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				d.Dispatch(AccountEvent("u1", ActionLogin, nil))
			}
		}()
	}
	assert.NotPanics(t, d.Close)
	wg.Wait()
}
