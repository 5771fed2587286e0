package audit

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/tutor-contacts/internal/logger"
)

const (
	ActionContactCreated      = "contact_created"
	ActionContactUpdated      = "contact_updated"
	ActionContactDeleted      = "contact_deleted"
	ActionAppointmentAdded    = "appointment_added"
	ActionAppointmentReplaced = "appointment_replaced"
	ActionAppointmentRemoved  = "appointment_removed"
	ActionAppointmentClash    = "appointment_clash"
	ActionAvatarUploaded      = "avatar_uploaded"
	ActionContactsExported    = "contacts_exported"
)

const (
	EntityContact     = "contact"
	EntityAppointment = "appointment"
)

const queueSize = 100

type Event struct {
	UserID   uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink stores one event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher writes events on a single background worker. A full queue
// drops the event; audit never fails a request.
type Dispatcher struct {
	sink  Sink
	log   *logger.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, log *logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "user_id", ev.UserID, "error", err)
		}
	}
}

// Dispatch queues ev. Events dispatched after Close are dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", "action", ev.Action, "user_id", ev.UserID)
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action, "user_id", ev.UserID)
	}
}

// Close drains pending events and stops the worker. It is safe to call
// more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
