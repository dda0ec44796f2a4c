// ABOUTME: Event: multicast registry of delegates with O(1) subscribe and swap-remove unsubscribe
// ABOUTME: Keeps every record's owning Subscription pointed at the record's current slot

// Package event implements a single-threaded multicast event. Subscribers
// register a delegate and receive a Subscription; closing the Subscription
// removes the delegate. Raise calls every registered delegate.
//
// An Event and its Subscriptions must be used from one goroutine at a time.
// Subscribing, unsubscribing, clearing, moving or assigning an Event from
// inside one of its own callbacks panics with ErrReentrantMutation.
package event

import (
	"errors"
	"fmt"

	"github.com/mauromedda/callme-go/internal/log"
	"github.com/mauromedda/callme-go/pkg/delegate"
)

// DefaultExpectedSubscriptions is the capacity New reserves.
const DefaultExpectedSubscriptions = 5

// ErrReentrantMutation is the panic value raised when an Event is mutated
// while its Raise is running.
var ErrReentrantMutation = errors.New("event: mutation during Raise")

// Callback is the delegate type an Event[A] accepts.
type Callback[A any] = delegate.Delegate[A, delegate.Void]

// record is one slot: the callback and the Subscription that owns the slot.
// owner.index always equals the slot's position and owner.reg the Event.
type record[A any] struct {
	callback Callback[A]
	owner    *Subscription
}

// Event is a registry of callbacks sharing the signature func(A). The zero
// value is an empty Event ready to use.
type Event[A any] struct {
	records []record[A]
	raising int
}

// New returns an Event with room for DefaultExpectedSubscriptions.
func New[A any]() *Event[A] {
	return NewWithCapacity[A](DefaultExpectedSubscriptions)
}

// NewWithCapacity returns an Event with room for n subscriptions before the
// first reallocation.
func NewWithCapacity[A any](n int) *Event[A] {
	e := &Event[A]{}
	e.Reserve(n)
	return e
}

// Subscribe registers cb and returns the Subscription that keeps it
// registered. The callback stays registered until the Subscription is
// closed or the Event is cleared, closed or assigned over.
func (e *Event[A]) Subscribe(cb Callback[A]) *Subscription {
	s := &Subscription{}
	e.attach(cb, s)
	return s
}

// SubscribeTo registers cb and appends its Subscription to dst.
func (e *Event[A]) SubscribeTo(cb Callback[A], dst *Subscriptions) {
	s := &Subscription{}
	e.attach(cb, s)
	*dst = append(*dst, s)
}

func (e *Event[A]) attach(cb Callback[A], s *Subscription) {
	e.mustNotRaise()
	e.records = append(e.records, record[A]{callback: cb, owner: s})
	s.index = len(e.records) - 1
	s.reg = e
}

// Raise calls every registered callback with arg, in slot order. Callers
// must not depend on that order: unsubscribing reorders slots. Raise stops
// at the first unbound callback and returns an error wrapping
// delegate.ErrUnbound.
func (e *Event[A]) Raise(arg A) error {
	e.raising++
	defer func() { e.raising-- }()

	for i := range e.records {
		if _, err := e.records[i].callback.Invoke(arg); err != nil {
			return fmt.Errorf("event: subscriber %d: %w", i, err)
		}
	}
	return nil
}

// Call is Raise for use as a delegate.Callable, so one Event can be
// subscribed to another. It panics if Raise fails.
func (e *Event[A]) Call(arg A) delegate.Void {
	if err := e.Raise(arg); err != nil {
		panic(err)
	}
	return delegate.Void{}
}

// Reserve makes room for n subscriptions in total.
func (e *Event[A]) Reserve(n int) {
	if n > cap(e.records) {
		grown := make([]record[A], len(e.records), n)
		copy(grown, e.records)
		e.records = grown
	}
}

// Count returns the number of registered callbacks.
func (e *Event[A]) Count() int {
	return len(e.records)
}

// Empty reports whether no callbacks are registered.
func (e *Event[A]) Empty() bool {
	return len(e.records) == 0
}

// Clear detaches every Subscription and drops every callback in one pass.
// The detached Subscriptions' Close becomes a no-op.
func (e *Event[A]) Clear() {
	e.mustNotRaise()
	if n := e.detachAll(); n > 0 {
		log.Debug("event: cleared %d subscriptions", n)
	}
	clear(e.records)
	e.records = e.records[:0]
}

// Close is Clear for Events that are going away. Subscriptions may outlive
// the Event they came from.
func (e *Event[A]) Close() {
	e.Clear()
	e.records = nil
}

// Move transfers every subscription to a new Event and returns it. The
// Subscriptions now refer to the new Event; e is left empty and usable.
func (e *Event[A]) Move() *Event[A] {
	e.mustNotRaise()
	dst := &Event[A]{records: e.records}
	e.records = nil
	dst.repoint()
	return dst
}

// Assign detaches e's own Subscriptions, then takes over every subscription
// of src. src is left empty. Assigning e to itself does nothing.
func (e *Event[A]) Assign(src *Event[A]) {
	if e == src {
		return
	}
	e.mustNotRaise()
	src.mustNotRaise()
	if n := e.detachAll(); n > 0 {
		log.Debug("event: assign detached %d subscriptions", n)
	}
	e.records = src.records
	src.records = nil
	e.repoint()
}

func (e *Event[A]) detachAll() int {
	for i := range e.records {
		e.records[i].owner.release()
	}
	return len(e.records)
}

func (e *Event[A]) repoint() {
	for i := range e.records {
		e.records[i].owner.reg = e
	}
}

func (e *Event[A]) mustNotRaise() {
	if e.raising > 0 {
		panic(ErrReentrantMutation)
	}
}

// unsubscribe swap-removes slot i: the last record moves into i and its
// owner is told its new index.
func (e *Event[A]) unsubscribe(i int) {
	e.mustNotRaise()
	last := len(e.records) - 1
	if i != last {
		e.records[i] = e.records[last]
		e.records[i].owner.index = i
	}
	e.records[last] = record[A]{}
	e.records = e.records[:last]
}

// moveDelegate replaces the callback in slot to with the one in slot from.
// Slot occupancy and owners are unchanged.
func (e *Event[A]) moveDelegate(from, to int) {
	e.mustNotRaise()
	e.records[to].callback = e.records[from].callback
}

// changeOwner points slot i at a new owning Subscription.
func (e *Event[A]) changeOwner(i int, owner *Subscription) {
	e.records[i].owner = owner
}

// validate checks the owner back-references of every slot.
func (e *Event[A]) validate() error {
	for i := range e.records {
		o := e.records[i].owner
		switch {
		case o == nil:
			return fmt.Errorf("slot %d: no owner", i)
		case o.reg != registry(e):
			return fmt.Errorf("slot %d: owner refers to another event", i)
		case o.index != i:
			return fmt.Errorf("slot %d: owner index is %d", i, o.index)
		}
	}
	return nil
}
