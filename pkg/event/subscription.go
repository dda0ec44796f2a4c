// ABOUTME: Subscription: the handle that owns one Event slot and removes it on Close
// ABOUTME: Move and Assign transfer slots without copying callbacks; Subscriptions holds many

package event

// registry is the signature-erased side of Event[A] that a Subscription
// needs. Subscriptions of events with different argument types share it.
type registry interface {
	unsubscribe(i int)
	changeOwner(i int, owner *Subscription)
	moveDelegate(from, to int)
}

// noCopy makes go vet's copylocks check flag copies of a Subscription.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Subscription owns one slot in an Event. While attached, closing it
// removes its callback from the Event. Subscriptions are created by
// Event.Subscribe or by moving another Subscription; the zero value is
// detached and Close on it does nothing.
//
// A Subscription may outlive its Event (Event.Close detaches it) and an
// Event may outlive its Subscriptions. A Subscription must not be copied;
// use Move.
type Subscription struct {
	_     noCopy
	index int // meaningful only while reg is set
	reg   registry
}

// Attached reports whether s still owns a slot.
func (s *Subscription) Attached() bool {
	return s.reg != nil
}

// Close unsubscribes the callback s owns and detaches s. Closing a
// detached Subscription does nothing.
func (s *Subscription) Close() {
	if s.reg == nil {
		return
	}
	s.reg.unsubscribe(s.index)
	s.release()
}

// Move returns a new Subscription that owns s's slot and detaches s. The
// slot and its callback are unchanged.
func (s *Subscription) Move() *Subscription {
	dst := &Subscription{}
	s.moveInto(dst)
	return dst
}

// Assign makes s own what src owns, leaving src detached:
//
//   - src detached: s is closed.
//   - s detached: s adopts src's slot.
//   - both attached to the same Event: src's callback replaces the one in
//     s's slot, then src's slot is removed. s keeps its slot unless it was
//     the last one, in which case swap-removal relocates it.
//   - both attached to different Events: s is closed, then adopts src's slot.
//
// Assigning s to itself does nothing.
func (s *Subscription) Assign(src *Subscription) {
	switch {
	case s == src:
	case src.reg == nil:
		s.Close()
	case s.reg == nil:
		src.moveInto(s)
	case s.reg == src.reg:
		s.reg.moveDelegate(src.index, s.index)
		src.Close()
	default:
		s.Close()
		src.moveInto(s)
	}
}

// MoveTo moves s into dst, leaving s detached. It is for subscriptions
// first kept individually and later handed to bulk lifetime management.
func (s *Subscription) MoveTo(dst *Subscriptions) {
	dst.Add(s)
}

// moveInto transfers s's slot to dst, which must be detached.
func (s *Subscription) moveInto(dst *Subscription) {
	if s.reg == nil {
		return
	}
	dst.index, dst.reg = s.index, s.reg
	dst.reg.changeOwner(dst.index, dst)
	s.release()
}

// release returns s to the zero, detached state.
func (s *Subscription) release() {
	s.reg = nil
	s.index = 0
}

// Subscriptions holds subscriptions whose lifetimes end together.
type Subscriptions []*Subscription

// Add moves s into ss, leaving s detached.
func (ss *Subscriptions) Add(s *Subscription) {
	*ss = append(*ss, s.Move())
}

// Len returns the number of held subscriptions, attached or not.
func (ss Subscriptions) Len() int {
	return len(ss)
}

// Close closes every held subscription, newest first, and empties ss.
func (ss *Subscriptions) Close() {
	for i := len(*ss) - 1; i >= 0; i-- {
		(*ss)[i].Close()
	}
	clear(*ss)
	*ss = (*ss)[:0]
}
