// ABOUTME: Scenario catalogue: delegate kinds, owning delegates, moves and event notification
// ABOUTME: Each scenario prepares fresh state and returns a timed loop body plus its cleanup

// Package bench measures the call overhead of delegates and events against
// direct calls and conventional notification mechanisms.
package bench

import (
	"github.com/mauromedda/callme-go/internal/baseline"
	"github.com/mauromedda/callme-go/pkg/delegate"
	"github.com/mauromedda/callme-go/pkg/event"
)

// Scenario groups. Each group renders as its own table.
const (
	GroupDelegate = "delegate"
	GroupOwning   = "owning"
	GroupMove     = "move"
	GroupEvent    = "event"
)

var groupTitles = map[string]string{
	GroupDelegate: "Delegates by binding kind",
	GroupOwning:   "Owning delegates",
	GroupMove:     "Moved and reassigned delegates",
	GroupEvent:    "Event notification",
}

// GroupTitle returns the table title of group.
func GroupTitle(group string) string {
	if t, ok := groupTitles[group]; ok {
		return t
	}
	return group
}

// Body runs a scenario's operation the given number of times.
type Body func(iterations int) error

// Prepare builds the state of one run. subscribers is zero for scenarios
// that are not PerSubscriber. The returned cleanup may be nil.
type Prepare func(subscribers int) (body Body, cleanup func(), err error)

// Scenario is one measured operation.
type Scenario struct {
	Group string
	Name  string
	// PerSubscriber scenarios run once per configured subscriber count and
	// notify every subscriber per iteration.
	PerSubscriber bool
	Prepare       Prepare
}

// ID returns "group/name", the string the scenario filter matches.
func (s Scenario) ID() string {
	return s.Group + "/" + s.Name
}

func static(body Body) Prepare {
	return func(int) (Body, func(), error) { return body, nil, nil }
}

// Catalogue returns every scenario in presentation order.
func Catalogue() []Scenario {
	var all []Scenario
	all = append(all, delegateScenarios()...)
	all = append(all, owningScenarios()...)
	all = append(all, moveScenarios()...)
	all = append(all, eventScenarios()...)
	return all
}

func delegateScenarios() []Scenario {
	return []Scenario{
		{Group: GroupDelegate, Name: "direct call, function", Prepare: func(int) (Body, func(), error) {
			p := newSink().payload()
			return func(n int) error {
				for range n {
					apply(p)
				}
				return nil
			}, nil, nil
		}},
		{Group: GroupDelegate, Name: "direct call, method", Prepare: func(int) (Body, func(), error) {
			p, r := newSink().payload(), &receiver{i: 1}
			return func(n int) error {
				for range n {
					r.Apply(p)
				}
				return nil
			}, nil, nil
		}},
		{Group: GroupDelegate, Name: "Delegate, function", Prepare: func(int) (Body, func(), error) {
			return callLoop(delegate.Action(apply)), nil, nil
		}},
		{Group: GroupDelegate, Name: "Delegate, noninlined function", Prepare: func(int) (Body, func(), error) {
			return callLoop(delegate.Action(applyNoinline)), nil, nil
		}},
		{Group: GroupDelegate, Name: "Delegate, closure", Prepare: func(int) (Body, func(), error) {
			r := &receiver{i: 1}
			return callLoop(delegate.Action(func(p payload) { r.Apply(p) })), nil, nil
		}},
		{Group: GroupDelegate, Name: "Delegate, method", Prepare: func(int) (Body, func(), error) {
			return callLoop(delegate.MethodAction(&receiver{i: 1}, (*receiver).Apply)), nil, nil
		}},
		{Group: GroupDelegate, Name: "Delegate, view", Prepare: func(int) (Body, func(), error) {
			return callLoop(delegate.Bind[payload, delegate.Void](&callable{i: 1})), nil, nil
		}},
		{Group: GroupDelegate, Name: "Delegate, stateless", Prepare: func(int) (Body, func(), error) {
			d, err := delegate.Stateless[payload, delegate.Void, stateless]()
			if err != nil {
				return nil, nil, err
			}
			return callLoop(d), nil, nil
		}},
		{Group: GroupDelegate, Name: "Delegate, inline", Prepare: func(int) (Body, func(), error) {
			d, err := delegate.Inline[payload, delegate.Void](callable{i: 1})
			if err != nil {
				return nil, nil, err
			}
			return callLoop(d), nil, nil
		}},
		{Group: GroupDelegate, Name: "Delegate passed to function", Prepare: func(int) (Body, func(), error) {
			p := newSink().payload()
			d := delegate.MethodAction(&receiver{i: 1}, (*receiver).Apply)
			return func(n int) error {
				for range n {
					callThrough(d, p)
				}
				return nil
			}, nil, nil
		}},
	}
}

func callLoop(d delegate.Delegate[payload, delegate.Void]) Body {
	p := newSink().payload()
	return func(n int) error {
		for range n {
			if _, err := d.Invoke(p); err != nil {
				return err
			}
		}
		return nil
	}
}

func newOwned(i int) *owned {
	return &owned{i: i, released: new(int)}
}

func owningScenarios() []Scenario {
	return []Scenario{
		{Group: GroupOwning, Name: "Owning, method", Prepare: func(int) (Body, func(), error) {
			o := newOwned(1)
			od, err := delegate.OwnMethodAction(o, (*owned).Apply)
			if err != nil {
				return nil, nil, err
			}
			return owningLoop(od), od.Close, nil
		}},
		{Group: GroupOwning, Name: "Owning, callable", Prepare: func(int) (Body, func(), error) {
			o := newOwned(1)
			od, err := delegate.OwnCallable[payload, delegate.Void](o)
			if err != nil {
				return nil, nil, err
			}
			return owningLoop(od), od.Close, nil
		}},
		{Group: GroupOwning, Name: "Owning view subscribed to an event", Prepare: func(int) (Body, func(), error) {
			o := newOwned(1)
			od, err := delegate.OwnMethodAction(o, (*owned).Apply)
			if err != nil {
				return nil, nil, err
			}
			e := event.New[payload]()
			s := e.Subscribe(od.View())
			p := newSink().payload()
			cleanup := func() {
				s.Close()
				od.Close()
			}
			return func(n int) error {
				for range n {
					if err := e.Raise(p); err != nil {
						return err
					}
				}
				return nil
			}, cleanup, nil
		}},
	}
}

func owningLoop(od *delegate.Owning[payload, delegate.Void]) Body {
	p := newSink().payload()
	return func(n int) error {
		for range n {
			if _, err := od.Invoke(p); err != nil {
				return err
			}
		}
		return nil
	}
}

func moveScenarios() []Scenario {
	return []Scenario{
		{Group: GroupMove, Name: "Delegate copy", Prepare: func(int) (Body, func(), error) {
			p := newSink().payload()
			d := delegate.MethodAction(&receiver{i: 1}, (*receiver).Apply)
			return func(n int) error {
				for range n {
					moved := d
					d.Reset()
					moved.Call(p)
					d = moved
				}
				return nil
			}, nil, nil
		}},
		{Group: GroupMove, Name: "Owning.Move", Prepare: func(int) (Body, func(), error) {
			od, err := delegate.OwnMethodAction(newOwned(1), (*owned).Apply)
			if err != nil {
				return nil, nil, err
			}
			p := newSink().payload()
			body := func(n int) error {
				for range n {
					od = od.Move()
					od.Call(p)
				}
				return nil
			}
			return body, func() { od.Close() }, nil
		}},
		{Group: GroupMove, Name: "Owning.Assign, empty target", Prepare: func(int) (Body, func(), error) {
			a, err := delegate.OwnMethodAction(newOwned(1), (*owned).Apply)
			if err != nil {
				return nil, nil, err
			}
			b := a.Move()
			p := newSink().payload()
			body := func(n int) error {
				for range n {
					a.Assign(b)
					a.Call(p)
					b.Assign(a)
				}
				return nil
			}
			cleanup := func() {
				a.Close()
				b.Close()
			}
			return body, cleanup, nil
		}},
		{Group: GroupMove, Name: "Owning.Assign, nonempty target", Prepare: func(int) (Body, func(), error) {
			released := new(int)
			newOwning := func() (*delegate.Owning[payload, delegate.Void], error) {
				return delegate.OwnMethodAction(&owned{i: 1, released: released}, (*owned).Apply)
			}
			a, err := newOwning()
			if err != nil {
				return nil, nil, err
			}
			p := newSink().payload()
			return func(n int) error {
				for range n {
					b, err := newOwning()
					if err != nil {
						return err
					}
					a.Assign(b)
					a.Call(p)
				}
				return nil
			}, a.Close, nil
		}},
		{Group: GroupMove, Name: "Subscription.Move", Prepare: func(int) (Body, func(), error) {
			e := event.New[payload]()
			s := e.Subscribe(delegate.MethodAction(&receiver{i: 1}, (*receiver).Apply))
			p := newSink().payload()
			body := func(n int) error {
				for range n {
					s = s.Move()
				}
				return e.Raise(p)
			}
			return body, func() { s.Close() }, nil
		}},
	}
}

func eventScenarios() []Scenario {
	return []Scenario{
		{Group: GroupEvent, Name: "direct callbacks", PerSubscriber: true, Prepare: func(subs int) (Body, func(), error) {
			p := newSink().payload()
			rs := receivers(subs)
			return func(n int) error {
				for range n {
					for _, r := range rs {
						r.Apply(p)
					}
				}
				return nil
			}, nil, nil
		}},
		{Group: GroupEvent, Name: "func slice", PerSubscriber: true, Prepare: func(subs int) (Body, func(), error) {
			p := newSink().payload()
			var fs baseline.FuncSlice[payload]
			for _, r := range receivers(subs) {
				fs.Add(r.Apply)
			}
			return func(n int) error {
				for range n {
					fs.Call(p)
				}
				return nil
			}, nil, nil
		}},
		{Group: GroupEvent, Name: "map bus", PerSubscriber: true, Prepare: func(subs int) (Body, func(), error) {
			p := newSink().payload()
			bus := baseline.NewMapBus[payload]()
			var unsubs []func()
			for _, r := range receivers(subs) {
				unsubs = append(unsubs, bus.Subscribe(r.Apply))
			}
			body := func(n int) error {
				for range n {
					bus.Publish(p)
				}
				return nil
			}
			cleanup := func() {
				for _, u := range unsubs {
					u()
				}
			}
			return body, cleanup, nil
		}},
		{Group: GroupEvent, Name: "Event.Raise", PerSubscriber: true, Prepare: func(subs int) (Body, func(), error) {
			p := newSink().payload()
			e, held := subscribedEvent(subs)
			return func(n int) error {
				for range n {
					if err := e.Raise(p); err != nil {
						return err
					}
				}
				return nil
			}, held.Close, nil
		}},
		{Group: GroupEvent, Name: "Subscribe and Close", PerSubscriber: true, Prepare: func(subs int) (Body, func(), error) {
			e, held := subscribedEvent(subs)
			cb := delegate.MethodAction(&receiver{i: 1}, (*receiver).Apply)
			return func(n int) error {
				for range n {
					e.Subscribe(cb).Close()
				}
				return nil
			}, held.Close, nil
		}},
	}
}

func receivers(n int) []*receiver {
	rs := make([]*receiver, n)
	for i := range rs {
		rs[i] = &receiver{i: i}
	}
	return rs
}

// subscribedEvent returns an event with n method subscriptions and the
// container that keeps them.
func subscribedEvent(n int) (*event.Event[payload], *event.Subscriptions) {
	e := event.NewWithCapacity[payload](n + 1)
	held := new(event.Subscriptions)
	for _, r := range receivers(n) {
		e.SubscribeTo(delegate.MethodAction(r, (*receiver).Apply), held)
	}
	return e, held
}
