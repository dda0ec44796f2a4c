// ABOUTME: Owning delegate: same call shape as Delegate, plus exclusive ownership of the object
// ABOUTME: Release runs exactly once per owned object across Move, Assign and Close

package delegate

import (
	"fmt"
	"unsafe"
)

// Releaser is implemented by objects whose lifetime an Owning delegate can
// manage. Release is the deleter: it is called exactly once, by whichever
// Owning holds the object last.
type Releaser interface {
	Release()
}

// noCopy makes go vet's copylocks check flag accidental copies of Owning.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Owning is a delegate that owns the object it is bound to. There is
// exactly one live owner at a time: use Move or Assign to transfer it, and
// Close to release it. Owning values must not be copied.
//
// Only objects reached through a pointer with a Release method can be
// owned, so free functions, plain values and objects without a deleter
// cannot be passed to the constructors at all.
type Owning[A, R any] struct {
	_     noCopy
	d     Delegate[A, R]
	owned Releaser
}

// OwnMethod takes ownership of obj and binds method m to it.
func OwnMethod[T any, P interface {
	*T
	Releaser
}, A, R any](obj P, m func(P, A) R) (*Owning[A, R], error) {
	if err := checkOwnable[T](obj == nil || m == nil); err != nil {
		return nil, err
	}
	return &Owning[A, R]{
		d: Delegate[A, R]{
			kind:   KindMethod,
			invoke: invokeMethod[P, A, R],
			ctx:    target{fn: m, obj: obj},
		},
		owned: obj,
	}, nil
}

// OwnMethodAction is OwnMethod for methods without a result.
func OwnMethodAction[T any, P interface {
	*T
	Releaser
}, A any](obj P, m func(P, A)) (*Owning[A, Void], error) {
	if err := checkOwnable[T](obj == nil || m == nil); err != nil {
		return nil, err
	}
	return &Owning[A, Void]{
		d: Delegate[A, Void]{
			kind:   KindMethod,
			invoke: invokeMethodAction[P, A],
			ctx:    target{fn: m, obj: obj},
		},
		owned: obj,
	}, nil
}

// OwnCallable takes ownership of a callable object.
func OwnCallable[A, R any, T any, P interface {
	*T
	Callable[A, R]
	Releaser
}](obj P) (*Owning[A, R], error) {
	if err := checkOwnable[T](obj == nil); err != nil {
		return nil, err
	}
	return &Owning[A, R]{
		d:     Bind[A, R](obj),
		owned: obj,
	}, nil
}

func checkOwnable[T any](isNil bool) error {
	if isNil {
		return ErrNilTarget
	}
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return fmt.Errorf("%w: %T", ErrNothingToOwn, zero)
	}
	return nil
}

// Invoke calls the owned target with arg.
func (o *Owning[A, R]) Invoke(arg A) (R, error) {
	return o.d.Invoke(arg)
}

// Call is Invoke that panics with ErrUnbound on an empty Owning.
func (o *Owning[A, R]) Call(arg A) R {
	return o.d.Call(arg)
}

// Bound reports whether o currently owns a target.
func (o *Owning[A, R]) Bound() bool {
	return o.d.Bound()
}

// View returns a non-owning Delegate to the owned target, e.g. to subscribe
// it to an event. The view must not be called after o releases the object.
func (o *Owning[A, R]) View() Delegate[A, R] {
	return o.d
}

// Move transfers ownership to a new Owning. o is left empty and its Close
// becomes a no-op.
func (o *Owning[A, R]) Move() *Owning[A, R] {
	dst := &Owning[A, R]{d: o.d, owned: o.owned}
	o.owned = nil
	o.d.Reset()
	return dst
}

// Assign releases the object o currently owns, then takes over src's
// object. src is left empty. Assigning o to itself does nothing.
func (o *Owning[A, R]) Assign(src *Owning[A, R]) {
	if o == src {
		return
	}
	// Order matters: release what o owns before adopting src's object.
	if o.owned != nil {
		o.owned.Release()
	}
	o.owned = src.owned
	o.d = src.d
	src.owned = nil
	src.d.Reset()
}

// Close releases the owned object. It is safe to call more than once.
func (o *Owning[A, R]) Close() {
	if o.owned != nil {
		o.owned.Release()
		o.owned = nil
	}
	o.d.Reset()
}
