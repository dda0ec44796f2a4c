// ABOUTME: Non-owning type-erased callable: an invoker plus a tagged context
// ABOUTME: Binds funcs, methods, viewed callables, stateless types and small inline values

// Package delegate provides Delegate, a small value type that erases the
// concrete kind of a callable behind one call shape func(A) R, and Owning,
// its counterpart that owns the lifetime of the bound object.
//
// A Delegate never extends the logical lifetime of what it points to: the
// caller guarantees that a bound object stays valid for every call made
// through the delegate. This is not checked.
package delegate

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Void is the argument or result type of delegates that take or return
// nothing.
type Void = struct{}

// Callable is anything that can be invoked with A and returns R.
type Callable[A, R any] interface {
	Call(A) R
}

// Kind tags the binding stored in a Delegate.
type Kind uint8

const (
	KindNone      Kind = iota // unbound
	KindFunc                  // func value
	KindMethod                // method expression + instance pointer
	KindView                  // viewed Callable
	KindStateless             // zero value of a type, created per call
	KindInline                // small pointer-free value copied into the delegate
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFunc:
		return "func"
	case KindMethod:
		return "method"
	case KindView:
		return "view"
	case KindStateless:
		return "stateless"
	case KindInline:
		return "inline"
	default:
		return "unknown"
	}
}

const inlineWords = 2

// InlineSize is the number of bytes a value may occupy to be stored inline.
const InlineSize = inlineWords * int(unsafe.Sizeof(uintptr(0)))

// target is the context half of a Delegate. Which fields are meaningful
// depends on the Kind; fn and obj only ever hold pointer-shaped values so
// storing them does not allocate.
type target struct {
	fn  any
	obj any
	buf [inlineWords]uintptr
}

// Delegate is a non-owning type-erased callable. The zero value is unbound:
// Invoke returns ErrUnbound and Call panics with it.
//
// Copying a Delegate copies the binding, never the target.
type Delegate[A, R any] struct {
	kind   Kind
	invoke func(ctx target, arg A) R
	ctx    target
}

// Func binds a func value. A nil fn yields an unbound delegate.
func Func[A, R any](fn func(A) R) Delegate[A, R] {
	if fn == nil {
		return Delegate[A, R]{}
	}
	return Delegate[A, R]{
		kind:   KindFunc,
		invoke: invokeFunc[A, R],
		ctx:    target{fn: fn},
	}
}

// Action binds a func value without a result.
func Action[A any](fn func(A)) Delegate[A, Void] {
	if fn == nil {
		return Delegate[A, Void]{}
	}
	return Delegate[A, Void]{
		kind:   KindFunc,
		invoke: invokeAction[A],
		ctx:    target{fn: fn},
	}
}

// Method binds a method expression such as (*Counter).Add to an instance.
// A nil obj or m yields an unbound delegate.
func Method[T, A, R any](obj *T, m func(*T, A) R) Delegate[A, R] {
	if obj == nil || m == nil {
		return Delegate[A, R]{}
	}
	return Delegate[A, R]{
		kind:   KindMethod,
		invoke: invokeMethod[*T, A, R],
		ctx:    target{fn: m, obj: obj},
	}
}

// MethodAction binds a method expression without a result to an instance.
func MethodAction[T, A any](obj *T, m func(*T, A)) Delegate[A, Void] {
	if obj == nil || m == nil {
		return Delegate[A, Void]{}
	}
	return Delegate[A, Void]{
		kind:   KindMethod,
		invoke: invokeMethodAction[*T, A],
		ctx:    target{fn: m, obj: obj},
	}
}

// Bind views an existing Callable. The delegate stores the interface value
// as is; for pointer receivers that is the pointer, so later changes to the
// object are observed by the delegate.
func Bind[A, R any](c Callable[A, R]) Delegate[A, R] {
	if c == nil {
		return Delegate[A, R]{}
	}
	return Delegate[A, R]{
		kind:   KindView,
		invoke: invokeView[A, R],
		ctx:    target{obj: c},
	}
}

// Stateless binds a callable type rather than a value. Each call invokes
// Call on a fresh zero value of C, so nothing is stored. Pointer, interface,
// map, chan and func types have a nil zero value and give ErrNotStateless.
func Stateless[A, R any, C Callable[A, R]]() (Delegate[A, R], error) {
	typ := reflect.TypeFor[C]()
	switch typ.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return Delegate[A, R]{}, fmt.Errorf("%w: %s", ErrNotStateless, typ)
	}
	return Delegate[A, R]{
		kind:   KindStateless,
		invoke: invokeStateless[A, R, C],
		ctx:    target{obj: typ},
	}, nil
}

// Inline copies c into the delegate itself. C must fit InlineSize, need no
// more than word alignment, and contain no pointers; otherwise the result
// is ErrNotInlinable and c should be bound with Bind instead.
func Inline[A, R any, C Callable[A, R]](c C) (Delegate[A, R], error) {
	typ := reflect.TypeFor[C]()
	if !inlinable(typ) {
		return Delegate[A, R]{}, fmt.Errorf("%w: %s (%d bytes)", ErrNotInlinable, typ, typ.Size())
	}
	d := Delegate[A, R]{
		kind:   KindInline,
		invoke: invokeInline[A, R, C],
		ctx:    target{obj: typ},
	}
	*(*C)(unsafe.Pointer(&d.ctx.buf)) = c
	return d, nil
}

// Invoke calls the bound target with arg.
func (d Delegate[A, R]) Invoke(arg A) (R, error) {
	if d.invoke == nil {
		var zero R
		return zero, ErrUnbound
	}
	return d.invoke(d.ctx, arg), nil
}

// Call is Invoke for callers that treat an unbound delegate as a
// programming error. It panics with ErrUnbound.
func (d Delegate[A, R]) Call(arg A) R {
	if d.invoke == nil {
		panic(ErrUnbound)
	}
	return d.invoke(d.ctx, arg)
}

// Bound reports whether the delegate has a target.
func (d Delegate[A, R]) Bound() bool {
	return d.invoke != nil
}

// Kind returns the binding kind.
func (d Delegate[A, R]) Kind() Kind {
	return d.kind
}

// Reset unbinds the delegate.
func (d *Delegate[A, R]) Reset() {
	*d = Delegate[A, R]{}
}

// String describes the binding, e.g. "delegate(method *main.Counter)".
func (d Delegate[A, R]) String() string {
	switch d.kind {
	case KindNone:
		return "delegate(none)"
	case KindFunc:
		return fmt.Sprintf("delegate(func %T)", d.ctx.fn)
	case KindStateless, KindInline:
		return fmt.Sprintf("delegate(%s %v)", d.kind, d.ctx.obj)
	default:
		return fmt.Sprintf("delegate(%s %T)", d.kind, d.ctx.obj)
	}
}

func invokeFunc[A, R any](ctx target, arg A) R {
	return ctx.fn.(func(A) R)(arg)
}

func invokeAction[A any](ctx target, arg A) Void {
	ctx.fn.(func(A))(arg)
	return Void{}
}

func invokeMethod[P, A, R any](ctx target, arg A) R {
	return ctx.fn.(func(P, A) R)(ctx.obj.(P), arg)
}

func invokeMethodAction[P, A any](ctx target, arg A) Void {
	ctx.fn.(func(P, A))(ctx.obj.(P), arg)
	return Void{}
}

func invokeView[A, R any](ctx target, arg A) R {
	return ctx.obj.(Callable[A, R]).Call(arg)
}

func invokeStateless[A, R any, C Callable[A, R]](_ target, arg A) R {
	var c C
	return c.Call(arg)
}

func invokeInline[A, R any, C Callable[A, R]](ctx target, arg A) R {
	return inlineValue[C](ctx).Call(arg)
}

// inlineValue copies the value stored by Inline out of the buffer. The
// caller has already checked that the kind is KindInline for type C.
func inlineValue[C any](ctx target) C {
	return *(*C)(unsafe.Pointer(&ctx.buf))
}

// inlinable reports whether values of typ can live in target.buf: small
// enough, word-aligned at most, and invisible to the garbage collector.
func inlinable(typ reflect.Type) bool {
	if typ.Size() > uintptr(InlineSize) {
		return false
	}
	if typ.Align() > int(unsafe.Alignof(uintptr(0))) {
		return false
	}
	return pointerFree(typ)
}

func pointerFree(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return typ.Len() == 0 || pointerFree(typ.Elem())
	case reflect.Struct:
		for i := range typ.NumField() {
			if !pointerFree(typ.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
