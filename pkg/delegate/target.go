// ABOUTME: HasTarget query family: is a specific func, method, object or value bound?
// ABOUTME: Funcs compare by code pointer, objects by identity, inline values by equality

package delegate

import "reflect"

// HasFunc reports whether d is bound to fn with Func. Closures built from
// the same function literal share code and therefore compare equal.
func (d Delegate[A, R]) HasFunc(fn func(A) R) bool {
	if d.kind != KindFunc || fn == nil {
		return false
	}
	bound, ok := d.ctx.fn.(func(A) R)
	return ok && sameFunc(bound, fn)
}

// HasAction reports whether d is bound to fn with Action.
func HasAction[A any](d Delegate[A, Void], fn func(A)) bool {
	if d.kind != KindFunc || fn == nil {
		return false
	}
	bound, ok := d.ctx.fn.(func(A))
	return ok && sameFunc(bound, fn)
}

// HasMethod reports whether d is bound to method m of exactly obj.
func HasMethod[T, A, R any](d Delegate[A, R], obj *T, m func(*T, A) R) bool {
	if d.kind != KindMethod || obj == nil || m == nil {
		return false
	}
	bound, ok := d.ctx.fn.(func(*T, A) R)
	if !ok || !sameFunc(bound, m) {
		return false
	}
	p, ok := d.ctx.obj.(*T)
	return ok && p == obj
}

// HasMethodAction is HasMethod for methods without a result.
func HasMethodAction[T, A any](d Delegate[A, Void], obj *T, m func(*T, A)) bool {
	if d.kind != KindMethod || obj == nil || m == nil {
		return false
	}
	bound, ok := d.ctx.fn.(func(*T, A))
	if !ok || !sameFunc(bound, m) {
		return false
	}
	p, ok := d.ctx.obj.(*T)
	return ok && p == obj
}

// HasCallable reports whether d views c. Values whose dynamic type is not
// comparable are never reported as bound.
func (d Delegate[A, R]) HasCallable(c Callable[A, R]) bool {
	if d.kind != KindView || c == nil {
		return false
	}
	return sameObject(d.ctx.obj, c)
}

// HasStateless reports whether d was built by Stateless for type C.
func HasStateless[A, R any, C Callable[A, R]](d Delegate[A, R]) bool {
	return d.kind == KindStateless && d.ctx.obj == any(reflect.TypeFor[C]())
}

// HasInline reports whether d holds an inline copy of type C equal to c.
func HasInline[A, R any, C interface {
	comparable
	Callable[A, R]
}](d Delegate[A, R], c C) bool {
	if d.kind != KindInline || d.ctx.obj != any(reflect.TypeFor[C]()) {
		return false
	}
	return inlineValue[C](d.ctx) == c
}

func sameFunc(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// sameObject reports a == b without panicking. A comparable type can still
// hold an uncomparable dynamic value in an interface field.
func sameObject(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
