// ABOUTME: Call targets shared by the scenarios: functions, methods, callables and owned objects
// ABOUTME: Every target writes into a per-scenario sink so concurrent groups never share memory

package bench

import "github.com/mauromedda/callme-go/pkg/delegate"

const sampleText = "qwertyuiop[]asdfghjkl;'zxcvbnm,./"

// payload is the argument every scenario passes: one input by reference and
// two outputs, so the call cannot be optimised away.
type payload struct {
	text *string
	n    *int
	size *int
}

type sink struct {
	text string
	n    int
	size int
}

func newSink() *sink {
	return &sink{text: sampleText}
}

func (s *sink) payload() payload {
	return payload{text: &s.text, n: &s.n, size: &s.size}
}

func apply(p payload) {
	*p.n = 1
	*p.size = len(*p.text)
}

//go:noinline
func applyNoinline(p payload) {
	*p.n = 1
	*p.size = len(*p.text)
}

// callThrough receives the delegate as a parameter.
//
//go:noinline
func callThrough(d delegate.Delegate[payload, delegate.Void], p payload) {
	d.Call(p)
}

type receiver struct {
	i int
}

func (r *receiver) Apply(p payload) {
	*p.n = r.i
	*p.size = len(*p.text)
}

// callable is small and pointer-free, so it can be stored inline.
type callable struct {
	i int
}

func (c callable) Call(p payload) delegate.Void {
	*p.n = c.i
	*p.size = len(*p.text)
	return delegate.Void{}
}

type stateless struct{}

func (stateless) Call(p payload) delegate.Void {
	apply(p)
	return delegate.Void{}
}

// owned counts its releases in the scenario that created it.
type owned struct {
	i        int
	released *int
}

func (o *owned) Apply(p payload) {
	*p.n = o.i
	*p.size = len(*p.text)
}

func (o *owned) Call(p payload) delegate.Void {
	o.Apply(p)
	return delegate.Void{}
}

func (o *owned) Release() {
	*o.released++
}
