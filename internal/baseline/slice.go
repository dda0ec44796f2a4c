// ABOUTME: FuncSlice: a plain slice of func values, the lower bound for notification cost
// ABOUTME: No handles and no removal; the harness uses it as the "array of callbacks" baseline

package baseline

// FuncSlice calls each appended function in order.
type FuncSlice[T any] []func(T)

// Add appends fn.
func (s *FuncSlice[T]) Add(fn func(T)) {
	*s = append(*s, fn)
}

// Call invokes every function with v.
func (s FuncSlice[T]) Call(v T) {
	for _, fn := range s {
		fn(v)
	}
}
