// Package runtime provides the host calling convention for native functions.
//
// Native functions receive their arguments through a Stack and return results
// by pushing them back. A Registry groups functions into named modules and
// dispatches calls:
//
//	reg := runtime.NewRegistry()
//	reg.Register(join.Module())
//
//	st := runtime.NewStack()
//	st.Push(arg)
//	err := reg.Invoke(ctx, "std::future", "join", st, 1)
//
// Function metadata (documentation, declared arity, async marking) is
// descriptive only; behavior is defined entirely by the raw function.
package runtime
