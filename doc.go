// Package scriptruntime provides the runtime substrate for a dynamically-typed
// scripting VM, centered on an ordered future-join combinator.
//
// The combinator takes a single dynamic collection value whose elements are
// pending computations and produces one composite pending computation. The
// composite completes when every element has completed, with results placed
// back in original positional order and wrapped in the same container shape
// as the input.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	script-runtime/      Root package with the architecture overview
//	├── runtime/         Argument stack, native-function modules, registry
//	├── value/           Dynamic value model and pending computations
//	├── join/            The ordered future-join combinator and its VM module
//	├── errors/          Structured error types for the host diagnostics
//	└── scenario/        Declarative task scenarios for the demo driver
//
// # Quick Start
//
// Register the future module and call join through the stack calling
// convention:
//
//	reg := runtime.NewRegistry()
//	reg.Register(join.Module())
//
//	st := runtime.NewStack()
//	st.Push(value.List(
//	    value.Go(fetchA),
//	    value.Go(fetchB),
//	))
//	if err := reg.Invoke(ctx, "std::future", "join", st, 1); err != nil {
//	    log.Fatal(err)
//	}
//
//	pending, _ := mustPop(st).AsFuture()
//	results, err := pending.Await(ctx)
//
// The Invoke call itself never blocks; the join's work happens when the
// returned pending computation is awaited.
package scriptruntime
