// Package errors provides structured error types for the script-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the indices a host diagnostic aggregator
// needs: which call argument was at fault and, for collection arguments, which
// element inside it.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCoerce, errors.KindTypeMismatch).
//		Arg(0).
//		Elem(2).
//		Expected("future").
//		Actual("string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Arity(1, args)
//	err := errors.BadElement(0, i, "future", kind.String())
//
// All errors implement the standard error interface and support errors.Is/As.
// Inner task failures are never rewritten: the join engine returns them
// verbatim so callers can match on the original error value.
package errors
