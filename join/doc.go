// Package join implements the ordered future-join combinator.
//
// All takes one dynamic collection value whose elements are pending
// computations and drives them concurrently. Results land at each element's
// original position regardless of completion order, and the output keeps the
// input's container shape: tuple in, tuple out; list in, list out; the empty
// tuple resolves immediately.
//
// The first failure aborts the join. The failing task's error is returned
// verbatim and the engine's context is cancelled; that cancellation is the
// only signal the remaining tasks receive, and no partial results are ever
// exposed.
//
// Module exposes the combinator to the host as std::future::join through the
// stack calling convention. The call itself never blocks: it pushes a pending
// computation whose work happens when the host awaits it.
package join
