// Package value implements the dynamic value model of the script runtime.
//
// A Value is a closed tagged union. Use sites query capabilities instead of
// switching over every variant:
//
//	if elems, ok := v.AsList(); ok { ... }
//	if fut, ok := v.AsFuture(); ok { ... }
//
// Future-kinded values hold a shared *Future handle: copying the Value shares
// the pending computation, it never duplicates its completion.
//
// A Future is lazy. NewFuture records the computation; the backing goroutine
// starts on the first Await. A future that is never awaited never runs, which
// is how dropped siblings are cancelled after a join aborts during coercion.
package value
