package join

import (
	"context"

	"github.com/veldtlabs/script-runtime/errors"
	"github.com/veldtlabs/script-runtime/runtime"
	"github.com/veldtlabs/script-runtime/value"
)

// ModuleName is the module path join registers under.
const ModuleName = "std::future"

// Module returns the std::future module for registration with a Registry.
func Module() *runtime.Module {
	return runtime.NewModule(ModuleName).Add(&runtime.Func{
		Name:  "join",
		Args:  1,
		Async: true,
		Raw:   rawJoin,
		Doc:   "Waits for a collection of futures to complete and joins their results.",
		Examples: []string{
			`let a = async { 1 }
let b = async { 2 }
let (a, b) = std::future::join((a, b)).await`,
			`let a = async { 1 }
let b = async { 2 }
let [a, b] = std::future::join([a, b]).await`,
			`let () = std::future::join(()).await
let [] = std::future::join([]).await`,
		},
	})
}

// rawJoin adapts All to the stack calling convention. It checks arity before
// touching the stack, pops the one argument, and pushes the whole pipeline
// back as a pending computation. The call never suspends; the join runs when
// the host awaits the pushed value.
func rawJoin(_ context.Context, st *runtime.Stack, args int) error {
	if args != 1 {
		return errors.Arity(1, args)
	}
	v, err := st.Pop()
	if err != nil {
		return err
	}
	st.Push(value.Go(func(ctx context.Context) (value.Value, error) {
		return All(ctx, v)
	}))
	return nil
}
