package join

import (
	"context"

	"go.uber.org/zap"

	"github.com/veldtlabs/script-runtime/errors"
	"github.com/veldtlabs/script-runtime/value"
)

// task pairs a pending computation with its origin index. The index is fixed
// at registration and is the only thing that determines where the task's
// result lands.
type task struct {
	fut   *value.Future
	index int
}

// completion is one "next task finished" event harvested from the waiting set.
type completion struct {
	err   error
	val   value.Value
	index int
}

// testHookBeforeWait runs before each suspension in the harvest loop.
var testHookBeforeWait = func() {}

// All joins every pending computation in the collection v and returns the
// results in original positional order, wrapped in v's container shape.
//
// All elements are coerced before any of them starts. A coercion failure
// aborts with a composite error naming both the call argument and the
// offending element; earlier elements are dropped without ever running.
// The empty collection resolves without suspending.
func All(ctx context.Context, v value.Value) (value.Value, error) {
	shape, elems, err := Classify(v)
	if err != nil {
		return value.Unit(), err
	}

	tasks := make([]task, len(elems))
	for i, e := range elems {
		fut, ok := e.AsFuture()
		if !ok {
			return value.Unit(), errors.BadElement(0, i, "future", e.Kind().String())
		}
		tasks[i] = task{fut: fut, index: i}
	}

	if len(tasks) == 0 {
		return shape.Rebuild(nil), nil
	}
	return harvest(ctx, shape, tasks)
}

// harvest drives all tasks concurrently and collects each result at its
// recorded index. Completion order is unconstrained; the buffered channel is
// the unordered waiting set, and the loop below is the single writer of the
// result slots.
func harvest(ctx context.Context, shape Shape, tasks []task) (value.Value, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel() // dropping the waiting set cancels still-running tasks

	done := make(chan completion, len(tasks))
	for _, tk := range tasks {
		go func(tk task) {
			val, err := tk.fut.Await(ctx)
			done <- completion{index: tk.index, val: val, err: err}
		}(tk)
	}

	results := make([]value.Value, len(tasks))
	filled := make([]bool, len(tasks))
	for pending := len(tasks); pending > 0; pending-- {
		testHookBeforeWait()
		c := <-done

		if c.err != nil {
			Logger().Debug("join aborted",
				zap.Int("index", c.index),
				zap.Int("dropped", pending-1),
				zap.Error(c.err),
			)
			return value.Unit(), c.err
		}

		// Each index appears in the input exactly once, so a second write
		// means a corrupted task index, not a user error.
		if c.index < 0 || c.index >= len(results) || filled[c.index] {
			return value.Unit(), errors.SlotConflict(c.index)
		}
		filled[c.index] = true
		results[c.index] = c.val

		Logger().Debug("task completed",
			zap.Int("index", c.index),
			zap.Int("pending", pending-1),
		)
	}

	return shape.Rebuild(results), nil
}
