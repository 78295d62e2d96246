package scenario

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	rterrors "github.com/veldtlabs/script-runtime/errors"
	"github.com/veldtlabs/script-runtime/join"
	"github.com/veldtlabs/script-runtime/value"
)

const sample = `
shape: list
tasks:
  - name: fetch-a
    delay: 5ms
    value: alpha
  - name: fetch-b
    value: 42
  - name: fetch-c
    value: [1, 2]
`

func TestLoad(t *testing.T) {
	s, err := Load([]byte(sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Tuple() {
		t.Error("shape list parsed as tuple")
	}
	if len(s.Tasks) != 3 {
		t.Fatalf("len(Tasks) = %d, want 3", len(s.Tasks))
	}
	if s.Tasks[0].delay == 0 {
		t.Error("delay was not parsed")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown shape", "shape: bag\ntasks: []"},
		{"unknown field", "shape: list\nbogus: 1\ntasks: []"},
		{"bad delay", "tasks:\n  - name: t\n    delay: soon"},
		{"negative delay", "tasks:\n  - name: t\n    delay: -1s"},
		{"value and fail", "tasks:\n  - name: t\n    value: 1\n    fail: nope"},
		{"literal failure", "tasks:\n  - name: t\n    literal: true\n    fail: nope"},
		{"mapping value", "tasks:\n  - name: t\n    value: {a: 1}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			invalid := &rterrors.Error{Phase: rterrors.PhaseScenario, Kind: rterrors.KindInvalidScenario}
			if !errors.Is(err, invalid) {
				t.Errorf("err = %v, want invalid_scenario", err)
			}
		})
	}
}

func TestBuild_JoinsInOrder(t *testing.T) {
	s, err := Load([]byte(sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var mu sync.Mutex
	var completed []string
	input := s.Build(func(_ int, name string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err == nil {
			completed = append(completed, name)
		}
	})

	got, err := join.All(context.Background(), input)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	want := value.List(value.Str("alpha"), value.Int(42), value.List(value.Int(1), value.Int(2)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(completed) != 3 {
		t.Errorf("notify fired %d times, want 3", len(completed))
	}
}

func TestBuild_TupleShape(t *testing.T) {
	s, err := Load([]byte("shape: tuple\ntasks:\n  - name: a\n    value: 1\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	input := s.Build(nil)
	if input.Kind() != value.KindTuple {
		t.Errorf("input kind = %v, want tuple", input.Kind())
	}
}

func TestBuild_FailingTask(t *testing.T) {
	s, err := Load([]byte("tasks:\n  - name: boom\n    fail: connection reset\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, err = join.All(context.Background(), s.Build(nil))
	if err == nil || err.Error() != "connection reset" {
		t.Errorf("err = %v, want the task's own failure", err)
	}
}

func TestBuild_LiteralBreaksCoercion(t *testing.T) {
	s, err := Load([]byte("tasks:\n  - name: a\n    value: 1\n  - name: raw\n    literal: true\n    value: 2\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	_, err = join.All(context.Background(), s.Build(nil))
	var rte *rterrors.Error
	if !errors.As(err, &rte) {
		t.Fatalf("err = %T, want *errors.Error", err)
	}
	if rte.ElemIndex != 1 {
		t.Errorf("ElemIndex = %d, want 1", rte.ElemIndex)
	}
}
