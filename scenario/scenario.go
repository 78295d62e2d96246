package scenario

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/veldtlabs/script-runtime/errors"
	"github.com/veldtlabs/script-runtime/value"
)

// Task is one element of the joined collection.
type Task struct {
	Name    string `yaml:"name"`
	Delay   string `yaml:"delay"`
	Value   any    `yaml:"value"`
	Fail    string `yaml:"fail"`
	Literal bool   `yaml:"literal"`

	delay time.Duration
}

// Scenario describes one join workload.
type Scenario struct {
	Shape string `yaml:"shape"`
	Tasks []Task `yaml:"tasks"`
}

// Notify observes task completion as it happens: index is the task's
// position in the scenario, err is non-nil for failed tasks.
type Notify func(index int, name string, err error)

// Load parses and validates a scenario document.
func Load(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, errors.New(errors.PhaseScenario, errors.KindInvalidScenario).
			Detail("cannot parse scenario").Cause(err).Build()
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses a scenario file.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseScenario, errors.KindInvalidScenario).
			Detail("cannot read %s", path).Cause(err).Build()
	}
	return Load(data)
}

func (s *Scenario) validate() error {
	switch s.Shape {
	case "", "list", "tuple":
	default:
		return errors.New(errors.PhaseScenario, errors.KindInvalidScenario).
			Detail("shape must be \"list\" or \"tuple\", got %q", s.Shape).Build()
	}

	for i := range s.Tasks {
		t := &s.Tasks[i]
		if t.Fail != "" && t.Value != nil {
			return errors.New(errors.PhaseScenario, errors.KindInvalidScenario).Elem(i).
				Detail("task %q sets both value and fail", t.Name).Build()
		}
		if t.Literal && t.Fail != "" {
			return errors.New(errors.PhaseScenario, errors.KindInvalidScenario).Elem(i).
				Detail("task %q cannot be both literal and failing", t.Name).Build()
		}
		if t.Delay != "" {
			d, err := time.ParseDuration(t.Delay)
			if err != nil {
				return errors.New(errors.PhaseScenario, errors.KindInvalidScenario).Elem(i).
					Detail("task %q has invalid delay %q", t.Name, t.Delay).Cause(err).Build()
			}
			if d < 0 {
				return errors.New(errors.PhaseScenario, errors.KindInvalidScenario).Elem(i).
					Detail("task %q has negative delay", t.Name).Build()
			}
			t.delay = d
		}
		if _, err := convert(t.Value); err != nil {
			return errors.New(errors.PhaseScenario, errors.KindInvalidScenario).Elem(i).
				Detail("task %q has unsupported value", t.Name).Cause(err).Build()
		}
	}
	return nil
}

// Tuple reports whether the scenario requests a tuple-shaped collection.
func (s *Scenario) Tuple() bool {
	return s.Shape == "tuple"
}

// Build assembles the input collection. Non-literal tasks become lazy
// futures that sleep their delay and then resolve or fail; notify, when
// non-nil, fires at each task's completion in real completion order.
func (s *Scenario) Build(notify Notify) value.Value {
	elems := make([]value.Value, len(s.Tasks))
	for i := range s.Tasks {
		t := s.Tasks[i]
		if t.Literal {
			v, _ := convert(t.Value)
			elems[i] = v
			continue
		}
		index := i
		elems[index] = value.Go(func(ctx context.Context) (value.Value, error) {
			if t.delay > 0 {
				select {
				case <-time.After(t.delay):
				case <-ctx.Done():
					return value.Unit(), ctx.Err()
				}
			}
			if t.Fail != "" {
				err := stderrors.New(t.Fail)
				if notify != nil {
					notify(index, t.Name, err)
				}
				return value.Unit(), err
			}
			v, _ := convert(t.Value)
			if notify != nil {
				notify(index, t.Name, nil)
			}
			return v, nil
		})
	}
	if s.Tuple() {
		return value.Tuple(elems...)
	}
	return value.List(elems...)
}

// convert maps a decoded YAML scalar (or sequence of scalars) to a Value.
func convert(raw any) (value.Value, error) {
	switch v := raw.(type) {
	case nil:
		return value.Unit(), nil
	case bool:
		return value.Bool(v), nil
	case int:
		return value.Int(int64(v)), nil
	case int64:
		return value.Int(v), nil
	case float64:
		return value.Float(v), nil
	case string:
		return value.Str(v), nil
	case []any:
		elems := make([]value.Value, len(v))
		for i, e := range v {
			ev, err := convert(e)
			if err != nil {
				return value.Unit(), err
			}
			elems[i] = ev
		}
		return value.List(elems...), nil
	default:
		return value.Unit(), fmt.Errorf("unsupported value type %T", raw)
	}
}
