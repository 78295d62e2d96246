package runtime

import (
	"context"

	"go.uber.org/zap"

	"github.com/veldtlabs/script-runtime/errors"
)

// RawFunc is the calling convention for native functions: args values are on
// the stack, results are pushed back. A raw function must not block; long
// work is deferred by pushing a pending computation instead.
type RawFunc func(ctx context.Context, st *Stack, args int) error

// Func describes one native function. Args, Async and Doc are metadata for
// hosts that surface documentation; only Raw defines behavior.
type Func struct {
	Raw      RawFunc
	Name     string
	Doc      string
	Examples []string
	Args     int
	Async    bool
}

// Module is a named group of native functions.
type Module struct {
	funcs map[string]*Func
	Name  string
}

// NewModule returns an empty module with the given name.
func NewModule(name string) *Module {
	return &Module{Name: name, funcs: make(map[string]*Func)}
}

// Add registers fn under its name, replacing any previous definition.
func (m *Module) Add(fn *Func) *Module {
	m.funcs[fn.Name] = fn
	return m
}

// Func returns the named function, or nil.
func (m *Module) Func(name string) *Func {
	return m.funcs[name]
}

// Registry resolves module-qualified function names for dispatch.
type Registry struct {
	modules map[string]*Module
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// Register adds a module, replacing any previous module of the same name.
func (r *Registry) Register(m *Module) {
	r.modules[m.Name] = m
}

// Lookup returns the named function.
func (r *Registry) Lookup(module, name string) (*Func, error) {
	m, ok := r.modules[module]
	if !ok {
		return nil, errors.NotFound("module", module)
	}
	fn := m.Func(name)
	if fn == nil {
		return nil, errors.NotFound("function", module+"::"+name)
	}
	return fn, nil
}

// Invoke dispatches a call through the stack calling convention. The args
// count is passed through to the function untouched; arity enforcement is
// the function's own first act.
func (r *Registry) Invoke(ctx context.Context, module, name string, st *Stack, args int) error {
	fn, err := r.Lookup(module, name)
	if err != nil {
		return err
	}
	Logger().Debug("invoke",
		zap.String("module", module),
		zap.String("func", name),
		zap.Int("args", args),
	)
	return fn.Raw(ctx, st, args)
}
