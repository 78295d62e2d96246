package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/veldtlabs/script-runtime/join"
	"github.com/veldtlabs/script-runtime/runtime"
	"github.com/veldtlabs/script-runtime/scenario"
)

func main() {
	var (
		scenarioFile = flag.String("scenario", "", "Path to scenario yaml file")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
		verbose      = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *scenarioFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: joinrun -scenario <file.yaml> [-i] [-v]")
		os.Exit(1)
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		join.SetLogger(l)
		runtime.SetLogger(l)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*scenarioFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*scenarioFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type event struct {
	name string
	err  error
}

func run(scenarioFile string) error {
	ctx := context.Background()

	s, err := scenario.LoadFile(scenarioFile)
	if err != nil {
		return err
	}

	shape := "list"
	if s.Tuple() {
		shape = "tuple"
	}
	fmt.Printf("Scenario: %s\n", scenarioFile)
	fmt.Printf("Shape: %s\n", shape)
	fmt.Printf("Tasks: %d\n\n", len(s.Tasks))

	var mu sync.Mutex
	order := make(map[int]int)
	events := make(map[int]event)
	input := s.Build(func(index int, name string, err error) {
		mu.Lock()
		defer mu.Unlock()
		order[index] = len(order)
		events[index] = event{name: name, err: err}
	})

	reg := runtime.NewRegistry()
	reg.Register(join.Module())

	st := runtime.NewStack()
	st.Push(input)
	if err := reg.Invoke(ctx, join.ModuleName, "join", st, 1); err != nil {
		return err
	}

	out, err := st.Pop()
	if err != nil {
		return err
	}
	pending, ok := out.AsFuture()
	if !ok {
		return fmt.Errorf("join did not push a future, got %s", out.Kind())
	}

	result, joinErr := pending.Await(ctx)

	mu.Lock()
	indices := make([]int, 0, len(order))
	for i := range order {
		indices = append(indices, i)
	}
	sort.Slice(indices, func(a, b int) bool { return order[indices[a]] < order[indices[b]] })
	fmt.Println("Completion order:")
	for _, i := range indices {
		ev := events[i]
		status := "ok"
		if ev.err != nil {
			status = "failed: " + ev.err.Error()
		}
		fmt.Printf("  %d. task #%d %s (%s)\n", order[i]+1, i, ev.name, status)
	}
	mu.Unlock()

	if joinErr != nil {
		return joinErr
	}
	fmt.Printf("\nResult: %s\n", result)
	return nil
}
