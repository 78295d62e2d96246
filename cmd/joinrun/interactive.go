package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/veldtlabs/script-runtime/join"
	"github.com/veldtlabs/script-runtime/runtime"
	"github.com/veldtlabs/script-runtime/scenario"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type taskState int

const (
	taskPending taskState = iota
	taskDone
	taskFailed
)

type taskRow struct {
	name  string
	err   error
	state taskState
	order int
}

type interactiveModel struct {
	err      error
	result   string
	filename string
	tasks    []taskRow
	events   chan taskEventMsg
	outcome  chan joinDoneMsg
	spinner  spinner.Model
	seen     int
	finished bool
}

type taskEventMsg struct {
	err   error
	name  string
	index int
}

type joinDoneMsg struct {
	err    error
	result string
}

func newInteractiveModel(filename string, s *scenario.Scenario) *interactiveModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	tasks := make([]taskRow, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = taskRow{name: t.Name, order: -1}
	}
	return &interactiveModel{
		filename: filename,
		tasks:    tasks,
		spinner:  sp,
		events:   make(chan taskEventMsg, len(s.Tasks)),
		outcome:  make(chan joinDoneMsg, 1),
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitEvent(), m.waitOutcome())
}

func (m *interactiveModel) waitEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

func (m *interactiveModel) waitOutcome() tea.Cmd {
	return func() tea.Msg {
		return <-m.outcome
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case taskEventMsg:
		if msg.index >= 0 && msg.index < len(m.tasks) {
			row := &m.tasks[msg.index]
			row.order = m.seen
			m.seen++
			if msg.err != nil {
				row.state = taskFailed
				row.err = msg.err
			} else {
				row.state = taskDone
			}
		}
		return m, m.waitEvent()

	case joinDoneMsg:
		m.finished = true
		m.result = msg.result
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Future Join"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	for i, row := range m.tasks {
		switch row.state {
		case taskPending:
			b.WriteString(m.spinner.View())
			b.WriteString(" ")
			b.WriteString(taskStyle.Render(fmt.Sprintf("#%d %s", i, row.name)))
		case taskDone:
			b.WriteString(doneStyle.Render(fmt.Sprintf("✓ #%d %s", i, row.name)))
			b.WriteString(helpStyle.Render(fmt.Sprintf("  (completed %d.)", row.order+1)))
		case taskFailed:
			b.WriteString(errorStyle.Render(fmt.Sprintf("✗ #%d %s: %v", i, row.name, row.err)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.finished {
		if m.err != nil {
			b.WriteString(errorStyle.Render("Join failed: " + m.err.Error()))
		} else {
			b.WriteString("Result (positional): ")
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q quit"))
	} else {
		b.WriteString(helpStyle.Render("joining… • q quit"))
	}

	return b.String()
}

func runInteractive(filename string) error {
	s, err := scenario.LoadFile(filename)
	if err != nil {
		return err
	}

	m := newInteractiveModel(filename, s)

	input := s.Build(func(index int, name string, err error) {
		m.events <- taskEventMsg{index: index, name: name, err: err}
	})

	reg := runtime.NewRegistry()
	reg.Register(join.Module())

	st := runtime.NewStack()
	st.Push(input)
	if err := reg.Invoke(context.Background(), join.ModuleName, "join", st, 1); err != nil {
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

	go func() {
		result, err := pending.Await(context.Background())
		if err != nil {
			m.outcome <- joinDoneMsg{err: err}
			return
		}
		m.outcome <- joinDoneMsg{result: result.String()}
	}()

	_, err = tea.NewProgram(m).Run()
	return err
}
