package tui

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/fir/internal/tui/components"
)

// ErrInterrupted is returned when the user quits while work is still running.
var ErrInterrupted = errors.New("interrupted")

// Work is the operation shown behind a spinner. It returns the summary shown
// once the spinner stops.
type Work func() (summary string, err error)

// RunWithSpinner runs work while a spinner is drawn on stderr.
//
// In non-interactive mode work runs directly with no terminal output.
// The spinner never touches the work's state; it only receives the final
// summary or error.
func RunWithSpinner(message string, work Work) error {
	if !IsInteractive() {
		_, err := work()
		return err
	}
	return runProgram(message, work, tea.WithOutput(os.Stderr))
}

func runProgram(message string, work Work, opts ...tea.ProgramOption) error {
	m := newSpinnerModel(message, work)
	p := tea.NewProgram(m, opts...)

	final, err := p.Run()
	if err != nil {
		return err
	}

	done := final.(spinnerModel)
	if !done.spinner.IsDone() {
		return ErrInterrupted
	}
	return done.spinner.Error()
}

// spinnerModel drives a components.Spinner until work completes.
type spinnerModel struct {
	spinner components.Spinner
	work    Work
	keys    KeyMap
}

func newSpinnerModel(message string, work Work) spinnerModel {
	return spinnerModel{
		spinner: components.NewSpinnerWithStyles(message, components.SpinnerStyles{
			Spinner: SpinnerStyle,
			Message: SpinnerMessageStyle,
			Success: SuccessStyle,
			Error:   ErrorStyle,
		}),
		work: work,
		keys: DefaultKeyMap(),
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Init(), m.runWork)
}

// runWork executes in a goroutine managed by the program.
func (m spinnerModel) runWork() tea.Msg {
	summary, err := m.work()
	if err != nil {
		return components.SpinnerFailed(err)
	}
	return components.SpinnerDone(summary)
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	case components.SpinnerDoneMsg:
		m.spinner, _ = m.spinner.Update(msg)
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	return m.spinner.View() + "\n"
}
