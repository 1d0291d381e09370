package tui

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fir/internal/tui/components"
)

func TestRunWithSpinner_NonInteractiveRunsWorkDirectly(t *testing.T) {
	clearModeEnv(t)
	t.Setenv(EnvNonInteractive, "1")

	calls := 0
	err := RunWithSpinner("Searching", func() (string, error) {
		calls++
		return "1 files - 1 results", nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRunWithSpinner_NonInteractivePropagatesError(t *testing.T) {
	clearModeEnv(t)
	t.Setenv(EnvNonInteractive, "1")

	want := errors.New("boom")
	err := RunWithSpinner("Searching", func() (string, error) { return "", want })
	assert.ErrorIs(t, err, want)
}

func TestSpinnerModel_DoneQuits(t *testing.T) {
	m := newSpinnerModel("Searching", nil)

	next, cmd := m.Update(components.SpinnerDone("2 files - 3 results"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	done := next.(spinnerModel)
	assert.True(t, done.spinner.IsDone())
	assert.Contains(t, done.View(), "2 files - 3 results")
}

func TestSpinnerModel_QuitKey(t *testing.T) {
	m := newSpinnerModel("Searching", nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, next.(spinnerModel).spinner.IsDone())
}

func TestSpinnerModel_OtherKeysIgnored(t *testing.T) {
	m := newSpinnerModel("Searching", nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
}

func TestSpinnerModel_RunWork(t *testing.T) {
	m := newSpinnerModel("Searching", func() (string, error) { return "ok", nil })
	assert.Equal(t, components.SpinnerDone("ok"), m.runWork())

	failing := newSpinnerModel("Searching", func() (string, error) { return "", errors.New("nope") })
	msg, ok := failing.runWork().(components.SpinnerDoneMsg)
	require.True(t, ok)
	assert.False(t, msg.Success)
	assert.EqualError(t, msg.Err, "nope")
}

func TestRunProgram_ReturnsWorkError(t *testing.T) {
	var out bytes.Buffer
	want := errors.New("scan failed")

	err := runProgram("Searching", func() (string, error) { return "", want },
		tea.WithInput(nil), tea.WithOutput(&out))
	assert.ErrorIs(t, err, want)
}

func TestRunProgram_Success(t *testing.T) {
	var out bytes.Buffer

	err := runProgram("Searching", func() (string, error) { return "1 files - 1 results", nil },
		tea.WithInput(nil), tea.WithOutput(&out))
	require.NoError(t, err)
}
