package main

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/Zachkp/cloud-portfolio/content"
	"github.com/Zachkp/cloud-portfolio/typewriter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initModel(t *testing.T, phrases ...string) model {
	t.Helper()
	machine, err := typewriter.NewMachine(phrases, 50*time.Millisecond, 200*time.Millisecond,
		typewriter.WithRand(rand.New(rand.NewPCG(5, 6))))
	require.NoError(t, err)
	profile := content.Profile{Name: "Ada Lovelace", Role: "Cloud Engineer"}
	return newModel(machine, profile)
}

func updateModel(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(model)
	require.True(t, ok)
	return next, cmd
}

func TestModel_Init(t *testing.T) {
	t.Parallel()
	m := initModel(t, "Go")
	assert.NotNil(t, m.Init())
	assert.Equal(t, m.machine.Initial(), m.state)
}

func TestModel_TypeTicks(t *testing.T) {
	t.Parallel()
	m := initModel(t, "Go", "Rust")

	m, cmd := updateModel(t, m, tickMsg{kind: typewriter.TypeTick})
	assert.NotNil(t, cmd, "next tick is scheduled")
	assert.Equal(t, "G", m.machine.Text(m.state))

	m, _ = updateModel(t, m, tickMsg{kind: typewriter.TypeTick})
	assert.Equal(t, "Go", m.machine.Text(m.state))
	assert.Contains(t, m.View(), "Go")
	assert.Contains(t, m.View(), "Ada Lovelace")
	assert.Contains(t, m.View(), "CLOUD ENGINEER")
}

func TestModel_BlinkTick(t *testing.T) {
	t.Parallel()
	m := initModel(t, "Go")
	require.Contains(t, m.View(), "▌")

	m, cmd := updateModel(t, m, tickMsg{kind: typewriter.BlinkTick})
	assert.NotNil(t, cmd)
	assert.False(t, m.state.CursorVisible)
	assert.NotContains(t, m.View(), "▌")
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m := initModel(t, "Go")
		m, cmd := updateModel(t, m, key)
		require.NotNil(t, cmd, key.String())
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.quitting)
		assert.Empty(t, m.View())

		// Ticks still in flight are dropped after quitting.
		_, cmd = updateModel(t, m, tickMsg{kind: typewriter.TypeTick})
		assert.Nil(t, cmd)
	}
}

func TestModel_OtherKeysIgnored(t *testing.T) {
	t.Parallel()
	m := initModel(t, "Go")
	next, cmd := updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.Equal(t, m.state, next.state)
}

func TestModel_WindowSizeCentersView(t *testing.T) {
	t.Parallel()
	m := initModel(t, "Go")
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, m.width)
	assert.Contains(t, m.View(), "Ada Lovelace")
}
