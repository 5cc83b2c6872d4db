package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestManagerCreateGetRemove(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))

	session, err := m.CreateGame(UKDefaults(), []string{"Alice", "Bob"}, 1)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, 1, m.GameCount())

	got, err := m.GetGame(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	_, err = m.GetGame("missing")
	assert.Error(t, err)

	m.RemoveGame(session.ID)
	assert.Equal(t, 0, m.GameCount())
	_, err = m.GetGame(session.ID)
	assert.Error(t, err)
}

func TestManagerRejectsSinglePlayer(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))

	_, err := m.CreateGame(UKDefaults(), []string{"Alice"}, 1)
	assert.Error(t, err)
	assert.Equal(t, 0, m.GameCount())
}

func TestSessionDrivesEngine(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))

	session, err := m.CreateGame(UKDefaults(), []string{"Alice", "Bob"}, 1)
	require.NoError(t, err)

	res := session.StartTurn()
	require.True(t, res.OK)
	assert.Equal(t, PhaseMustRoll, session.Engine().State().Phase())

	res = session.Do(Simple(ActionRollDice))
	require.True(t, res.OK)
	assert.NotEqual(t, PhaseStartTurn, session.Engine().State().Phase())
}

func TestSeededGamesReplayIdentically(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))

	a, err := m.CreateGame(UKDefaults(), []string{"Alice", "Bob"}, 42)
	require.NoError(t, err)
	b, err := m.CreateGame(UKDefaults(), []string{"Alice", "Bob"}, 42)
	require.NoError(t, err)

	resA := a.Do(Simple(ActionRollDice))
	resB := b.Do(Simple(ActionRollDice))

	require.True(t, resA.OK)
	require.True(t, resB.OK)
	assert.Equal(t, resA.Events, resB.Events)
	assert.Equal(t,
		a.Engine().State().Players()[0].Position,
		b.Engine().State().Players()[0].Position)
}
