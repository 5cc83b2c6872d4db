package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanfhague/Habere-Dunelm/internal/board"
)

func TestMoveRelativeBackwardWrapsWithoutSalary(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	p1 := e.State().Players()[0]
	p1.Position = 1

	e.MoveRelative(-3, true)

	assert.Equal(t, 38, p1.Position)
	assert.Equal(t, 1500, p1.Cash, "backward wrap never pays the salary")
}

func TestMoveRelativeForwardWrapPaysSalary(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	p1 := e.State().Players()[0]
	p1.Position = 38

	e.MoveRelative(3, true)

	assert.Equal(t, 1, p1.Position)
	assert.Equal(t, 1700, p1.Cash)
}

func TestGoToJailNoSalary(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	p1 := e.State().Players()[0]
	p1.Position = 36

	e.GoToJailNoSalary()

	assert.True(t, p1.InJail)
	assert.Equal(t, board.JailIndex, p1.Position)
	assert.Equal(t, 1500, p1.Cash)
	assert.Equal(t, PhaseTurnEnd, e.State().Phase())
}

func TestPayAndCollectFromOtherPlayers(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}), "Alice", "Bob", "Cara")

	e.PayEachOtherPlayer(50)
	assert.Equal(t, 1400, e.State().Players()[0].Cash)
	assert.Equal(t, 1550, e.State().Players()[1].Cash)
	assert.Equal(t, 1550, e.State().Players()[2].Cash)

	e.CollectFromEachOtherPlayer(10)
	assert.Equal(t, 1420, e.State().Players()[0].Cash)
	assert.Equal(t, 1540, e.State().Players()[1].Cash)
	assert.Equal(t, 1540, e.State().Players()[2].Cash)
}

func TestPayEachSkipsBankruptPlayers(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}), "Alice", "Bob", "Cara")

	e.State().Players()[2].Bankrupt = true

	e.PayEachOtherPlayer(50)
	assert.Equal(t, 1450, e.State().Players()[0].Cash)
	assert.Equal(t, 1550, e.State().Players()[1].Cash)
	assert.Equal(t, 1500, e.State().Players()[2].Cash)
}

func TestPayPerBuildingRepairs(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	e.State().PropertyAt(1).Owner = 0
	e.State().PropertyAt(1).Buildings = 3
	e.State().PropertyAt(3).Owner = 0
	e.State().PropertyAt(3).Buildings = 5 // hotel
	e.State().takeHousesFromBank(3)
	e.State().takeHotelFromBank()

	e.PayPerBuilding(25, 100)

	// 3 houses at 25 plus 1 hotel at 100.
	assert.Equal(t, 1500-175, e.State().Players()[0].Cash)
}

func TestAdvanceToNearestStationDoubleRent(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	p1 := e.State().Players()[0]
	p1.Position = 7

	e.State().PropertyAt(15).Owner = 1 // single railroad, base rent 25

	e.AdvanceToNearestStationDoubleRent()

	assert.Equal(t, 15, p1.Position)
	assert.Equal(t, 1500-50, p1.Cash, "double rent")
	assert.Equal(t, 1500+50, e.State().Players()[1].Cash)
	assert.Equal(t, PhaseManagement, e.State().Phase())
}

func TestAdvanceToNearestStationUnownedPrompts(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	e.State().Players()[0].Position = 7

	e.AdvanceToNearestStationDoubleRent()

	assert.Equal(t, 15, e.State().Players()[0].Position)
	assert.Equal(t, PhaseLandedDecision, e.State().Phase(), "unowned station offers buy/auction")
}

func TestAdvanceToNearestUtilityFreshRollTimesTen(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{4, 2}))

	p1 := e.State().Players()[0]
	p1.Position = 7

	e.State().PropertyAt(12).Owner = 1

	e.AdvanceToNearestUtilitySpecialRent()

	assert.Equal(t, 12, p1.Position)
	assert.Equal(t, 1500-60, p1.Cash, "fresh roll of 6, times ten")
	assert.Equal(t, 1500+60, e.State().Players()[1].Cash)
}

func TestGambleWin(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{4, 4}))

	e.GambleThenMaybeJail(7, 100, 150)

	p1 := e.State().Players()[0]
	assert.Equal(t, 1600, p1.Cash)
	assert.False(t, p1.InJail)
}

func TestGambleLosePaysAndJails(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	e.GambleThenMaybeJail(7, 100, 150)

	p1 := e.State().Players()[0]
	assert.Equal(t, 1350, p1.Cash)
	assert.True(t, p1.InJail)
	assert.Equal(t, board.JailIndex, p1.Position)
	assert.Equal(t, PhaseTurnEnd, e.State().Phase())
}

func TestCollectDrivesOpponentIntoDebtResolvedOnTheirTurn(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	e.State().Players()[1].Cash = 5
	e.State().setPhase(PhaseManagement)

	e.CollectFromEachOtherPlayer(10)
	assert.Equal(t, -5, e.State().Players()[1].Cash)

	require.True(t, e.Apply(Simple(ActionEndTurn)).OK)

	res := e.StartTurnIfNeeded()
	require.True(t, res.OK)
	assert.Equal(t, 1, e.State().CurrentPlayerIndex())
	assert.Equal(t, PhaseMustResolveDebt, e.State().Phase(), "debtor starts their turn resolving debt")
}
