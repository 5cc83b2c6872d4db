package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aidanfhague/Habere-Dunelm/internal/board"
)

// newTestEngine builds a two-player engine with scripted dice and
// single-card no-op decks so card draws never surprise a scenario.
func newTestEngine(t *testing.T, dice DiceSource, names ...string) *Engine {
	t.Helper()
	if len(names) == 0 {
		names = []string{"Alice", "Bob"}
	}

	cfg := UKDefaults()
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = NewPlayer(name, cfg.StartingCash)
	}

	state, err := NewState(board.Standard(), players)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	state.SetDecks(
		NewDeck([]*Card{noopCard(CardChance)}, rng),
		NewDeck([]*Card{noopCard(CardCommunityChest)}, rng),
	)

	return NewEngine(cfg, dice, state, zaptest.NewLogger(t))
}

func noopCard(ct CardType) *Card {
	return &Card{Type: ct, Text: "Nothing happens", Effect: func(e *Engine) []string { return nil }}
}

// housesOnBoard counts houses standing on streets (a hotel counts as
// zero houses; it holds a hotel instead).
func housesOnBoard(e *Engine) int {
	n := 0
	for idx := 0; idx < board.Size; idx++ {
		ps := e.State().PropertyAt(idx)
		if ps.Buildings >= 1 && ps.Buildings <= 4 {
			n += ps.Buildings
		}
	}
	return n
}

func hotelsOnBoard(e *Engine) int {
	n := 0
	for idx := 0; idx < board.Size; idx++ {
		if e.State().PropertyAt(idx).HasHotel() {
			n++
		}
	}
	return n
}

func assertSupplyInvariant(t *testing.T, e *Engine) {
	t.Helper()
	assert.Equal(t, TotalHouses, housesOnBoard(e)+e.State().HousesRemaining(), "house supply invariant")
	assert.Equal(t, TotalHotels, hotelsOnBoard(e)+e.State().HotelsRemaining(), "hotel supply invariant")
}

func TestStartTurnMovesToMustRoll(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	res := e.StartTurnIfNeeded()
	require.True(t, res.OK)
	assert.Equal(t, PhaseMustRoll, e.State().Phase())

	// Idempotent once the turn is under way.
	res = e.StartTurnIfNeeded()
	require.True(t, res.OK)
	assert.Equal(t, PhaseMustRoll, e.State().Phase())
}

func TestChanceAdvanceToGoPaysSalary(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{3, 4}))

	rng := rand.New(rand.NewSource(1))
	advance := &Card{Type: CardChance, Text: "Advance to LOAN DROP",
		Effect: func(e *Engine) []string { return e.AdvanceTo(board.GoIndex, true) }}
	e.State().SetDecks(
		NewDeck([]*Card{advance}, rng),
		NewDeck([]*Card{noopCard(CardCommunityChest)}, rng),
	)

	res := e.Apply(Simple(ActionRollDice))
	require.True(t, res.OK)

	p1 := e.State().Players()[0]
	assert.Equal(t, board.GoIndex, p1.Position)
	assert.Equal(t, 1700, p1.Cash)
	assert.Equal(t, PhaseTurnEnd, e.State().Phase())
}

func TestTaxTileHasNoLandingEffect(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{2, 2}))

	res := e.Apply(Simple(ActionRollDice))
	require.True(t, res.OK)

	p1 := e.State().Players()[0]
	assert.Equal(t, 4, p1.Position)
	assert.Equal(t, 1500, p1.Cash, "Income Tax charges nothing")
	assert.Equal(t, PhaseCanRollAgain, e.State().Phase(), "doubles grant another roll")
}

func TestThirdDoubleSendsToJailWithoutLanding(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{2, 2}, Roll{3, 3}, Roll{1, 1}))

	require.True(t, e.Apply(Simple(ActionRollDice)).OK) // tile 4, tax
	assert.Equal(t, PhaseCanRollAgain, e.State().Phase())

	require.True(t, e.Apply(Simple(ActionRollDice)).OK) // tile 10, just visiting
	assert.Equal(t, PhaseCanRollAgain, e.State().Phase())

	res := e.Apply(Simple(ActionRollDice)) // third double
	require.True(t, res.OK)

	p1 := e.State().Players()[0]
	assert.True(t, p1.InJail)
	assert.Equal(t, board.JailIndex, p1.Position)
	assert.Equal(t, PhaseTurnEnd, e.State().Phase())
	assert.Equal(t, 1500, p1.Cash, "no landing processed on the third roll")
}

func TestUtilityRentIsFourTimesRoll(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{3, 5}))

	e.State().Players()[0].Position = 4
	e.State().PropertyAt(12).Owner = 1 // Bob owns one utility

	res := e.Apply(Simple(ActionRollDice))
	require.True(t, res.OK)

	assert.Equal(t, 12, e.State().Players()[0].Position)
	assert.Equal(t, 1500-32, e.State().Players()[0].Cash)
	assert.Equal(t, 1500+32, e.State().Players()[1].Cash)
	assert.Equal(t, PhaseTurnEnd, e.State().Phase())
}

func TestUtilityRentTenTimesRollWithBothUtilities(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{3, 5}))

	e.State().Players()[0].Position = 4
	e.State().PropertyAt(12).Owner = 1
	e.State().PropertyAt(28).Owner = 1

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)

	assert.Equal(t, 1500-80, e.State().Players()[0].Cash)
	assert.Equal(t, 1500+80, e.State().Players()[1].Cash)
}

func TestRailroadRentScalesWithCount(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{2, 3}))

	e.State().PropertyAt(5).Owner = 1
	e.State().PropertyAt(15).Owner = 1

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)

	assert.Equal(t, 1500-50, e.State().Players()[0].Cash, "two railroads rent 50")
	assert.Equal(t, 1500+50, e.State().Players()[1].Cash)
}

func TestStreetRentUsesHouseCount(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	e.State().PropertyAt(1).Owner = 1
	e.State().PropertyAt(3).Owner = 1
	e.State().PropertyAt(3).Buildings = 2
	e.State().takeHousesFromBank(2)

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)

	// Tile 3 with 2 houses rents 60.
	assert.Equal(t, 1500-60, e.State().Players()[0].Cash)
	assert.Equal(t, 1500+60, e.State().Players()[1].Cash)
	assertSupplyInvariant(t, e)
}

func TestMortgagedTileChargesNoRent(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	e.State().PropertyAt(3).Owner = 1
	e.State().PropertyAt(3).Mortgaged = true

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)

	assert.Equal(t, 1500, e.State().Players()[0].Cash)
	assert.Equal(t, PhaseTurnEnd, e.State().Phase())
}

func TestBuyPropertyAndEndTurn(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)
	assert.Equal(t, PhaseLandedDecision, e.State().Phase())

	res := e.Apply(Simple(ActionBuyProperty))
	require.True(t, res.OK)

	assert.Equal(t, 0, e.State().PropertyAt(3).Owner)
	assert.Equal(t, 1500-60, e.State().Players()[0].Cash)
	assert.Equal(t, PhaseManagement, e.State().Phase())

	require.True(t, e.Apply(Simple(ActionEndTurn)).OK)
	assert.Equal(t, 1, e.State().CurrentPlayerIndex())
	assert.Equal(t, PhaseStartTurn, e.State().Phase())
}

func TestEndTurnRejectedWhileDecisionPending(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	res := e.Apply(Simple(ActionEndTurn))
	require.False(t, res.OK)
	assert.Equal(t, ViolationPhase, res.Kind)

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)
	assert.Equal(t, PhaseLandedDecision, e.State().Phase())

	res = e.Apply(Simple(ActionEndTurn))
	require.False(t, res.OK)
	assert.Equal(t, ViolationPhase, res.Kind)
	assert.Equal(t, PhaseLandedDecision, e.State().Phase(), "rejection leaves state unchanged")
}

func TestEmptyActionRejected(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	res := e.Apply(Action{})
	require.False(t, res.OK)
	assert.Equal(t, ViolationArgument, res.Kind)
}

func TestJailRollDoublesReleasesAndMoves(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{2, 2}))

	e.State().Players()[0].SendToJail(3)

	res := e.Apply(Simple(ActionRollDice))
	require.True(t, res.OK)

	p1 := e.State().Players()[0]
	assert.False(t, p1.InJail)
	assert.Equal(t, 14, p1.Position)
	assert.Equal(t, PhaseLandedDecision, e.State().Phase())
}

func TestJailNonDoubleStays(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	e.State().Players()[0].SendToJail(3)

	res := e.Apply(Simple(ActionRollDice))
	require.True(t, res.OK)

	p1 := e.State().Players()[0]
	assert.True(t, p1.InJail)
	assert.Equal(t, 2, p1.JailTurnsRemaining)
	assert.Equal(t, board.JailIndex, p1.Position)
	assert.Equal(t, PhaseTurnEnd, e.State().Phase())
}

func TestJailOutOfAttemptsPaysFineAndRollsOut(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}, Roll{2, 2}))

	e.State().Players()[0].SendToJail(1)

	res := e.Apply(Simple(ActionRollDice))
	require.True(t, res.OK)

	p1 := e.State().Players()[0]
	assert.False(t, p1.InJail)
	assert.Equal(t, 1500-50, p1.Cash, "jail fine paid")
	assert.Equal(t, 14, p1.Position, "fresh exit roll moves the player")
	assert.Equal(t, PhaseLandedDecision, e.State().Phase())
}

func TestUseGetOutOfJailFreeCard(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	gojf := &Card{Type: CardChance, Text: "Get out of Billy B Free", GetOutOfJail: true,
		Effect: func(e *Engine) []string { return e.AwardGetOutOfJailFree(e.LastDrawnCard()) }}
	rng := rand.New(rand.NewSource(1))
	e.State().SetDecks(
		NewDeck([]*Card{gojf, noopCard(CardChance)}, rng),
		NewDeck([]*Card{noopCard(CardCommunityChest)}, rng),
	)

	e.AwardGetOutOfJailFree(gojf)
	assert.Equal(t, 1, e.State().ChanceDeck().Len(), "card extracted while held")

	p1 := e.State().Players()[0]
	require.True(t, p1.HasGetOutOfJailCard())

	p1.SendToJail(3)

	res := e.Apply(Simple(ActionUseGetOutOfJail))
	require.True(t, res.OK)

	assert.False(t, p1.InJail)
	assert.False(t, p1.HasGetOutOfJailCard())
	assert.Equal(t, PhaseMustRoll, e.State().Phase())
	assert.Equal(t, 2, e.State().ChanceDeck().Len(), "card returned to the bottom of its deck")
}

func TestUseGetOutOfJailFreeWithoutCardFails(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	e.State().Players()[0].SendToJail(3)

	res := e.Apply(Simple(ActionUseGetOutOfJail))
	require.False(t, res.OK)
	assert.Equal(t, ViolationRule, res.Kind)
}

func TestDebtMustBeResolvedBeforeEndTurn(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	p1 := e.State().Players()[0]
	p1.Cash = 10
	p1.Position = 36

	e.State().PropertyAt(39).Owner = 1 // rent 50
	e.State().PropertyAt(1).Owner = 0
	e.State().PropertyAt(3).Owner = 0

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)
	assert.Equal(t, -40, p1.Cash)
	assert.Equal(t, PhaseMustResolveDebt, e.State().Phase())

	res := e.Apply(Simple(ActionEndTurn))
	require.False(t, res.OK)
	assert.Equal(t, ViolationEconomic, res.Kind)

	require.True(t, e.Apply(OnTile(ActionMortgage, 1)).OK) // +30, still negative
	assert.Equal(t, PhaseMustResolveDebt, e.State().Phase())

	require.True(t, e.Apply(OnTile(ActionMortgage, 3)).OK) // +30, clears debt
	assert.Equal(t, 20, p1.Cash)
	assert.Equal(t, PhaseTurnEnd, e.State().Phase())

	require.True(t, e.Apply(Simple(ActionEndTurn)).OK)
	assert.Equal(t, 1, e.State().CurrentPlayerIndex())
}

func TestBankruptcyDeclaresWinner(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	p1 := e.State().Players()[0]
	p1.Cash = 10
	p1.Position = 36

	e.State().PropertyAt(39).Owner = 1 // rent 50, no way to raise cash

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)
	assert.Equal(t, PhaseMustResolveDebt, e.State().Phase())

	res := e.Apply(Simple(ActionEndTurn))
	require.True(t, res.OK)
	assert.Contains(t, res.Events, "WINNER: Bob")

	assert.True(t, p1.Bankrupt)
	assert.Equal(t, StatusFinished, e.State().Status())
	assert.Equal(t, 1, e.State().WinnerIndex())

	res = e.Apply(Simple(ActionRollDice))
	require.False(t, res.OK)
	assert.Equal(t, ViolationFatal, res.Kind, "finished game rejects all actions")
}

func TestBankruptcyReturnsAssetsToBank(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}), "Alice", "Bob", "Cara")

	p1 := e.State().Players()[0]
	p1.Cash = -100

	e.State().PropertyAt(1).Owner = 0
	e.State().PropertyAt(1).Buildings = 2
	e.State().PropertyAt(3).Owner = 0
	e.State().PropertyAt(3).Mortgaged = true
	e.State().takeHousesFromBank(2)

	e.bankruptCurrentPlayer()

	assert.True(t, p1.Bankrupt)
	assert.Equal(t, Unowned, e.State().PropertyAt(1).Owner)
	assert.Equal(t, 0, e.State().PropertyAt(1).Buildings)
	assert.Equal(t, Unowned, e.State().PropertyAt(3).Owner)
	assert.False(t, e.State().PropertyAt(3).Mortgaged)
	assertSupplyInvariant(t, e)
}

func TestTurnAdvanceSkipsBankruptPlayers(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}), "Alice", "Bob", "Cara")

	e.State().Players()[1].Bankrupt = true
	e.State().setPhase(PhaseManagement)

	require.True(t, e.Apply(Simple(ActionEndTurn)).OK)
	assert.Equal(t, 2, e.State().CurrentPlayerIndex(), "Bob is skipped")
}

func TestPassingGoPaysSalary(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	p1 := e.State().Players()[0]
	p1.Position = 38

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)

	assert.Equal(t, 1, p1.Position)
	assert.Equal(t, 1700, p1.Cash, "GO salary paid on wrap")
	assert.Equal(t, PhaseLandedDecision, e.State().Phase())
}
