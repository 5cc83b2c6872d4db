package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuctionBidPassWinner(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{2, 3}))

	require.True(t, e.Apply(Simple(ActionRollDice)).OK) // tile 5, railroad
	assert.Equal(t, PhaseLandedDecision, e.State().Phase())

	require.True(t, e.Apply(Simple(ActionStartAuction)).OK)
	assert.Equal(t, PhaseAuctionActive, e.State().Phase())
	assert.Equal(t, 0, e.State().AuctionCurrentBidder(), "lander bids first")

	require.True(t, e.Apply(Bid(10)).OK) // Alice
	assert.Equal(t, 1, e.State().AuctionCurrentBidder())

	require.True(t, e.Apply(Bid(20)).OK) // Bob
	assert.Equal(t, 0, e.State().AuctionCurrentBidder())

	res := e.Apply(Simple(ActionAuctionPass)) // Alice folds
	require.True(t, res.OK)

	assert.Equal(t, 1, e.State().PropertyAt(5).Owner)
	assert.Equal(t, 1500-20, e.State().Players()[1].Cash)
	assert.Equal(t, 1500, e.State().Players()[0].Cash)
	assert.Equal(t, PhaseManagement, e.State().Phase())
	assert.False(t, e.State().AuctionInProgress())
	assert.Equal(t, 0, e.State().CurrentPlayerIndex(), "turn stays with the lander")
}

func TestAuctionAllPassNoSale(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{2, 3}))

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)
	require.True(t, e.Apply(Simple(ActionStartAuction)).OK)

	require.True(t, e.Apply(Simple(ActionAuctionPass)).OK) // Alice
	res := e.Apply(Simple(ActionAuctionPass))              // Bob
	require.True(t, res.OK)

	assert.Equal(t, Unowned, e.State().PropertyAt(5).Owner)
	assert.Equal(t, PhaseManagement, e.State().Phase())
	assert.False(t, e.State().AuctionInProgress())
}

func TestAuctionBidValidation(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{2, 3}))

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)
	require.True(t, e.Apply(Simple(ActionStartAuction)).OK)

	require.True(t, e.Apply(Bid(100)).OK) // Alice

	res := e.Apply(Bid(100)) // Bob must exceed the high bid
	require.False(t, res.OK)
	assert.Equal(t, ViolationEconomic, res.Kind)

	res = e.Apply(Bid(2000)) // beyond Bob's cash
	require.False(t, res.OK)
	assert.Equal(t, ViolationEconomic, res.Kind)

	assert.Equal(t, 100, e.State().AuctionHighBid(), "failed bids leave the auction unchanged")
	assert.Equal(t, 1, e.State().AuctionCurrentBidder())
}

func TestAuctionOnlyFromLandedDecision(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{2, 2}))

	require.True(t, e.Apply(Simple(ActionRollDice)).OK) // tax tile, no decision

	res := e.Apply(Simple(ActionStartAuction))
	require.False(t, res.OK)
	assert.Equal(t, ViolationPhase, res.Kind)
}

func TestAuctionThreePlayerFlow(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{2, 3}), "Alice", "Bob", "Cara")

	require.True(t, e.Apply(Simple(ActionRollDice)).OK)
	require.True(t, e.Apply(Simple(ActionStartAuction)).OK)

	require.True(t, e.Apply(Bid(10)).OK)                   // Alice
	require.True(t, e.Apply(Simple(ActionAuctionPass)).OK) // Bob out
	require.True(t, e.Apply(Bid(20)).OK)                   // Cara

	// Back to Alice; Cara outbid, auction continues between two.
	assert.Equal(t, 0, e.State().AuctionCurrentBidder())
	require.True(t, e.Apply(Simple(ActionAuctionPass)).OK) // Alice folds -> Cara wins

	assert.Equal(t, 2, e.State().PropertyAt(5).Owner)
	assert.Equal(t, 1500-20, e.State().Players()[2].Cash)
}

func TestEstimateMaxBidRailroad(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	// One opponent, no railroads owned: 25 * (1/40) * 1 * 20 = 12.5.
	assert.Equal(t, 12, e.EstimateMaxBid(0, 5))

	// Owning one railroad raises the next one's rent tier to 50.
	e.State().PropertyAt(15).Owner = 0
	assert.Equal(t, 25, e.EstimateMaxBid(0, 5))
}

func TestEstimateMaxBidStreetSetPremium(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	// Base rent only: 4 * (1/40) * 1 * 20 = 2.
	assert.Equal(t, 2, e.EstimateMaxBid(0, 3))

	// Completing the brown set uses the one-house rent with a premium:
	// 20 * 1.35 * (1/40) * 1 * 20 = 13.5.
	e.State().PropertyAt(1).Owner = 0
	assert.Equal(t, 13, e.EstimateMaxBid(0, 3))
}

func TestEstimateMaxBidUtility(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	// 7 * 4 * (1/40) * 1 * 20 = 14.
	assert.Equal(t, 14, e.EstimateMaxBid(0, 28))

	// Holding the other utility bumps the multiplier to 10: 35.
	e.State().PropertyAt(12).Owner = 0
	assert.Equal(t, 35, e.EstimateMaxBid(0, 28))
}

func TestEstimateMaxBidCappedByCashReserve(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))

	e.State().Players()[0].Cash = 210
	e.State().PropertyAt(15).Owner = 0
	assert.Equal(t, 10, e.EstimateMaxBid(0, 5), "keeps a £200 reserve")

	e.State().Players()[0].Cash = 150
	assert.Equal(t, 0, e.EstimateMaxBid(0, 5))
}

func TestEstimateMaxBidNonDeedIsZero(t *testing.T) {
	e := newTestEngine(t, NewScriptedDice(Roll{1, 2}))
	assert.Equal(t, 0, e.EstimateMaxBid(0, 4))
}
