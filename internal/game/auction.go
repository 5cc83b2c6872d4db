package game

import (
	"fmt"

	"github.com/aidanfhague/Habere-Dunelm/internal/deed"
)

func (e *Engine) handleBuy() Result {
	p := e.state.CurrentPlayer()

	if e.state.Phase() != PhaseLandedDecision {
		return fail(ViolationPhase, "You can only buy immediately after landing on an unowned buyable tile.")
	}

	idx := e.state.LandedTileIndex()
	d := e.deeds[idx]
	if d == nil {
		return fail(ViolationFatal, fmt.Sprintf("Tile %d is not buyable.", idx))
	}

	ps := e.state.PropertyAt(idx)
	if ps.Owner != Unowned {
		return fail(ViolationOwnership, fmt.Sprintf("Tile %d is already owned.", idx))
	}

	price := d.Price()
	p.SubtractCash(price)
	ps.Owner = e.state.CurrentPlayerIndex()

	e.updateDebtPhaseIfNeeded(p)
	if e.state.Phase() == PhaseMustResolveDebt {
		return ok(
			fmt.Sprintf("%s bought tile %d for £%d.", p.Name, idx, price),
			fmt.Sprintf("%s cash is now £%d -> MUST RESOLVE DEBT.", p.Name, p.Cash))
	}

	e.state.setPhase(PhaseManagement)
	return ok(
		fmt.Sprintf("%s bought tile %d for £%d.", p.Name, idx, price),
		"Action: END_TURN (or BUILD/MORTGAGE)")
}

func (e *Engine) handleStartAuction() Result {
	if e.state.Phase() != PhaseLandedDecision {
		return fail(ViolationPhase, "An auction can only start immediately after landing on an unowned buyable tile.")
	}

	idx := e.state.LandedTileIndex()
	d := e.deeds[idx]
	if d == nil {
		return fail(ViolationFatal, fmt.Sprintf("Tile %d is not buyable.", idx))
	}
	if e.state.PropertyAt(idx).Owner != Unowned {
		return fail(ViolationOwnership, fmt.Sprintf("Tile %d is already owned.", idx))
	}

	e.state.startAuction(idx, e.state.CurrentPlayerIndex())
	e.state.setPhase(PhaseAuctionActive)

	return ok(
		fmt.Sprintf("Auction started for tile %d (list price £%d).", idx, d.Price()),
		fmt.Sprintf("First to act: %s.", e.state.Players()[e.state.AuctionCurrentBidder()].Name),
		"Action: AUCTION_BID <amount> or AUCTION_PASS")
}

func (e *Engine) handleAuctionBid(amount int) Result {
	if e.state.Phase() != PhaseAuctionActive {
		return fail(ViolationPhase, "No auction is active.")
	}

	bidderIdx := e.state.AuctionCurrentBidder()
	bidder := e.state.Players()[bidderIdx]

	if bidder.Bankrupt {
		return fail(ViolationRule, "Bankrupt players cannot bid.")
	}
	if !e.state.auctionBidderActive(bidderIdx) {
		return fail(ViolationRule, "You have already passed out of this auction.")
	}
	if amount <= e.state.AuctionHighBid() {
		return fail(ViolationEconomic, fmt.Sprintf("Bid must exceed the current high bid (£%d).", e.state.AuctionHighBid()))
	}
	if amount > bidder.Cash {
		return fail(ViolationEconomic, fmt.Sprintf("Bid £%d exceeds your cash (£%d).", amount, bidder.Cash))
	}

	e.state.setAuctionHighBid(amount, bidderIdx)
	e.state.advanceToNextActiveBidder()

	if e.state.auctionActiveCount() <= 1 && e.state.AuctionHighBidder() != Unowned {
		return e.finalizeAuction(fmt.Sprintf("%s bids £%d.", bidder.Name, amount))
	}

	next := e.state.Players()[e.state.AuctionCurrentBidder()]
	return ok(
		fmt.Sprintf("%s bids £%d.", bidder.Name, amount),
		fmt.Sprintf("Next to act: %s.", next.Name),
		"Action: AUCTION_BID <amount> or AUCTION_PASS")
}

func (e *Engine) handleAuctionPass() Result {
	if e.state.Phase() != PhaseAuctionActive {
		return fail(ViolationPhase, "No auction is active.")
	}

	bidderIdx := e.state.AuctionCurrentBidder()
	bidder := e.state.Players()[bidderIdx]

	if !e.state.auctionBidderActive(bidderIdx) {
		return fail(ViolationRule, "You have already passed out of this auction.")
	}

	e.state.auctionPass(bidderIdx)

	remaining := e.state.auctionActiveCount()
	if remaining == 0 {
		idx := e.state.AuctionTileIndex()
		e.state.endAuction()
		e.state.setPhase(PhaseManagement)
		return ok(
			fmt.Sprintf("%s passes.", bidder.Name),
			fmt.Sprintf("All bidders passed. No sale for tile %d.", idx),
			"Action: END_TURN (or BUILD/MORTGAGE)")
	}

	if remaining == 1 && e.state.AuctionHighBidder() != Unowned {
		return e.finalizeAuction(fmt.Sprintf("%s passes.", bidder.Name))
	}

	e.state.advanceToNextActiveBidder()
	next := e.state.Players()[e.state.AuctionCurrentBidder()]
	return ok(
		fmt.Sprintf("%s passes.", bidder.Name),
		fmt.Sprintf("Next to act: %s.", next.Name),
		"Action: AUCTION_BID <amount> or AUCTION_PASS")
}

// finalizeAuction hands the tile to the high bidder at the high bid.
// Bid validation caps bids at bidder cash, so the unaffordable branch
// should not trigger; it stays as a guard in case a future rule allows
// bidding on credit.
func (e *Engine) finalizeAuction(prefixEvent string) Result {
	idx := e.state.AuctionTileIndex()
	winnerIdx := e.state.AuctionHighBidder()
	bid := e.state.AuctionHighBid()
	winner := e.state.Players()[winnerIdx]

	if bid > winner.Cash {
		e.state.endAuction()
		e.state.setPhase(PhaseManagement)
		return fail(ViolationEconomic,
			fmt.Sprintf("Auction winner %s cannot afford the winning bid £%d. Auction cancelled.", winner.Name, bid))
	}

	winner.SubtractCash(bid)
	e.state.PropertyAt(idx).Owner = winnerIdx
	e.state.endAuction()
	e.state.setPhase(PhaseManagement)

	e.updateDebtPhaseIfNeeded(winner)

	return ok(prefixEvent,
		fmt.Sprintf("Auction won by %s: tile %d for £%d.", winner.Name, idx, bid),
		"Action: END_TURN (or BUILD/MORTGAGE)")
}

// EstimateMaxBid is a cash-capped expected-value heuristic for how much
// a bidder should be willing to pay for a tile. It assumes a uniform
// 1-in-40 chance of any opponent landing on the tile per opponent turn
// over a fixed horizon, and keeps a cash reserve back.
// TODO: replace the uniform landing probability with Markov-chain
// landing frequencies.
func (e *Engine) EstimateMaxBid(bidderIdx, tileIdx int) int {
	const (
		landingChance = 1.0 / 40.0
		horizonTurns  = 20
		cashReserve   = 200
	)

	d := e.deeds[tileIdx]
	if d == nil {
		return 0
	}

	bidder := e.state.Players()[bidderIdx]

	opponents := 0
	for i, pl := range e.state.Players() {
		if i != bidderIdx && !pl.Bankrupt {
			opponents++
		}
	}

	var perLanding float64
	switch v := d.(type) {
	case *deed.Street:
		owned, total := e.groupOwnership(bidderIdx, v.Group)
		completesSet := owned == total-1
		perLanding = float64(v.Rents[0])
		if completesSet {
			// one-house rent potential plus a development premium
			perLanding = float64(v.Rents[1]) * 1.35
		}
	case *deed.Railroad:
		owned := e.countOwnedRailroads(bidderIdx)
		n := owned + 1
		if n > 4 {
			n = 4
		}
		perLanding = float64(v.RentByCount[n-1])
	case *deed.Utility:
		mult := v.MultiplierIfOne
		if e.countOwnedUtilities(bidderIdx) >= 1 {
			mult = v.MultiplierIfTwo
		}
		perLanding = 7.0 * float64(mult) // expected 2d6 total
	}

	ev := perLanding * landingChance * float64(opponents) * float64(horizonTurns)

	limit := bidder.Cash - cashReserve
	if limit < 0 {
		limit = 0
	}
	if int(ev) < limit {
		limit = int(ev)
	}
	return limit
}

// groupOwnership counts streets in a colour group held by a player and
// the group size.
func (e *Engine) groupOwnership(playerIdx int, g deed.Group) (owned, total int) {
	for idx, d := range e.deeds {
		s, isStreet := d.(*deed.Street)
		if !isStreet || s.Group != g {
			continue
		}
		total++
		if e.state.PropertyAt(idx).Owner == playerIdx {
			owned++
		}
	}
	return owned, total
}
