package game

import (
	"fmt"

	"github.com/aidanfhague/Habere-Dunelm/internal/deed"
)

type tradeResponse int

const (
	tradeAccept tradeResponse = iota
	tradeReject
	tradeCancel
)

func (e *Engine) handleProposeTrade(offer *TradeOffer, isCounter bool) Result {
	op := "PROPOSE_TRADE"
	if isCounter {
		op = "COUNTER_TRADE"
	}

	if offer == nil {
		return fail(ViolationArgument, fmt.Sprintf("%s requires a trade offer.", op))
	}
	if e.state.Phase() == PhaseAuctionActive {
		return fail(ViolationPhase, "Trading is not allowed during an active auction.")
	}

	if isCounter {
		if !e.state.HasPendingTrade() || e.state.Phase() != PhaseTradeResponse {
			return fail(ViolationPhase, "No trade to counter.")
		}
		prev := e.state.PendingTrade()
		current := e.state.CurrentPlayerIndex() // receiver controls during TRADE_RESPONSE
		if current != prev.ToPlayer {
			return fail(ViolationRule, "Only the receiver can counter the pending trade.")
		}
		// A counter flips roles back toward the original proposer.
		if offer.FromPlayer != current || offer.ToPlayer != prev.FromPlayer {
			return fail(ViolationRule, "Counter trade must be from receiver to original proposer.")
		}

		if legality := e.validateTradeOffer(offer); !legality.OK {
			return legality
		}

		// Keep the original turn owner and pre-trade phase saved; the
		// counter only moves who is responding.
		e.state.setPendingTrade(offer)
		e.state.passTradeControl(offer.ToPlayer)

		return ok(
			"Counter-trade proposed.",
			offer.String(),
			"Responder actions: ACCEPT_TRADE / REJECT_TRADE / COUNTER_TRADE / CANCEL_TRADE")
	}

	proposer := e.state.CurrentPlayerIndex()
	if offer.FromPlayer != proposer {
		return fail(ViolationRule, "Only the current player may initiate a trade.")
	}
	if e.state.HasPendingTrade() {
		return fail(ViolationRule, "There is already a pending trade. Resolve it first.")
	}

	if legality := e.validateTradeOffer(offer); !legality.OK {
		return legality
	}

	e.state.setPendingTrade(offer)
	e.state.beginTradeResponse(offer.FromPlayer, offer.ToPlayer)

	a := e.state.Players()[offer.FromPlayer]
	b := e.state.Players()[offer.ToPlayer]

	return ok(
		fmt.Sprintf("%s proposes a trade to %s.", a.Name, b.Name),
		offer.String(),
		"Responder actions: ACCEPT_TRADE / REJECT_TRADE / COUNTER_TRADE. Proposer may CANCEL_TRADE.")
}

func (e *Engine) handleTradeResponse(response tradeResponse) Result {
	if !e.state.HasPendingTrade() {
		return fail(ViolationRule, "No pending trade.")
	}
	if e.state.Phase() != PhaseTradeResponse {
		return fail(ViolationPhase, "Not currently in the trade response phase.")
	}

	offer := e.state.PendingTrade()
	current := e.state.CurrentPlayerIndex() // responder during TRADE_RESPONSE

	if response == tradeCancel {
		if current != offer.FromPlayer {
			return fail(ViolationRule, "Only the proposer may cancel the trade.")
		}
		e.state.clearPendingTrade()
		e.state.endTradeResponse()
		return ok("Trade cancelled by proposer.")
	}

	if current != offer.ToPlayer {
		return fail(ViolationRule, "Only the receiver may accept or reject the trade.")
	}

	if response == tradeReject {
		e.state.clearPendingTrade()
		e.state.endTradeResponse()
		return ok("Trade rejected.")
	}

	// Accept: the board may have changed since the proposal, so
	// revalidate before executing.
	if legality := e.validateTradeOffer(offer); !legality.OK {
		e.state.clearPendingTrade()
		e.state.endTradeResponse()
		return fail(legality.Kind, fmt.Sprintf("Trade became illegal: %s", legality.Events[0]))
	}

	events := e.executeTrade(offer)

	e.state.clearPendingTrade()
	e.state.endTradeResponse()

	return okList(events)
}

func (e *Engine) validateTradeOffer(offer *TradeOffer) Result {
	nPlayers := len(e.state.Players())
	if offer.FromPlayer < 0 || offer.FromPlayer >= nPlayers {
		return fail(ViolationArgument, "Invalid proposer index.")
	}
	if offer.ToPlayer < 0 || offer.ToPlayer >= nPlayers {
		return fail(ViolationArgument, "Invalid receiver index.")
	}
	if offer.FromPlayer == offer.ToPlayer {
		return fail(ViolationArgument, "Cannot trade with yourself.")
	}

	a := e.state.Players()[offer.FromPlayer]
	b := e.state.Players()[offer.ToPlayer]

	if a.Bankrupt || b.Bankrupt {
		return fail(ViolationRule, "Bankrupt players cannot trade.")
	}

	if offer.CashAToB < 0 || offer.CashBToA < 0 {
		return fail(ViolationArgument, "Trade cash amounts cannot be negative.")
	}
	if offer.ChanceGojfAToB < 0 || offer.CommunityGojfAToB < 0 ||
		offer.ChanceGojfBToA < 0 || offer.CommunityGojfBToA < 0 {
		return fail(ViolationArgument, "Trade card counts cannot be negative.")
	}

	for _, tile := range sortedTiles(offer.TilesAToB) {
		if r := e.validateTransferableTile(offer.FromPlayer, tile); !r.OK {
			return r
		}
	}
	for _, tile := range sortedTiles(offer.TilesBToA) {
		if r := e.validateTransferableTile(offer.ToPlayer, tile); !r.OK {
			return r
		}
	}

	if offer.ChanceGojfAToB > a.CountGetOutOfJail(CardChance) {
		return fail(ViolationEconomic, "Proposer lacks Chance GOJF cards offered.")
	}
	if offer.CommunityGojfAToB > a.CountGetOutOfJail(CardCommunityChest) {
		return fail(ViolationEconomic, "Proposer lacks Community Chest GOJF cards offered.")
	}
	if offer.ChanceGojfBToA > b.CountGetOutOfJail(CardChance) {
		return fail(ViolationEconomic, "Receiver lacks Chance GOJF cards offered.")
	}
	if offer.CommunityGojfBToA > b.CountGetOutOfJail(CardCommunityChest) {
		return fail(ViolationEconomic, "Receiver lacks Community Chest GOJF cards offered.")
	}

	if offer.CashAToB > a.Cash {
		return fail(ViolationEconomic, "Proposer cannot afford cash offered.")
	}
	if offer.CashBToA > b.Cash {
		return fail(ViolationEconomic, "Receiver cannot afford cash offered.")
	}

	// Receiving a mortgaged tile costs 10% immediately, plus the full
	// mortgage value when PAY_OFF_NOW is chosen. Both sides must stay
	// solvent after these charges.
	extraCostToB := e.mortgageTransferImmediateCost(offer.TilesAToB, offer, true)
	extraCostToA := e.mortgageTransferImmediateCost(offer.TilesBToA, offer, false)

	aCashAfter := a.Cash - offer.CashAToB + offer.CashBToA - extraCostToA
	bCashAfter := b.Cash - offer.CashBToA + offer.CashAToB - extraCostToB

	if aCashAfter < 0 {
		return fail(ViolationEconomic, "Trade would make proposer cash negative after mortgage fees/repayments.")
	}
	if bCashAfter < 0 {
		return fail(ViolationEconomic, "Trade would make receiver cash negative after mortgage fees/repayments.")
	}

	if !offer.ExchangesAnything() {
		return fail(ViolationArgument, "Trade must exchange something.")
	}

	return ok("Trade is legal.")
}

func (e *Engine) validateTransferableTile(ownerIdx, tileIndex int) Result {
	d := e.deeds[tileIndex]
	if d == nil {
		return fail(ViolationArgument, fmt.Sprintf("Tile %d is not a tradable deed.", tileIndex))
	}

	ps := e.state.PropertyAt(tileIndex)
	if ps.Owner != ownerIdx {
		return fail(ViolationOwnership, fmt.Sprintf("Tile %d is not owned by the offering player.", tileIndex))
	}

	// Developed streets cannot change hands.
	if _, isStreet := d.(*deed.Street); isStreet && ps.Buildings > 0 {
		return fail(ViolationRule, fmt.Sprintf("Tile %d has buildings and cannot be traded.", tileIndex))
	}

	return ok()
}

func (e *Engine) mortgageTransferImmediateCost(tilesReceived map[int]bool, offer *TradeOffer, goingToB bool) int {
	total := 0
	for _, tile := range sortedTiles(tilesReceived) {
		ps := e.state.PropertyAt(tile)
		if !ps.Mortgaged {
			continue
		}

		mortgage := e.deeds[tile].MortgageValue()
		total += mortgageFee(mortgage)

		var choice MortgageTransferChoice
		if goingToB {
			choice = offer.ChoiceForTileToB(tile)
		} else {
			choice = offer.ChoiceForTileToA(tile)
		}
		if choice == PayOffNow {
			total += mortgage
		}
	}
	return total
}

// executeTrade applies an already-validated offer: cash first, then
// tiles (with mortgage side effects), then GOJF cards.
func (e *Engine) executeTrade(offer *TradeOffer) []string {
	a := e.state.Players()[offer.FromPlayer]
	b := e.state.Players()[offer.ToPlayer]

	ev := []string{fmt.Sprintf("Trade executed: %s", offer)}

	if offer.CashAToB > 0 {
		a.SubtractCash(offer.CashAToB)
		b.AddCash(offer.CashAToB)
		ev = append(ev, fmt.Sprintf("%s pays £%d to %s.", a.Name, offer.CashAToB, b.Name))
	}
	if offer.CashBToA > 0 {
		b.SubtractCash(offer.CashBToA)
		a.AddCash(offer.CashBToA)
		ev = append(ev, fmt.Sprintf("%s pays £%d to %s.", b.Name, offer.CashBToA, a.Name))
	}

	for _, tile := range sortedTiles(offer.TilesAToB) {
		e.applyMortgageTransferOnReceive(tile, b, offer, true)
		e.state.PropertyAt(tile).Owner = offer.ToPlayer
		ev = append(ev, fmt.Sprintf("Tile %d transferred %s -> %s.", tile, a.Name, b.Name))
	}
	for _, tile := range sortedTiles(offer.TilesBToA) {
		e.applyMortgageTransferOnReceive(tile, a, offer, false)
		e.state.PropertyAt(tile).Owner = offer.FromPlayer
		ev = append(ev, fmt.Sprintf("Tile %d transferred %s -> %s.", tile, b.Name, a.Name))
	}

	ev = append(ev, e.transferGOJF(a, b, CardChance, offer.ChanceGojfAToB)...)
	ev = append(ev, e.transferGOJF(a, b, CardCommunityChest, offer.CommunityGojfAToB)...)
	ev = append(ev, e.transferGOJF(b, a, CardChance, offer.ChanceGojfBToA)...)
	ev = append(ev, e.transferGOJF(b, a, CardCommunityChest, offer.CommunityGojfBToA)...)

	e.updateDebtPhaseIfNeeded(a)
	e.updateDebtPhaseIfNeeded(b)

	ev = append(ev, fmt.Sprintf("%s cash now £%d; %s cash now £%d.", a.Name, a.Cash, b.Name, b.Cash))
	return ev
}

func (e *Engine) applyMortgageTransferOnReceive(tile int, receiver *Player, offer *TradeOffer, goingToB bool) {
	ps := e.state.PropertyAt(tile)
	if !ps.Mortgaged {
		return
	}

	mortgage := e.deeds[tile].MortgageValue()
	receiver.SubtractCash(mortgageFee(mortgage))

	var choice MortgageTransferChoice
	if goingToB {
		choice = offer.ChoiceForTileToB(tile)
	} else {
		choice = offer.ChoiceForTileToA(tile)
	}

	if choice == PayOffNow {
		receiver.SubtractCash(mortgage)
		ps.Mortgaged = false
	}
}

func (e *Engine) transferGOJF(from, to *Player, t CardType, count int) []string {
	var ev []string
	for i := 0; i < count; i++ {
		card := from.RemoveOneGetOutOfJail(t)
		if card == nil {
			break
		}
		to.AddGetOutOfJailCard(card)
		ev = append(ev, fmt.Sprintf("%s GOJF card transferred %s -> %s.", t, from.Name, to.Name))
	}
	return ev
}
