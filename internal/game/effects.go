package game

import (
	"fmt"

	"github.com/aidanfhague/Habere-Dunelm/internal/board"
	"github.com/aidanfhague/Habere-Dunelm/internal/deed"
)

// Card-effect helpers. These are the verbs the card decks are built
// from; each applies immediately to the current player and returns the
// events it produced. Movement helpers resolve the landing recursively,
// so a card can chain into rent, a buy decision, or another draw.

// LastDrawnCard returns the most recently drawn card, for callers that
// inspect a draw outcome (GOJF award bookkeeping, tests).
func (e *Engine) LastDrawnCard() *Card { return e.lastDrawnCard }

// MoveRelative moves the current player by delta tiles, wrapping in
// both directions. The GO salary only pays on a forward wrap.
func (e *Engine) MoveRelative(delta int, goSalaryIfPass bool) []string {
	p := e.state.CurrentPlayer()
	raw := p.Position + delta

	newPos := ((raw % board.Size) + board.Size) % board.Size

	if goSalaryIfPass && delta > 0 && raw >= board.Size {
		p.AddCash(e.cfg.GoSalary)
	}

	p.Position = newPos
	e.state.landedTile = newPos

	res := e.afterLanding(p, fmt.Sprintf("%s moved %d spaces to tile %d.", p.Name, delta, newPos))
	return res.Events
}

// AdvanceTo moves the current player to an absolute tile. Crossing GO
// (destination behind the current position) pays the salary when asked.
func (e *Engine) AdvanceTo(destination int, goSalaryIfPass bool) []string {
	p := e.state.CurrentPlayer()

	if goSalaryIfPass && destination < p.Position {
		p.AddCash(e.cfg.GoSalary)
	}

	p.Position = destination
	e.state.landedTile = destination

	res := e.afterLanding(p, fmt.Sprintf("%s advanced to tile %d.", p.Name, destination))
	return res.Events
}

// GoToJailNoSalary sends the current player straight to jail. No GO
// salary even if the jail tile is behind them.
func (e *Engine) GoToJailNoSalary() []string {
	p := e.state.CurrentPlayer()
	p.SendToJail(e.cfg.JailMaxTurns)
	e.state.landedTile = p.Position
	e.state.setPhase(PhaseTurnEnd)
	return []string{
		fmt.Sprintf("%s goes straight to JAIL (no GO salary).", p.Name),
		"Action: END_TURN",
	}
}

// AwardGetOutOfJailFree extracts the card from its deck and hands it to
// the current player; it stays out of circulation until used or traded.
func (e *Engine) AwardGetOutOfJailFree(card *Card) []string {
	p := e.state.CurrentPlayer()

	if card.Type == CardChance {
		e.state.ChanceDeck().Remove(card)
	} else {
		e.state.CommunityDeck().Remove(card)
	}

	p.AddGetOutOfJailCard(card)
	return []string{fmt.Sprintf("%s receives a Get Out of Jail Free card (%s).", p.Name, card.Type)}
}

func (e *Engine) PayBank(amount int) []string {
	p := e.state.CurrentPlayer()
	p.SubtractCash(amount)
	e.updateDebtPhaseIfNeeded(p)
	return []string{fmt.Sprintf("%s pays the bank £%d.", p.Name, amount)}
}

func (e *Engine) ReceiveBank(amount int) []string {
	p := e.state.CurrentPlayer()
	p.AddCash(amount)
	return []string{fmt.Sprintf("%s receives £%d from the bank.", p.Name, amount)}
}

// PayEachOtherPlayer pays every non-bankrupt opponent the given amount.
func (e *Engine) PayEachOtherPlayer(amountEach int) []string {
	p := e.state.CurrentPlayer()
	payerIdx := e.state.CurrentPlayerIndex()

	total := 0
	for i, other := range e.state.Players() {
		if i == payerIdx || other.Bankrupt {
			continue
		}
		other.AddCash(amountEach)
		total += amountEach
	}

	p.SubtractCash(total)
	e.updateDebtPhaseIfNeeded(p)
	return []string{fmt.Sprintf("%s pays £%d to each other player (total £%d).", p.Name, amountEach, total)}
}

// CollectFromEachOtherPlayer collects from every non-bankrupt opponent.
// An opponent driven negative settles up at the start of their own
// turn.
func (e *Engine) CollectFromEachOtherPlayer(amountEach int) []string {
	p := e.state.CurrentPlayer()
	receiverIdx := e.state.CurrentPlayerIndex()

	total := 0
	for i, other := range e.state.Players() {
		if i == receiverIdx || other.Bankrupt {
			continue
		}
		other.SubtractCash(amountEach)
		total += amountEach
	}

	p.AddCash(total)
	return []string{fmt.Sprintf("%s collects £%d from each other player (total £%d).", p.Name, amountEach, total)}
}

// PayPerBuilding charges street repairs per house and per hotel owned.
func (e *Engine) PayPerBuilding(perHouse, perHotel int) []string {
	p := e.state.CurrentPlayer()
	playerIdx := e.state.CurrentPlayerIndex()

	houses, hotels := 0, 0
	for idx, d := range e.deeds {
		if _, isStreet := d.(*deed.Street); !isStreet {
			continue
		}
		ps := e.state.PropertyAt(idx)
		if ps.Owner != playerIdx {
			continue
		}
		if ps.HasHotel() {
			hotels++
		} else {
			houses += ps.Houses()
		}
	}

	cost := houses*perHouse + hotels*perHotel
	p.SubtractCash(cost)
	e.updateDebtPhaseIfNeeded(p)
	return []string{fmt.Sprintf("%s pays building repairs: houses=%d (£%d each), hotels=%d (£%d each). Total £%d.",
		p.Name, houses, perHouse, hotels, perHotel, cost)}
}

// AdvanceToNearestStationDoubleRent moves forward to the next railroad.
// If it is owned by an opponent and unmortgaged the rent is doubled;
// otherwise normal landing resolution applies (buy/auction prompt etc).
func (e *Engine) AdvanceToNearestStationDoubleRent() []string {
	p := e.state.CurrentPlayer()
	dest := board.NearestForward(p.Position, board.Stations)

	if dest < p.Position {
		p.AddCash(e.cfg.GoSalary)
	}
	p.Position = dest
	e.state.landedTile = dest

	d := e.deeds[dest]
	ps := e.state.PropertyAt(dest)

	if d != nil && ps.Owner != Unowned && ps.Owner != e.state.CurrentPlayerIndex() && !ps.Mortgaged {
		doubleRent := e.computeRent(dest, d, ps) * 2
		owner := e.state.Players()[ps.Owner]

		p.SubtractCash(doubleRent)
		owner.AddCash(doubleRent)
		e.updateDebtPhaseIfNeeded(p)

		ev := fmt.Sprintf("%s advanced to nearest Station (%d) and paid DOUBLE rent £%d to %s.",
			p.Name, dest, doubleRent, owner.Name)
		if e.state.Phase() == PhaseMustResolveDebt {
			return []string{ev, "MUST RESOLVE DEBT."}
		}
		e.state.setPhase(PhaseManagement)
		return []string{ev}
	}

	res := e.afterLanding(p, fmt.Sprintf("%s advanced to nearest Station (%d).", p.Name, dest))
	return res.Events
}

// AdvanceToNearestUtilitySpecialRent moves forward to the next utility.
// If an opponent owns it unmortgaged, the player rolls fresh and pays
// ten times the total regardless of how many utilities the owner holds.
func (e *Engine) AdvanceToNearestUtilitySpecialRent() []string {
	p := e.state.CurrentPlayer()
	dest := board.NearestForward(p.Position, board.Utilities)

	if dest < p.Position {
		p.AddCash(e.cfg.GoSalary)
	}
	p.Position = dest
	e.state.landedTile = dest

	d := e.deeds[dest]
	ps := e.state.PropertyAt(dest)

	if _, isUtil := d.(*deed.Utility); isUtil && ps.Owner != Unowned && ps.Owner != e.state.CurrentPlayerIndex() && !ps.Mortgaged {
		roll := e.dice.Roll2D6()
		e.state.lastRollTotal = roll.Total()

		owed := roll.Total() * 10
		owner := e.state.Players()[ps.Owner]

		p.SubtractCash(owed)
		owner.AddCash(owed)
		e.updateDebtPhaseIfNeeded(p)

		ev := fmt.Sprintf("%s advanced to utility (%d) and rolled %s. Paid £%d (10x roll) to %s.",
			p.Name, dest, roll, owed, owner.Name)
		if e.state.Phase() == PhaseMustResolveDebt {
			return []string{ev, "MUST RESOLVE DEBT."}
		}
		e.state.setPhase(PhaseManagement)
		return []string{ev}
	}

	res := e.afterLanding(p, fmt.Sprintf("%s advanced to nearest Utility (%d).", p.Name, dest))
	return res.Events
}

// GambleThenMaybeJail rolls 2d6: at or above the threshold the player
// wins; below it they pay and go straight to jail.
func (e *Engine) GambleThenMaybeJail(threshold, winAmount, loseAmountAndJail int) []string {
	p := e.state.CurrentPlayer()
	roll := e.dice.Roll2D6()
	e.state.lastRollTotal = roll.Total()

	if roll.Total() >= threshold {
		p.AddCash(winAmount)
		return []string{fmt.Sprintf("%s rolled %s (>= %d) and wins £%d.", p.Name, roll, threshold, winAmount)}
	}

	p.SubtractCash(loseAmountAndJail)
	e.updateDebtPhaseIfNeeded(p)
	p.SendToJail(e.cfg.JailMaxTurns)
	e.state.setPhase(PhaseTurnEnd)

	events := []string{fmt.Sprintf("%s rolled %s (< %d), pays £%d and goes straight to JAIL.",
		p.Name, roll, threshold, loseAmountAndJail)}
	if p.Cash < 0 {
		events = append(events, "MUST RESOLVE DEBT.")
	}
	return append(events, "Action: END_TURN")
}
