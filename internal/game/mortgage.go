package game

import (
	"fmt"

	"github.com/aidanfhague/Habere-Dunelm/internal/deed"
)

// mortgageFee is the lender's 10% charge, rounded up.
func mortgageFee(mortgageValue int) int {
	return (mortgageValue + 9) / 10
}

func (e *Engine) handleMortgage(tileIndex int) Result {
	phase := e.state.Phase()
	if phase != PhaseMustResolveDebt && phase != PhaseManagement && phase != PhaseTurnEnd {
		return fail(ViolationPhase, "MORTGAGE is only allowed during your turn.")
	}

	if tileIndex == Unowned {
		return fail(ViolationArgument, "MORTGAGE requires a tile index.")
	}

	d := e.deeds[tileIndex]
	if d == nil {
		return fail(ViolationArgument, fmt.Sprintf("Tile %d is not mortgageable.", tileIndex))
	}

	ps := e.state.PropertyAt(tileIndex)
	if ps.Owner != e.state.CurrentPlayerIndex() {
		return fail(ViolationOwnership, "You do not own this tile.")
	}
	if ps.Mortgaged {
		return fail(ViolationRule, "Already mortgaged.")
	}
	if _, isStreet := d.(*deed.Street); isStreet && ps.Buildings > 0 {
		return fail(ViolationRule, "You must sell buildings before mortgaging a street.")
	}

	mortgageValue := d.MortgageValue()
	p := e.state.CurrentPlayer()
	ps.Mortgaged = true
	p.AddCash(mortgageValue)

	if p.Cash < 0 {
		e.state.setPhase(PhaseMustResolveDebt)
		if !e.canRaiseCash() {
			e.bankruptCurrentPlayer()
			winEvent := e.winnerIfAny()
			if e.state.Status() == StatusRunning {
				e.state.advanceTurnSkippingBankrupt()
			}
			return ok(
				fmt.Sprintf("Mortgaged tile %d for £%d.", tileIndex, mortgageValue),
				fmt.Sprintf("%s still cannot clear debt -> BANKRUPT.", p.Name),
				winEvent)
		}
		return ok(
			fmt.Sprintf("Mortgaged tile %d for £%d.", tileIndex, mortgageValue),
			fmt.Sprintf("Cash now £%d -> still MUST RESOLVE DEBT.", p.Cash))
	}

	if e.state.Phase() == PhaseMustResolveDebt {
		e.state.setPhase(PhaseTurnEnd)
	}

	return ok(
		fmt.Sprintf("Mortgaged tile %d for £%d.", tileIndex, mortgageValue),
		fmt.Sprintf("Cash now £%d.", p.Cash),
		"Action: END_TURN (or BUILD/MORTGAGE)")
}

func (e *Engine) handleUnmortgage(tileIndex int) Result {
	phase := e.state.Phase()
	if phase != PhaseManagement && phase != PhaseTurnEnd && phase != PhaseMustResolveDebt {
		return fail(ViolationPhase, "UNMORTGAGE is only allowed during your turn (management/end/debt).")
	}

	if tileIndex == Unowned {
		return fail(ViolationArgument, "UNMORTGAGE requires a tile index.")
	}

	d := e.deeds[tileIndex]
	if d == nil {
		return fail(ViolationArgument, fmt.Sprintf("Tile %d is not a deed and cannot be unmortgaged.", tileIndex))
	}

	ps := e.state.PropertyAt(tileIndex)
	if ps.Owner != e.state.CurrentPlayerIndex() {
		return fail(ViolationOwnership, "You do not own this tile.")
	}
	if !ps.Mortgaged {
		return fail(ViolationRule, "Tile is not mortgaged.")
	}

	mortgageValue := d.MortgageValue()
	fee := mortgageFee(mortgageValue)
	totalCost := mortgageValue + fee

	p := e.state.CurrentPlayer()

	// Unmortgaging may never push cash negative.
	if p.Cash-totalCost < 0 {
		return fail(ViolationEconomic,
			fmt.Sprintf("Cannot unmortgage tile %d: need £%d (mortgage £%d + 10%% £%d), cash £%d. Use MORTGAGE to raise cash.",
				tileIndex, totalCost, mortgageValue, fee, p.Cash))
	}

	p.SubtractCash(totalCost)
	ps.Mortgaged = false

	if e.state.Phase() == PhaseMustResolveDebt && p.Cash >= 0 {
		e.state.setPhase(PhaseTurnEnd)
	}

	return ok(
		fmt.Sprintf("Unmortgaged tile %d for £%d + 10%% fee £%d (total £%d).", tileIndex, mortgageValue, fee, totalCost),
		fmt.Sprintf("Cash now £%d.", p.Cash),
		"Action: END_TURN (or BUILD/MORTGAGE/UNMORTGAGE)")
}
