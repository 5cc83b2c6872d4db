package game

import (
	"fmt"

	"github.com/aidanfhague/Habere-Dunelm/internal/deed"
)

func (e *Engine) handleBuildHouse(tileIndex int) Result {
	phase := e.state.Phase()
	if phase != PhaseManagement && phase != PhaseTurnEnd {
		return fail(ViolationPhase, "BUILD_HOUSE is only allowed during your turn (management/end phase).")
	}

	s, ps, res := e.ownedStreet(tileIndex, "BUILD_HOUSE")
	if !res.OK {
		return res
	}
	if ps.Mortgaged {
		return fail(ViolationRule, "Cannot build on a mortgaged property.")
	}
	if ps.HasHotel() {
		return fail(ViolationRule, "Already has a hotel.")
	}
	if ps.Houses() >= 4 {
		return fail(ViolationRule, "Already has 4 houses (build hotel instead).")
	}
	if !e.ownsFullStreetGroup(s) {
		return fail(ViolationOwnership, "You must own the entire colour group to build houses.")
	}
	if !e.respectsEvenCount(s.Group, tileIndex, ps.Houses()+1) {
		return fail(ViolationRule, "Even-building rule violated: build evenly across the set.")
	}
	if !e.state.takeHouseFromBank() {
		return fail(ViolationEconomic, "No houses remaining in the bank (32 house limit reached).")
	}

	p := e.state.CurrentPlayer()
	p.SubtractCash(s.HouseCost)
	ps.Buildings++

	e.updateDebtPhaseIfNeeded(p)
	if e.state.Phase() == PhaseMustResolveDebt {
		return ok(
			fmt.Sprintf("Built 1 house on tile %d for £%d.", tileIndex, s.HouseCost),
			fmt.Sprintf("Cash is now £%d -> MUST RESOLVE DEBT.", p.Cash))
	}

	return ok(
		fmt.Sprintf("Built 1 house on tile %d for £%d.", tileIndex, s.HouseCost),
		fmt.Sprintf("Houses now: %d.", ps.Houses()),
		fmt.Sprintf("Bank supply now: houses=%d, hotels=%d.", e.state.HousesRemaining(), e.state.HotelsRemaining()),
		"Action: END_TURN (or BUILD/MORTGAGE)")
}

func (e *Engine) handleBuildHotel(tileIndex int) Result {
	phase := e.state.Phase()
	if phase != PhaseManagement && phase != PhaseTurnEnd {
		return fail(ViolationPhase, "BUILD_HOTEL is only allowed during your turn (management/end phase).")
	}

	s, ps, res := e.ownedStreet(tileIndex, "BUILD_HOTEL")
	if !res.OK {
		return res
	}
	if ps.Mortgaged {
		return fail(ViolationRule, "Cannot build on a mortgaged property.")
	}
	if ps.HasHotel() {
		return fail(ViolationRule, "Already has a hotel.")
	}
	if ps.Houses() != 4 {
		return fail(ViolationRule, "Must have 4 houses on this property before building a hotel.")
	}
	if !e.ownsFullStreetGroup(s) {
		return fail(ViolationOwnership, "You must own the entire colour group to build a hotel.")
	}
	if !e.groupAllHaveFourHouses(s) {
		return fail(ViolationRule, "All properties in the set must have 4 houses before any hotel.")
	}
	if !e.state.takeHotelFromBank() {
		return fail(ViolationEconomic, "No hotels remaining in the bank (12 hotel limit reached).")
	}

	// A hotel replaces the tile's 4 houses, which go back to the bank.
	e.state.returnHousesToBank(4)

	p := e.state.CurrentPlayer()
	p.SubtractCash(s.HouseCost)
	ps.Buildings = 5

	e.updateDebtPhaseIfNeeded(p)
	if e.state.Phase() == PhaseMustResolveDebt {
		return ok(
			fmt.Sprintf("Built HOTEL on tile %d for £%d.", tileIndex, s.HouseCost),
			fmt.Sprintf("Cash is now £%d -> MUST RESOLVE DEBT.", p.Cash))
	}

	return ok(
		fmt.Sprintf("Built HOTEL on tile %d for £%d.", tileIndex, s.HouseCost),
		fmt.Sprintf("Bank supply now: houses=%d, hotels=%d.", e.state.HousesRemaining(), e.state.HotelsRemaining()),
		"Action: END_TURN (or BUILD/MORTGAGE)")
}

func (e *Engine) handleSellHouse(tileIndex int) Result {
	phase := e.state.Phase()
	if phase != PhaseManagement && phase != PhaseTurnEnd && phase != PhaseMustResolveDebt {
		return fail(ViolationPhase, "SELL_HOUSE is only allowed during your turn.")
	}

	s, ps, res := e.ownedStreet(tileIndex, "SELL_HOUSE")
	if !res.OK {
		return res
	}
	if ps.Mortgaged {
		return fail(ViolationRule, "Cannot sell buildings on a mortgaged property.")
	}
	if ps.HasHotel() {
		return fail(ViolationRule, "This property has a hotel. Use SELL_HOTEL first.")
	}
	if ps.Houses() <= 0 {
		return fail(ViolationRule, "No houses to sell on this property.")
	}
	if !e.respectsEvenCount(s.Group, tileIndex, ps.Houses()-1) {
		return fail(ViolationRule, "Even-building rule violated: sell evenly across the set.")
	}

	ps.Buildings--
	e.state.returnHousesToBank(1)

	saleValue := s.HouseCost / 2
	p := e.state.CurrentPlayer()
	p.AddCash(saleValue)

	if e.state.Phase() == PhaseMustResolveDebt && p.Cash >= 0 {
		e.state.setPhase(PhaseTurnEnd)
	}

	return ok(
		fmt.Sprintf("Sold 1 house on tile %d for £%d.", tileIndex, saleValue),
		fmt.Sprintf("Houses now: %d.", ps.Houses()),
		fmt.Sprintf("Bank supply now: houses=%d, hotels=%d.", e.state.HousesRemaining(), e.state.HotelsRemaining()),
		fmt.Sprintf("Cash now £%d.", p.Cash))
}

func (e *Engine) handleSellHotel(tileIndex int) Result {
	phase := e.state.Phase()
	if phase != PhaseManagement && phase != PhaseTurnEnd && phase != PhaseMustResolveDebt {
		return fail(ViolationPhase, "SELL_HOTEL is only allowed during your turn.")
	}

	s, ps, res := e.ownedStreet(tileIndex, "SELL_HOTEL")
	if !res.OK {
		return res
	}
	if ps.Mortgaged {
		return fail(ViolationRule, "Cannot sell buildings on a mortgaged property.")
	}
	if !ps.HasHotel() {
		return fail(ViolationRule, "No hotel to sell on this property.")
	}

	// Selling a hotel turns it back into 4 houses, which must come from
	// the bank supply.
	if e.state.HousesRemaining() < 4 {
		return fail(ViolationEconomic, "Cannot sell hotel: the bank does not have 4 houses available to replace it.")
	}
	if !e.respectsEvenCount(s.Group, tileIndex, 4) {
		return fail(ViolationRule, "Even-building rule violated: sell evenly across the set.")
	}

	ps.Buildings = 4
	e.state.returnHotelToBank()
	e.state.takeHousesFromBank(4)

	saleValue := s.HouseCost / 2
	p := e.state.CurrentPlayer()
	p.AddCash(saleValue)

	if e.state.Phase() == PhaseMustResolveDebt && p.Cash >= 0 {
		e.state.setPhase(PhaseTurnEnd)
	}

	return ok(
		fmt.Sprintf("Sold HOTEL on tile %d for £%d (hotel replaced with 4 houses).", tileIndex, saleValue),
		fmt.Sprintf("Bank supply now: houses=%d, hotels=%d.", e.state.HousesRemaining(), e.state.HotelsRemaining()),
		fmt.Sprintf("Cash now £%d.", p.Cash))
}

// ownedStreet resolves a tile index to a street deed owned by the
// current player, or a failure result.
func (e *Engine) ownedStreet(tileIndex int, op string) (*deed.Street, *PropertyState, Result) {
	if tileIndex == Unowned {
		return nil, nil, fail(ViolationArgument, fmt.Sprintf("%s requires a tile index.", op))
	}

	s, isStreet := e.deeds[tileIndex].(*deed.Street)
	if !isStreet {
		return nil, nil, fail(ViolationArgument, fmt.Sprintf("%s only applies to street properties.", op))
	}

	ps := e.state.PropertyAt(tileIndex)
	if ps.Owner != e.state.CurrentPlayerIndex() {
		return nil, nil, fail(ViolationOwnership, "You do not own this property.")
	}

	return s, ps, ok()
}

// ------------------ group rules ------------------

func (e *Engine) ownsFullStreetGroup(target *deed.Street) bool {
	current := e.state.CurrentPlayerIndex()
	for idx, d := range e.deeds {
		s, isStreet := d.(*deed.Street)
		if !isStreet || s.Group != target.Group {
			continue
		}
		if e.state.PropertyAt(idx).Owner != current {
			return false
		}
	}
	return true
}

// respectsEvenCount checks the even-building/selling rule: after
// setting one tile's house count, the group must satisfy max-min <= 1.
func (e *Engine) respectsEvenCount(g deed.Group, tileIdx, newHouseCount int) bool {
	min, max := int(^uint(0)>>1), -1
	for idx, d := range e.deeds {
		s, isStreet := d.(*deed.Street)
		if !isStreet || s.Group != g {
			continue
		}
		houses := e.state.PropertyAt(idx).Houses()
		if idx == tileIdx {
			houses = newHouseCount
		}
		if houses < min {
			min = houses
		}
		if houses > max {
			max = houses
		}
	}
	return max-min <= 1
}

func (e *Engine) groupAllHaveFourHouses(target *deed.Street) bool {
	for idx, d := range e.deeds {
		s, isStreet := d.(*deed.Street)
		if !isStreet || s.Group != target.Group {
			continue
		}
		if e.state.PropertyAt(idx).Houses() != 4 {
			return false
		}
	}
	return true
}
