// Package advisor holds the simple heuristics used to drive automated
// players: a build advisor, a trade suggester, and the turn/trade
// policy interfaces the simulator plugs together.
package advisor

import (
	"github.com/aidanfhague/Habere-Dunelm/internal/board"
	"github.com/aidanfhague/Habere-Dunelm/internal/deed"
	"github.com/aidanfhague/Habere-Dunelm/internal/game"
)

// BuildAdvisor picks the single best build move by return on
// investment: expected incremental rent over a short horizon against
// the build cost. It only builds on full colour sets, obeys the
// even-building rule, and keeps a cash reserve.
type BuildAdvisor struct {
	SafetyReserve  int
	HorizonTurns   int
	LandingPerTurn float64
	MinROI         float64
}

func NewBuildAdvisor() *BuildAdvisor {
	return &BuildAdvisor{
		SafetyReserve:  200,
		HorizonTurns:   20,
		LandingPerTurn: 1.0 / 40.0,
		MinROI:         0.7,
	}
}

type buildCandidate struct {
	tileIdx int
	hotel   bool
	roi     float64
}

// MaybeBuild returns a BUILD_HOUSE or BUILD_HOTEL action if one clears
// the ROI threshold, or nil when holding cash is the better move.
func (a *BuildAdvisor) MaybeBuild(e *game.Engine) *game.Action {
	state := e.State()
	me := state.CurrentPlayerIndex()
	cash := state.CurrentPlayer().Cash

	opponents := 0
	for i, p := range state.Players() {
		if i != me && !p.Bankrupt {
			opponents++
		}
	}
	if opponents <= 0 {
		return nil
	}

	var best *buildCandidate

	for idx := 0; idx < board.Size; idx++ {
		s, isStreet := e.DeedAt(idx).(*deed.Street)
		if !isStreet {
			continue
		}

		ps := state.PropertyAt(idx)
		if ps.Owner != me || ps.Mortgaged || ps.HasHotel() {
			continue
		}

		if cash-s.HouseCost < a.SafetyReserve {
			continue
		}
		if !a.ownsFullGroup(e, me, s.Group) {
			continue
		}

		var c *buildCandidate

		switch {
		case ps.Houses() < 4:
			if !a.respectsEvenBuilding(e, s.Group, idx, ps.Houses()+1) {
				continue
			}
			if state.HousesRemaining() <= 0 {
				continue
			}
			c = a.evaluate(idx, false, s, ps.Buildings, opponents)

		case ps.Houses() == 4:
			if !a.groupAllHaveFourHouses(e, s.Group) {
				continue
			}
			if state.HotelsRemaining() <= 0 {
				continue
			}
			c = a.evaluate(idx, true, s, 4, opponents)
		}

		if c != nil && (best == nil || c.roi > best.roi) {
			best = c
		}
	}

	if best == nil {
		return nil
	}

	t := game.ActionBuildHouse
	if best.hotel {
		t = game.ActionBuildHotel
	}
	action := game.OnTile(t, best.tileIdx)
	return &action
}

func (a *BuildAdvisor) evaluate(idx int, hotel bool, s *deed.Street, buildings, opponents int) *buildCandidate {
	deltaRent := s.Rents[buildings+1] - s.Rents[buildings]
	if deltaRent < 0 {
		deltaRent = 0
	}

	ev := float64(opponents) * float64(a.HorizonTurns) * a.LandingPerTurn * float64(deltaRent)
	if s.HouseCost == 0 {
		return nil
	}
	roi := ev / float64(s.HouseCost)
	if roi < a.MinROI {
		return nil
	}
	return &buildCandidate{tileIdx: idx, hotel: hotel, roi: roi}
}

func (a *BuildAdvisor) ownsFullGroup(e *game.Engine, ownerIdx int, g deed.Group) bool {
	for idx := 0; idx < board.Size; idx++ {
		s, isStreet := e.DeedAt(idx).(*deed.Street)
		if !isStreet || s.Group != g {
			continue
		}
		if e.State().PropertyAt(idx).Owner != ownerIdx {
			return false
		}
	}
	return true
}

func (a *BuildAdvisor) respectsEvenBuilding(e *game.Engine, g deed.Group, tileIdx, newHouses int) bool {
	min, max := int(^uint(0)>>1), -1
	for idx := 0; idx < board.Size; idx++ {
		s, isStreet := e.DeedAt(idx).(*deed.Street)
		if !isStreet || s.Group != g {
			continue
		}
		houses := e.State().PropertyAt(idx).Houses()
		if idx == tileIdx {
			houses = newHouses
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

func (a *BuildAdvisor) groupAllHaveFourHouses(e *game.Engine, g deed.Group) bool {
	for idx := 0; idx < board.Size; idx++ {
		s, isStreet := e.DeedAt(idx).(*deed.Street)
		if !isStreet || s.Group != g {
			continue
		}
		if e.State().PropertyAt(idx).Houses() != 4 {
			return false
		}
	}
	return true
}
