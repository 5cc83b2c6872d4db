package advisor

import (
	"sort"

	"github.com/aidanfhague/Habere-Dunelm/internal/board"
	"github.com/aidanfhague/Habere-Dunelm/internal/deed"
	"github.com/aidanfhague/Habere-Dunelm/internal/game"
)

// SuggestTrades proposes cash-for-tile deals that would complete a
// colour set for the current player: for every group where exactly one
// street is missing and an opponent holds it undeveloped and
// unmortgaged, offer list price plus a premium, capped by a cash
// reserve. Returns at most five offers, richest first.
func SuggestTrades(e *game.Engine) []*game.TradeOffer {
	const (
		reserve    = 200
		maxOffers  = 5
		minPremium = 25
	)

	state := e.State()
	me := state.CurrentPlayerIndex()
	myCash := state.Players()[me].Cash

	groups := make(map[deed.Group][]*deed.Street)
	for idx := 0; idx < board.Size; idx++ {
		if s, isStreet := e.DeedAt(idx).(*deed.Street); isStreet {
			groups[s.Group] = append(groups[s.Group], s)
		}
	}

	var offers []*game.TradeOffer

	for _, streets := range groups {
		ownedByMe := 0
		missing := []int{}

		for _, s := range streets {
			if state.PropertyAt(s.Idx).Owner == me {
				ownedByMe++
			} else {
				missing = append(missing, s.Idx)
			}
		}

		if ownedByMe != len(streets)-1 || len(missing) != 1 {
			continue
		}

		wanted := missing[0]
		psWanted := state.PropertyAt(wanted)
		if psWanted.Owner == game.Unowned {
			continue // unowned set completions go through buy/auction
		}
		if psWanted.Mortgaged || psWanted.Buildings > 0 {
			continue
		}

		basePrice := e.DeedAt(wanted).Price()
		premium := basePrice / 4
		if premium < minPremium {
			premium = minPremium
		}

		offerCash := basePrice + premium
		if available := myCash - reserve; offerCash > available {
			offerCash = available
		}
		if offerCash <= 0 {
			continue
		}

		offers = append(offers, game.SimpleCashForTile(me, psWanted.Owner, wanted, offerCash))
	}

	// Richer offers are likelier to be accepted; try them first.
	sort.Slice(offers, func(i, j int) bool { return offers[i].CashAToB > offers[j].CashAToB })

	if len(offers) > maxOffers {
		offers = offers[:maxOffers]
	}
	return offers
}
