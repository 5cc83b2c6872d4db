package advisor

import "github.com/aidanfhague/Habere-Dunelm/internal/game"

// TurnPolicy decides the next action for the player currently in
// control.
type TurnPolicy interface {
	ChooseAction(e *game.Engine) game.Action
}

// TradePolicy decides when to propose trades and how to answer pending
// ones.
type TradePolicy interface {
	MaybePropose(e *game.Engine) *game.TradeOffer
	Respond(e *game.Engine, pending *game.TradeOffer) game.Action
}

// SimpleTurnPolicy rolls when the engine wants a roll, buys everything
// it lands on, and otherwise ends the turn. Jailed players spend a GOJF
// card when cash is tight, else take their chances on the dice.
type SimpleTurnPolicy struct{}

func (SimpleTurnPolicy) ChooseAction(e *game.Engine) game.Action {
	state := e.State()

	switch state.Phase() {
	case game.PhaseMustRoll, game.PhaseCanRollAgain:
		return game.Simple(game.ActionRollDice)
	case game.PhaseInJailDecision:
		p := state.CurrentPlayer()
		if p.HasGetOutOfJailCard() && p.Cash < 100 {
			return game.Simple(game.ActionUseGetOutOfJail)
		}
		return game.Simple(game.ActionRollDice)
	case game.PhaseLandedDecision:
		return game.Simple(game.ActionBuyProperty)
	}

	return game.Simple(game.ActionEndTurn)
}

// SimpleTradePolicy never proposes and always rejects.
type SimpleTradePolicy struct{}

func (SimpleTradePolicy) MaybePropose(e *game.Engine) *game.TradeOffer { return nil }

func (SimpleTradePolicy) Respond(e *game.Engine, pending *game.TradeOffer) game.Action {
	return game.Simple(game.ActionRejectTrade)
}

// SetHunterTradePolicy proposes the best set-completing cash offer and
// accepts incoming pure-cash offers that pay over the odds.
type SetHunterTradePolicy struct{}

func (SetHunterTradePolicy) MaybePropose(e *game.Engine) *game.TradeOffer {
	offers := SuggestTrades(e)
	if len(offers) == 0 {
		return nil
	}
	return offers[0]
}

func (SetHunterTradePolicy) Respond(e *game.Engine, pending *game.TradeOffer) game.Action {
	// Accept when the proposer only wants tiles from us and pays at
	// least 125% of their list price.
	if len(pending.TilesAToB) > 0 || pending.CashBToA > 0 {
		return game.Simple(game.ActionRejectTrade)
	}

	wantedValue := 0
	for tile := range pending.TilesBToA {
		d := e.DeedAt(tile)
		if d == nil {
			return game.Simple(game.ActionRejectTrade)
		}
		wantedValue += d.Price()
	}

	if pending.CashAToB*4 >= wantedValue*5 {
		return game.Simple(game.ActionAcceptTrade)
	}
	return game.Simple(game.ActionRejectTrade)
}
