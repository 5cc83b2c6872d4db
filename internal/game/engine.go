package game

import (
	"fmt"

	"github.com/aidanfhague/Habere-Dunelm/internal/board"
	"github.com/aidanfhague/Habere-Dunelm/internal/deed"
	"go.uber.org/zap"
)

// Engine is the rules engine: a phase-driven action dispatcher over a
// single game. It exclusively owns the State; callers read the state and
// submit Actions. Every call either fully applies or leaves the state
// untouched. The engine itself is single-threaded; a concurrent host
// must serialize access externally (see Manager).
type Engine struct {
	cfg    Config
	dice   DiceSource
	state  *State
	deeds  map[int]deed.Deed
	logger *zap.Logger

	lastDrawnCard *Card
}

// NewEngine wires a configured engine over an existing state. The dice
// source is injected so games replay deterministically under fixed seeds.
func NewEngine(cfg Config, dice DiceSource, state *State, logger *zap.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		dice:   dice,
		state:  state,
		deeds:  deed.UKClassicByIndex(),
		logger: logger,
	}
}

// State exposes the game state for read-only inspection.
func (e *Engine) State() *State { return e.state }

// Config returns the economic constants the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// DeedAt returns the deed for a tile, or nil for non-buyable squares.
func (e *Engine) DeedAt(tileIndex int) deed.Deed {
	if tileIndex < 0 || tileIndex >= board.Size {
		return nil
	}
	return e.deeds[tileIndex]
}

// StartTurnIfNeeded moves a fresh turn out of START_TURN: bankrupt
// players are skipped, jailed players enter the jail decision, everyone
// else must roll. Players who begin their turn in debt (a card effect
// can do this) go straight to debt resolution.
func (e *Engine) StartTurnIfNeeded() Result {
	if e.state.Status() == StatusFinished {
		return fail(ViolationFatal, "Game is finished.")
	}
	if e.state.Phase() != PhaseStartTurn {
		return ok()
	}

	p := e.state.CurrentPlayer()
	if p.Bankrupt {
		e.state.advanceTurnSkippingBankrupt()
		return ok("Skipping bankrupt player.")
	}

	e.state.doublesThisTurn = 0

	if p.Cash < 0 {
		e.state.setPhase(PhaseMustResolveDebt)
		return ok(fmt.Sprintf("%s starts the turn in debt (cash £%d) and must raise cash.", p.Name, p.Cash))
	}

	if p.InJail {
		e.state.setPhase(PhaseInJailDecision)
		return ok(fmt.Sprintf("%s is in JAIL. Choose: USE_GET_OUT_OF_JAIL_FREE (if held) or ROLL_DICE.", p.Name))
	}

	e.state.setPhase(PhaseMustRoll)
	return ok(fmt.Sprintf("%s to play. Action: ROLL_DICE.", p.Name))
}

// Apply validates and executes one action. Failed actions leave state
// unchanged and report why in the result.
func (e *Engine) Apply(action Action) Result {
	e.StartTurnIfNeeded()

	if e.state.Status() == StatusFinished {
		w := e.state.WinnerIndex()
		return fail(ViolationFatal, fmt.Sprintf("Game over. Winner: %s", e.state.Players()[w].Name))
	}

	if action.Type == "" {
		return fail(ViolationArgument, "Action type is empty.")
	}

	res := e.dispatch(action)

	if e.logger != nil {
		e.logger.Debug("action applied",
			zap.String("action", string(action.Type)),
			zap.Bool("ok", res.OK),
			zap.String("phase", e.state.Phase().String()),
			zap.Int("current_player", e.state.CurrentPlayerIndex()),
		)
	}

	return res
}

func (e *Engine) dispatch(action Action) Result {
	switch action.Type {
	case ActionRollDice:
		return e.handleRoll()
	case ActionBuyProperty:
		return e.handleBuy()
	case ActionStartAuction:
		return e.handleStartAuction()
	case ActionAuctionBid:
		return e.handleAuctionBid(action.Amount)
	case ActionAuctionPass:
		return e.handleAuctionPass()
	case ActionBuildHouse:
		return e.handleBuildHouse(action.TileIndex)
	case ActionBuildHotel:
		return e.handleBuildHotel(action.TileIndex)
	case ActionSellHouse:
		return e.handleSellHouse(action.TileIndex)
	case ActionSellHotel:
		return e.handleSellHotel(action.TileIndex)
	case ActionMortgage:
		return e.handleMortgage(action.TileIndex)
	case ActionUnmortgage:
		return e.handleUnmortgage(action.TileIndex)
	case ActionUseGetOutOfJail:
		return e.handleUseGetOutOfJail()
	case ActionEndTurn:
		return e.handleEndTurn()
	case ActionProposeTrade:
		return e.handleProposeTrade(action.Trade, false)
	case ActionCounterTrade:
		return e.handleProposeTrade(action.Trade, true)
	case ActionAcceptTrade:
		return e.handleTradeResponse(tradeAccept)
	case ActionRejectTrade:
		return e.handleTradeResponse(tradeReject)
	case ActionCancelTrade:
		return e.handleTradeResponse(tradeCancel)
	default:
		return fail(ViolationArgument, fmt.Sprintf("Unknown action type: %s", action.Type))
	}
}

// ------------------ core flow: roll -> land -> decision/rent ------------------

func (e *Engine) handleRoll() Result {
	p := e.state.CurrentPlayer()
	phase := e.state.Phase()

	if phase != PhaseMustRoll && phase != PhaseCanRollAgain && phase != PhaseInJailDecision {
		return fail(ViolationPhase, "Not allowed to roll right now.")
	}

	if p.InJail {
		return e.handleJailRoll(p)
	}

	roll := e.dice.Roll2D6()
	e.state.lastRollTotal = roll.Total()

	if roll.IsDouble() {
		e.state.doublesThisTurn++
		if e.state.doublesThisTurn >= 3 {
			p.SendToJail(e.cfg.JailMaxTurns)
			e.state.setPhase(PhaseTurnEnd)
			return ok(fmt.Sprintf("%s rolled %s (3rd double) -> sent to JAIL.", p.Name, roll), "Action: END_TURN")
		}
	}

	e.movePlayerHandlingGo(p, roll.Total())
	e.state.landedTile = p.Position

	landing := e.afterLanding(p, fmt.Sprintf("%s rolled %s and moved.", p.Name, roll))

	// Doubles grant another roll unless the landing forced a decision
	// or debt resolution.
	if roll.IsDouble() && e.state.Phase() == PhaseManagement && p.Cash >= 0 {
		e.state.setPhase(PhaseCanRollAgain)
		return landing
	}

	if !roll.IsDouble() && e.state.Phase() == PhaseManagement {
		e.state.setPhase(PhaseTurnEnd)
	}

	return landing
}

func (e *Engine) handleJailRoll(p *Player) Result {
	roll := e.dice.Roll2D6()
	e.state.lastRollTotal = roll.Total()

	if roll.IsDouble() {
		p.ReleaseFromJail()
		e.movePlayerHandlingGo(p, roll.Total())
		e.state.landedTile = p.Position
		return e.afterLanding(p, fmt.Sprintf("Rolled %s in jail: doubles -> released and moved.", roll))
	}

	p.DecrementJailTurn()
	if p.JailTurnsRemaining <= 0 {
		p.SubtractCash(e.cfg.JailFine)
		p.ReleaseFromJail()

		exit := e.dice.Roll2D6()
		e.state.lastRollTotal = exit.Total()
		e.movePlayerHandlingGo(p, exit.Total())
		e.state.landedTile = p.Position

		e.updateDebtPhaseIfNeeded(p)
		return e.afterLanding(p, fmt.Sprintf("Rolled %s (no doubles). Out of attempts: paid £%d fine, rolled %s and moved.",
			roll, e.cfg.JailFine, exit))
	}

	e.state.setPhase(PhaseTurnEnd)
	return ok(fmt.Sprintf("Rolled %s (no doubles). Remains in jail.", roll), "Action: END_TURN")
}

func (e *Engine) handleUseGetOutOfJail() Result {
	p := e.state.CurrentPlayer()

	if e.state.Phase() != PhaseInJailDecision {
		return fail(ViolationPhase, "A Get Out of Jail Free card can only be used while making a jail decision.")
	}
	if !p.InJail {
		return fail(ViolationRule, "You are not in jail.")
	}
	if !p.HasGetOutOfJailCard() {
		return fail(ViolationRule, "You do not have a Get Out of Jail Free card.")
	}

	card := p.UseGetOutOfJailCard()
	if card.Type == CardChance {
		e.state.ChanceDeck().ReturnToBottom(card)
	} else {
		e.state.CommunityDeck().ReturnToBottom(card)
	}

	p.ReleaseFromJail()
	e.state.setPhase(PhaseMustRoll)

	return ok(
		fmt.Sprintf("%s uses a Get Out of Jail Free card (%s).", p.Name, card.Type),
		fmt.Sprintf("Card returned to bottom of %s deck.", card.Type),
		"Action: ROLL_DICE",
	)
}

// afterLanding decides what landing on the current tile means: draw a
// card, enter the buy/auction decision, pay rent, or drop into
// management.
func (e *Engine) afterLanding(p *Player, prefixEvent string) Result {
	idx := p.Position
	tile := e.state.Board().TileAt(idx)

	switch tile.Type {
	case board.TypeChance:
		return e.resolveDraw(e.state.ChanceDeck(), "CHANCE", prefixEvent)
	case board.TypeCommunityChest:
		return e.resolveDraw(e.state.CommunityDeck(), "COMMUNITY CHEST", prefixEvent)
	}

	d := e.deeds[idx]
	if d == nil {
		e.state.setPhase(PhaseManagement)
		return ok(prefixEvent,
			fmt.Sprintf("%s landed on %s (tile %d).", p.Name, tile.Name, idx),
			"Action: END_TURN (or BUILD/MORTGAGE)")
	}

	ps := e.state.PropertyAt(idx)

	if ps.Owner == Unowned {
		e.state.setPhase(PhaseLandedDecision)
		return ok(prefixEvent,
			fmt.Sprintf("%s landed on unowned buyable tile %d (price £%d).", p.Name, idx, d.Price()),
			"Action: BUY_PROPERTY or START_AUCTION")
	}

	if ps.Owner == e.state.CurrentPlayerIndex() {
		e.state.setPhase(PhaseManagement)
		return ok(prefixEvent, fmt.Sprintf("Landed on owned tile %d (no rent).", idx), "Action: END_TURN (or BUILD/MORTGAGE)")
	}

	if ps.Mortgaged {
		e.state.setPhase(PhaseManagement)
		return ok(prefixEvent, fmt.Sprintf("Landed on mortgaged tile %d (no rent).", idx), "Action: END_TURN (or BUILD/MORTGAGE)")
	}

	rent := e.computeRent(idx, d, ps)
	owner := e.state.Players()[ps.Owner]

	p.SubtractCash(rent)
	owner.AddCash(rent)

	e.updateDebtPhaseIfNeeded(p)
	if e.state.Phase() == PhaseMustResolveDebt {
		return ok(prefixEvent,
			fmt.Sprintf("%s landed on tile %d and owes rent £%d to %s.", p.Name, idx, rent, owner.Name),
			fmt.Sprintf("%s cash is now £%d -> MUST RESOLVE DEBT.", p.Name, p.Cash))
	}

	e.state.setPhase(PhaseManagement)
	return ok(prefixEvent,
		fmt.Sprintf("%s paid rent £%d to %s.", p.Name, rent, owner.Name),
		"Action: END_TURN (or BUILD/MORTGAGE)")
}

func (e *Engine) resolveDraw(d *Deck, label, prefixEvent string) Result {
	card := d.DrawTop()
	if card == nil {
		return ok(prefixEvent, fmt.Sprintf("%s deck is empty; nothing happens.", label))
	}
	e.lastDrawnCard = card

	events := []string{prefixEvent, fmt.Sprintf("%s: %s", label, card.Text)}
	events = append(events, card.Effect(e)...)
	return okList(events)
}

// ------------------ rent ------------------

func (e *Engine) computeRent(idx int, d deed.Deed, ps *PropertyState) int {
	switch v := d.(type) {
	case *deed.Street:
		b := ps.Buildings
		if b < 0 || b > 5 {
			b = 0
		}
		return v.Rents[b]
	case *deed.Railroad:
		owned := e.countOwnedRailroads(ps.Owner)
		if owned < 1 {
			owned = 1
		}
		if owned > 4 {
			owned = 4
		}
		return v.RentByCount[owned-1]
	case *deed.Utility:
		roll := e.state.LastRollTotal()
		if roll == Unowned {
			roll = 0
		}
		mult := v.MultiplierIfOne
		if e.countOwnedUtilities(ps.Owner) >= 2 {
			mult = v.MultiplierIfTwo
		}
		return roll * mult
	}
	return 0
}

func (e *Engine) countOwnedRailroads(ownerIdx int) int {
	n := 0
	for idx, d := range e.deeds {
		if _, isRR := d.(*deed.Railroad); isRR && e.state.PropertyAt(idx).Owner == ownerIdx {
			n++
		}
	}
	return n
}

func (e *Engine) countOwnedUtilities(ownerIdx int) int {
	n := 0
	for idx, d := range e.deeds {
		if _, isUtil := d.(*deed.Utility); isUtil && e.state.PropertyAt(idx).Owner == ownerIdx {
			n++
		}
	}
	return n
}

// ------------------ movement ------------------

func (e *Engine) movePlayerHandlingGo(p *Player, steps int) {
	raw := p.Position + steps
	passedGo := raw >= board.Size

	p.Position = raw % board.Size
	if passedGo {
		p.AddCash(e.cfg.GoSalary)
	}
}

// ------------------ debt / bankruptcy / win ------------------

func (e *Engine) updateDebtPhaseIfNeeded(p *Player) {
	if p == e.state.CurrentPlayer() && p.Cash < 0 {
		e.state.setPhase(PhaseMustResolveDebt)
	}
}

// canRaiseCash reports whether the current player has any legal
// cash-raising move left: an unmortgaged tile with no buildings to
// mortgage, or a street with buildings to sell.
func (e *Engine) canRaiseCash() bool {
	current := e.state.CurrentPlayerIndex()
	for idx, d := range e.deeds {
		ps := e.state.PropertyAt(idx)
		if ps.Owner != current {
			continue
		}
		if _, isStreet := d.(*deed.Street); isStreet && ps.Buildings > 0 {
			return true // can sell buildings
		}
		if !ps.Mortgaged && ps.Buildings == 0 {
			return true // can mortgage
		}
	}
	return false
}

// bankruptCurrentPlayer wipes the current player: all tiles return to
// the bank unowned and unmortgaged, buildings return to the supply, and
// held GOJF cards go back to the bottom of their decks.
func (e *Engine) bankruptCurrentPlayer() {
	p := e.state.CurrentPlayer()
	cur := e.state.CurrentPlayerIndex()
	p.Bankrupt = true

	for idx := range e.deeds {
		ps := e.state.PropertyAt(idx)
		if ps.Owner != cur {
			continue
		}
		ps.Owner = Unowned
		ps.Mortgaged = false

		switch {
		case ps.Buildings >= 1 && ps.Buildings <= 4:
			e.state.returnHousesToBank(ps.Buildings)
		case ps.Buildings == 5:
			e.state.returnHotelToBank()
			e.state.returnHousesToBank(4)
		}
		ps.Buildings = 0
	}

	for p.HasGetOutOfJailCard() {
		card := p.UseGetOutOfJailCard()
		if card.Type == CardChance {
			e.state.ChanceDeck().ReturnToBottom(card)
		} else {
			e.state.CommunityDeck().ReturnToBottom(card)
		}
	}

	if e.logger != nil {
		e.logger.Info("player bankrupt",
			zap.String("player", p.Name),
			zap.Int("player_index", cur),
		)
	}
}

// winnerIfAny finishes the game when exactly one non-bankrupt player
// remains, returning a log line either way.
func (e *Engine) winnerIfAny() string {
	alive := 0
	last := Unowned
	for i, p := range e.state.Players() {
		if !p.Bankrupt {
			alive++
			last = i
		}
	}
	if alive == 1 {
		e.state.setWinner(last)
		return fmt.Sprintf("WINNER: %s", e.state.Players()[last].Name)
	}
	return "No winner yet."
}

func (e *Engine) handleEndTurn() Result {
	p := e.state.CurrentPlayer()

	if p.Cash < 0 {
		e.state.setPhase(PhaseMustResolveDebt)
		if !e.canRaiseCash() {
			e.bankruptCurrentPlayer()
			winEvent := e.winnerIfAny()
			if e.state.Status() == StatusRunning {
				e.state.advanceTurnSkippingBankrupt()
			}
			return ok(fmt.Sprintf("%s cannot clear debt -> BANKRUPT.", p.Name), winEvent)
		}
		return fail(ViolationEconomic, "You cannot end your turn with cash below 0. Raise cash first (MORTGAGE/SELL).")
	}

	switch e.state.Phase() {
	case PhaseLandedDecision:
		return fail(ViolationPhase, "You must BUY_PROPERTY or START_AUCTION first.")
	case PhaseMustRoll, PhaseCanRollAgain:
		return fail(ViolationPhase, "You must roll (or finish the doubles sequence) before ending your turn.")
	case PhaseInJailDecision:
		return fail(ViolationPhase, "You must resolve your jail turn first (ROLL_DICE / USE_GET_OUT_OF_JAIL_FREE).")
	case PhaseAuctionActive:
		return fail(ViolationPhase, "You must finish the auction first.")
	case PhaseTradeResponse:
		return fail(ViolationPhase, "You must respond to the pending trade first.")
	}

	msg := fmt.Sprintf("%s ends turn (cash £%d).", p.Name, p.Cash)
	e.state.advanceTurnSkippingBankrupt()
	return ok(msg)
}
