package game

// ActionType names every move a player can submit to the engine.
type ActionType string

const (
	ActionRollDice           ActionType = "ROLL_DICE"
	ActionBuyProperty        ActionType = "BUY_PROPERTY"
	ActionStartAuction       ActionType = "START_AUCTION"
	ActionAuctionBid         ActionType = "AUCTION_BID"
	ActionAuctionPass        ActionType = "AUCTION_PASS"
	ActionBuildHouse         ActionType = "BUILD_HOUSE"
	ActionBuildHotel         ActionType = "BUILD_HOTEL"
	ActionSellHouse          ActionType = "SELL_HOUSE"
	ActionSellHotel          ActionType = "SELL_HOTEL"
	ActionMortgage           ActionType = "MORTGAGE"
	ActionUnmortgage         ActionType = "UNMORTGAGE"
	ActionUseGetOutOfJail    ActionType = "USE_GET_OUT_OF_JAIL_FREE"
	ActionEndTurn            ActionType = "END_TURN"
	ActionProposeTrade       ActionType = "PROPOSE_TRADE"
	ActionCounterTrade       ActionType = "COUNTER_TRADE"
	ActionAcceptTrade        ActionType = "ACCEPT_TRADE"
	ActionRejectTrade        ActionType = "REJECT_TRADE"
	ActionCancelTrade        ActionType = "CANCEL_TRADE"
)

// Action is one player move. TileIndex and Amount are Unowned/zero when
// the action type does not use them; Trade carries the offer payload for
// PROPOSE_TRADE and COUNTER_TRADE.
type Action struct {
	Type      ActionType
	TileIndex int
	Amount    int
	Trade     *TradeOffer
}

// Simple builds an action that needs no arguments.
func Simple(t ActionType) Action {
	return Action{Type: t, TileIndex: Unowned}
}

// OnTile builds an action targeting one tile.
func OnTile(t ActionType, tileIndex int) Action {
	return Action{Type: t, TileIndex: tileIndex}
}

// Bid builds an auction bid.
func Bid(amount int) Action {
	return Action{Type: ActionAuctionBid, TileIndex: Unowned, Amount: amount}
}

// WithTrade builds a trade proposal or counter.
func WithTrade(t ActionType, offer *TradeOffer) Action {
	return Action{Type: t, TileIndex: Unowned, Trade: offer}
}

// ViolationKind categorizes why an action was rejected.
type ViolationKind string

const (
	ViolationNone      ViolationKind = ""
	ViolationPhase     ViolationKind = "PHASE_VIOLATION"
	ViolationOwnership ViolationKind = "OWNERSHIP_VIOLATION"
	ViolationEconomic  ViolationKind = "ECONOMIC_VIOLATION"
	ViolationRule      ViolationKind = "RULE_VIOLATION"
	ViolationArgument  ViolationKind = "ARGUMENT_VIOLATION"
	ViolationFatal     ViolationKind = "FATAL_STATE"
)

// Result reports the outcome of one engine call. Failures carry a
// violation kind and a single reason; successes carry the event log.
// A failed action never mutates state.
type Result struct {
	OK     bool
	Kind   ViolationKind
	Events []string
}

func ok(events ...string) Result {
	filtered := make([]string, 0, len(events))
	for _, ev := range events {
		if ev != "" {
			filtered = append(filtered, ev)
		}
	}
	return Result{OK: true, Events: filtered}
}

func okList(events []string) Result {
	return Result{OK: true, Events: events}
}

func fail(kind ViolationKind, reason string) Result {
	return Result{OK: false, Kind: kind, Events: []string{reason}}
}
