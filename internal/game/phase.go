package game

import "fmt"

// Phase is the position of the current player's turn in the turn state
// machine. Every action is validated against it before any mutation.
type Phase int

const (
	PhaseStartTurn Phase = iota
	PhaseInJailDecision
	PhaseMustRoll
	PhaseCanRollAgain
	PhaseLandedDecision
	PhaseAuctionActive
	PhaseManagement
	PhaseMustResolveDebt
	PhaseTradeResponse
	PhaseTurnEnd
)

var phaseNames = map[Phase]string{
	PhaseStartTurn:       "START_TURN",
	PhaseInJailDecision:  "IN_JAIL_DECISION",
	PhaseMustRoll:        "MUST_ROLL",
	PhaseCanRollAgain:    "CAN_ROLL_AGAIN",
	PhaseLandedDecision:  "LANDED_DECISION",
	PhaseAuctionActive:   "AUCTION_ACTIVE",
	PhaseManagement:      "MANAGEMENT",
	PhaseMustResolveDebt: "MUST_RESOLVE_DEBT",
	PhaseTradeResponse:   "TRADE_RESPONSE",
	PhaseTurnEnd:         "TURN_END",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// Status reports whether the game is still running.
type Status int

const (
	StatusRunning Status = iota
	StatusFinished
)

var statusNames = map[Status]string{
	StatusRunning:  "RUNNING",
	StatusFinished: "FINISHED",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("STATUS_%d", int(s))
}
