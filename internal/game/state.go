package game

import (
	"fmt"

	"github.com/aidanfhague/Habere-Dunelm/internal/board"
)

// Unowned marks a property with no owner and the "no value" sentinel for
// roll/landing trackers.
const Unowned = -1

// Bank building supply limits.
const (
	TotalHouses = 32
	TotalHotels = 12
)

// PropertyState is the mutable per-tile record. Buildings run 0..5;
// 5 denotes a hotel. Mortgaged tiles never carry buildings.
type PropertyState struct {
	Owner     int // player index, Unowned if nobody holds the deed
	Mortgaged bool
	Buildings int
}

// Houses returns the house count, treating a hotel as four houses plus
// the hotel itself.
func (ps *PropertyState) Houses() int {
	if ps.Buildings > 4 {
		return 4
	}
	return ps.Buildings
}

func (ps *PropertyState) HasHotel() bool { return ps.Buildings == 5 }

// auctionState tracks an in-flight auction for one tile.
type auctionState struct {
	inProgress    bool
	tileIndex     int
	highBid       int
	highBidder    int // Unowned if no bid yet
	active        []bool
	currentBidder int
}

// tradeState tracks the pending trade and how to restore the turn once
// the receiver responds.
type tradeState struct {
	pending          *TradeOffer
	returnPlayer     int // Unowned when no response in progress
	phaseBeforeTrade Phase
}

// State aggregates everything the engine owns: board, players, property
// registry, decks, bank supply, phase machine, auction and trade
// sub-state. External code reads it; only the engine writes it.
type State struct {
	board   *board.Board
	players []*Player

	currentPlayer   int
	phase           Phase
	doublesThisTurn int
	lastRollTotal   int // Unowned before the first roll
	landedTile      int // Unowned before the first landing

	properties [board.Size]PropertyState

	housesRemaining int
	hotelsRemaining int

	chanceDeck    *Deck
	communityDeck *Deck

	status Status
	winner int // Unowned until the game finishes

	auction auctionState
	trade   tradeState
}

// NewState builds the initial game state for at least two players.
func NewState(b *board.Board, players []*Player) (*State, error) {
	if len(players) < 2 {
		return nil, fmt.Errorf("need at least 2 players, got %d", len(players))
	}
	s := &State{
		board:           b,
		players:         players,
		phase:           PhaseStartTurn,
		lastRollTotal:   Unowned,
		landedTile:      Unowned,
		housesRemaining: TotalHouses,
		hotelsRemaining: TotalHotels,
		winner:          Unowned,
	}
	for i := range s.properties {
		s.properties[i].Owner = Unowned
	}
	s.auction.highBidder = Unowned
	s.trade.returnPlayer = Unowned
	return s, nil
}

func (s *State) Board() *board.Board { return s.board }
func (s *State) Players() []*Player  { return s.players }

func (s *State) CurrentPlayer() *Player  { return s.players[s.currentPlayer] }
func (s *State) CurrentPlayerIndex() int { return s.currentPlayer }

func (s *State) Phase() Phase         { return s.phase }
func (s *State) setPhase(p Phase)     { s.phase = p }
func (s *State) DoublesThisTurn() int { return s.doublesThisTurn }

func (s *State) LastRollTotal() int   { return s.lastRollTotal }
func (s *State) LandedTileIndex() int { return s.landedTile }

// PropertyAt returns the mutable property record for a tile.
func (s *State) PropertyAt(tileIndex int) *PropertyState {
	return &s.properties[tileIndex]
}

func (s *State) Status() Status   { return s.status }
func (s *State) WinnerIndex() int { return s.winner }

func (s *State) setWinner(idx int) {
	s.status = StatusFinished
	s.winner = idx
}

func (s *State) HousesRemaining() int { return s.housesRemaining }
func (s *State) HotelsRemaining() int { return s.hotelsRemaining }

func (s *State) takeHouseFromBank() bool {
	if s.housesRemaining <= 0 {
		return false
	}
	s.housesRemaining--
	return true
}

func (s *State) takeHousesFromBank(n int) { s.housesRemaining -= n }

func (s *State) returnHousesToBank(n int) {
	s.housesRemaining += n
	if s.housesRemaining > TotalHouses {
		s.housesRemaining = TotalHouses
	}
}

func (s *State) takeHotelFromBank() bool {
	if s.hotelsRemaining <= 0 {
		return false
	}
	s.hotelsRemaining--
	return true
}

func (s *State) returnHotelToBank() {
	s.hotelsRemaining++
	if s.hotelsRemaining > TotalHotels {
		s.hotelsRemaining = TotalHotels
	}
}

func (s *State) ChanceDeck() *Deck    { return s.chanceDeck }
func (s *State) CommunityDeck() *Deck { return s.communityDeck }

// SetDecks installs the shuffled card decks. Called once at setup.
func (s *State) SetDecks(chance, community *Deck) {
	s.chanceDeck = chance
	s.communityDeck = community
}

// advanceTurnSkippingBankrupt rotates to the next non-bankrupt player
// and resets the per-turn trackers.
func (s *State) advanceTurnSkippingBankrupt() {
	attempts := 0
	for {
		s.currentPlayer = (s.currentPlayer + 1) % len(s.players)
		attempts++
		if !s.players[s.currentPlayer].Bankrupt || attempts > len(s.players) {
			break
		}
	}
	s.phase = PhaseStartTurn
	s.doublesThisTurn = 0
	s.lastRollTotal = Unowned
	s.landedTile = Unowned
}

// ------------------ auction sub-state ------------------

func (s *State) AuctionInProgress() bool   { return s.auction.inProgress }
func (s *State) AuctionTileIndex() int     { return s.auction.tileIndex }
func (s *State) AuctionHighBid() int       { return s.auction.highBid }
func (s *State) AuctionHighBidder() int    { return s.auction.highBidder }
func (s *State) AuctionCurrentBidder() int { return s.auction.currentBidder }

func (s *State) startAuction(tileIndex, startingBidder int) {
	s.auction.inProgress = true
	s.auction.tileIndex = tileIndex
	s.auction.highBid = 0
	s.auction.highBidder = Unowned
	s.auction.active = make([]bool, len(s.players))
	for i, p := range s.players {
		s.auction.active[i] = !p.Bankrupt
	}
	s.auction.currentBidder = startingBidder
}

func (s *State) auctionBidderActive(idx int) bool {
	return s.auction.active != nil && s.auction.active[idx]
}

func (s *State) auctionPass(idx int) {
	if s.auction.active != nil {
		s.auction.active[idx] = false
	}
}

func (s *State) auctionActiveCount() int {
	n := 0
	for _, a := range s.auction.active {
		if a {
			n++
		}
	}
	return n
}

// advanceToNextActiveBidder cycles to the next bidder still in the
// auction. Returns Unowned if nobody is left.
func (s *State) advanceToNextActiveBidder() int {
	if s.auction.active == nil {
		return Unowned
	}
	n := len(s.players)
	for step := 1; step <= n; step++ {
		idx := (s.auction.currentBidder + step) % n
		if s.auction.active[idx] {
			s.auction.currentBidder = idx
			return idx
		}
	}
	return Unowned
}

func (s *State) setAuctionHighBid(bid, bidder int) {
	s.auction.highBid = bid
	s.auction.highBidder = bidder
}

func (s *State) endAuction() {
	s.auction = auctionState{highBidder: Unowned}
}

// ------------------ trade sub-state ------------------

func (s *State) PendingTrade() *TradeOffer { return s.trade.pending }
func (s *State) HasPendingTrade() bool     { return s.trade.pending != nil }

func (s *State) setPendingTrade(offer *TradeOffer) { s.trade.pending = offer }
func (s *State) clearPendingTrade()                { s.trade.pending = nil }

// beginTradeResponse hands control to the receiver and remembers where
// to restore the turn afterwards.
func (s *State) beginTradeResponse(proposer, receiver int) {
	s.trade.returnPlayer = proposer
	s.trade.phaseBeforeTrade = s.phase
	s.currentPlayer = receiver
	s.phase = PhaseTradeResponse
}

// passTradeControl hands the pending response to the other party of a
// counter-offer without disturbing the saved turn owner and phase.
func (s *State) passTradeControl(responder int) {
	s.currentPlayer = responder
	s.phase = PhaseTradeResponse
}

// endTradeResponse restores control and phase to the turn owner.
func (s *State) endTradeResponse() {
	if s.trade.returnPlayer == Unowned {
		return
	}
	s.currentPlayer = s.trade.returnPlayer
	s.phase = s.trade.phaseBeforeTrade
	s.trade.returnPlayer = Unowned
	s.trade.phaseBeforeTrade = PhaseManagement
}
