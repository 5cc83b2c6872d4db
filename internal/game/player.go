package game

import "github.com/aidanfhague/Habere-Dunelm/internal/board"

// Player is the mutable per-player record. Only the engine mutates it;
// cash may be negative only while the owner is resolving debt.
type Player struct {
	Name               string
	Cash               int
	Position           int
	InJail             bool
	JailTurnsRemaining int
	Bankrupt           bool

	jailCards []*Card
}

// NewPlayer creates a player at GO with the configured starting cash.
func NewPlayer(name string, startingCash int) *Player {
	return &Player{Name: name, Cash: startingCash}
}

func (p *Player) AddCash(amount int)      { p.Cash += amount }
func (p *Player) SubtractCash(amount int) { p.Cash -= amount }

// SendToJail moves the player to the jail square and arms the jail
// attempt counter.
func (p *Player) SendToJail(maxTurns int) {
	p.InJail = true
	p.JailTurnsRemaining = maxTurns
	p.Position = board.JailIndex
}

func (p *Player) ReleaseFromJail() {
	p.InJail = false
	p.JailTurnsRemaining = 0
}

func (p *Player) DecrementJailTurn() {
	if p.JailTurnsRemaining > 0 {
		p.JailTurnsRemaining--
	}
}

// HasGetOutOfJailCard reports whether the player holds any GOJF card.
func (p *Player) HasGetOutOfJailCard() bool { return len(p.jailCards) > 0 }

// AddGetOutOfJailCard stores a GOJF card on the player while it is out
// of its deck.
func (p *Player) AddGetOutOfJailCard(card *Card) {
	p.jailCards = append(p.jailCards, card)
}

// UseGetOutOfJailCard removes and returns the oldest held GOJF card,
// or nil if none is held.
func (p *Player) UseGetOutOfJailCard() *Card {
	if len(p.jailCards) == 0 {
		return nil
	}
	card := p.jailCards[0]
	p.jailCards = p.jailCards[1:]
	return card
}

// CountGetOutOfJail counts held GOJF cards belonging to one deck type.
func (p *Player) CountGetOutOfJail(t CardType) int {
	n := 0
	for _, c := range p.jailCards {
		if c.Type == t {
			n++
		}
	}
	return n
}

// RemoveOneGetOutOfJail removes one held GOJF card of the given deck
// type, or returns nil if the player holds none of that type.
func (p *Player) RemoveOneGetOutOfJail(t CardType) *Card {
	for i, c := range p.jailCards {
		if c.Type == t {
			p.jailCards = append(p.jailCards[:i], p.jailCards[i+1:]...)
			return c
		}
	}
	return nil
}
