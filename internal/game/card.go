package game

import "fmt"

// CardType identifies which deck a card belongs to.
type CardType int

const (
	CardChance CardType = iota
	CardCommunityChest
)

var cardTypeNames = map[CardType]string{
	CardChance:         "CHANCE",
	CardCommunityChest: "COMMUNITY_CHEST",
}

func (c CardType) String() string {
	if name, ok := cardTypeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CARD_TYPE_%d", int(c))
}

// Effect applies a card's rules to the engine and returns event strings
// for the log. Effects may move the player and recursively resolve the
// new landing, including drawing further cards.
type Effect func(e *Engine) []string

// Card is one chance or community chest card. Get-out-of-jail cards are
// extracted from their deck while a player holds them and returned to
// the bottom when used.
type Card struct {
	Type         CardType
	Text         string
	Effect       Effect
	GetOutOfJail bool
}
