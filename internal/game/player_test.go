package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aidanfhague/Habere-Dunelm/internal/board"
)

func TestNewPlayerStartsAtGo(t *testing.T) {
	p := NewPlayer("Alice", 1500)
	assert.Equal(t, 0, p.Position)
	assert.Equal(t, 1500, p.Cash)
	assert.False(t, p.InJail)
	assert.False(t, p.Bankrupt)
}

func TestSendToJailAndRelease(t *testing.T) {
	p := NewPlayer("Alice", 1500)

	p.SendToJail(3)
	assert.True(t, p.InJail)
	assert.Equal(t, board.JailIndex, p.Position)
	assert.Equal(t, 3, p.JailTurnsRemaining)

	p.DecrementJailTurn()
	assert.Equal(t, 2, p.JailTurnsRemaining)

	p.ReleaseFromJail()
	assert.False(t, p.InJail)
	assert.Equal(t, 0, p.JailTurnsRemaining)
}

func TestGetOutOfJailCardBookkeeping(t *testing.T) {
	p := NewPlayer("Alice", 1500)
	assert.False(t, p.HasGetOutOfJailCard())
	assert.Nil(t, p.UseGetOutOfJailCard())

	chanceCard := &Card{Type: CardChance, GetOutOfJail: true}
	communityCard := &Card{Type: CardCommunityChest, GetOutOfJail: true}

	p.AddGetOutOfJailCard(chanceCard)
	p.AddGetOutOfJailCard(communityCard)

	assert.Equal(t, 1, p.CountGetOutOfJail(CardChance))
	assert.Equal(t, 1, p.CountGetOutOfJail(CardCommunityChest))

	got := p.RemoveOneGetOutOfJail(CardCommunityChest)
	assert.Same(t, communityCard, got)
	assert.Equal(t, 0, p.CountGetOutOfJail(CardCommunityChest))
	assert.Nil(t, p.RemoveOneGetOutOfJail(CardCommunityChest))

	assert.Same(t, chanceCard, p.UseGetOutOfJailCard())
	assert.False(t, p.HasGetOutOfJailCard())
}
