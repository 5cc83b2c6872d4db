package game

import (
	"fmt"
	"sort"
)

// MortgageTransferChoice is what the recipient of a mortgaged tile does
// with the mortgage: keep paying interest later, or settle it now.
type MortgageTransferChoice int

const (
	KeepMortgaged MortgageTransferChoice = iota
	PayOffNow
)

var mortgageChoiceNames = map[MortgageTransferChoice]string{
	KeepMortgaged: "KEEP_MORTGAGED",
	PayOffNow:     "PAY_OFF_NOW",
}

func (c MortgageTransferChoice) String() string {
	if name, ok := mortgageChoiceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("MORTGAGE_CHOICE_%d", int(c))
}

// TradeOffer is a multilateral exchange between two players: tiles,
// cash, and get-out-of-jail cards in both directions, plus the
// recipient's choice for every mortgaged tile received.
type TradeOffer struct {
	FromPlayer int
	ToPlayer   int

	TilesAToB map[int]bool
	TilesBToA map[int]bool

	CashAToB int
	CashBToA int

	ChanceGojfAToB    int
	CommunityGojfAToB int
	ChanceGojfBToA    int
	CommunityGojfBToA int

	// Keyed by tile index; missing entries default to KeepMortgaged.
	MortgageChoiceToB map[int]MortgageTransferChoice
	MortgageChoiceToA map[int]MortgageTransferChoice
}

// SimpleCashForTile builds the common "I pay you cash for one tile"
// offer with no cards and no mortgage choices.
func SimpleCashForTile(from, to, tileFromTo, cash int) *TradeOffer {
	return &TradeOffer{
		FromPlayer: from,
		ToPlayer:   to,
		TilesAToB:  map[int]bool{},
		TilesBToA:  map[int]bool{tileFromTo: true},
		CashAToB:   cash,
	}
}

// ChoiceForTileToB returns the mortgage choice for a tile moving A->B.
func (o *TradeOffer) ChoiceForTileToB(tile int) MortgageTransferChoice {
	if c, ok := o.MortgageChoiceToB[tile]; ok {
		return c
	}
	return KeepMortgaged
}

// ChoiceForTileToA returns the mortgage choice for a tile moving B->A.
func (o *TradeOffer) ChoiceForTileToA(tile int) MortgageTransferChoice {
	if c, ok := o.MortgageChoiceToA[tile]; ok {
		return c
	}
	return KeepMortgaged
}

// ExchangesAnything reports whether the offer moves at least one asset.
func (o *TradeOffer) ExchangesAnything() bool {
	if len(o.TilesAToB) > 0 || len(o.TilesBToA) > 0 {
		return true
	}
	if o.CashAToB > 0 || o.CashBToA > 0 {
		return true
	}
	return o.ChanceGojfAToB+o.CommunityGojfAToB+o.ChanceGojfBToA+o.CommunityGojfBToA > 0
}

// sortedTiles flattens a tile set in deterministic order so execution
// and event logs are replayable.
func sortedTiles(set map[int]bool) []int {
	tiles := make([]int, 0, len(set))
	for t := range set {
		tiles = append(tiles, t)
	}
	sort.Ints(tiles)
	return tiles
}

func (o *TradeOffer) String() string {
	return fmt.Sprintf("TradeOffer{A=%d, B=%d, A->B tiles=%v, B->A tiles=%v, A->B cash=%d, B->A cash=%d, A->B GOJF(ch=%d,cc=%d), B->A GOJF(ch=%d,cc=%d)}",
		o.FromPlayer, o.ToPlayer,
		sortedTiles(o.TilesAToB), sortedTiles(o.TilesBToA),
		o.CashAToB, o.CashBToA,
		o.ChanceGojfAToB, o.CommunityGojfAToB,
		o.ChanceGojfBToA, o.CommunityGojfBToA)
}
