package board

import "fmt"

// TileType classifies a board square for movement and landing resolution.
type TileType int

const (
	TypeGo TileType = iota
	TypeProperty
	TypeRailroad
	TypeUtility
	TypeTax
	TypeChance
	TypeCommunityChest
	TypeJail
	TypeFreeParking
	TypeGoToJail
	TypeOther
)

var tileTypeNames = map[TileType]string{
	TypeGo:             "GO",
	TypeProperty:       "PROPERTY",
	TypeRailroad:       "RAILROAD",
	TypeUtility:        "UTILITY",
	TypeTax:            "TAX",
	TypeChance:         "CHANCE",
	TypeCommunityChest: "COMMUNITY_CHEST",
	TypeJail:           "JAIL",
	TypeFreeParking:    "FREE_PARKING",
	TypeGoToJail:       "GO_TO_JAIL",
	TypeOther:          "OTHER",
}

func (t TileType) String() string {
	if name, ok := tileTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TILE_TYPE_%d", int(t))
}

// Tile is one immutable board square.
type Tile struct {
	Index int
	Name  string
	Type  TileType
}
