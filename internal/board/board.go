package board

import "fmt"

// Size is the number of squares on the board.
const Size = 40

// Board holds the fixed 40-tile layout.
type Board struct {
	tiles []Tile
}

// New builds a board from exactly Size tiles ordered by index.
func New(tiles []Tile) (*Board, error) {
	if len(tiles) != Size {
		return nil, fmt.Errorf("board must have exactly %d tiles, got %d", Size, len(tiles))
	}
	copied := make([]Tile, Size)
	copy(copied, tiles)
	return &Board{tiles: copied}, nil
}

// TileAt returns the tile at a position, wrapping modulo the board size.
func (b *Board) TileAt(position int) Tile {
	idx := ((position % Size) + Size) % Size
	return b.tiles[idx]
}

// Tiles returns the full layout in index order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, Size)
	copy(out, b.tiles)
	return out
}
