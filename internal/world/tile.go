// Package world provides dungeon generation and map management.
package world

// Tile represents a single map tile.
type Tile struct {
	Blocked    bool // Prevents movement onto the tile
	BlockSight bool // Drawn as wall, blocks sight
}

// NewTile creates a tile whose sight blocking mirrors its movement blocking.
func NewTile(blocked bool) Tile {
	return Tile{Blocked: blocked, BlockSight: blocked}
}

// NewTileWithSight creates a tile with independent blocking flags.
func NewTileWithSight(blocked, blockSight bool) Tile {
	return Tile{Blocked: blocked, BlockSight: blockSight}
}

// Wall returns a tile that blocks movement and sight.
func Wall() Tile {
	return NewTile(true)
}

// Floor returns an open tile.
func Floor() Tile {
	return NewTile(false)
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// Carve opens the tile for movement and sight.
func (t *Tile) Carve() {
	t.Blocked = false
	t.BlockSight = false
}
