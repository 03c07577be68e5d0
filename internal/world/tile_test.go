package world

import "testing"

func TestNewTileSightMirrorsBlocked(t *testing.T) {
	if tile := NewTile(true); !tile.Blocked || !tile.BlockSight {
		t.Errorf("NewTile(true) = %+v", tile)
	}
	if tile := NewTile(false); tile.Blocked || tile.BlockSight {
		t.Errorf("NewTile(false) = %+v", tile)
	}
}

func TestNewTileWithSight(t *testing.T) {
	tile := NewTileWithSight(false, true)
	if tile.Blocked || !tile.BlockSight {
		t.Errorf("NewTileWithSight(false, true) = %+v", tile)
	}
	if !tile.IsPassable() {
		t.Error("unblocked tile should be passable")
	}
}

func TestTileCarve(t *testing.T) {
	tile := Wall()
	tile.Carve()
	if tile != Floor() {
		t.Errorf("carved wall = %+v, want floor", tile)
	}
}
