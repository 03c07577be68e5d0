package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/firstrl/internal/logger"
	"github.com/samdwyer/firstrl/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45

	// Default room placement parameters
	DefaultRoomMinSize = 6
	DefaultRoomMaxSize = 10
	DefaultMaxRooms    = 30
)

// ErrInvalidOptions is returned when generation options cannot fit the map.
var ErrInvalidOptions = errors.New("invalid generation options")

// GenOptions controls room placement.
type GenOptions struct {
	MaxRooms    int // Placement attempts; rejected rooms still count
	RoomMinSize int
	RoomMaxSize int
}

// DefaultGenOptions returns the standard room placement parameters.
func DefaultGenOptions() GenOptions {
	return GenOptions{
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
	}
}

// Validate checks that rooms of the requested sizes fit in a width x height map.
func (o GenOptions) Validate(width, height int) error {
	switch {
	case o.MaxRooms < 0:
		return fmt.Errorf("%w: max rooms %d is negative", ErrInvalidOptions, o.MaxRooms)
	case o.RoomMinSize <= 0:
		return fmt.Errorf("%w: room min size %d must be positive", ErrInvalidOptions, o.RoomMinSize)
	case o.RoomMinSize > o.RoomMaxSize:
		return fmt.Errorf("%w: room min size %d exceeds max size %d", ErrInvalidOptions, o.RoomMinSize, o.RoomMaxSize)
	case o.RoomMaxSize+1 > width || o.RoomMaxSize+1 > height:
		return fmt.Errorf("%w: room max size %d does not fit a %dx%d map", ErrInvalidOptions, o.RoomMaxSize, width, height)
	}
	return nil
}

// Dungeon represents the game map.
type Dungeon struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Rect
	rng    *rand.Rand
}

// NewDungeon creates a new dungeon filled with walls.
// A nil rng gets a time-seeded source.
func NewDungeon(width, height int, rng *rand.Rand) *Dungeon {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Wall()
		}
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Rect, 0),
		rng:    rng,
	}
}

// Generate places up to opts.MaxRooms non-overlapping rooms and connects each
// new room to the previous one with an L-shaped tunnel.
func (d *Dungeon) Generate(ctx context.Context, opts GenOptions) error {
	if err := opts.Validate(d.Width, d.Height); err != nil {
		return err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	log := logger.Log.WithField("component", "dungeon")
	rejected := 0

	for attempt := 0; attempt < opts.MaxRooms; attempt++ {
		w := d.randInt(opts.RoomMinSize, opts.RoomMaxSize)
		h := d.randInt(opts.RoomMinSize, opts.RoomMaxSize)

		// Keep the far edge inside the map
		x := d.randInt(0, d.Width-w-1)
		y := d.randInt(0, d.Height-h-1)

		room := NewRect(x, y, w, h)
		if d.overlapsAny(room) {
			rejected++
			continue
		}

		d.carveRoom(room)

		if n := len(d.Rooms); n > 0 {
			d.carveCorridor(d.Rooms[n-1], room)
		}
		d.Rooms = append(d.Rooms, room)

		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"room":    len(d.Rooms) - 1,
			"x1":      room.X1,
			"y1":      room.Y1,
			"x2":      room.X2,
			"y2":      room.Y2,
		}).Debug("Room placed.")
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.rejected_rooms", rejected),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	log.WithFields(logrus.Fields{
		"rooms":    len(d.Rooms),
		"rejected": rejected,
	}).Info("Dungeon generated.")

	return nil
}

// StartPosition returns the center of the first room.
func (d *Dungeon) StartPosition() (x, y int, ok bool) {
	if len(d.Rooms) == 0 {
		return 0, 0, false
	}
	x, y = d.Rooms[0].Center()
	return x, y, true
}

// InBounds returns true if the position lies on the map.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// IsBlocked returns true if the position cannot be walked on.
// Positions off the map are blocked.
func (d *Dungeon) IsBlocked(x, y int) bool {
	if !d.InBounds(x, y) {
		return true
	}
	return d.Tiles[y][x].Blocked
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	return !d.IsBlocked(x, y)
}

// BlocksSight returns true if the position blocks sight.
// Positions off the map block sight.
func (d *Dungeon) BlocksSight(x, y int) bool {
	if !d.InBounds(x, y) {
		return true
	}
	return d.Tiles[y][x].BlockSight
}

// GetTile returns the tile at the given position.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.InBounds(x, y) {
		return Wall()
	}
	return d.Tiles[y][x]
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// randInt returns a uniform integer in [lo, hi].
func (d *Dungeon) randInt(lo, hi int) int {
	return lo + d.rng.Intn(hi-lo+1)
}

// overlapsAny reports whether room intersects an already placed room.
func (d *Dungeon) overlapsAny(room Rect) bool {
	for _, other := range d.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom opens the interior of the room, leaving its border as wall.
func (d *Dungeon) carveRoom(room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			d.carve(x, y)
		}
	}
}

// carveCorridor connects the centers of two rooms with an L-shaped tunnel.
func (d *Dungeon) carveCorridor(prev, next Rect) {
	x1, y1 := prev.Center()
	x2, y2 := next.Center()

	if d.randInt(0, 1) == 1 {
		// Horizontal first, then vertical
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.carve(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.carve(x, y)
	}
}

func (d *Dungeon) carve(x, y int) {
	if d.InBounds(x, y) {
		d.Tiles[y][x].Carve()
	}
}
