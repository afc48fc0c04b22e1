// Package maze holds the authoritative logical world state: the room grid,
// every room's walls, enemies and items, and the game progress counters.
// Nothing in here knows about rendering; visual entities reference back into
// this state through (room sequence, enemy sequence) index pairs.
package maze

import "github.com/cobbes/jetstorm/geom"

// Playfield geometry. World coordinates have the origin at the bottom-left
// of the window with y increasing upward; the info bar occupies the top
// InfoBarH units, so the playable field spans [0,WindowW) x [0,FieldH).
const (
	WindowW  = 800.0
	WindowH  = 600.0
	InfoBarH = 100.0
	FieldH   = WindowH - InfoBarH
)

// Maze grid dimensions and the starting room.
const (
	Rows = 8
	Cols = 16

	StartRow = 0
	StartCol = 0
)

// Enemy tile sizes. Most enemies share the same square tile; a few types
// use their own sprite dimensions.
var (
	EnemyTile   = geom.Vec2{X: 50, Y: 50}
	Enemy07Size = geom.Vec2{X: 50, Y: 46}
	Enemy18Size = geom.Vec2{X: 100, Y: 100}
	Enemy19Size = geom.Vec2{X: 94, Y: 50}
)

// Item sprite size.
var ItemSize = geom.Vec2{X: 49, Y: 43}

// Palette sizes. The actual colors live in the presentation layer; the
// logical state only records indices drawn at load or spawn time.
const (
	NumEnemyColors = 23
	NumItemColors  = 7
)

// Direction is a coarse facing used by directional shooters and the player.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// Wall is one wall block of a room. The collider box is computed once at
// load time from the file-space position and the block's size.
type Wall struct {
	ID  int
	Box geom.Box
}

// FellowEnemy is the reduced enemy record a type-20 carrier transports.
// It shares the carrier's transform but keeps its own health and cooldown.
type FellowEnemy struct {
	Health      int
	Type        int
	Subtype     int
	ColorIndex  int
	Cooldown    int
	CooldownMax int
	Dir         Direction
}

// FellowItem is the item record a type-20 carrier transports.
type FellowItem struct {
	Type      int
	Collected bool
}

// Enemy is one logical enemy record. Static enemies live in a room's
// Enemies slice and are addressed by their load-order EnemySeq; enemies
// created at runtime by a spawner live in EnemiesFrom10 and must be looked
// up by matching EnemySeq, never by slice position.
type Enemy struct {
	Health     int
	RoomSeq    int
	EnemySeq   int
	Type       int
	Subtype    int
	ColorIndex int

	// First marks a record whose position is still in file space. It is
	// consumed exactly once on first visual spawn, which converts the
	// coordinates to world space and writes them back.
	First bool

	Pos geom.Vec2
	Vel geom.Vec2

	Cooldown    int
	CooldownMax int
	Dir         Direction

	IsFrom10 bool

	// At most one of Fellow and FellowItem is set, and only for type 20.
	Fellow     *FellowEnemy
	FellowItem *FellowItem
}

// Size returns the enemy's tile size.
func (e *Enemy) Size() geom.Vec2 {
	return EnemySizeOf(e.Type)
}

// EnemySizeOf returns the tile size for an enemy type.
func EnemySizeOf(enemyType int) geom.Vec2 {
	switch enemyType {
	case 7:
		return Enemy07Size
	case 18:
		return Enemy18Size
	case 19:
		return Enemy19Size
	default:
		return EnemyTile
	}
}

// Item is one collectible. Once collected it never respawns for the rest
// of the game.
type Item struct {
	Pos       geom.Vec2
	Type      int
	Collected bool
	RoomSeq   int
	ItemSeq   int

	// First works like Enemy.First: the position is file-space until the
	// first visual spawn converts it.
	First bool
}

// Room is one cell of the maze grid.
type Room struct {
	Walls         []Wall
	Enemies       []Enemy
	EnemiesFrom10 []Enemy
	From10Seq     int
	Items         []Item
}

// Clear empties the room.
func (r *Room) Clear() {
	r.Walls = nil
	r.Enemies = nil
	r.EnemiesFrom10 = nil
	r.From10Seq = 0
	r.Items = nil
}

// WallBoxes returns the collider boxes of all walls in the room.
func (r *Room) WallBoxes() []geom.Box {
	boxes := make([]geom.Box, len(r.Walls))
	for i, w := range r.Walls {
		boxes[i] = w.Box
	}
	return boxes
}

// FindFrom10 returns the dynamically spawned enemy with the given sequence
// number, or nil if it was already removed. A nil result is a benign race:
// another system removed the enemy earlier in the same tick, and the caller
// is expected to skip it.
func (r *Room) FindFrom10(seq int) *Enemy {
	for i := range r.EnemiesFrom10 {
		if r.EnemiesFrom10[i].EnemySeq == seq {
			return &r.EnemiesFrom10[i]
		}
	}
	return nil
}

// RemoveFrom10 removes the dynamically spawned enemy with the given
// sequence number. It reports whether an entry was removed.
func (r *Room) RemoveFrom10(seq int) bool {
	for i := range r.EnemiesFrom10 {
		if r.EnemiesFrom10[i].EnemySeq == seq {
			r.EnemiesFrom10 = append(r.EnemiesFrom10[:i], r.EnemiesFrom10[i+1:]...)
			return true
		}
	}
	return false
}

// Maze is the whole world: a fixed grid of rooms plus the game progress
// counters. It is created once at startup, populated by Load when gameplay
// begins, and cleared (never destroyed) when a new game starts.
type Maze struct {
	Loaded      bool
	Rooms       []Room
	CurrentRoom int
	Score       int
	Bases       int
	BasesTotal  int
}

// New creates an empty, unloaded maze.
func New() *Maze {
	return &Maze{
		Rooms:       make([]Room, Rows*Cols),
		CurrentRoom: RoomSeq(StartRow, StartCol),
	}
}

// RoomSeq flattens a (row, col) grid address into a room sequence number.
func RoomSeq(row, col int) int {
	return row*Cols + col
}

// Room returns the room at the given grid address.
func (m *Maze) Room(row, col int) *Room {
	return &m.Rooms[RoomSeq(row, col)]
}

// Current returns the room the player is in.
func (m *Maze) Current() *Room {
	return &m.Rooms[m.CurrentRoom]
}

// Clear empties every room and resets the progress counters, returning the
// maze to its pre-load state for a new game.
func (m *Maze) Clear() {
	for i := range m.Rooms {
		m.Rooms[i].Clear()
	}
	m.CurrentRoom = RoomSeq(StartRow, StartCol)
	m.Score = 0
	m.Bases = 0
	m.BasesTotal = 0
	m.Loaded = false
}

// ResetCooldowns zeroes the shooting cooldowns of a room's static enemies.
// Spawners (type 10) keep their cooldown so re-entering a room does not
// trigger an immediate spawn wave.
func (m *Maze) ResetCooldowns(roomSeq int) {
	room := &m.Rooms[roomSeq]
	for i := range room.Enemies {
		if room.Enemies[i].Type != 10 {
			room.Enemies[i].Cooldown = 0
		}
	}
}
