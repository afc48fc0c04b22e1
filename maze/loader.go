package maze

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/geom"
)

// Load populates the maze from the room definition files under dataDir.
// Every room (row, col) is described by three plain-text files:
//
//	rooms/room<row><col>.txt    walls
//	enemies/enemy<row><col>.txt enemies
//	items/item<row><col>.txt    items
//
// A missing or malformed file is a fatal error; the data is a build-time
// asset and play cannot start without it. Load is a no-op on an already
// loaded maze.
func (m *Maze) Load(dataDir string, d *dice.Roller) error {
	if m.Loaded {
		return nil
	}

	bases := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			seq := RoomSeq(row, col)
			n, err := loadRoom(dataDir, row, col, seq, &m.Rooms[seq], d)
			if err != nil {
				return fmt.Errorf("load room %d,%d: %w", row, col, err)
			}
			bases += n
		}
	}

	m.Bases = bases
	m.BasesTotal = bases
	m.Loaded = true
	return nil
}

// loadRoom parses one room's file triplet, returning the number of base
// enemies (type 0) it contains, counting bases nested as carrier fellows.
func loadRoom(dataDir string, row, col, seq int, room *Room, d *dice.Roller) (int, error) {
	room.Clear()

	path := filepath.Join(dataDir, "rooms", fmt.Sprintf("room%d%d.txt", row, col))
	if err := loadWalls(path, room); err != nil {
		return 0, err
	}

	path = filepath.Join(dataDir, "enemies", fmt.Sprintf("enemy%d%d.txt", row, col))
	bases, err := loadEnemies(path, room, seq, d)
	if err != nil {
		return 0, err
	}

	path = filepath.Join(dataDir, "items", fmt.Sprintf("item%d%d.txt", row, col))
	if err := loadItems(path, room, seq); err != nil {
		return 0, err
	}

	return bases, nil
}

func loadWalls(path string, room *Room) error {
	rec, err := openRecords(path)
	if err != nil {
		return err
	}
	defer rec.close()

	count, err := rec.header()
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		id, err := rec.intField("wall id")
		if err != nil {
			return err
		}
		posx, err := rec.floatField("wall x")
		if err != nil {
			return err
		}
		posy, err := rec.floatField("wall y")
		if err != nil {
			return err
		}
		if err := rec.separator(); err != nil {
			return err
		}

		size, err := WallSize(id)
		if err != nil {
			return rec.errorf("%v", err)
		}

		// File coordinates are top-left origin with y growing downward.
		// Convert to a world-space box once, here. The collider is a
		// point smaller than the sprite so flush-adjacent blocks do not
		// register as overlapping.
		center := geom.Vec2{
			X: posx + size.X/2,
			Y: WindowH - posy - InfoBarH - size.Y/2,
		}
		room.Walls = append(room.Walls, Wall{
			ID: id,
			Box: geom.Box{
				Center: center,
				Size:   geom.Vec2{X: size.X - 1, Y: size.Y - 1},
			},
		})
	}
	return nil
}

func loadEnemies(path string, room *Room, roomSeq int, d *dice.Roller) (int, error) {
	rec, err := openRecords(path)
	if err != nil {
		return 0, err
	}
	defer rec.close()

	count, err := rec.header()
	if err != nil {
		return 0, err
	}

	bases := 0
	for enemySeq := 0; enemySeq < count; enemySeq++ {
		posx, err := rec.floatField("enemy x")
		if err != nil {
			return 0, err
		}
		posy, err := rec.floatField("enemy y")
		if err != nil {
			return 0, err
		}
		enemyType, err := rec.intField("enemy type")
		if err != nil {
			return 0, err
		}
		subtype, err := rec.intField("enemy subtype")
		if err != nil {
			return 0, err
		}
		if err := rec.separator(); err != nil {
			return 0, err
		}

		health, err := EnemyHealth(enemyType)
		if err != nil {
			return 0, rec.errorf("%v", err)
		}
		if enemyType == 0 {
			bases++
		}

		enemy := Enemy{
			Health:      health,
			RoomSeq:     roomSeq,
			EnemySeq:    enemySeq,
			Type:        enemyType,
			Subtype:     subtype,
			ColorIndex:  d.IntN(NumEnemyColors),
			First:       true,
			Pos:         geom.Vec2{X: posx, Y: posy},
			Vel:         spawnVelocity(enemyType, d),
			CooldownMax: EnemyCooldown(enemyType),
			Dir:         EnemyDir(enemyType, subtype),
		}

		// A carrier record is immediately followed by its fellow.
		if enemyType == 20 {
			n, err := loadFellow(rec, &enemy, d)
			if err != nil {
				return 0, err
			}
			bases += n
		}

		room.Enemies = append(room.Enemies, enemy)
	}
	return bases, nil
}

// loadFellow parses the nested fellow record of a carrier. It returns 1 if
// the fellow is itself a base.
func loadFellow(rec *records, carrier *Enemy, d *dice.Roller) (int, error) {
	kind, err := rec.intField("fellow kind")
	if err != nil {
		return 0, err
	}
	if _, err := rec.floatField("fellow x"); err != nil {
		return 0, err
	}
	if _, err := rec.floatField("fellow y"); err != nil {
		return 0, err
	}
	fellowType, err := rec.intField("fellow type")
	if err != nil {
		return 0, err
	}
	subtype, err := rec.intField("fellow subtype")
	if err != nil {
		return 0, err
	}
	if err := rec.separator(); err != nil {
		return 0, err
	}

	if kind != 0 {
		if fellowType < 0 || fellowType > 7 {
			return 0, rec.errorf("unknown fellow item type %d", fellowType)
		}
		carrier.FellowItem = &FellowItem{Type: fellowType}
		return 0, nil
	}

	health, err := EnemyHealth(fellowType)
	if err != nil {
		return 0, rec.errorf("%v", err)
	}
	carrier.Fellow = &FellowEnemy{
		Health:      health,
		Type:        fellowType,
		Subtype:     subtype,
		ColorIndex:  d.IntN(NumEnemyColors),
		CooldownMax: EnemyCooldown(fellowType),
		Dir:         EnemyDir(fellowType, subtype),
	}
	if fellowType == 0 {
		return 1, nil
	}
	return 0, nil
}

func loadItems(path string, room *Room, roomSeq int) error {
	rec, err := openRecords(path)
	if err != nil {
		return err
	}
	defer rec.close()

	count, err := rec.header()
	if err != nil {
		return err
	}

	for itemSeq := 0; itemSeq < count; itemSeq++ {
		posx, err := rec.floatField("item x")
		if err != nil {
			return err
		}
		posy, err := rec.floatField("item y")
		if err != nil {
			return err
		}
		itemType, err := rec.intField("item type")
		if err != nil {
			return err
		}
		if err := rec.separator(); err != nil {
			return err
		}

		if itemType < 0 || itemType > 7 {
			return rec.errorf("unknown item type %d", itemType)
		}

		room.Items = append(room.Items, Item{
			Pos:     geom.Vec2{X: posx, Y: posy},
			Type:    itemType,
			RoomSeq: roomSeq,
			ItemSeq: itemSeq,
			First:   true,
		})
	}
	return nil
}

// spawnVelocity returns the initial velocity for an enemy type. Types 15
// and 16 drift at a constant speed with a random diagonal picked at load;
// everything else starts at rest.
func spawnVelocity(enemyType int, d *dice.Roller) geom.Vec2 {
	if enemyType == 15 || enemyType == 16 {
		return geom.Vec2{X: 150 * d.Sign(), Y: 150 * d.Sign()}
	}
	return geom.Vec2{}
}

// records reads the one-value-per-line record stream format shared by all
// three room file kinds.
type records struct {
	f    *os.File
	sc   *bufio.Scanner
	path string
	line int
}

func openRecords(path string) (*records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open room data: %w", err)
	}
	return &records{f: f, sc: bufio.NewScanner(f), path: path}, nil
}

func (r *records) close() {
	r.f.Close()
}

func (r *records) errorf(format string, args ...any) error {
	prefix := fmt.Sprintf("%s:%d: ", r.path, r.line)
	return fmt.Errorf(prefix+format, args...)
}

func (r *records) next(what string) (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", r.path, err)
		}
		return "", r.errorf("unexpected end of file, want %s", what)
	}
	r.line++
	return strings.TrimSpace(r.sc.Text()), nil
}

// header reads the leading record count and its separator line.
func (r *records) header() (int, error) {
	count, err := r.intField("record count")
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, r.errorf("negative record count %d", count)
	}
	if err := r.separator(); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *records) intField(what string) (int, error) {
	s, err := r.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, r.errorf("bad %s %q", what, s)
	}
	return v, nil
}

func (r *records) floatField(what string) (float64, error) {
	s, err := r.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, r.errorf("bad %s %q", what, s)
	}
	return v, nil
}

func (r *records) separator() error {
	s, err := r.next("separator")
	if err != nil {
		return err
	}
	if s != ";" {
		return r.errorf("want separator %q, got %q", ";", s)
	}
	return nil
}
