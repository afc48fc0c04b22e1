package maze

import (
	"fmt"

	"github.com/cobbes/jetstorm/geom"
)

// NoCooldown marks enemy types that never shoot on their own.
const NoCooldown = 1<<16 - 1

// EnemyHealth returns the starting health for an enemy type.
func EnemyHealth(enemyType int) (int, error) {
	switch enemyType {
	case 0, 4:
		return 200, nil
	case 1:
		return 60, nil
	case 2, 5, 6, 7, 9, 10:
		return 90, nil
	case 3:
		return 30, nil
	case 8:
		return 20, nil
	case 11, 12, 13, 14, 15, 16, 17, 20:
		return 10, nil
	case 18, 19:
		return 50, nil
	}
	return 0, fmt.Errorf("unknown enemy type %d", enemyType)
}

// EnemyCooldown returns the shooting cooldown reset value for an enemy
// type. Types without an active attack get NoCooldown.
func EnemyCooldown(enemyType int) int {
	switch enemyType {
	case 1, 3, 5, 6, 13:
		return 500
	case 2:
		return 2000
	case 7:
		return 1000
	case 10:
		return 10000
	}
	return NoCooldown
}

// EnemyDir returns the initial facing for an enemy type. Only the
// horizontally firing types carry a facing; it comes from the subtype.
func EnemyDir(enemyType, subtype int) Direction {
	if enemyType == 1 || enemyType == 8 {
		if subtype == 0 {
			return DirLeft
		}
		return DirRight
	}
	return DirNone
}

// wallSizes maps a wall id to its block dimensions. Ids mirror the wall
// sprite set: full-span borders, half spans, platforms and pillars.
var wallSizes = []geom.Vec2{
	{X: 800, Y: 25},  // 0 full horizontal span
	{X: 25, Y: 500},  // 1 full vertical span
	{X: 400, Y: 25},  // 2 half horizontal span
	{X: 25, Y: 250},  // 3 half vertical span
	{X: 200, Y: 25},  // 4
	{X: 25, Y: 125},  // 5
	{X: 100, Y: 25},  // 6
	{X: 25, Y: 100},  // 7
	{X: 50, Y: 25},   // 8
	{X: 25, Y: 50},   // 9
	{X: 25, Y: 25},   // 10 single block
	{X: 50, Y: 50},   // 11
	{X: 100, Y: 50},  // 12
	{X: 50, Y: 100},  // 13
	{X: 150, Y: 25},  // 14
	{X: 25, Y: 150},  // 15
	{X: 150, Y: 50},  // 16
	{X: 50, Y: 150},  // 17
	{X: 250, Y: 25},  // 18
	{X: 25, Y: 200},  // 19
	{X: 300, Y: 25},  // 20
	{X: 25, Y: 300},  // 21
	{X: 100, Y: 100}, // 22
	{X: 150, Y: 100}, // 23
	{X: 100, Y: 150}, // 24
	{X: 200, Y: 50},  // 25
	{X: 50, Y: 200},  // 26
	{X: 250, Y: 50},  // 27
	{X: 300, Y: 50},  // 28
	{X: 350, Y: 25},  // 29
}

// WallSize returns the block dimensions for a wall id.
func WallSize(id int) (geom.Vec2, error) {
	if id < 0 || id >= len(wallSizes) {
		return geom.Vec2{}, fmt.Errorf("unknown wall id %d", id)
	}
	return wallSizes[id], nil
}
