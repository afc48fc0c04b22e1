// Package gamescanner verifies the on-disk world data before the game
// starts. Every room of the grid needs its wall, enemy and item files; a
// gap would otherwise only surface mid-game when the player flies into
// the broken room.
package gamescanner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cobbes/jetstorm/maze"
)

// Report is the result of scanning a data directory.
type Report struct {
	Rooms   int      // room triplets found complete
	Missing []string // file paths that should exist but do not
}

// Complete reports whether every room file is present.
func (r *Report) Complete() bool {
	return len(r.Missing) == 0
}

// ScanDataDirectory checks that the data directory holds a complete
// rooms/enemies/items file triplet for every cell of the room grid.
func ScanDataDirectory(dataPath string) (*Report, error) {
	if _, err := os.Stat(dataPath); err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	report := &Report{}

	for row := 0; row < maze.Rows; row++ {
		for col := 0; col < maze.Cols; col++ {
			paths := []string{
				filepath.Join(dataPath, "rooms", fmt.Sprintf("room%d%d.txt", row, col)),
				filepath.Join(dataPath, "enemies", fmt.Sprintf("enemy%d%d.txt", row, col)),
				filepath.Join(dataPath, "items", fmt.Sprintf("item%d%d.txt", row, col)),
			}

			complete := true
			for _, p := range paths {
				if _, err := os.Stat(p); err != nil {
					report.Missing = append(report.Missing, p)
					complete = false
				}
			}
			if complete {
				report.Rooms++
			}
		}
	}

	return report, nil
}
