// Package hud renders the info bar across the top of the window: the
// fuel, ammo and shield gauges, the armed special weapon, the score and
// the remaining base count, framed by rows of color-cycling blocks.
package hud

import (
	"fmt"
	"image/color"

	"github.com/cobbes/jetstorm/dice"
	"github.com/cobbes/jetstorm/events"
	"github.com/cobbes/jetstorm/internal/render"
	"github.com/cobbes/jetstorm/palette"
	"github.com/cobbes/jetstorm/player"
)

// Bar layout, in screen coordinates from the top-left of the window.
const (
	BlockSize = 22.0
	blockGap  = 3.0

	barMaxW = 100.0

	fuelBarX, fuelBarY     = 125.0, 25.0
	ammoBarX, ammoBarY     = 125.0, 50.0
	shieldBarX, shieldBarY = 375.0, 50.0

	specialIcon1X = 275.0
	specialIcon2X = 300.0
	specialIconY  = 25.0

	specialTextX, specialTextY = 280.0, 50.0
	scoreTextX, scoreTextY     = 555.0, 25.0
	basesTextX, basesTextY     = 730.0, 50.0
)

// Decorative block color cycling.
const (
	colorResetCooldown = 10
	cycleInterval      = 0.2
)

type block struct {
	x, y     float64
	color    color.RGBA
	cooldown int
}

// HUD is the info bar state. It tracks the event-driven values itself;
// the continuously changing gauges are read from the player at draw time.
type HUD struct {
	renderer render.Renderer
	dice     *dice.Roller

	score       int
	bases       int
	special     events.SpecialType
	specialAmmo int

	blocks []block
	timer  float64
}

// New creates the info bar.
func New(r render.Renderer, d *dice.Roller) *HUD {
	h := &HUD{renderer: r, dice: d}
	h.spawnBlocks()
	return h
}

func (h *HUD) addBlocks(startX, y float64, amount int) {
	for i := 0; i < amount; i++ {
		h.blocks = append(h.blocks, block{
			x:        startX + float64(i)*(BlockSize+blockGap),
			y:        y,
			color:    palette.Cyan,
			cooldown: colorResetCooldown,
		})
	}
}

func (h *HUD) spawnBlocks() {
	h.blocks = h.blocks[:0]

	h.addBlocks(0, 0, 32)

	h.addBlocks(0, 25, 1)
	h.addBlocks(250, 25, 1)
	h.addBlocks(325, 25, 1)
	h.addBlocks(500, 25, 2)
	h.addBlocks(700, 25, 1)
	h.addBlocks(775, 25, 1)

	h.addBlocks(0, 50, 1)
	h.addBlocks(250, 50, 1)
	h.addBlocks(325, 50, 1)
	h.addBlocks(500, 50, 9)
	h.addBlocks(775, 50, 1)

	h.addBlocks(0, 75, 32)
}

// Reset primes the displayed values for a new game.
func (h *HUD) Reset(score, bases int, special events.SpecialType, specialAmmo int) {
	h.score = score
	h.bases = bases
	h.special = special
	h.specialAmmo = specialAmmo
	h.timer = 0
	h.spawnBlocks()
}

// Score returns the displayed score.
func (h *HUD) Score() int { return h.score }

// Apply folds this tick's game events into the displayed values.
func (h *HUD) Apply(evs []events.Event) {
	for _, ev := range evs {
		switch e := ev.(type) {
		case events.ScoreChanged:
			h.score = e.Score
		case events.BaseCountChanged:
			h.bases = e.Bases
		case events.SpecialChanged:
			h.special = e.Special
			h.flashBlocks()
		case events.SpecialAmmoChanged:
			h.specialAmmo = e.Ammo
		}
	}
}

func (h *HUD) flashBlocks() {
	for i := range h.blocks {
		h.blocks[i].color = palette.Cyan
		h.blocks[i].cooldown = colorResetCooldown
	}
}

// Step advances the decorative block color cycle.
func (h *HUD) Step(dt float64) {
	h.timer += dt
	if h.timer < cycleInterval {
		return
	}
	h.timer -= cycleInterval

	for i := range h.blocks {
		b := &h.blocks[i]
		if h.dice.IntN(10) == 0 {
			b.color = palette.Enemy[h.dice.IntN(len(palette.Enemy))]
			b.cooldown = colorResetCooldown
			continue
		}
		b.cooldown--
		if b.cooldown <= 0 {
			b.color = palette.Cyan
			b.cooldown = colorResetCooldown
		}
	}
}

// Draw renders the info bar. The gauges read the player state directly.
func (h *HUD) Draw(screen render.Image, p *player.Player) {
	h.renderer.FillRect(screen, 0, 0, 800, 100, palette.Black)

	for _, b := range h.blocks {
		h.renderer.FillRect(screen, float32(b.x), float32(b.y), BlockSize, BlockSize, b.color)
	}

	h.drawGauge(screen, fuelBarX, fuelBarY, p.Fuel/player.FuelMax)
	h.drawGauge(screen, ammoBarX, ammoBarY, float64(p.Ammo)/float64(player.AmmoMax))
	h.drawGauge(screen, shieldBarX, shieldBarY, p.Health/player.HealthMax)

	iconColor := specialColor(h.special)
	h.renderer.FillRect(screen, specialIcon1X, specialIconY, BlockSize, BlockSize, iconColor)
	h.renderer.FillRect(screen, specialIcon2X, specialIconY, BlockSize, BlockSize, iconColor)

	h.renderer.DrawText(screen, fmt.Sprintf("%02d", h.specialAmmo), specialTextX, specialTextY, palette.White, 2)
	h.renderer.DrawText(screen, fmt.Sprintf("%07d", h.score), scoreTextX, scoreTextY, palette.White, 2)
	h.renderer.DrawText(screen, fmt.Sprintf("%02d", h.bases), basesTextX, basesTextY, palette.White, 2)
}

func (h *HUD) drawGauge(screen render.Image, x, y, fill float64) {
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}
	h.renderer.FillRect(screen, float32(x), float32(y), float32(fill*barMaxW), BlockSize, palette.White)
}

func specialColor(t events.SpecialType) color.RGBA {
	switch t {
	case events.SpecialBall:
		return palette.White
	case events.SpecialMissileSide:
		return color.RGBA{0xFF, 0xA5, 0x00, 0xFF}
	case events.SpecialMissileDown:
		return color.RGBA{0xFF, 0x63, 0x47, 0xFF}
	default:
		return palette.Yellow
	}
}
