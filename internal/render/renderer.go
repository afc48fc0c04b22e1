package render

import (
	"image"
	"image/color"
)

// Renderer is the drawing interface that abstracts the underlying graphics
// engine. The game draws everything from filled rectangles and text, which
// keeps the backend surface small and lets tests run without a display.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image

	// Shape operations
	FillRect(dst Image, x, y, w, h float32, clr color.Color)
	StrokeRect(dst Image, x, y, w, h, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable surface.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	Dispose()
}

// InputManager handles keyboard input.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool

	// JustPressedKeys returns every key that went down this tick. Used by
	// the key-redefinition screen to capture an arbitrary binding.
	JustPressedKeys() []Key
}

// Key represents a keyboard key.
type Key int

// Key constants. The letter block is contiguous so a key can be named by
// offset from KeyA.
const (
	KeyNone Key = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEnter
	KeyEscape
	KeyShift
	KeyControl
)

// KeyName returns a short label for the key, for the redefinition screen
// and the info displays.
func KeyName(k Key) string {
	if k >= KeyA && k <= KeyZ {
		return string(rune('A' + int(k-KeyA)))
	}
	switch k {
	case KeyUp:
		return "UP"
	case KeyDown:
		return "DOWN"
	case KeyLeft:
		return "LEFT"
	case KeyRight:
		return "RIGHT"
	case KeySpace:
		return "SPACE"
	case KeyEnter:
		return "ENTER"
	case KeyEscape:
		return "ESC"
	case KeyShift:
		return "SHIFT"
	case KeyControl:
		return "CTRL"
	}
	return "?"
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// TickRate returns the number of logic updates per second.
	TickRate() int

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
