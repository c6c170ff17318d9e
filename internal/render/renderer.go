// Package render abstracts the drawing surface, input devices and run loop,
// so game code does not depend on a particular backend.
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminate is returned from Game.Update to end the run loop cleanly.
// Engines return nil from RunGame when they see it.
var ErrTerminate = errors.New("render: terminate")

// Renderer is the main drawing interface. All coordinates are in pixels of
// the destination image.
type Renderer interface {
	// Vector operations
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// Text operations. (x, y) is the top-left corner of the text.
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a surface that can be drawn to.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// Resource management
	Dispose()
}

// InputManager handles input from the user (keyboard, mouse, touch).
// Implementations report the state for the current tick.
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool

	// AppendTouchIDs appends the IDs of the touches currently in contact
	// to ids and returns the result.
	AppendTouchIDs(ids []TouchID) []TouchID
	TouchPosition(id TouchID) (x, y int)
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds
const (
	KeyC      Key = iota // Copy board as text
	KeyH                 // Toggle HUD
	KeyP                 // Save PNG snapshot
	KeyEscape            // Quit
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// TouchID identifies one touch for as long as it stays in contact.
type TouchID int

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60 times per second).
	// Returning ErrTerminate stops the engine without error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
