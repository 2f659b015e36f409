// Package world holds per-frame shared state cells for the driving game:
// the car's pose and the raw movement input. Each cell has exactly one
// writer (the game step for CarState, the input layer for RawInput), so a
// plain mutex around whole-value copies is enough.
package world

import (
	"sync"

	"github.com/vovakirdan/letter-isles/internal/core"
)

// CarState is the car's pose as of the last step.
type CarState struct {
	Position core.Vec3
	Rotation float64
	IsMoving bool
}

// RawInput is the merged movement input for the next step. Analog values
// take priority over the booleans when the stick is active.
type RawInput struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Boost    bool

	StickX      float64
	StickY      float64
	StickActive bool
}

// AnyMovement reports whether any directional input is held.
func (in RawInput) AnyMovement() bool {
	return in.Forward || in.Backward || in.Left || in.Right || in.StickActive
}

// CarCell is a single-writer shared cell for CarState.
type CarCell struct {
	mu sync.Mutex
	v  CarState
}

// Store replaces the cell's car state.
func (c *CarCell) Store(v CarState) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Load returns a copy of the current car state.
func (c *CarCell) Load() CarState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}

// InputCell is a single-writer shared cell for RawInput.
type InputCell struct {
	mu sync.Mutex
	v  RawInput
}

// Store replaces the cell's merged input.
func (c *InputCell) Store(v RawInput) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Load returns a copy of the current merged input.
func (c *InputCell) Load() RawInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.v
}
