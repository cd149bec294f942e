package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical camera action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionModFast
	ActionModSlow
	ActionCount // Sentinel value for array sizing
)

// KeySource reports the current state of a physical key. *glfw.Window satisfies it.
type KeySource interface {
	GetKey(key glfw.Key) glfw.Action
}

// InputManager maps physical keys to logical actions and tracks their state
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Held state (indexed by Action)
	currentState [ActionCount]bool

	// Presses seen through key events since the last PostUpdate. A tap that
	// starts and ends between two polls is only visible here.
	justPressed [ActionCount]bool
}

// NewInputManager creates a new InputManager with the default camera bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyE, ActionMoveUp)
	im.BindKey(glfw.KeyQ, ActionMoveDown)
	im.BindKey(glfw.KeyLeftShift, ActionModFast)
	im.BindKey(glfw.KeyLeftControl, ActionModSlow)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent processes a key event from the window's key callback
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// Poll samples every bound key from src. An action bound to several keys is
// active while any of them is held.
func (im *InputManager) Poll(src KeySource) {
	im.mu.Lock()
	defer im.mu.Unlock()

	var held [ActionCount]bool
	for key, actions := range im.keyToActions {
		if src.GetKey(key) != glfw.Press {
			continue
		}
		for _, act := range actions {
			held[act] = true
		}
	}
	im.currentState = held
}

// Release drops every held action and pending press, e.g. when the GUI
// takes keyboard focus.
func (im *InputManager) Release() {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.currentState = [ActionCount]bool{}
	im.justPressed = [ActionCount]bool{}
}

// PostUpdate must be called at the end of each frame to reset press edges
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.justPressed = [ActionCount]bool{}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true if a key event pressed the action this frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// Triggered reports whether the action should take effect this frame: it is
// held, or it was tapped since the last PostUpdate.
func (im *InputManager) Triggered(action Action) bool {
	return im.IsActive(action) || im.JustPressed(action)
}
