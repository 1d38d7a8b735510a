package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarpenko/tui-jumpball/internal/core"
)

// jumpHoldWindow is how long a Space press keeps the jump "held".
// Terminals deliver no key-up events, so holding is synthesized: every
// Space key message refreshes this window, and keyboard autorepeat keeps
// it alive while the key stays down. The window comfortably covers the
// maximum useful hold time (max_jump_hold, 0.25s by default).
const jumpHoldWindow = 400 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "up", "w":
		return core.ActionJump, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}
