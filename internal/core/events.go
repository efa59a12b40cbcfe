package core

// EventKind discriminates the input events delivered to games.
type EventKind int

const (
	// EventQuit asks the loop to terminate after the current iteration.
	EventQuit EventKind = iota
	// EventPointerDown is a press at screen cell (X, Y).
	EventPointerDown
	// EventKey is a mapped keyboard command carried in Action.
	EventKey
)

// Action identifies a keyboard command after platform key mapping.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionRestart
	ActionShuffle
)

// Event is a single discrete input delivered to Game.HandleEvent.
// Events arrive in the order the platform observed them, once each;
// unlike a sampled input frame there is no per-tick key state.
type Event struct {
	Kind   EventKind
	X, Y   int    // pointer position for EventPointerDown
	Action Action // command for EventKey
}
