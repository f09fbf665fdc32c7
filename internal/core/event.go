package core

// Event is a notification raised by a game during a tick. The platform
// consumes events instead of the game blocking on dialogs.
type Event int

const (
	EventNone Event = iota
	EventStarted
	EventBrickDestroyed
	EventPaddleHit
	EventLifeLost
	EventResumed
	EventWon
	EventLost
)

// String returns a short name for the event.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventPaddleHit:
		return "paddle_hit"
	case EventLifeLost:
		return "life_lost"
	case EventResumed:
		return "resumed"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "none"
	}
}

// Terminal reports whether the event ends the session.
func (e Event) Terminal() bool {
	return e == EventWon || e == EventLost
}
