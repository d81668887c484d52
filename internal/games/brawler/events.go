package brawler

import "fmt"

// EventKind classifies a world event.
type EventKind int

const (
	EventLevelStarted EventKind = iota
	EventBossSpawned
	EventBossDefeated
	EventMonsterKilled
	EventPlayerDowned
	EventVictory
	EventGameOver
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventLevelStarted:
		return "level_started"
	case EventBossSpawned:
		return "boss_spawned"
	case EventBossDefeated:
		return "boss_defeated"
	case EventMonsterKilled:
		return "monster_killed"
	case EventPlayerDowned:
		return "player_downed"
	case EventVictory:
		return "victory"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is something noteworthy that happened during a frame.
type Event struct {
	Kind   EventKind
	Frame  int
	Level  int
	Seat   int    // acting or affected player, 0 when none
	Name   string // monster or boss name
	Points int    // score awarded, if any
}

func (e Event) String() string {
	switch e.Kind {
	case EventMonsterKilled:
		return fmt.Sprintf("P%d killed %s (+%d)", e.Seat, e.Name, e.Points)
	case EventBossSpawned, EventBossDefeated:
		return fmt.Sprintf("%s %s on level %d", e.Kind, e.Name, e.Level)
	case EventPlayerDowned:
		return fmt.Sprintf("P%d is down", e.Seat)
	default:
		return fmt.Sprintf("%s level %d", e.Kind, e.Level)
	}
}

// maxPendingEvents bounds the queue when nobody drains it.
const maxPendingEvents = 256

func (w *World) emit(e Event) {
	e.Frame = w.frame
	e.Level = w.level
	if len(w.events) >= maxPendingEvents {
		copy(w.events, w.events[1:])
		w.events = w.events[:len(w.events)-1]
	}
	w.events = append(w.events, e)
}

// DrainEvents returns the events recorded since the previous call.
func (w *World) DrainEvents() []Event {
	if len(w.events) == 0 {
		return nil
	}
	out := w.events
	w.events = nil
	return out
}
