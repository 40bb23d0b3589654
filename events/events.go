// Package events defines the game's event types on top of donburi's event
// bus. Gameplay systems publish; the HUD, overlays and UI subscribe. Events
// are queued and delivered when ProcessAll runs at the end of the update.
package events

import (
	cfg "github.com/automoto/skydodge/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type LivesChanged struct {
	Lives int
}

type ScoreChanged struct {
	Score int
}

type TimeChanged struct {
	TimeLeft int
}

type BestScoreChanged struct {
	Best int
}

// RoundStateChanged is published after every successful state transition.
// Score is the final score for Winner and GameOver, otherwise the current one.
type RoundStateChanged struct {
	From  cfg.RoundStateID
	To    cfg.RoundStateID
	Score int
}

// CountdownTicked carries the number now shown by the pre-round countdown.
// A value of zero means the countdown has finished.
type CountdownTicked struct {
	Value int
}

var (
	LivesChangedEvent      = events.NewEventType[LivesChanged]()
	ScoreChangedEvent      = events.NewEventType[ScoreChanged]()
	TimeChangedEvent       = events.NewEventType[TimeChanged]()
	BestScoreChangedEvent  = events.NewEventType[BestScoreChanged]()
	RoundStateChangedEvent = events.NewEventType[RoundStateChanged]()
	CountdownTickedEvent   = events.NewEventType[CountdownTicked]()
)

// ProcessAll delivers every queued event, state changes first so that
// subscribers see the new state before the values that accompany it.
func ProcessAll(w donburi.World) {
	RoundStateChangedEvent.ProcessEvents(w)
	CountdownTickedEvent.ProcessEvents(w)
	LivesChangedEvent.ProcessEvents(w)
	ScoreChangedEvent.ProcessEvents(w)
	TimeChangedEvent.ProcessEvents(w)
	BestScoreChangedEvent.ProcessEvents(w)
}
