package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/events"
	"github.com/automoto/skydodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrInvalidTransition is returned when a round state change is requested
// from a state that does not allow it. The state is left unchanged.
var ErrInvalidTransition = errors.New("invalid round state transition")

// UpdateRound turns confirm, mute and fullscreen actions into state changes.
func UpdateRound(e *ecs.ECS) {
	round := GetRound(e)
	if round == nil {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionConfirm).JustPressed {
		var err error
		switch {
		case round.State == cfg.RoundIdle:
			err = StartRound(e)
		case round.State.Ended():
			err = RestartRound(e)
		}
		if err != nil {
			log.Printf("Warning: %v", err)
		}
	}

	if GetAction(input, cfg.ActionMute).JustPressed {
		ToggleMute(e)
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		ToggleFullscreen(e)
	}
}

// StartRound moves Idle to Countdown. The start panel fades out, then the
// countdown ticks once per configured period down to zero, then play begins.
func StartRound(e *ecs.ECS) error {
	round := GetRound(e)
	if round == nil {
		return fmt.Errorf("%w: no round", ErrInvalidTransition)
	}
	if round.State != cfg.RoundIdle {
		return transitionError(round.State, cfg.RoundCountdown)
	}

	round.Countdown = cfg.Round.CountdownFrom
	setRoundState(e, round, cfg.RoundCountdown)

	sched := GetScheduler(e)
	sched.After(cfg.Round.StartFade, func() {
		r := GetRound(e)
		if r == nil || r.State != cfg.RoundCountdown {
			return
		}
		events.CountdownTickedEvent.Publish(e.World, events.CountdownTicked{Value: r.Countdown})
		r.CountdownTimer = sched.Every(cfg.Round.Tick, func() { countdownTick(e) })
	})
	return nil
}

func countdownTick(e *ecs.ECS) {
	round := GetRound(e)
	if round == nil || round.State != cfg.RoundCountdown {
		return
	}

	PlayCountdownCue(e)
	round.Countdown--
	events.CountdownTickedEvent.Publish(e.World, events.CountdownTicked{Value: round.Countdown})

	if round.Countdown > 0 {
		return
	}

	round.CountdownTimer.Stop()
	round.CountdownTimer = nil
	GetScheduler(e).After(cfg.Round.CountdownFade, func() {
		r := GetRound(e)
		if r == nil || r.State != cfg.RoundCountdown {
			return
		}
		beginPlaying(e, r)
	})
}

func beginPlaying(e *ecs.ECS, round *components.RoundData) {
	setRoundState(e, round, cfg.RoundPlaying)
	round.ClockTimer = GetScheduler(e).Every(cfg.Round.Tick, func() { clockTick(e) })
	PlayBackgroundMusic(e)
}

func clockTick(e *ecs.ECS) {
	round := GetRound(e)
	if round == nil || round.State != cfg.RoundPlaying {
		return
	}

	round.TimeLeft--
	if round.TimeLeft < 0 {
		round.TimeLeft = 0
	}
	events.TimeChangedEvent.Publish(e.World, events.TimeChanged{TimeLeft: round.TimeLeft})

	if round.TimeLeft == 0 {
		if err := EndRound(e, cfg.RoundWinner); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// EndRound moves Playing to Winner or GameOver. It stops the game clock,
// pauses the music, freezes the final score and raises the best score if it
// was beaten.
func EndRound(e *ecs.ECS, to cfg.RoundStateID) error {
	round := GetRound(e)
	if round == nil {
		return fmt.Errorf("%w: no round", ErrInvalidTransition)
	}
	if round.State != cfg.RoundPlaying || !to.Ended() {
		return transitionError(round.State, to)
	}

	round.ClockTimer.Stop()
	round.ClockTimer = nil
	PauseBackgroundMusic(e)

	round.FinalScore = round.Score
	if round.Score > round.BestScore {
		round.BestScore = round.Score
		if round.Store != nil {
			if err := round.Store.SaveBestScore(round.BestScore); err != nil {
				log.Printf("Warning: Could not persist best score: %v", err)
			}
		}
		events.BestScoreChangedEvent.Publish(e.World, events.BestScoreChanged{Best: round.BestScore})
	}

	setRoundState(e, round, to)
	return nil
}

// RestartRound moves Winner or GameOver back to Idle and resets everything a
// new round depends on. Every pending timer is cancelled.
func RestartRound(e *ecs.ECS) error {
	round := GetRound(e)
	if round == nil {
		return fmt.Errorf("%w: no round", ErrInvalidTransition)
	}
	if !round.State.Ended() {
		return transitionError(round.State, cfg.RoundIdle)
	}

	GetScheduler(e).Reset()
	round.ClockTimer = nil
	round.CountdownTimer = nil

	clearFalling(e)

	round.Score = 0
	round.FinalScore = 0
	round.TimeLeft = cfg.Round.Duration
	round.Countdown = cfg.Round.CountdownFrom
	round.Pulse = 0

	if spawner := GetSpawner(e); spawner != nil {
		spawner.LastEnemy = 0
		spawner.LastCollectible = 0
	}

	resetPlayer(e)
	StopBackgroundMusic(e)

	events.ScoreChangedEvent.Publish(e.World, events.ScoreChanged{Score: 0})
	events.TimeChangedEvent.Publish(e.World, events.TimeChanged{TimeLeft: round.TimeLeft})
	setRoundState(e, round, cfg.RoundIdle)
	return nil
}

func resetPlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	lives := components.Lives.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	lives.Lives = lives.MaxLives
	player.TargetX, player.TargetY = player.SpawnX, player.SpawnY
	player.Invincible = false
	player.BlinkTimer = 0
	player.ShakeTimer = 0
	player.InvincibleTimer = nil

	obj.X, obj.Y = player.SpawnX, player.SpawnY
	obj.Update()

	events.LivesChangedEvent.Publish(e.World, events.LivesChanged{Lives: lives.Lives})
}

func clearFalling(e *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	tags.Collectible.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		destroyFalling(e, entry)
	}
}

func setRoundState(e *ecs.ECS, round *components.RoundData, to cfg.RoundStateID) {
	from := round.State
	round.State = to

	score := round.Score
	if to.Ended() {
		score = round.FinalScore
	}
	events.RoundStateChangedEvent.Publish(e.World, events.RoundStateChanged{
		From:  from,
		To:    to,
		Score: score,
	})
}

func transitionError(from, to cfg.RoundStateID) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// IsPlaying returns true if the round is in the playing state
func IsPlaying(e *ecs.ECS) bool {
	round := GetRound(e)
	return round != nil && round.State == cfg.RoundPlaying
}

// WithPlaying wraps a gameplay system so it only runs while the round is in play.
func WithPlaying(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e) {
			return
		}
		system(e)
	}
}
