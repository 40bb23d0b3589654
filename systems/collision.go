package systems

import (
	"log"

	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/events"
	"github.com/automoto/skydodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves player contact with enemies, then collectibles.
// Every falling entity is tested with a strict AABB overlap; removals are
// staged and applied after the scan. A fatal hit still lets same-frame
// pickups count, and the round ends once both passes are done.
func UpdateCollisions(e *ecs.ECS) {
	playerEntry, ok := GetPlayer(e)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	lives := components.Lives.Get(playerEntry)
	playerRect := components.Object.Get(playerEntry).Rect()

	var removals []*donburi.Entry
	defer func() {
		for _, entry := range removals {
			destroyFalling(e, entry)
		}
	}()

	gameOver := false
	for _, entry := range fallingEntries(e, tags.Enemy.Each) {
		if player.Invincible {
			break
		}
		if !playerRect.Overlaps(components.Object.Get(entry).Rect()) {
			continue
		}

		removals = append(removals, entry)
		remaining := lives.Lose()
		events.LivesChangedEvent.Publish(e.World, events.LivesChanged{Lives: remaining})

		player.Invincible = true
		player.BlinkTimer = 0
		player.ShakeTimer = cfg.ScreenShake.Duration
		player.InvincibleTimer = GetScheduler(e).After(cfg.Player.InvincibleFor, func() {
			if pe, ok := GetPlayer(e); ok {
				components.Player.Get(pe).Invincible = false
			}
		})
		PlayHitCue(e)

		if remaining == 0 {
			gameOver = true
		}
	}

	for _, entry := range fallingEntries(e, tags.Collectible.Each) {
		if !playerRect.Overlaps(components.Object.Get(entry).Rect()) {
			continue
		}
		removals = append(removals, entry)

		round := GetRound(e)
		if round == nil {
			continue
		}
		round.Score += cfg.Collectible.Points
		events.ScoreChangedEvent.Publish(e.World, events.ScoreChanged{Score: round.Score})
		PlayCollectCue(e)
	}

	if gameOver {
		if err := EndRound(e, cfg.RoundGameOver); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// fallingEntries snapshots the entries visited by each so the scan can stage
// removals without mutating the world mid-query.
func fallingEntries(e *ecs.ECS, each func(donburi.World, func(*donburi.Entry))) []*donburi.Entry {
	var entries []*donburi.Entry
	each(e.World, func(entry *donburi.Entry) {
		if entry.Valid() && entry.HasComponent(components.Object) {
			entries = append(entries, entry)
		}
	})
	return entries
}
