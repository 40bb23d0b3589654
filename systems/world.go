package systems

import (
	"github.com/automoto/skydodge/components"
	"github.com/automoto/skydodge/gamemath"
	"github.com/automoto/skydodge/schedule"
	"github.com/automoto/skydodge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetRound returns the round singleton, or nil if the world has none.
func GetRound(e *ecs.ECS) *components.RoundData {
	entry, ok := components.Round.First(e.World)
	if !ok {
		return nil
	}
	return components.Round.Get(entry)
}

// GetSpawner returns the spawn bookkeeping stored on the round entity.
func GetSpawner(e *ecs.ECS) *components.SpawnerData {
	entry, ok := components.Spawner.First(e.World)
	if !ok {
		return nil
	}
	return components.Spawner.Get(entry)
}

// GetScheduler returns the world's timer scheduler, creating one if needed.
func GetScheduler(e *ecs.ECS) *schedule.Scheduler {
	entry, ok := components.Scheduler.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Scheduler))
	}
	data := components.Scheduler.Get(entry)
	if data.Scheduler == nil {
		data.Scheduler = schedule.New()
	}
	return data.Scheduler
}

// GetPlayer returns the player entry.
func GetPlayer(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

func getSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// destroyFalling removes an enemy or collectible from the collision space and the world.
func destroyFalling(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if space := getSpace(e); space != nil {
			space.Remove(components.Object.Get(entry).Object)
		}
	}
	e.World.Remove(entry.Entity())
}

// GetViewport returns the current playfield-to-screen mapping.
func GetViewport(e *ecs.ECS) gamemath.Viewport {
	entry, ok := components.Viewport.First(e.World)
	if !ok {
		return gamemath.Viewport{Scale: 1}
	}
	return components.Viewport.Get(entry).Viewport
}
