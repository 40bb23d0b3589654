package archetypes

import (
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Lives,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Falling,
		components.Object,
	)
	Collectible = newArchetype(
		tags.Collectible,
		components.Falling,
		components.Object,
	)
	Cloud = newArchetype(
		tags.Cloud,
		components.Cloud,
	)
	Space = newArchetype(
		components.Space,
	)
	Round = newArchetype(
		components.Round,
		components.Spawner,
		components.Scheduler,
	)
	HUD = newArchetype(
		components.HUD,
		components.Overlay,
	)
	Playfield = newArchetype(
		components.Playfield,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
