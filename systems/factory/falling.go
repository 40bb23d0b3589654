package factory

import (
	"github.com/automoto/skydodge/archetypes"
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a falling hazard.
func CreateEnemy(ecs *ecs.ECS, x, y, speed float64, variant int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	newFallingObject(ecs, enemy, x, y, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy)
	components.Falling.SetValue(enemy, components.FallingData{
		Speed:   speed,
		Variant: variant,
	})
	return enemy
}

// CreateCollectible spawns a falling pickup. All pickups share one speed.
func CreateCollectible(ecs *ecs.ECS, x, y float64, variant int) *donburi.Entry {
	item := archetypes.Collectible.Spawn(ecs)
	newFallingObject(ecs, item, x, y, cfg.Collectible.Width, cfg.Collectible.Height, tags.ResolvCollectible)
	components.Falling.SetValue(item, components.FallingData{
		Speed:   cfg.Collectible.Speed,
		Variant: variant,
	})
	return item
}

func newFallingObject(ecs *ecs.ECS, e *donburi.Entry, x, y, w, h float64, tag string) {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
