package factory

import (
	"github.com/automoto/skydodge/archetypes"
	"github.com/automoto/skydodge/assets"
	"github.com/automoto/skydodge/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClouds spawns the decorative clouds described by the playfield layout.
func CreateClouds(ecs *ecs.ECS, spawns []assets.CloudSpawn) []*donburi.Entry {
	clouds := make([]*donburi.Entry, 0, len(spawns))
	for _, s := range spawns {
		cloud := archetypes.Cloud.Spawn(ecs)
		components.Cloud.SetValue(cloud, components.CloudData{
			X:       s.X,
			Y:       s.Y,
			Speed:   s.Speed,
			Variant: s.Variant,
		})
		clouds = append(clouds, cloud)
	}
	return clouds
}
