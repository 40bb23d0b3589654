package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/events"
	"github.com/automoto/skydodge/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// framesToPlaying is the start fade, three countdown ticks and the
// countdown fade, at 60 ticks per second.
const framesToPlaying = 36 + 3*60 + 18

type testWorld struct {
	e      *ecs.ECS
	store  *MemoryStore
	states []cfg.RoundStateID
}

// newTestWorld builds a populated world with no input or audio devices.
func newTestWorld(t *testing.T, best int) *testWorld {
	t.Helper()
	tw := &testWorld{
		e:     ecs.NewECS(donburi.NewWorld()),
		store: &MemoryStore{Best: best},
	}
	factory.PopulateWorld(tw.e, nil, tw.store, rand.New(rand.NewPCG(1, 2)))
	SubscribeHUD(tw.e.World)
	SubscribeOverlay(tw.e.World)
	events.RoundStateChangedEvent.Subscribe(tw.e.World, func(w donburi.World, ev events.RoundStateChanged) {
		tw.states = append(tw.states, ev.To)
	})
	return tw
}

// step runs n update ticks in scene order, skipping device polling.
func (tw *testWorld) step(n int) {
	for i := 0; i < n; i++ {
		UpdateRound(tw.e)
		UpdateScheduler(tw.e)
		UpdateClouds(tw.e)
		WithPlaying(UpdatePointerTarget)(tw.e)
		WithPlaying(UpdateSpawner)(tw.e)
		WithPlaying(UpdatePlayer)(tw.e)
		WithPlaying(UpdateFalling)(tw.e)
		WithPlaying(UpdateCollisions)(tw.e)
		UpdateOverlay(tw.e)
		events.ProcessAll(tw.e.World)
	}
}

func (tw *testWorld) startPlaying(t *testing.T) {
	t.Helper()
	if err := StartRound(tw.e); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
	tw.step(framesToPlaying)
	if got := tw.round().State; got != cfg.RoundPlaying {
		t.Fatalf("state after countdown = %v, want playing", got)
	}
}

func (tw *testWorld) round() *components.RoundData {
	return GetRound(tw.e)
}

func (tw *testWorld) player() (*components.PlayerData, *components.LivesData, components.ObjectData) {
	entry, _ := GetPlayer(tw.e)
	return components.Player.Get(entry), components.Lives.Get(entry), *components.Object.Get(entry)
}

// count takes a tag's Each method, e.g. tw.count(tags.Enemy.Each).
func (tw *testWorld) count(each func(donburi.World, func(*donburi.Entry))) int {
	n := 0
	each(tw.e.World, func(*donburi.Entry) { n++ })
	return n
}

// clearSpawns removes everything the spawner created so a test can place
// its own entities.
func (tw *testWorld) clearSpawns() {
	clearFalling(tw.e)
}

// holdSpawner pushes the spawn stamps far enough ahead that nothing spawns
// for the rest of the test.
func (tw *testWorld) holdSpawner() {
	spawner := GetSpawner(tw.e)
	spawner.LastEnemy = GetScheduler(tw.e).Now() + 1<<40
	spawner.LastCollectible = spawner.LastEnemy
}

func (tw *testWorld) countStates(s cfg.RoundStateID) int {
	n := 0
	for _, st := range tw.states {
		if st == s {
			n++
		}
	}
	return n
}
