package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SettingsStore persists player preferences between sessions.
type SettingsStore interface {
	LoadSettings() *SavedSettings
	SaveSettings(settings *SavedSettings) error
}

// Fullscreen belongs to the process window, so it is shared by every world.
// Mute is per world and lives on the audio singleton.
var (
	settingsStore SettingsStore
	fullscreen    bool
)

// UseSettingsStore sets where preference changes are written. A nil store
// keeps changes in memory only.
func UseSettingsStore(store SettingsStore) {
	settingsStore = store
}

// ApplySettings makes s the active preferences for this world and the window.
func ApplySettings(e *ecs.ECS, s SavedSettings) {
	SetMuted(e, s.Muted)
	fullscreen = s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// CurrentSettings returns the active preferences for this world.
func CurrentSettings(e *ecs.ECS) SavedSettings {
	return SavedSettings{
		Muted:      IsMuted(e),
		Fullscreen: fullscreen,
	}
}

// ToggleFullscreen switches between windowed and fullscreen and remembers the choice.
func ToggleFullscreen(e *ecs.ECS) {
	fullscreen = !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	saveSettings(e)
}

func saveSettings(e *ecs.ECS) {
	if settingsStore == nil {
		return
	}
	s := CurrentSettings(e)
	// errors are logged by the store
	_ = settingsStore.SaveSettings(&s)
}
