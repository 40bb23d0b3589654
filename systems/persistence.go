package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const (
	bestScoreKey = "bestScore"
	settingsKey  = "settings"
)

// SavedSettings represents the preferences stored on disk
type SavedSettings struct {
	Muted      bool `json:"muted"`
	Fullscreen bool `json:"fullscreen"`
}

// GdataStore persists the best score and settings with gdata. It satisfies
// components.BestScoreStore.
type GdataStore struct {
	manager *gdata.Manager
}

// InitPersistence opens the platform storage for appName.
func InitPersistence(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return nil, err
	}
	return &GdataStore{manager: m}, nil
}

// LoadBestScore returns the stored best score. Missing or corrupt data
// counts as zero.
func (s *GdataStore) LoadBestScore() int {
	if s == nil || s.manager == nil {
		return 0
	}

	data, err := s.manager.LoadItem(bestScoreKey)
	if err != nil {
		log.Printf("Warning: Could not load best score: %v", err)
		return 0
	}
	return decodeBestScore(data)
}

// SaveBestScore writes score under the bestScore key.
func (s *GdataStore) SaveBestScore(score int) error {
	if s == nil || s.manager == nil {
		return nil
	}

	data, err := json.Marshal(score)
	if err != nil {
		log.Printf("Warning: Could not serialize best score: %v", err)
		return err
	}
	if err := s.manager.SaveItem(bestScoreKey, data); err != nil {
		log.Printf("Warning: Could not save best score: %v", err)
		return err
	}
	return nil
}

// ClearBestScore forgets the stored best score.
func (s *GdataStore) ClearBestScore() error {
	if s == nil || s.manager == nil {
		return nil
	}

	// Save empty data to clear the score
	if err := s.manager.SaveItem(bestScoreKey, nil); err != nil {
		log.Printf("Warning: Could not clear best score: %v", err)
		return err
	}
	return nil
}

// LoadSettings returns the stored preferences, or nil if there are none.
func (s *GdataStore) LoadSettings() *SavedSettings {
	if s == nil || s.manager == nil {
		return nil
	}

	data, err := s.manager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil
	}
	return &settings
}

// SaveSettings saves preferences to disk
func (s *GdataStore) SaveSettings(settings *SavedSettings) error {
	if s == nil || s.manager == nil || settings == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := s.manager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

func decodeBestScore(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	var score int
	if err := json.Unmarshal(data, &score); err != nil {
		log.Printf("Warning: Could not parse best score: %v", err)
		return 0
	}
	if score < 0 {
		log.Printf("Warning: Ignoring negative best score %d", score)
		return 0
	}
	return score
}

// MemoryStore keeps the best score in memory. It is used when platform
// storage is unavailable and in tests.
type MemoryStore struct {
	Best  int
	Saves int
	Err   error // returned from SaveBestScore when set
}

func (m *MemoryStore) LoadBestScore() int {
	return m.Best
}

func (m *MemoryStore) SaveBestScore(score int) error {
	if m.Err != nil {
		return m.Err
	}
	m.Best = score
	m.Saves++
	return nil
}
