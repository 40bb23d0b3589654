package systems

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *GdataStore {
	appName := fmt.Sprintf("skydodge_test_%d", time.Now().UnixNano())
	store, err := InitPersistence(appName)
	if err != nil {
		return nil
	}

	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})
	return store
}

func TestGdataStore_BestScoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	if store == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	if got := store.LoadBestScore(); got != 0 {
		t.Errorf("fresh store best = %d, want 0", got)
	}
	if err := store.SaveBestScore(140); err != nil {
		t.Fatalf("SaveBestScore: %v", err)
	}
	if got := store.LoadBestScore(); got != 140 {
		t.Errorf("best = %d, want 140", got)
	}
	if err := store.ClearBestScore(); err != nil {
		t.Fatalf("ClearBestScore: %v", err)
	}
	if got := store.LoadBestScore(); got != 0 {
		t.Errorf("best after clear = %d, want 0", got)
	}
}

func TestGdataStore_SettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	if store == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	if s := store.LoadSettings(); s != nil {
		t.Errorf("fresh store settings = %+v, want nil", s)
	}
	if err := store.SaveSettings(&SavedSettings{Muted: true}); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	s := store.LoadSettings()
	if s == nil || !s.Muted || s.Fullscreen {
		t.Errorf("settings = %+v, want muted only", s)
	}
}

func TestGdataStore_NilIsSafe(t *testing.T) {
	var store *GdataStore
	if store.LoadBestScore() != 0 {
		t.Error("nil store returned a best score")
	}
	if err := store.SaveBestScore(10); err != nil {
		t.Errorf("nil store SaveBestScore: %v", err)
	}
	if store.LoadSettings() != nil {
		t.Error("nil store returned settings")
	}
}

func TestDecodeBestScore(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int
	}{
		{"empty", nil, 0},
		{"number", []byte("260"), 260},
		{"corrupt", []byte("{oops"), 0},
		{"string", []byte(`"260"`), 0},
		{"negative", []byte("-20"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeBestScore(tt.data); got != tt.want {
				t.Errorf("decodeBestScore(%q) = %d, want %d", tt.data, got, tt.want)
			}
		})
	}
}
