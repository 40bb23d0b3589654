package assets

import (
	"embed"
	"fmt"
	"sort"

	"github.com/lafriks/go-tiled"
)

//go:embed all:playfield
var assetFS embed.FS

// DefaultPlayfieldPath is the layout bundled with the game.
const DefaultPlayfieldPath = "playfield/playfield.tmx"

type PlayerSpawn struct {
	X float64
	Y float64
}

type CloudSpawn struct {
	X       float64
	Y       float64
	Speed   float64
	Variant int
}

// Playfield is the static layout of the play area: its size, where the
// player starts and the decorative clouds.
type Playfield struct {
	Name        string
	Title       string
	Width       int
	Height      int
	PlayerSpawn PlayerSpawn
	Clouds      []CloudSpawn
}

type PlayfieldLoader struct{}

func NewPlayfieldLoader() *PlayfieldLoader {
	return &PlayfieldLoader{}
}

func (l *PlayfieldLoader) LoadPlayfield(path string) (*Playfield, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("failed to load playfield %s: %w", path, err)
	}

	pf := &Playfield{
		Name:   path,
		Title:  levelMap.Properties.GetString("title"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
		Clouds: []CloudSpawn{},
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				pf.PlayerSpawn = PlayerSpawn{X: o.X, Y: o.Y}
				spawnFound = true
			}
		case "Clouds":
			for _, o := range og.Objects {
				pf.Clouds = append(pf.Clouds, CloudSpawn{
					X:       o.X,
					Y:       o.Y,
					Speed:   o.Properties.GetFloat("speed"),
					Variant: o.Properties.GetInt("variant"),
				})
			}
			// Draw back to front by speed so slower (farther) clouds sit behind
			sort.SliceStable(pf.Clouds, func(i, j int) bool {
				return pf.Clouds[i].Speed < pf.Clouds[j].Speed
			})
		}
	}

	if pf.Width <= 0 || pf.Height <= 0 {
		return nil, fmt.Errorf("playfield %s has no size", path)
	}
	if !spawnFound {
		return nil, fmt.Errorf("playfield %s has no PlayerSpawn object", path)
	}

	return pf, nil
}
