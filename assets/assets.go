package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/automoto/yardwalk/config"
	"github.com/lafriks/go-tiled"
	"github.com/rs/zerolog/log"
)

//go:embed all:levels
var assetFS embed.FS

// PlayerSpawn is where the player body is created, in world units on the floor plane.
type PlayerSpawn struct {
	X, Z float64
	Name string
}

// PropSpawn describes one prop placed in the map. Zero sizes fall back to the
// prop type's configured dimensions.
type PropSpawn struct {
	Kind       config.PropKind
	X, Z       float64
	Size       float64 // crate edge or barrel height
	Radius     float64 // barrels only
	DropHeight float64 // overrides config.Props.DropHeight when set
}

// Level is the walkable yard decoded from a Tiled map. One tile is one world
// unit and the map centre sits at the world origin.
type Level struct {
	Name         string
	Path         string
	HalfSize     float64 // floor extends this far from the origin along X and Z
	PlayerSpawns []PlayerSpawn
	Props        []PropSpawn
}

// Spawn returns the first player spawn, or the origin for maps without one.
func (l *Level) Spawn() PlayerSpawn {
	if len(l.PlayerSpawns) == 0 {
		return PlayerSpawn{}
	}
	return l.PlayerSpawns[0]
}

// LoadLevel decodes a map from the embedded levels directory.
func LoadLevel(levelPath string) (*Level, error) {
	return LoadLevelFS(assetFS, levelPath)
}

// MustLoadLevel is LoadLevel for fixed, embedded maps.
func MustLoadLevel(levelPath string) *Level {
	level, err := LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LevelPaths lists every .tmx file in the embedded levels directory.
func LevelPaths() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			paths = append(paths, "levels/"+entry.Name())
		}
	}
	return paths, nil
}

// LoadLevelFS decodes a map from fsys so tests and tools can use os.DirFS.
func LoadLevelFS(fsys fs.FS, levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load level %s: tile size must be positive", levelPath)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	halfW := float64(levelMap.Width) / 2
	halfH := float64(levelMap.Height) / 2

	// Pixel coordinates to world XZ; Tiled's y axis runs down the map, which is +Z.
	toWorld := func(o *tiled.Object) (float64, float64) {
		cx := (o.X + o.Width/2) / tileW
		cy := (o.Y + o.Height/2) / tileH
		return cx - halfW, cy - halfH
	}

	level := &Level{
		Name:     levelMap.Properties.GetString("name"),
		Path:     levelPath,
		HalfSize: max(halfW, halfH),
	}
	if level.Name == "" {
		level.Name = levelPath
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				x, z := toWorld(o)
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{X: x, Z: z, Name: o.Name})
			}
		case "Props":
			for _, o := range og.Objects {
				kind := config.PropKind(o.Class)
				if kind == "" {
					kind = config.PropKind(o.Type) //nolint:staticcheck // older TMX files use type=
				}
				if _, ok := config.Props.Types[kind]; !ok {
					log.Warn().Str("level", levelPath).Int("object", int(o.ID)).Str("class", string(kind)).Msg("skipping unknown prop")
					continue
				}
				x, z := toWorld(o)
				spawn := PropSpawn{
					Kind:       kind,
					X:          x,
					Z:          z,
					Size:       o.Properties.GetFloat("size"),
					Radius:     o.Properties.GetFloat("radius"),
					DropHeight: o.Properties.GetFloat("dropHeight"),
				}
				if h := o.Properties.GetFloat("height"); h > 0 {
					spawn.Size = h
				}
				level.Props = append(level.Props, spawn)
			}
		}
	}

	// Stable spawn order regardless of object ids
	sort.SliceStable(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
	})

	return level, nil
}
