package engine

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/ray-caster/parameter"
	"github.com/lixenwraith/ray-caster/vmath"
	"github.com/lixenwraith/ray-caster/world"
)

var (
	ErrUnknownSetting = errors.New("unknown setting")
	ErrStartBlocked   = errors.New("start position is inside a wall")
)

// Start is the observer's initial placement
type Start struct {
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Heading float64 `toml:"heading"`
}

// Observer returns the observer at the start placement
func (s Start) Observer() Observer {
	return Observer{Pos: vmath.Vec2F{X: s.X, Y: s.Y}, Heading: s.Heading}
}

// Settings is the resolved startup configuration
type Settings struct {
	Render RenderConfig
	Start  Start
	Grid   *world.Grid
}

type mapSection struct {
	Rows []string `toml:"rows"`
}

type settingsFile struct {
	Render   RenderConfig      `toml:"render"`
	Observer Start             `toml:"observer"`
	Map      mapSection        `toml:"map"`
	Keys     map[string]string `toml:"keys"` // parsed by input.LoadKeyConfig
}

// DefaultSettings returns the reference map with the default config and start
func DefaultSettings() Settings {
	return Settings{
		Render: DefaultRenderConfig(),
		Start: Start{
			X:       parameter.StartX,
			Y:       parameter.StartY,
			Heading: parameter.StartHeading,
		},
		Grid: world.Reference(),
	}
}

// LoadSettings decodes TOML over the defaults and validates the result
// Absent keys keep their default values
func LoadSettings(data []byte) (Settings, error) {
	def := DefaultSettings()
	doc := settingsFile{
		Render:   def.Render,
		Observer: def.Start,
	}

	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return Settings{}, fmt.Errorf("settings parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Settings{}, fmt.Errorf("%s: %w", strings.Join(keys, ", "), ErrUnknownSetting)
	}

	s := Settings{Render: doc.Render, Start: doc.Observer, Grid: def.Grid}
	if len(doc.Map.Rows) > 0 {
		g, err := world.ParseGrid(doc.Map.Rows)
		if err != nil {
			return Settings{}, fmt.Errorf("map: %w", err)
		}
		s.Grid = g
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettingsFile reads and decodes a settings file
func LoadSettingsFile(path string) (Settings, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, nil, fmt.Errorf("settings read: %w", err)
	}
	s, err := LoadSettings(data)
	if err != nil {
		return Settings{}, nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, data, nil
}

// Validate checks the render config and that the observer starts on an empty cell
func (s Settings) Validate() error {
	if err := s.Render.Validate(); err != nil {
		return err
	}
	row, col := s.Start.Observer().Cell()
	if s.Grid.IsWall(row, col) {
		return fmt.Errorf("(%g, %g): %w", s.Start.X, s.Start.Y, ErrStartBlocked)
	}
	return nil
}

// WithMaze replaces the map with a generated maze and starts in its first room
// The heading faces the room's open corridor
func (s Settings) WithMaze(cfg world.MazeConfig) Settings {
	s.Grid = world.GenerateMaze(cfg)
	s.Start = Start{X: 1.5, Y: 1.5, Heading: 0}
	if s.Grid.IsWall(1, 2) {
		s.Start.Heading = math.Pi / 2
	}
	return s
}
