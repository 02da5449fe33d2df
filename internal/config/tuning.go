package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tuning holds every knob of a simulation run.
type Tuning struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	WalkDistance int `yaml:"walk_distance"`
	MaxPasses    int `yaml:"max_passes"`

	Targeting Targeting `yaml:"targeting"`
	Vaults    Vaults    `yaml:"vaults"`

	LogLevel string `yaml:"log_level"`

	Population []Spawn `yaml:"population"`
}

// Targeting overrides the default reach of the sized forms.
type Targeting struct {
	BeamReach   int `yaml:"beam_reach"`
	BurstRadius int `yaml:"burst_radius"`
	OuterRadius int `yaml:"outer_radius"`
}

// Vaults controls the walled rooms generated around the population.
type Vaults struct {
	Count       int `yaml:"count"`
	MinLeafSize int `yaml:"min_leaf_size"`
	MaxLeafSize int `yaml:"max_leaf_size"`
	Padding     int `yaml:"padding"`
}

// Spawn places one creature, or one creature per listed cell when Cells is
// set (a precomputed footprint such as a vault wall).
type Spawn struct {
	Species string   `yaml:"species"`
	X       int      `yaml:"x"`
	Y       int      `yaml:"y"`
	Player  bool     `yaml:"player"`
	Faction string   `yaml:"faction"`
	Cells   [][2]int `yaml:"cells"`
}

// Default returns the reference arena: 45x45, the player in the middle and a
// handful of creatures around a small vault.
func Default() Tuning {
	return Tuning{
		Width:        45,
		Height:       45,
		Seed:         0,
		WalkDistance: 1,
		MaxPasses:    64,
		Targeting: Targeting{
			BeamReach:   45,
			BurstRadius: 3,
			OuterRadius: 10,
		},
		Vaults: Vaults{
			Count:       2,
			MinLeafSize: 8,
			MaxLeafSize: 20,
			Padding:     1,
		},
		LogLevel: "info",
		Population: []Spawn{
			{Species: "terminal", X: 22, Y: 22, Player: true, Faction: "saintly"},
			{Species: "scion", X: 18, Y: 20, Faction: "ordered"},
			{Species: "shrike", X: 27, Y: 24, Faction: "feral"},
			{Species: "apiarist", X: 20, Y: 28, Faction: "feral"},
			{Species: "tinker", X: 30, Y: 15, Faction: "ordered"},
			{Species: "harmonizer", X: 12, Y: 12, Faction: "vile"},
			{Species: "wisp", X: 25, Y: 18},
			{Species: "wall", Cells: [][2]int{
				{14, 30}, {15, 30}, {16, 30}, {17, 30}, {18, 30},
				{14, 31}, {18, 31},
				{14, 32}, {15, 32}, {17, 32}, {18, 32},
			}},
		},
	}
}

// Load reads a YAML tuning file over the defaults.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	// An explicit population replaces the default one rather than merging.
	t.Population = nil
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Validate rejects tunings no simulation can run on.
func (t Tuning) Validate() error {
	if t.Width <= 0 || t.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", t.Width, t.Height)
	}
	if t.WalkDistance < 0 {
		return fmt.Errorf("walk_distance %d must not be negative", t.WalkDistance)
	}
	if t.MaxPasses <= 0 {
		return fmt.Errorf("max_passes %d must be positive", t.MaxPasses)
	}
	if t.Vaults.Count < 0 || t.Vaults.Padding < 0 {
		return fmt.Errorf("vaults: count %d and padding %d must not be negative", t.Vaults.Count, t.Vaults.Padding)
	}
	if t.Vaults.Count > 0 && t.Vaults.MinLeafSize < 3+2*t.Vaults.Padding {
		return fmt.Errorf("vaults: min_leaf_size %d cannot hold a 3x3 room with padding %d", t.Vaults.MinLeafSize, t.Vaults.Padding)
	}
	players := 0
	for _, s := range t.Population {
		if s.Player {
			players++
		}
	}
	if players != 1 {
		return fmt.Errorf("population has %d players, want exactly 1", players)
	}
	return nil
}

// Level parses LogLevel, falling back to info.
func (t Tuning) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(t.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
