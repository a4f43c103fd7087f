package game

import (
	"testing"

	"snake-arena/game/types"
)

func TestDefaultConfigLayout(t *testing.T) {
	cfg := DefaultConfig(ModeVersusAI)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate: %v", err)
	}
	if cfg.PlayerSpawn != (types.Point{X: 12, Y: 12}) {
		t.Errorf("Expected player spawn (12,12), got %v", cfg.PlayerSpawn)
	}
	want := []types.Point{{X: 5, Y: 5}, {X: 19, Y: 5}, {X: 5, Y: 19}}
	if len(cfg.AISpawns) != len(want) {
		t.Fatalf("Expected %d AI spawns, got %v", len(want), cfg.AISpawns)
	}
	for i := range want {
		if cfg.AISpawns[i] != want[i] {
			t.Errorf("AI spawn %d: expected %v, got %v", i, want[i], cfg.AISpawns[i])
		}
	}

	single := DefaultConfig(ModeSinglePlayer)
	if len(single.AISpawns) != 0 {
		t.Errorf("Expected no AI spawns in single mode, got %v", single.AISpawns)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.GridCount = 3; c.PlayerSpawn = types.Point{X: 1, Y: 1}; c.AISpawns = nil }},
		{"zero player delay", func(c *Config) { c.PlayerMoveDelay = 0 }},
		{"zero ai delay", func(c *Config) { c.AIMoveDelay = 0 }},
		{"zero length", func(c *Config) { c.InitialLength = 0 }},
		{"player off grid", func(c *Config) { c.PlayerSpawn = types.Point{X: 25, Y: 0} }},
		{"ai off grid", func(c *Config) { c.AISpawns[1] = types.Point{X: -1, Y: 3} }},
		{"ai on player", func(c *Config) { c.AISpawns[0] = c.PlayerSpawn }},
		{"ai duplicate", func(c *Config) { c.AISpawns[2] = c.AISpawns[0] }},
		{"bad mode", func(c *Config) { c.Mode = Mode(9) }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig(ModeVersusAI)
		tt.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeSinglePlayer, ModeVersusAI} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q): expected %v, got %v (%v)", m.String(), m, got, err)
		}
	}
	if _, err := ParseMode("coop"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestLayoutFollowsGridCount(t *testing.T) {
	cfg := DefaultConfig(ModeVersusAI)
	cfg.GridCount = 40
	cfg.Layout()
	if cfg.PlayerSpawn != (types.Point{X: 20, Y: 20}) || cfg.AISpawns[1] != (types.Point{X: 34, Y: 5}) {
		t.Errorf("Unexpected layout for 40: %v %v", cfg.PlayerSpawn, cfg.AISpawns)
	}
}
