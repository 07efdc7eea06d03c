// Package config provides YAML-based gameplay configuration loading
// for the game.
package config

// GameConfig contains all tunable gameplay parameters.
type GameConfig struct {
	Ship      ShipConfig      `yaml:"ship"`
	Asteroids AsteroidsConfig `yaml:"asteroids"`
	Mining    MiningConfig    `yaml:"mining"`
	Weapon    WeaponConfig    `yaml:"weapon"`
}

// ShipConfig defines the player ship parameters.
type ShipConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Hull         int     `yaml:"hull"`          // Starting health
	MaxSpeed     float64 `yaml:"max_speed"`     // Cells per second
	Acceleration float64 `yaml:"acceleration"`  // Cells per second^2 while thrusting
	Braking      float64 `yaml:"braking"`       // Cells per second^2 drag with no thrust
}

// AsteroidsConfig defines asteroid spawning and damage parameters.
type AsteroidsConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	MaxCount        int     `yaml:"max_count"`         // Spawning is skipped above this
	SpawnMeanSecs   float64 `yaml:"spawn_mean_secs"`   // Mean interval between spawns
	SpawnJitterSecs float64 `yaml:"spawn_jitter_secs"` // Uniform +/- jitter around the mean
	MinFallSpeed    float64 `yaml:"min_fall_speed"`    // Cells per second, downward
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	MaxDrift        float64 `yaml:"max_drift"` // Max horizontal speed component
	PreciousChance  float64 `yaml:"precious_chance"`
	DamagePlain     int     `yaml:"damage_plain"`    // Hull damage on ship impact
	DamagePrecious  int     `yaml:"damage_precious"`
}

// MiningConfig defines mining unit behavior and scoring.
type MiningConfig struct {
	UnitWidth      int     `yaml:"unit_width"`
	UnitHeight     int     `yaml:"unit_height"`
	LaunchSpeed    float64 `yaml:"launch_speed"` // Cells per second, upward
	DurationSecs   float64 `yaml:"duration_secs"`
	RatePlain      float64 `yaml:"rate_plain"`    // Score per second
	RatePrecious   float64 `yaml:"rate_precious"`
	BonusPlain     int     `yaml:"bonus_plain"` // Completion bonus
	BonusPrecious  int     `yaml:"bonus_precious"`
	MaxActiveUnits int     `yaml:"max_active_units"` // In-flight plus attached
}

// WeaponConfig defines the pulse cannon.
type WeaponConfig struct {
	Enabled       bool    `yaml:"enabled"`
	PulseSpeed    float64 `yaml:"pulse_speed"`    // Cells per second, upward
	SpeedJitter   float64 `yaml:"speed_jitter"`   // Random extra speed per pulse
	CooldownTicks int     `yaml:"cooldown_ticks"` // Min ticks between pulses
}
