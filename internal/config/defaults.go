package config

import (
	_ "embed"
)

//go:embed defaults/jangam.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default gameplay configuration.
// Kept in sync with defaults/jangam.yaml as a fallback if the embedded
// YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Ship: ShipConfig{
			Width:        5,
			Height:       2,
			Hull:         3,
			MaxSpeed:     30.0,
			Acceleration: 60.0,
			Braking:      20.0,
		},
		Asteroids: AsteroidsConfig{
			Width:           4,
			Height:          2,
			MaxCount:        12,
			SpawnMeanSecs:   1.5,
			SpawnJitterSecs: 0.8,
			MinFallSpeed:    3.0,
			MaxFallSpeed:    8.0,
			MaxDrift:        2.0,
			PreciousChance:  0.15,
			DamagePlain:     1,
			DamagePrecious:  2,
		},
		Mining: MiningConfig{
			UnitWidth:      3,
			UnitHeight:     2,
			LaunchSpeed:    14.0,
			DurationSecs:   5.0,
			RatePlain:      5.0,
			RatePrecious:   20.0,
			BonusPlain:     10,
			BonusPrecious:  50,
			MaxActiveUnits: 1,
		},
		Weapon: WeaponConfig{
			Enabled:       true,
			PulseSpeed:    40.0,
			SpeedJitter:   12.0,
			CooldownTicks: 6,
		},
	}
}

// DefaultYAML returns the embedded default configuration YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
