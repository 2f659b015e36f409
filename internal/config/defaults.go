package config

import (
	_ "embed"
)

//go:embed defaults/meadow.yaml
var defaultMeadowYAML []byte

//go:embed defaults/crash.yaml
var defaultCrashYAML []byte

// DefaultMeadowConfig returns the default meadow configuration.
func DefaultMeadowConfig() MeadowConfig {
	return MeadowConfig{
		Movement: MeadowMovement{
			StepIntervalMs: 280,
		},
		Combo: MeadowCombo{
			WindowMs:    2000,
			Multipliers: []int{1, 2, 3, 5},
		},
		Popups: MeadowPopups{
			DurationMs: 1200,
		},
		Vanish: MeadowVanish{
			CycleMs: 4000,
		},
	}
}

// DefaultCrashConfig returns the default letter-crash configuration.
func DefaultCrashConfig() CrashConfig {
	return CrashConfig{
		Car: CrashCar{
			Acceleration:    30,
			MaxSpeed:        10,
			BoostMultiplier: 2,
			TurnRate:        5,
			Friction:        8,
		},
		Letters: CrashLetters{
			SpawnRadius: 30,
			Spacing:     3,
			HitRadius:   2.5,
		},
		Events: CrashEvents{
			LearnedThreshold: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "meadow":
		return defaultMeadowYAML
	case "crash":
		return defaultCrashYAML
	default:
		return nil
	}
}
