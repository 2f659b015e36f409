// Package config provides YAML-based game configuration loading for the
// isles platform.
package config

// MeadowConfig contains all configuration for the meadow collection game.
type MeadowConfig struct {
	Movement MeadowMovement `yaml:"movement"`
	Combo    MeadowCombo    `yaml:"combo"`
	Popups   MeadowPopups   `yaml:"popups"`
	Vanish   MeadowVanish   `yaml:"vanish"`
}

// MeadowMovement defines how the player walks the grid.
type MeadowMovement struct {
	StepIntervalMs int `yaml:"step_interval_ms"`
}

// MeadowCombo defines the collection combo chain.
type MeadowCombo struct {
	WindowMs    int   `yaml:"window_ms"`
	Multipliers []int `yaml:"multipliers"`
}

// MeadowPopups defines score popup lifetime.
type MeadowPopups struct {
	DurationMs int `yaml:"duration_ms"`
}

// MeadowVanish defines the vanishing tile cycle.
type MeadowVanish struct {
	CycleMs int `yaml:"cycle_ms"`
}

// CrashConfig contains all configuration for the letter-crash driving game.
type CrashConfig struct {
	Car     CrashCar     `yaml:"car"`
	Letters CrashLetters `yaml:"letters"`
	Events  CrashEvents  `yaml:"events"`
}

// CrashCar defines car handling parameters.
type CrashCar struct {
	Acceleration    float64 `yaml:"acceleration"`
	MaxSpeed        float64 `yaml:"max_speed"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	TurnRate        float64 `yaml:"turn_rate"`
	Friction        float64 `yaml:"friction"`
}

// CrashLetters defines how typed words spawn letters on the ground.
type CrashLetters struct {
	SpawnRadius float64 `yaml:"spawn_radius"`
	Spacing     float64 `yaml:"spacing"`
	HitRadius   float64 `yaml:"hit_radius"`
}

// CrashEvents defines event engine tunables.
type CrashEvents struct {
	LearnedThreshold int `yaml:"learned_threshold"`
}
