package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/netviz/parameter"
)

// Config controls the optional sound output
type Config struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // master volume in [0,1]
}

// DefaultConfig returns sound disabled at the default volume
func DefaultConfig() Config {
	return Config{
		Enabled: false,
		Volume:  parameter.AudioDefaultVolume,
	}
}

// ApplyEnv overrides cfg from NETVIZ_AUDIO_ENABLED and NETVIZ_AUDIO_VOLUME (0-100)
// Unparseable values are ignored
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv("NETVIZ_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv("NETVIZ_AUDIO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = min(max(float64(val)/100.0, 0), 1)
		}
	}
}
