// SPDX-License-Identifier: EPL-2.0

package process

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AudioFormat names an output container format.
type AudioFormat string

const (
	FormatWAV  AudioFormat = "wav"
	FormatMP3  AudioFormat = "mp3"
	FormatOgg  AudioFormat = "ogg"
	FormatAIFF AudioFormat = "aiff"
)

// Extension returns the file extension for the format, without the dot.
func (f AudioFormat) Extension() string {
	return string(f)
}

// OutputConfig controls where and how processed files are written.
type OutputConfig struct {
	// Format of the output file. Empty keeps the input's format.
	Format AudioFormat `yaml:"format"`
	// BitDepth of the output samples: 16, 24 or 32.
	BitDepth int `yaml:"bit_depth"`
	// OutputDir overrides the input file's directory when non-empty. The
	// directory must already exist.
	OutputDir string `yaml:"output_dir"`
	// Overwrite allows replacing an existing output file.
	Overwrite bool `yaml:"overwrite"`
	// FilenameSuffix is appended to the input filename stem.
	FilenameSuffix string `yaml:"filename_suffix"`
}

// DefaultOutputConfig returns 16-bit output next to the input file with a
// "_processed" suffix.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		BitDepth:       16,
		FilenameSuffix: "_processed",
	}
}

// Validate checks the output settings.
func (c OutputConfig) Validate() error {
	if err := ValidateNonEmptyString(c.FilenameSuffix, "Filename suffix"); err != nil {
		return err
	}

	if c.OutputDir != "" {
		if err := ValidateDirectoryExists(c.OutputDir, "Output directory"); err != nil {
			return err
		}
	}

	switch c.BitDepth {
	case 16, 24, 32:
	default:
		return configError("Bit depth", "Bit depth must be one of 16, 24, 32 (got %d)", c.BitDepth)
	}

	return nil
}

// ProcessingConfig is the immutable snapshot a Pipeline runs from. A nil
// stage configuration disables that stage. Reconfiguration swaps the
// whole snapshot atomically; a snapshot referenced by an in-flight batch
// is never mutated.
type ProcessingConfig struct {
	Resampler       *ResamplerConfig       `yaml:"resampler,omitempty"`
	ChannelMixer    *ChannelMixerConfig    `yaml:"channel_mixer,omitempty"`
	Normalizer      *NormalizerConfig      `yaml:"normalizer,omitempty"`
	SilenceDetector *SilenceDetectorConfig `yaml:"silence_detector,omitempty"`
	Output          OutputConfig           `yaml:"output"`
}

// DefaultProcessingConfig returns a snapshot with every stage disabled
// and default output settings.
func DefaultProcessingConfig() ProcessingConfig {
	return ProcessingConfig{
		Output: DefaultOutputConfig(),
	}
}

// Validate checks every present stage configuration and the output
// settings, surfacing the first failure.
func (c ProcessingConfig) Validate() error {
	if c.Resampler != nil {
		if err := c.Resampler.Validate(); err != nil {
			return err
		}
	}

	if c.ChannelMixer != nil {
		if err := c.ChannelMixer.Validate(); err != nil {
			return err
		}
	}

	if c.Normalizer != nil {
		if err := c.Normalizer.Validate(); err != nil {
			return err
		}
	}

	if c.SilenceDetector != nil {
		if err := c.SilenceDetector.Validate(); err != nil {
			return err
		}
	}

	return c.Output.Validate()
}

// LoadConfig reads a ProcessingConfig from a YAML file and validates it.
// Fields the file omits keep their defaults.
func LoadConfig(path string) (ProcessingConfig, error) {
	cfg := DefaultProcessingConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, wrapError(KindFileIO, err, "reading config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, wrapError(KindConfiguration, err, "parsing config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the configuration to a YAML file.
func SaveConfig(path string, cfg ProcessingConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return wrapError(KindConfiguration, err, "encoding config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrapError(KindFileIO, err, "writing config %s", path)
	}

	return nil
}
