// Package config handles converter configuration loading and management.
package config

// Config holds all converter settings.
type Config struct {
	Bake    BakeConfig    `yaml:"bake"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// BakeConfig holds texture baking parameters.
type BakeConfig struct {
	TextureSize      int    `yaml:"texture_size"`       // final texture resolution
	UpscaleFactor    int    `yaml:"upscale_factor"`     // raster oversampling
	MedianFilterSize int    `yaml:"median_filter_size"` // rank filter window
	BlurFilterRadius int    `yaml:"blur_filter_radius"` // gaussian blur radius
	Origin           string `yaml:"origin"`             // top-left or bottom-left
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Path       string `yaml:"path"`        // output .glb path
	DumpBuffer string `yaml:"dump_buffer"` // optional PNG dump of the raster buffer
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Bake: BakeConfig{
			TextureSize:      1024,
			UpscaleFactor:    2,
			MedianFilterSize: 3,
			BlurFilterRadius: 1,
			Origin:           "bottom-left",
		},
		Output: OutputConfig{
			Path:       "output.glb",
			DumpBuffer: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
