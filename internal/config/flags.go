package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagOutput     = flag.String("o", "", "Output .glb path")
	flagTexture    = flag.Int("texture-size", 0, "Final texture resolution")
	flagUpscale    = flag.Int("upscale", 0, "Raster buffer oversampling factor")
	flagMedian     = flag.Int("median", 0, "Median filter window size")
	flagBlur       = flag.Int("blur", -1, "Gaussian blur radius")
	flagOrigin     = flag.String("origin", "", "Texture origin: top-left or bottom-left")
	flagDumpBuffer = flag.String("dump-buffer", "", "Write the filled raster buffer to this PNG path")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagTexture > 0 {
		cfg.Bake.TextureSize = *flagTexture
	}
	if *flagUpscale > 0 {
		cfg.Bake.UpscaleFactor = *flagUpscale
	}
	if *flagMedian > 0 {
		cfg.Bake.MedianFilterSize = *flagMedian
	}
	if *flagBlur >= 0 {
		cfg.Bake.BlurFilterRadius = *flagBlur
	}
	if *flagOrigin != "" {
		cfg.Bake.Origin = *flagOrigin
	}
	if *flagDumpBuffer != "" {
		cfg.Output.DumpBuffer = *flagDumpBuffer
	}
}
