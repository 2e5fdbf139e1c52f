// instanttexture converts vertex-colored .obj meshes to uv-mapped,
// textured .glb meshes.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dylanebert/InstantTexture/internal/config"
	"github.com/dylanebert/InstantTexture/internal/convert"
	"github.com/dylanebert/InstantTexture/internal/logger"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}
	input := flag.Arg(0)

	c, err := convert.New(cfg)
	if err != nil {
		logger.Error("failed to create converter", zap.Error(err))
		os.Exit(1)
	}

	output, err := c.Convert(input, cfg.Output.Path)
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("done", zap.String("output", output))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `instanttexture - bake vertex colors into a textured .glb

Usage:
  instanttexture [options] <input.obj>

Options:
  -o <path>            Output .glb path (default output.glb)
  -texture-size <n>    Final texture resolution (default 1024)
  -upscale <n>         Raster oversampling factor (default 2)
  -median <n>          Median filter window (default 3)
  -blur <n>            Gaussian blur radius (default 1)
  -origin <o>          Texture origin: top-left or bottom-left
  -dump-buffer <path>  Write the filled raster buffer as PNG
  -config <path>       Config file path
  -debug               Enable debug logging

Examples:
  instanttexture model.obj
  instanttexture -o assets/model.glb -texture-size 512 model.obj`)
}
