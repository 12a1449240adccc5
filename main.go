package main

import (
	"fmt"
	"image"
	"math/rand"
	"os"
	"strings"

	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/heatwell/zonedisplay/internal/config"
	"github.com/heatwell/zonedisplay/internal/output"
	"github.com/heatwell/zonedisplay/internal/render"
	"github.com/heatwell/zonedisplay/internal/state"
)

var outDir = flag.String("out", "", "output directory (overrides config, default docs/images)")
var scale = flag.Int("scale", 0, "integer upscale factor (overrides config, default 2)")
var seed = flag.Int64("seed", 1, "seed for synthetic demo histories")
var only = flag.String("only", "", "comma separated frame names to render (default all)")
var cfgPath = flag.String("config", "", "optional yaml config path")
var fbDev = flag.String("fb", "", "blit the last rendered frame to this framebuffer device (e.g. /dev/fb0)")
var debug = flag.Bool("debug", false, "enable debug logging")
var stdioLog = flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file")

func main() {
	flag.Parse()

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	logger := zap.NewNop()
	if *debug {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, *cfgPath)
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *scale > 0 {
		cfg.Scale = *scale
	}

	th := render.Thresholds{
		FaultBandLow:  cfg.FaultBand.Low,
		FaultBandHigh: cfg.FaultBand.High,
		SafetyScore:   cfg.SafetyScore,
		HistoryMin:    cfg.HistoryBounds.Min,
		HistoryMax:    cfg.HistoryBounds.Max,
	}
	fonts := render.NewFontProvider(cfg.FontPath, logger)
	display := render.NewDisplay(th)

	writer, err := output.NewWriter(fs, cfg.OutputDir, cfg.Scale)
	if err != nil {
		fmt.Println("output error:", err)
		os.Exit(1)
	}

	wanted := frameFilter(*only)
	rng := rand.New(rand.NewSource(*seed))

	var last *image.RGBA
	for _, f := range state.DemoFrames(rng) {
		if wanted != nil && !wanted[f.Name] {
			continue
		}
		// Fresh surface per frame so no stale pixels carry over.
		canvas := render.NewCanvas(fonts)
		display.Render(f.State, canvas)
		path, err := writer.Save(f.Name, canvas.Image())
		if err != nil {
			logger.Error("save failed", zap.String("frame", f.Name), zap.Error(err))
			fmt.Println("save error:", err)
			os.Exit(1)
		}
		logger.Debug("frame rendered", zap.String("frame", f.Name), zap.String("path", path))
		fmt.Println("Generated:", path)
		last = canvas.Image()
	}

	if last == nil {
		fmt.Println("no frames matched:", *only)
		os.Exit(2)
	}
	fmt.Println("All images saved to " + cfg.OutputDir + "/")

	if *fbDev != "" {
		if err := previewFB(*fbDev, last); err != nil {
			logger.Error("framebuffer preview failed", zap.Error(err))
			fmt.Println("framebuffer preview error:", err)
		}
	}
}

func frameFilter(arg string) map[string]bool {
	if strings.TrimSpace(arg) == "" {
		return nil
	}
	wanted := make(map[string]bool)
	for _, name := range strings.Split(arg, ",") {
		if name = strings.TrimSpace(name); name != "" {
			wanted[name] = true
		}
	}
	return wanted
}
