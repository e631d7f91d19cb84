package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"tri-rasterizer/internal/batch"
	"tri-rasterizer/internal/config"
	"tri-rasterizer/internal/output"
	"tri-rasterizer/internal/raster"
	"tri-rasterizer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Path to scene JSON (default: built-in two-triangle scene)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Image format: png, webp, tga or bmp (default: png)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 1)")
	angle := flag.Float64("angle", 0, "Model rotation of the first frame, degrees about Z")
	step := flag.Float64("step", 0, "Rotation added per frame, degrees (default: 10)")
	size := flag.Int("size", 0, "Frame width and height in pixels (default: 700)")
	scale := flag.Int("scale", 0, "Nearest-neighbor upscale factor for written images (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Log per-draw rasterizer details")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	raster.SetLogger(log)

	// Load config
	var cfg config.Config
	baseDir := ""
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		baseDir = filepath.Dir(*configFile)
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneFile: *sceneFile,
		OutputDir: *outputDir,
		Format:    *format,
		Size:      *size,
		Scale:     *scale,
		Frames:    *frames,
		Angle:     *angle,
		AngleStep: *step,
		Workers:   *workers,
	}, baseDir)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	imgFormat, _ := output.ParseFormat(cfg.Format)

	// Load scene
	sc := scene.Default()
	if cfg.SceneFile != "" {
		var err error
		sc, err = scene.Load(cfg.SceneFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	// Print summary
	fmt.Printf("Triangle rasterizer → %s\n", imgFormat)
	fmt.Printf("Scene: %d vertices, %d triangles\n", len(sc.Positions), len(sc.Indices))
	fmt.Printf("Frames: %d at %dx%d (x%d), Workers: %d\n", cfg.Frames, cfg.Width, cfg.Height, cfg.Scale, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		Scene:     sc,
		OutputDir: cfg.OutputDir,
		Format:    imgFormat,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Scale:     cfg.Scale,
		Near:      cfg.Near,
		Far:       cfg.Far,
		FOV:       cfg.FOV,
		Aspect:    cfg.Aspect,
		Eye:       mgl64.Vec3(cfg.Eye),
		Angle:     cfg.Angle,
		AngleStep: cfg.AngleStep,
		Frames:    cfg.Frames,
		Workers:   cfg.Workers,
		Logger:    log,
	}

	results := batch.Run(batchCfg)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	degenerate := 0
	var errors []batch.Result
	for _, r := range results {
		degenerate += r.Stats.Degenerate
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))
	if degenerate > 0 {
		fmt.Printf("Degenerate triangles skipped: %d\n", degenerate)
	}

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %03d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
