package batch

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"tri-rasterizer/internal/mathutil"
	"tri-rasterizer/internal/output"
	"tri-rasterizer/internal/raster"
	"tri-rasterizer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Scene     *scene.Scene
	OutputDir string
	Format    output.Format
	Width     int
	Height    int
	Scale     int
	Near      float64
	Far       float64
	FOV       float64
	Aspect    float64
	Eye       mgl64.Vec3
	Angle     float64 // rotation of frame 0, degrees about Z
	AngleStep float64 // added per frame
	Frames    int
	Workers   int
	Logger    *slog.Logger
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Angle   float64
	Path    string
	Stats   raster.DrawStats
	Success bool
	Error   string
}

// FrameAngle returns the model rotation of frame i, wrapped into [0, 360).
func (c Config) FrameAngle(i int) float64 {
	return mathutil.NormalizeAngle(c.Angle + float64(i)*c.AngleStep)
}

// FramePath returns the output file of frame i.
func (c Config) FramePath(i int) string {
	return filepath.Join(c.OutputDir, fmt.Sprintf("frame_%03d%s", i, c.Format.Ext()))
}

// Run renders all frames using a worker pool. Every frame gets its own
// rasterizer, so workers never share a frame or depth buffer.
func Run(cfg Config) []Result {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					log.Info("progress", "done", p, "total", total, "frames_per_sec", float64(p)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range frameChan {
				results[i] = processFrame(cfg, i)
				if !results[i].Success {
					log.Warn("frame failed", "frame", i, "err", results[i].Error)
				}
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func processFrame(cfg Config, i int) Result {
	angle := cfg.FrameAngle(i)
	res := Result{Frame: i, Angle: angle}

	img, stats, err := RenderFrame(cfg, angle)
	res.Stats = stats
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Path = cfg.FramePath(i)
	if err := output.WriteFile(res.Path, img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// RenderFrame rasterizes the scene with the model rotated by angle degrees
// about Z and returns the frame, upscaled by cfg.Scale.
func RenderFrame(cfg Config, angle float64) (*image.NRGBA, raster.DrawStats, error) {
	if cfg.Scene == nil {
		return nil, raster.DrawStats{}, fmt.Errorf("batch: no scene")
	}

	r, err := raster.NewRasterizer(cfg.Width, cfg.Height)
	if err != nil {
		return nil, raster.DrawStats{}, err
	}
	if err := r.SetDepthRange(cfg.Near, cfg.Far); err != nil {
		return nil, raster.DrawStats{}, err
	}

	pos := r.LoadPositions(cfg.Scene.Positions)
	ind := r.LoadIndices(cfg.Scene.Indices)
	col := r.LoadColors(cfg.Scene.Colors)

	r.Clear(raster.BufColor | raster.BufDepth)
	r.SetModel(mathutil.ModelRotateZ(angle))
	r.SetView(mathutil.ViewTranslate(cfg.Eye))
	r.SetProjection(mathutil.Projection(cfg.FOV, cfg.Aspect, cfg.Near, cfg.Far))

	stats, err := r.Draw(pos, ind, col, raster.PrimitiveTriangle)
	if err != nil {
		return nil, stats, fmt.Errorf("batch: draw: %w", err)
	}

	img := output.ToNRGBA(r.FrameBuffer(), r.Width(), r.Height())
	return output.Upscale(img, cfg.Scale), stats, nil
}
