package renderer

import (
	"context"
	"math"
	"time"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/df07/go-cube-raytracer/pkg/core"
)

// ErrTypeCanceled is the error type returned when a probe pass is interrupted
const ErrTypeCanceled = "probe-canceled"

// unknownMaterial labels hits on shapes without a material
const unknownMaterial = "unknown"

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() core.Shape
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Frame is a row-major grid of linear RGB colors, row 0 at the top
type Frame struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrame allocates a black frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color of pixel (i, j)
func (f *Frame) At(i, j int) core.Vec3 {
	return f.Pixels[j*f.Width+i]
}

func (f *Frame) set(i, j int, c core.Vec3) {
	f.Pixels[j*f.Width+i] = c
}

// Prober casts one primary ray through every pixel centre and shades the first hit
type Prober struct {
	scene   Scene
	camera  *Camera
	width   int
	height  int
	workers int
	logger  core.Logger
}

// NewProber creates a prober for a width x height image
func NewProber(scene Scene, camera *Camera, width, height int) *Prober {
	return &Prober{
		scene:  scene,
		camera: camera,
		width:  width,
		height: height,
	}
}

// SetWorkers sets the number of row workers. Zero or less means one per CPU.
func (p *Prober) SetWorkers(n int) {
	p.workers = n
}

// SetLogger sets a logger for progress messages
func (p *Prober) SetLogger(logger core.Logger) {
	p.logger = logger
}

// rayRange is the admissible hit distance for primary rays
func rayRange() core.Interval {
	return core.NewInterval(0.001, math.Inf(1))
}

// RayColor shades a single ray. The returned hit is nil on a miss.
func (p *Prober) RayColor(ray core.Ray) (core.Vec3, *core.HitRecord) {
	var rec core.HitRecord
	if !p.scene.GetWorld().Hit(ray, rayRange(), &rec) {
		return p.backgroundGradient(ray), nil
	}

	facing := math.Abs(rec.Normal.Dot(ray.Direction.Normalize()))
	albedo := core.NewVec3(1, 1, 1)
	if rec.Material != nil {
		albedo = rec.Material.Albedo()
	}
	return albedo.Multiply(facing), &rec
}

// backgroundGradient blends the scene colors by the ray's vertical direction
func (p *Prober) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := p.scene.GetBackgroundColors()
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// ProbeRow shades row j into frame and returns the counts for that row
func (p *Prober) ProbeRow(j int, frame *Frame) RenderStats {
	var stats RenderStats
	for i := 0; i < p.width; i++ {
		color, hit := p.RayColor(p.camera.PixelRay(i, j, p.width, p.height))
		frame.set(i, j, color)
		stats.Rays++
		if hit == nil {
			continue
		}
		name := unknownMaterial
		if hit.Material != nil {
			name = hit.Material.Name()
		}
		stats.recordHit(name)
	}
	return stats
}

// Render probes the whole image using the worker pool. Cancelling ctx stops
// the pass; rows already finished are kept in the returned frame.
func (p *Prober) Render(ctx context.Context) (*Frame, RenderStats, error) {
	start := time.Now()
	frame := NewFrame(p.width, p.height)

	// Build the acceleration structure once before workers share it
	p.scene.GetWorld()

	pool := NewWorkerPool(p, p.height, p.workers)
	pool.Start(ctx)
	for j := 0; j < p.height; j++ {
		pool.SubmitTask(RowTask{Row: j, Frame: frame})
	}
	go pool.Stop()

	var stats RenderStats
	var canceled error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			canceled = result.Error
			continue
		}
		stats.Merge(result.Stats)
	}
	stats.Duration = time.Since(start)
	recordMetrics(stats)

	if p.logger != nil {
		p.logger.Printf("probed %dx%d with %d workers: %d rays, %d hits in %v",
			p.width, p.height, pool.GetNumWorkers(), stats.Rays, stats.Hits, stats.Duration)
	}

	if canceled != nil {
		return frame, stats, errors.New("probe canceled").
			WithType(ErrTypeCanceled).
			WithTag("rays", stats.Rays).
			Wrap(canceled)
	}
	return frame, stats, nil
}
