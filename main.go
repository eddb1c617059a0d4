package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"syscall"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/df07/go-cube-raytracer/pkg/renderer"
	"github.com/df07/go-cube-raytracer/pkg/scene"
	"github.com/segmentio/encoding/json"
)

// Keeps the config field names intact under obfuscating builds so cli options stay readable.
var _ = reflect.TypeOf(config{})

type config struct {
	SceneFile   string  `cli:"" env:"CUBETRACER_SCENE_FILE"   help:"JSON scene file. Empty probes the built-in scene."`
	Width       int     `cli:"" env:"CUBETRACER_WIDTH"        help:"Image width in characters. Zero keeps the scene's width."`
	AspectRatio float64 `cli:"" env:"CUBETRACER_ASPECT_RATIO" help:"Image aspect ratio. Zero keeps the scene's ratio."`
	Workers     int     `cli:"" env:"CUBETRACER_WORKERS"      help:"Number of row workers. Zero uses one per CPU."`
	Accelerator string  `cli:"" env:"CUBETRACER_ACCELERATOR"  help:"Override the scene accelerator (bvh|list)."`
	Output      string  `cli:"" env:"CUBETRACER_OUTPUT"       help:"File the ASCII frame is written to. Empty writes to stdout."`
	MetricsFile string  `cli:"" env:"CUBETRACER_METRICS_FILE" help:"File the probe counters are written to in Prometheus text format."`
	LogLevel    string  `cli:"" env:"CUBETRACER_LOG_LEVEL"    help:"Log level (debug|info|warning|error)."`
	LogIndent   bool    `cli:"" env:"CUBETRACER_LOG_INDENT"   help:"Indent logs."`
	SceneDir    string  `cli:"" env:"CUBETRACER_SCENE_DIR"    help:"Directory scanned for JSON scene files by -list-scenes."`
	ListScenes  bool    `cli:"" env:"-"                       help:"List the built-in scenes and the scene files in -scene-dir, then exit."`
	Help        bool    `cli:"" env:"-"                       help:"Show help."`
}

func main() {
	conf := config{
		SceneDir: "scenes",
		LogLevel: logs.InfoLevel.String(),
	}

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Probes a scene of rotated cubes with one ray per pixel and prints it as ASCII.").
		Options(&conf)
	cli.Load()

	if err := validateConfig(conf); err != nil {
		logs.Fatal(err)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}
	errors.Encoder = json.Marshal

	if conf.ListScenes {
		if err := listScenes(conf.SceneDir, os.Stdout); err != nil {
			logs.Fatal(err)
		}
		return
	}

	if err := run(ctx, conf, os.Stdout); err != nil {
		logs.Fatal(err)
	}
}

func validateConfig(conf config) error {
	if conf.Width < 0 {
		return errors.New("width must not be negative").WithTag("width", conf.Width)
	}

	if conf.AspectRatio < 0 || math.IsNaN(conf.AspectRatio) || math.IsInf(conf.AspectRatio, 0) {
		return errors.New("aspect ratio must be a positive number").WithTag("aspect_ratio", conf.AspectRatio)
	}

	if conf.Workers < 0 {
		return errors.New("workers must not be negative").WithTag("workers", conf.Workers)
	}

	switch conf.Accelerator {
	case "", scene.AcceleratorBVH, scene.AcceleratorList:
	default:
		return errors.New("unknown accelerator").WithTag("accelerator", conf.Accelerator)
	}

	return nil
}

// loadScene returns the built-in scene or the one in conf.SceneFile, with the
// command-line overrides applied
func loadScene(conf config) (*scene.Scene, error) {
	var s *scene.Scene
	if conf.SceneFile == "" {
		s = scene.NewDefaultScene()
	} else {
		var err error
		if s, err = scene.Load(conf.SceneFile); err != nil {
			return nil, err
		}
	}

	if conf.Width > 0 {
		s.CameraConfig.Width = conf.Width
	}
	if conf.AspectRatio > 0 {
		s.CameraConfig.AspectRatio = conf.AspectRatio
	}
	if conf.Accelerator != "" {
		s.Accelerator = conf.Accelerator
	}
	if err := s.Preprocess(); err != nil {
		return nil, err
	}
	return s, nil
}

func run(ctx context.Context, conf config, stdout io.Writer) error {
	s, err := loadScene(conf)
	if err != nil {
		return err
	}

	width, height := s.CameraConfig.Width, s.CameraConfig.Height()
	prober := renderer.NewProber(s, renderer.NewCamera(s.CameraConfig.AspectRatio), width, height)
	prober.SetWorkers(conf.Workers)
	prober.SetLogger(proberLogger{})

	frame, stats, err := prober.Render(ctx)
	if err != nil {
		return err
	}

	if err := writeFrame(conf.Output, stdout, frame); err != nil {
		return err
	}

	logs.WithTag("summary", map[string]any{
		"scene":         s.Name,
		"shapes":        s.GetShapeCount(),
		"accelerator":   s.Accelerator,
		"width":         width,
		"height":        height,
		"rays":          stats.Rays,
		"hits":          stats.Hits,
		"material_hits": stats.MaterialHits,
		"duration":      stats.Duration.String(),
	}).Info("probe finished")

	if conf.MetricsFile != "" {
		if err := renderer.WriteMetrics(conf.MetricsFile); err != nil {
			logs.Warn(err)
		}
	}
	return nil
}

func writeFrame(path string, stdout io.Writer, frame *renderer.Frame) error {
	if path == "" {
		return renderer.WriteASCII(stdout, frame)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.New("creating output file failed").
			WithTag("path", path).
			Wrap(err)
	}
	defer f.Close()

	return renderer.WriteASCII(f, frame)
}

// listScenes prints the built-in scenes followed by the files found in dir.
// A missing dir only lists the built-in scenes.
func listScenes(dir string, w io.Writer) error {
	scenes := scene.BuiltinScenes()
	files, err := scene.Discover(dir)
	if err != nil {
		logs.Warn(err)
	}
	scenes = append(scenes, files...)

	for _, info := range scenes {
		line := fmt.Sprintf("%-20s %-8s %3d shapes  %s", info.ID, info.Type, info.Shapes, info.Name)
		if info.Description != "" {
			line += " - " + info.Description
		}
		if info.Problem != "" {
			line += " (invalid: " + info.Problem + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.New("writing scene list failed").Wrap(err)
		}
	}
	return nil
}

type proberLogger struct{}

func (proberLogger) Printf(format string, args ...interface{}) {
	logs.WithTag("component", "prober").Info(fmt.Sprintf(format, args...))
}
