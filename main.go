package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raycaster/pkg/config"
	"github.com/df07/go-raycaster/pkg/output"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// options collects the command line flags
type options struct {
	sceneName string
	outPath   string
	width     int
	height    int
	workers   int
	thumbnail int
	upload    bool
	pattern   bool
}

func main() {
	// Parse command line flags
	sceneName := flag.String("scene", "default", "Built-in scene name, scene file name in the scenes directory, or path to a .json scene")
	outPath := flag.String("out", "", "Output file; the extension picks the format (default output/<scene>/render_<timestamp>.png)")
	width := flag.Int("width", 0, "Override image width (0 = scene default)")
	height := flag.Int("height", 0, "Override image height (0 = scene default)")
	workers := flag.Int("workers", -1, "Parallel workers: 1 = sequential, 0 = CPU count (default from RAYCASTER_WORKERS)")
	thumbnail := flag.Int("thumbnail", 0, "Also save a thumbnail no larger than this many pixels")
	upload := flag.Bool("upload", false, "Upload the render to S3 (requires S3_BUCKET)")
	pattern := flag.Bool("pattern", false, "Write a 256x256 test pattern instead of rendering a scene")
	envFile := flag.String("env", ".env", "Environment file to load")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Show help if requested
	if *help {
		fmt.Println("Raycaster")
		fmt.Println("Usage: raycaster [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.BuiltinNames() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Printf("  <name>      - %s/<name>.json\n", cfg.ScenesDir)
		fmt.Println("  <file>.json - scene file at the given path")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	if *list {
		if err := listScenes(cfg.ScenesDir); err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := options{
		sceneName: *sceneName,
		outPath:   *outPath,
		width:     *width,
		height:    *height,
		workers:   *workers,
		thumbnail: *thumbnail,
		upload:    *upload,
		pattern:   *pattern,
	}
	if opts.workers < 0 {
		opts.workers = cfg.Workers
	}

	if err := run(context.Background(), cfg, opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders, saves and optionally publishes one image
func run(ctx context.Context, cfg *config.Config, opts options) error {
	logger := renderer.NewDefaultLogger()

	var canvas *output.Canvas
	var name string
	if opts.pattern {
		name = "pattern"
		canvas = output.NewCanvas(256, 256)
		renderer.RenderTestPattern(canvas, 256, 256)
	} else {
		s, err := createScene(opts.sceneName, cfg.ScenesDir)
		if err != nil {
			return err
		}
		if opts.width > 0 || opts.height > 0 {
			w, h := s.Width(), s.Height()
			if opts.width > 0 {
				w = opts.width
			}
			if opts.height > 0 {
				h = opts.height
			}
			if s, err = s.Resize(w, h); err != nil {
				return err
			}
		}
		name = sceneDirName(opts.sceneName)

		logger.Printf("Using %s scene (%d shapes)...\n", s.Name, s.GetPrimitiveCount())

		canvas = output.NewCanvas(s.Width(), s.Height())
		rt := renderer.NewRaytracer(s, renderer.RenderConfig{NumWorkers: opts.workers}, logger)
		if _, err := rt.Render(ctx, canvas, renderer.ConsoleProgress(logger)); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}

	filename := opts.outPath
	if filename == "" {
		outputDir, err := createOutputDir(cfg.OutputDir, name)
		if err != nil {
			return err
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	} else if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := canvas.Save(filename); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)

	thumbName := ""
	if opts.thumbnail > 0 {
		ext := filepath.Ext(filename)
		thumbName = strings.TrimSuffix(filename, ext) + "_thumb" + ext
		if err := canvas.SaveThumbnail(thumbName, opts.thumbnail); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbName)
	}

	if opts.upload {
		publisher, err := output.NewS3PublisherFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("upload requested: %w", err)
		}
		for _, file := range []string{filename, thumbName} {
			if file == "" {
				continue
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			key := filepath.ToSlash(filepath.Join(name, filepath.Base(file)))
			if _, err := publisher.Upload(ctx, data, key); err != nil {
				return err
			}
		}
	}

	return nil
}

// createScene resolves a scene name or scene file path
func createScene(sceneName, scenesDir string) (*scene.Scene, error) {
	if sceneName == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}
	s, err := scene.Resolve(sceneName, scenesDir)
	if err != nil {
		if errors.Is(err, scene.ErrUnknownScene) {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(scene.BuiltinNames(), ", "))
		}
		return nil, err
	}
	return s, nil
}

// sceneDirName returns the output directory name for a scene
func sceneDirName(sceneName string) string {
	base := filepath.Base(sceneName)
	if strings.EqualFold(filepath.Ext(base), ".json") {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "scene"
	}
	return base
}

// createOutputDir creates <root>/<scene> and returns its path
func createOutputDir(root, sceneName string) (string, error) {
	outputDir := filepath.Join(root, sceneDirName(sceneName))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return outputDir, nil
}

// listScenes prints every scene grouped by category
func listScenes(scenesDir string) error {
	response, err := scene.ListScenes(scenesDir)
	if err != nil {
		return err
	}
	for _, group := range response.Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Printf("  %-12s %s\n", info.ID, info.Description)
		}
	}
	return nil
}
