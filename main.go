package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-raycore/pkg/config"
	"github.com/df07/go-raycore/pkg/geometry"
	"github.com/df07/go-raycore/pkg/output"
	"github.com/df07/go-raycore/pkg/renderer"
	"github.com/df07/go-raycore/pkg/scene"
)

// scenesDir holds the meshes reachable by "mesh:" scene IDs
const scenesDir = "scenes"

func main() {
	// Parse command line flags
	var flags config.Flags
	flag.StringVar(&flags.Scene, "scene", "", "Scene: 'default', 'pyramid', 'mesh:<file>' from ./scenes or a mesh file path (.stl, .obj, .ply, .3ds)")
	flag.IntVar(&flags.Width, "width", 0, "Image width in pixels")
	flag.IntVar(&flags.Height, "height", 0, "Image height in pixels")
	flag.IntVar(&flags.Workers, "workers", 0, "Number of render goroutines (0 = one per CPU)")
	flag.StringVar(&flags.OutputDir, "out", "", "Output directory")
	flag.StringVar(&flags.Format, "format", "", "Image format: png, webp, tga or bmp")
	flag.IntVar(&flags.Thumbnail, "thumb", 0, "Also write a thumbnail of this width")
	flag.BoolVar(&flags.Upload, "upload", false, "Upload the render to S3 (needs S3_* settings)")
	envFile := flag.String("env", ".env", "Environment file with RAYCORE_* and S3_* settings")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Raycore preview renderer")
		fmt.Println("Usage: go-raycore [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.<format>")
		return
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Resolve(flags); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		scenes, err := scene.ListScenes(scenesDir)
		if err != nil {
			fmt.Printf("Error listing scenes: %v\n", err)
			os.Exit(1)
		}
		for _, s := range scenes {
			fmt.Printf("  %-20s %s\n", s.ID, s.Description)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// run renders the configured scene and writes (and optionally uploads) the result
func run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	fmt.Printf("Using %s scene...\n", cfg.Scene)
	s, err := createScene(cfg.Scene, geometry.NewDimensions(cfg.Width, cfg.Height))
	if err != nil {
		return err
	}

	rendererConfig := renderer.DefaultConfig()
	rendererConfig.Workers = cfg.Workers
	rendererConfig.Ambient = cfg.Ambient
	raytracer := renderer.NewRaytracer(s, rendererConfig)

	img, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Printf("Render completed in %v (%d triangles, %.1f%% of rays hit)\n",
		stats.Duration, s.GetPrimitiveCount(), 100*stats.HitRatio())

	// Create output directory for this scene
	outputDir := filepath.Join(cfg.OutputDir, sceneDirName(cfg.Scene))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	files := map[string]image.Image{
		"render_" + timestamp + cfg.Format.Extension(): img,
	}
	if cfg.Thumbnail > 0 {
		thumb, err := output.Thumbnail(img, cfg.Thumbnail)
		if err != nil {
			return err
		}
		files["thumb_"+timestamp+cfg.Format.Extension()] = thumb
	}

	var uploader *output.S3Uploader
	if cfg.Upload {
		if uploader, err = output.NewS3Uploader(cfg.S3); err != nil {
			return err
		}
	}

	for name, im := range files {
		data, err := output.EncodeBytes(im, cfg.Format)
		if err != nil {
			return err
		}

		filename := filepath.Join(outputDir, name)
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("error saving %s: %w", filename, err)
		}
		fmt.Printf("Render saved as %s\n", filename)

		if uploader != nil {
			key := path.Join(cfg.S3Prefix, sceneDirName(cfg.Scene), name)
			if err := uploader.Upload(ctx, key, data, cfg.Format.ContentType()); err != nil {
				return err
			}
		}
	}

	return nil
}

// createScene builds and validates the named scene. Mesh IDs resolve inside scenesDir;
// plain mesh paths are loaded as given.
func createScene(name string, dims geometry.Dimensions) (*scene.Scene, error) {
	if strings.HasPrefix(name, scene.MeshIDPrefix) {
		path, err := scene.ResolveID(name, scenesDir)
		if err != nil {
			return nil, err
		}
		name = path
	}

	s, err := scene.Create(name, dims)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	return s, nil
}

// sceneDirName turns a scene name or mesh path into a directory name
func sceneDirName(name string) string {
	base := filepath.Base(strings.TrimPrefix(name, scene.MeshIDPrefix))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
