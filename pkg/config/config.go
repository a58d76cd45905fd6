package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-raycore/pkg/output"
)

// Config holds render and upload settings for the preview CLI
type Config struct {
	// Render settings
	Scene     string
	Width     int
	Height    int
	Workers   int
	Ambient   float64
	OutputDir string
	Format    output.Format
	Thumbnail int // Thumbnail width in pixels, 0 disables

	// Upload settings
	Upload   bool
	S3Prefix string
	S3       output.S3Config
}

// Flags carries command line overrides. Zero values mean "not set".
type Flags struct {
	Scene     string
	Width     int
	Height    int
	Workers   int
	OutputDir string
	Format    string
	Thumbnail int
	Upload    bool
}

// Default returns the settings used when neither the environment nor flags say otherwise
func Default() Config {
	return Config{
		Scene:     "default",
		Width:     400,
		Height:    225,
		Ambient:   0.15,
		OutputDir: "output",
		Format:    output.FormatPNG,
	}
}

// Load reads envFile (if it exists) into the process environment and builds a Config
// from the defaults overlaid with RAYCORE_* and S3_* variables
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", envFile, err)
		}
	}

	cfg := Default()
	var err error
	setString(&cfg.Scene, "RAYCORE_SCENE")
	setString(&cfg.OutputDir, "RAYCORE_OUTPUT_DIR")
	if err = setInt(&cfg.Width, "RAYCORE_WIDTH"); err != nil {
		return Config{}, err
	}
	if err = setInt(&cfg.Height, "RAYCORE_HEIGHT"); err != nil {
		return Config{}, err
	}
	if err = setInt(&cfg.Workers, "RAYCORE_WORKERS"); err != nil {
		return Config{}, err
	}
	if err = setInt(&cfg.Thumbnail, "RAYCORE_THUMBNAIL"); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("RAYCORE_AMBIENT"); v != "" {
		if cfg.Ambient, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("config: RAYCORE_AMBIENT: %w", err)
		}
	}
	if v := os.Getenv("RAYCORE_FORMAT"); v != "" {
		if cfg.Format, err = output.ParseFormat(v); err != nil {
			return Config{}, fmt.Errorf("config: RAYCORE_FORMAT: %w", err)
		}
	}
	if v := os.Getenv("RAYCORE_UPLOAD"); v != "" {
		if cfg.Upload, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("config: RAYCORE_UPLOAD: %w", err)
		}
	}

	cfg.S3 = output.S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    os.Getenv("S3_REGION"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
	cfg.S3Prefix = os.Getenv("S3_PREFIX")

	return cfg, nil
}

// Resolve applies command line overrides. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) error {
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Thumbnail > 0 {
		c.Thumbnail = flags.Thumbnail
	}
	if flags.Upload {
		c.Upload = true
	}
	if flags.Format != "" {
		f, err := output.ParseFormat(flags.Format)
		if err != nil {
			return err
		}
		c.Format = f
	}
	return nil
}

// Validate checks that the settings can produce a render
func (c Config) Validate() error {
	if c.Scene == "" {
		return fmt.Errorf("config: scene is required")
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.Ambient < 0 || c.Ambient > 1 {
		return fmt.Errorf("config: ambient %g outside [0, 1]", c.Ambient)
	}
	if c.Thumbnail < 0 {
		return fmt.Errorf("config: negative thumbnail width %d", c.Thumbnail)
	}
	if c.Upload && c.S3.Bucket == "" {
		return fmt.Errorf("config: upload requested but S3_BUCKET is not set")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}
