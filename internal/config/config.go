package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const DefaultInputPath = "inputs/input01.txt"

// Config holds every knob of the CLI, the server and dbtool.
// Values come from the environment (optionally a .env file) and may be
// overridden by command-line flags.
type Config struct {
	InputPath   string        `validate:"required"`
	OutputPath  string
	Window      bool
	Scale       float64       `validate:"gt=0"`
	CanvasSize  int           `validate:"gt=0,lte=10000"`
	LogLevel    string        `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	DBPath      string        `validate:"required"`
	DatabaseURL string
	RedisAddr   string        `validate:"omitempty,hostname_port"`
	CacheTTL    time.Duration `validate:"gte=0s"`
	Port        string        `validate:"required,numeric"`
}

var validate = validator.New()

// LoadDotEnv loads .env into the process environment when present.
// Existing variables win. It reports whether a file was loaded.
func LoadDotEnv(paths ...string) bool {
	return godotenv.Load(paths...) == nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// FromEnv reads the configuration from environment variables.
func FromEnv() (Config, error) {
	cfg := Config{
		InputPath:   Get("INPUT_PATH", DefaultInputPath),
		OutputPath:  Get("OUTPUT_PATH", "route.png"),
		LogLevel:    Get("LOG_LEVEL", "info"),
		DBPath:      Get("DB_PATH", "data/app.db"),
		DatabaseURL: Get("DATABASE_URL", ""),
		RedisAddr:   Get("REDIS_ADDR", ""),
		Port:        Get("PORT", "8080"),
	}

	var errs []error
	var err error

	if cfg.Window, err = strconv.ParseBool(Get("SHOW_WINDOW", "true")); err != nil {
		errs = append(errs, fmt.Errorf("SHOW_WINDOW: %w", err))
	}
	if cfg.Scale, err = strconv.ParseFloat(Get("CANVAS_SCALE", "500"), 64); err != nil {
		errs = append(errs, fmt.Errorf("CANVAS_SCALE: %w", err))
	}
	if cfg.CanvasSize, err = strconv.Atoi(Get("CANVAS_SIZE", "600")); err != nil {
		errs = append(errs, fmt.Errorf("CANVAS_SIZE: %w", err))
	}
	if cfg.CacheTTL, err = time.ParseDuration(Get("CACHE_TTL", "10m")); err != nil {
		errs = append(errs, fmt.Errorf("CACHE_TTL: %w", err))
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config from env: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// BindFlags registers the CLI-facing fields on fs, using the current
// values as defaults.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.InputPath, "input", c.InputPath, "point file (`path`); a positional argument overrides it")
	fs.StringVar(&c.OutputPath, "out", c.OutputPath, "write the rendered route to this image `path` (empty disables)")
	fs.BoolVar(&c.Window, "window", c.Window, "show the route in a desktop window")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "pixels per unit of the normalized plane")
	fs.IntVar(&c.CanvasSize, "size", c.CanvasSize, "canvas side in pixels")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log `level` (debug, info, warn, error)")
}

// Load builds the configuration from the environment and args (without
// the program name), then validates it.
func Load(name string, args []string) (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		cfg.InputPath = fs.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
