// Package config layers runtime configuration: built-in defaults, then the
// TOML config file, then SYSFORGE_* environment variables, then CLI flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/nvasko/sysforge/internal/app"
	"github.com/nvasko/sysforge/internal/menu"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the TOML config file layout.
type fileConfig struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Footer   *bool  `toml:"footer"`
	Verbose  bool   `toml:"verbose"`
	Trace    bool   `toml:"trace"`
	LogFile  string `toml:"log_file"`
	RootView string `toml:"root_view"`
	WorkDir  string `toml:"work_dir"`
}

const (
	envConfigPath = "SYSFORGE_CONFIG"
	envWidth      = "SYSFORGE_WIDTH"
	envHeight     = "SYSFORGE_HEIGHT"
	envShowFooter = "SYSFORGE_FOOTER"
	envVerbose    = "SYSFORGE_VERBOSE"
	envTrace      = "SYSFORGE_TRACE"
	envLogFile    = "SYSFORGE_LOG_FILE"
	envRootView   = "SYSFORGE_ROOT_VIEW"
	envWorkDir    = "SYSFORGE_WORK_DIR"
)

const defaultConfigPath = "~/.config/sysforge/config.toml"

// Load parses configuration from the config file, CLI arguments, and
// environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configPath := preScanConfigPath(args)
	if configPath == "" {
		configPath = envOrDefault(env, envConfigPath, defaultConfigPath)
	}
	file, err := loadFile(expandHome(configPath))
	if err != nil {
		return Config{}, err
	}

	footerDefault := true
	if file.Footer != nil {
		footerDefault = *file.Footer
	}

	fs := flag.NewFlagSet("sysforge", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", configPath, "path to the TOML config file")
	width := fs.Int("width", envOrInt(env, envWidth, file.Width), "render width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.Height), "render height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, footerDefault), "show the key hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.Trace), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, file.Verbose), "log operation results in full")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")
	rootView := fs.String("root-view", envOrDefault(env, envRootView, file.RootView), "view to open at startup (main, replicator, cloner, utilities, installer)")
	workDir := fs.String("workdir", envOrDefault(env, envWorkDir, file.WorkDir), "directory for snapshots and ISO builds")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *rootView != "" {
		if _, ok := menu.ViewByName(*rootView); !ok {
			return Config{}, fmt.Errorf("unknown root view %q", *rootView)
		}
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			RootView:   *rootView,
			WorkDir:    expandHome(*workDir),
		},
		Logging: Logging{
			FilePath: expandHome(*logFile),
			Trace:    *trace,
		},
		Flags: map[string]string{
			"config":   configPath,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"verbose":  strconv.FormatBool(*verbose),
			"logFile":  *logFile,
			"rootView": *rootView,
			"workdir":  *workDir,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}

// loadFile parses the TOML config file. A missing file is not an error.
func loadFile(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// preScanConfigPath extracts -config from the raw arguments before the main
// flag parse, so the file can seed the remaining flag defaults.
func preScanConfigPath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name := strings.TrimLeft(arg, "-")
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		if name == "config" {
			if i+1 < len(args) {
				return args[i+1]
			}
			return ""
		}
		if strings.HasPrefix(name, "config=") {
			return strings.TrimPrefix(name, "config=")
		}
	}
	return ""
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
