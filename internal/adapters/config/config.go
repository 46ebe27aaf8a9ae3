// Package config loads the display options from an optional YAML file and
// the process environment.
package config

import (
	"os"
	"strconv"

	"go.trai.ch/rlo/internal/policy"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultTransformer is the user-chain spec applied when nothing else is
// configured: the built-in identity.
const DefaultTransformer = "/Identity"

// Environment variable names recognized by the renderer.
const (
	EnvTransformer      = "RLO_TRANSFORMER"
	EnvForceInteractive = "RLO_FORCE_INTERACTIVE"
	EnvEnableTimer      = "RLO_ENABLE_TIMER"
)

// Config carries everything the pipeline is configured with.
type Config struct {
	// Transformer is the "<module>/<Name>" spec of the user transform.
	Transformer string `yaml:"rlo_transformer"`
	// Verbosity is the -v counter.
	Verbosity int `yaml:"verbosity"`

	DisplaySkippedHosts   bool `yaml:"display_skipped_hosts"`
	DisplayOkHosts        bool `yaml:"display_ok_hosts"`
	CheckModeMarkers      bool `yaml:"check_mode_markers"`
	ShowTaskPathOnFailure bool `yaml:"show_task_path_on_failure"`

	// ForceInteractive starts the live region immediately. Default on;
	// env-only, like the timer toggle.
	ForceInteractive bool `yaml:"-"`
	// EnableTimer keeps elapsed timers refreshing between events.
	EnableTimer bool `yaml:"-"`
}

// Default returns the configuration used when no file and no environment
// overrides are present. Skipped and ok lines are shown by default, like
// the engine's stock output.
func Default() Config {
	return Config{
		Transformer:         DefaultTransformer,
		DisplaySkippedHosts: true,
		DisplayOkHosts:      true,
		ForceInteractive:    true,
		EnableTimer:         true,
	}
}

// Load reads the optional options file at path and applies environment
// overrides on top. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
		switch {
		case os.IsNotExist(err):
			// Options file is optional.
		case err != nil:
			return Config{}, zerr.Wrap(err, "failed to read options file")
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, zerr.Wrap(err, "failed to parse options file")
			}
		}
	}

	return applyEnv(cfg)
}

// applyEnv layers the process environment over the file configuration.
func applyEnv(cfg Config) (Config, error) {
	if spec, ok := os.LookupEnv(EnvTransformer); ok {
		cfg.Transformer = spec
	}

	var err error
	if cfg.ForceInteractive, err = envBool(EnvForceInteractive, cfg.ForceInteractive); err != nil {
		return Config{}, err
	}
	if cfg.EnableTimer, err = envBool(EnvEnableTimer, cfg.EnableTimer); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// envBool parses the 0/1 toggles the original environment contract uses.
func envBool(name string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "environment toggle must be an integer"), "name", name)
	}
	return n != 0, nil
}

// Options projects the configuration onto the visibility policy knobs.
func (c Config) Options() policy.Options {
	return policy.Options{
		Verbosity:             c.Verbosity,
		DisplaySkippedHosts:   c.DisplaySkippedHosts,
		DisplayOkHosts:        c.DisplayOkHosts,
		CheckModeMarkers:      c.CheckModeMarkers,
		ShowTaskPathOnFailure: c.ShowTaskPathOnFailure,
	}
}
