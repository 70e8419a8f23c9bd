package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"mocha/common"
	"mocha/logging"

	"github.com/pelletier/go-toml"
)

// Config is the analyzer configuration loaded from a `mocha.toml` file.
type Config struct {
	Analysis Analysis `toml:"analysis"`
}

// Analysis holds the settings that govern a single analysis.
type Analysis struct {
	// StrictOverloads reports calls matching several overloads equally well.
	StrictOverloads bool `toml:"strict-overloads"`

	// WarnHiddenOverloads warns about subclass methods that overload but do
	// not override superclass methods.
	WarnHiddenOverloads bool `toml:"warn-hidden-overloads"`

	// MaxErrors truncates the error list.  Zero means no limit.
	MaxErrors int `toml:"max-errors"`

	LogLevel string `toml:"log-level"`

	// Builtins registers `print` and `println` before user declarations.
	Builtins bool `toml:"builtins"`

	Version string `toml:"version"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Analysis: Analysis{
			LogLevel: "verbose",
			Builtins: true,
			Version:  common.MochaVersion,
		},
	}
}

// Load reads and validates the configuration file in the given directory.
// Keys missing from the file keep their default value.
func Load(dir string) (*Config, error) {
	f, err := os.Open(filepath.Join(dir, common.ConfigFileName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tree, err := toml.LoadBytes(buff)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %s", common.ConfigFileName, err.Error())
	}

	file := &Config{}
	if err := tree.Unmarshal(file); err != nil {
		return nil, fmt.Errorf("error decoding %s: %s", common.ConfigFileName, err.Error())
	}

	cfg := Default()
	cfg.merge(tree, file)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// merge copies the keys present in a decoded file over the configuration.
func (cfg *Config) merge(tree *toml.Tree, file *Config) {
	fa, a := &file.Analysis, &cfg.Analysis

	if tree.Has("analysis.strict-overloads") {
		a.StrictOverloads = fa.StrictOverloads
	}

	if tree.Has("analysis.warn-hidden-overloads") {
		a.WarnHiddenOverloads = fa.WarnHiddenOverloads
	}

	if tree.Has("analysis.max-errors") {
		a.MaxErrors = fa.MaxErrors
	}

	if tree.Has("analysis.log-level") {
		a.LogLevel = fa.LogLevel
	}

	if tree.Has("analysis.builtins") {
		a.Builtins = fa.Builtins
	}

	if tree.Has("analysis.version") {
		a.Version = fa.Version
	}
}

// Validate checks the values of the configuration.  Errors name the offending
// key.
func (cfg *Config) Validate() error {
	if cfg.Analysis.MaxErrors < 0 {
		return fmt.Errorf("`analysis.max-errors` must not be negative, got %d", cfg.Analysis.MaxErrors)
	}

	if !isLogLevelName(cfg.Analysis.LogLevel) {
		return fmt.Errorf("`analysis.log-level` must be one of %v, got `%s`", logging.LogLevelNames, cfg.Analysis.LogLevel)
	}

	if cfg.Analysis.Version == "" {
		return errors.New("`analysis.version` must be specified")
	}

	if cfg.Analysis.Version != common.MochaVersion {
		logging.LogConfigWarning(
			"Config",
			fmt.Sprintf("configuration version (v%s) does not match current mocha version (v%s)", cfg.Analysis.Version, common.MochaVersion),
		)
	}

	return nil
}

func isLogLevelName(name string) bool {
	for _, lln := range logging.LogLevelNames {
		if name == lln {
			return true
		}
	}

	return false
}

// Init writes a default configuration file into the given directory.  It
// fails if the directory already holds one.
func Init(dir string) error {
	path := filepath.Join(dir, common.ConfigFileName)

	_, err := os.Stat(path)
	if err == nil {
		return errors.New("configuration file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("configuration file error: %s", err.Error())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating configuration file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return fmt.Errorf("error encoding TOML %s", err.Error())
	}

	return nil
}
