package server

import (
	"os"
	"path/filepath"

	"github.com/iov-one/rentweave/errors"
	"github.com/spf13/pflag"
	"github.com/tendermint/tendermint/libs/log"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the daemon configuration file inside of the
// home directory.
const ConfigFile = "rentald.yaml"

const (
	flagBind     = "bind"
	flagDebug    = "debug"
	flagLogLevel = "log-level"
)

// Config holds the daemon settings. Values are read from the configuration
// file and can be overwritten with command line flags.
type Config struct {
	// Bind is the address the ABCI server listens on.
	Bind string `yaml:"bind"`
	// Debug returns the full error message, including the call stack, in
	// the ABCI responses.
	Debug bool `yaml:"debug"`
	// LogLevel is one of debug, info, error or none.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Bind:     "tcp://localhost:26658",
		LogLevel: "info",
	}
}

// LoadConfig reads the configuration file from the home directory. Missing
// file is not an error and results in the default configuration. Values not
// declared in the file keep their defaults.
func LoadConfig(home string) (Config, error) {
	conf := DefaultConfig()
	if home == "" {
		return conf, nil
	}
	raw, err := os.ReadFile(filepath.Join(home, ConfigFile))
	switch {
	case os.IsNotExist(err):
		return conf, nil
	case err != nil:
		return conf, errors.Wrapf(errors.ErrInput, "read configuration: %s", err)
	}
	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return conf, errors.Wrapf(errors.ErrInput, "parse configuration: %s", err)
	}
	return conf, nil
}

// parseFlags overwrites configuration values with those provided as the
// command line arguments.
func parseFlags(conf Config, args []string) (Config, error) {
	fl := pflag.NewFlagSet("start", pflag.ContinueOnError)
	fl.StringVar(&conf.Bind, flagBind, conf.Bind, "address server listens on")
	fl.BoolVar(&conf.Debug, flagDebug, conf.Debug, "call stack returned on error")
	fl.StringVar(&conf.LogLevel, flagLogLevel, conf.LogLevel, "log level: debug, info, error or none")
	if err := fl.Parse(args); err != nil {
		return conf, errors.Wrapf(errors.ErrInput, "flags: %s", err)
	}
	if fl.NArg() != 0 {
		return conf, errors.Wrapf(errors.ErrInput, "unexpected arguments: %v", fl.Args())
	}
	return conf, nil
}

// filterLogger limits the logger output to the configured level.
func filterLogger(logger log.Logger, level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "log level: %s", err)
	}
	return log.NewFilter(logger, opt), nil
}
