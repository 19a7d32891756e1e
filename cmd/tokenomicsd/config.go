package main

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/x/distribution"
	"github.com/naoina/toml"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	configFile  = "config.toml"
	genesisFile = "genesis.json"
)

// Config is the node configuration stored in the home directory.
type Config struct {
	// DataDir is the leveldb directory, relative to the home directory.
	DataDir string `toml:"data_dir"`
	// Genesis is the genesis file, relative to the home directory.
	Genesis  string `toml:"genesis"`
	LogLevel string `toml:"log_level"`
	// ListenAddress is used by the serve command.
	ListenAddress string `toml:"listen_address"`
	// GovernanceMode is either "direct" or "timelocked".
	GovernanceMode string `toml:"governance_mode"`
}

// DefaultConfig returns the configuration written by the init command.
func DefaultConfig() Config {
	return Config{
		DataDir:        "data",
		Genesis:        genesisFile,
		LogLevel:       "info",
		ListenAddress:  "127.0.0.1:8080",
		GovernanceMode: distribution.ModeDirect,
	}
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return errors.Wrap(errors.ErrEmpty, "data_dir")
	}
	if _, err := log.AllowLevel(c.LogLevel); err != nil {
		return errors.Wrapf(errors.ErrInput, "log_level: %s", err)
	}
	switch c.GovernanceMode {
	case distribution.ModeDirect, distribution.ModeTimelocked:
	default:
		return errors.Wrapf(errors.ErrInput, "governance_mode %q", c.GovernanceMode)
	}
	return nil
}

// LoadConfig reads the configuration from the home directory. Unset values
// fall back to DefaultConfig.
func LoadConfig(home string) (Config, error) {
	conf := DefaultConfig()
	raw, err := ioutil.ReadFile(filepath.Join(home, configFile))
	if err != nil {
		return conf, errors.Wrapf(errors.ErrNotFound, "read config: %s", err)
	}
	if err := toml.Unmarshal(raw, &conf); err != nil {
		return conf, errors.Wrapf(errors.ErrInput, "parse config: %s", err)
	}
	return conf, conf.Validate()
}

// WriteConfig stores the configuration in the home directory.
func WriteConfig(home string, conf Config) error {
	if err := conf.Validate(); err != nil {
		return err
	}
	raw, err := toml.Marshal(conf)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "serialize config: %s", err)
	}
	if err := os.MkdirAll(home, 0o755); err != nil {
		return errors.Wrapf(errors.ErrInput, "home directory: %s", err)
	}
	return ioutil.WriteFile(filepath.Join(home, configFile), raw, 0o644)
}

// path resolves a configured path against the home directory.
func (c Config) path(home, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(home, p)
}

// newLogger returns a logger writing to stderr, filtered by level.
func newLogger(level string) (log.Logger, error) {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "log level: %s", err)
	}
	return log.NewFilter(logger, opt).With("module", "tokenomicsd"), nil
}
