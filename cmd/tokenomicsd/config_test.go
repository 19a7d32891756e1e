package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/iov-one/tokenomics/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	cases := map[string]struct {
		Content string
		WantErr *errors.Error
		Want    func(Config)
	}{
		"defaults for unset values": {
			Content: `log_level = "debug"`,
			Want: func(c Config) {
				assert.Equal(t, "debug", c.LogLevel)
				assert.Equal(t, "data", c.DataDir)
				assert.Equal(t, "direct", c.GovernanceMode)
			},
		},
		"timelocked governance": {
			Content: "governance_mode = \"timelocked\"\nlisten_address = \":9000\"",
			Want: func(c Config) {
				assert.Equal(t, "timelocked", c.GovernanceMode)
				assert.Equal(t, ":9000", c.ListenAddress)
			},
		},
		"unknown governance mode": {
			Content: `governance_mode = "council"`,
			WantErr: errors.ErrInput,
		},
		"unknown log level": {
			Content: `log_level = "loud"`,
			WantErr: errors.ErrInput,
		},
		"malformed": {
			Content: `data_dir = `,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			home := t.TempDir()
			require.NoError(t, ioutil.WriteFile(filepath.Join(home, configFile), []byte(tc.Content), 0o644))

			conf, err := LoadConfig(home)
			if tc.WantErr != nil {
				require.Error(t, err)
				assert.True(t, tc.WantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			tc.Want(conf)
		})
	}
}

func TestConfigRoundTrip(t *testing.T) {
	home := filepath.Join(t.TempDir(), "node")
	conf := DefaultConfig()
	conf.GovernanceMode = "timelocked"
	conf.DataDir = "/var/lib/tokenomics"
	require.NoError(t, WriteConfig(home, conf))

	loaded, err := LoadConfig(home)
	require.NoError(t, err)
	assert.Equal(t, conf, loaded)
	assert.Equal(t, "/var/lib/tokenomics", loaded.path(home, loaded.DataDir))
	assert.Equal(t, filepath.Join(home, genesisFile), loaded.path(home, loaded.Genesis))
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.True(t, errors.ErrNotFound.Is(err))
}
