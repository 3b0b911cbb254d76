package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generationHash = "3D9507C8038633C0EB2658704A5E7BC983E4327A99AC14C032D67F6AACA8E4AE"

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	for _, test := range []struct {
		Name  string
		File  string
		Data  string
		Env   map[string]string
		Check func(*testing.T, Config)
		Error string
	}{{
		Name: "yaml",
		File: "sdk.yaml",
		Data: `url: http://node:3000/
network-type: testnet
generation-hash: ` + generationHash + `
epoch-adjustment: 1616694977s
http-timeout: 5s
debug: true
`,
		Check: func(t *testing.T, c Config) {
			assert.Equal(t, "http://node:3000", c.URL)
			assert.Equal(t, model.TestNet, c.NetworkType)
			require.NotNil(t, c.GenerationHash)
			assert.Equal(t, generationHash, c.GenerationHash.String())
			assert.Nil(t, c.NodePublicKey)
			require.NotNil(t, c.EpochAdjustment)
			assert.Equal(t, int64(1616694977), *c.EpochAdjustment)
			assert.Equal(t, 5*time.Second, c.HTTPTimeout)
			assert.True(t, c.Debug)
			assert.Equal(t, "ws://node:3000/ws", c.WebsocketEndpoint())
		},
	}, {
		Name: "json with env override",
		File: "sdk.json",
		Data: `{"url": "http://node:3000", "network-type": "testnet"}`,
		Env: map[string]string{
			"BITXOR_URL":          "https://other:3001",
			"BITXOR_NETWORK_TYPE": "104",
		},
		Check: func(t *testing.T, c Config) {
			assert.Equal(t, "https://other:3001", c.URL)
			assert.Equal(t, model.MainNet, c.NetworkType)
			assert.Equal(t, DefaultHTTPTimeout, c.HTTPTimeout)
			assert.Nil(t, c.EpochAdjustment)
			assert.Equal(t, "wss://other:3001/ws", c.WebsocketEndpoint())
		},
	}, {
		Name:  "invalid network",
		File:  "sdk.toml",
		Data:  `network-type = "moon"`,
		Error: `network-type: unknown network type: "moon"`,
	}, {
		Name:  "invalid hash",
		File:  "sdk.toml",
		Data:  `generation-hash = "ABCD"`,
		Error: "generation-hash",
	}} {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			for k, v := range test.Env {
				t.Setenv(k, v)
			}
			c, err := Load(writeFile(t, test.File, test.Data))
			if test.Error != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.Error)
				return
			}
			require.NoError(t, err)
			test.Check(t, c)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadHome(t *testing.T) {
	homedir.DisableCache = true
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultURL, c.URL)

	require.NoError(t, os.WriteFile(filepath.Join(home, FileName+".yaml"),
		[]byte("url: http://home:3000\nwebsocket-url: ws://socket:3000/ws\n"), 0600))
	c, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://home:3000", c.URL)
	assert.Equal(t, "ws://socket:3000/ws", c.WebsocketEndpoint())
}
