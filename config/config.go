// MIT License
//
// Copyright 2026 Bitxor Corp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS
// IN THE SOFTWARE.

// Package config loads the connection settings of the SDK from a config
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bitxorcorp/bitxor-sdk-go/model"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables, e.g. BITXOR_URL.
	EnvPrefix = "BITXOR"
	// FileName is the base name of the config file searched in the home
	// directory, with a yaml, json or toml extension.
	FileName = ".bitxor-sdk"

	DefaultURL         = "http://localhost:3000"
	DefaultHTTPTimeout = 15 * time.Second
)

// Config holds the settings shared by every repository and listener of a
// factory. Zero values are queried from the node.
type Config struct {
	URL string
	// WebsocketURL defaults to URL with a ws scheme and a /ws path.
	WebsocketURL string

	NetworkType    model.NetworkType
	GenerationHash *model.Bytes32
	NodePublicKey  *model.Bytes32
	// EpochAdjustment is in seconds.
	EpochAdjustment *int64

	HTTPTimeout time.Duration
	Debug       bool
}

// Keys, as used in config files. Environment variables use upper case with
// underscores.
const (
	KeyURL             = "url"
	KeyWebsocketURL    = "websocket-url"
	KeyNetworkType     = "network-type"
	KeyGenerationHash  = "generation-hash"
	KeyNodePublicKey   = "node-public-key"
	KeyEpochAdjustment = "epoch-adjustment"
	KeyHTTPTimeout     = "http-timeout"
	KeyDebug           = "debug"
)

// Load reads path, or $HOME/.bitxor-sdk.{yaml,json,toml} if path is empty,
// and applies BITXOR_ environment variables on top. A missing default file
// is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault(KeyURL, DefaultURL)
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config %v: %w", path, err)
		}
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return Config{}, err
		}
		v.AddConfigPath(home)
		v.SetConfigName(FileName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, err
			}
		}
	}
	return FromViper(v)
}

// FromViper parses the settings held by v.
func FromViper(v *viper.Viper) (Config, error) {
	c := Config{
		URL:          strings.TrimRight(v.GetString(KeyURL), "/"),
		WebsocketURL: v.GetString(KeyWebsocketURL),
		HTTPTimeout:  v.GetDuration(KeyHTTPTimeout),
		Debug:        v.GetBool(KeyDebug),
	}
	if name := v.GetString(KeyNetworkType); name != "" {
		network, err := model.NetworkTypeFromName(name)
		if err != nil {
			return Config{}, fmt.Errorf("%v: %w", KeyNetworkType, err)
		}
		c.NetworkType = network
	}
	var err error
	if c.GenerationHash, err = optionalBytes32(v, KeyGenerationHash); err != nil {
		return Config{}, err
	}
	if c.NodePublicKey, err = optionalBytes32(v, KeyNodePublicKey); err != nil {
		return Config{}, err
	}
	if setting := v.GetString(KeyEpochAdjustment); setting != "" {
		epoch, err := model.ParseEpochAdjustment(setting)
		if err != nil {
			return Config{}, fmt.Errorf("%v: %w", KeyEpochAdjustment, err)
		}
		c.EpochAdjustment = &epoch
	}
	return c, nil
}

func optionalBytes32(v *viper.Viper, key string) (*model.Bytes32, error) {
	s := v.GetString(key)
	if s == "" {
		return nil, nil
	}
	b, err := model.NewBytes32FromHex(s)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", key, err)
	}
	return &b, nil
}

// WebsocketEndpoint returns WebsocketURL, or the /ws endpoint of URL.
func (c Config) WebsocketEndpoint() string {
	if c.WebsocketURL != "" {
		return c.WebsocketURL
	}
	u := c.URL
	if u == "" {
		u = DefaultURL
	}
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return strings.TrimRight(u, "/") + "/ws"
}
