/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// DefaultEnvPrefix is used when LoadOptions.EnvPrefix is empty.
const DefaultEnvPrefix = "DSTATUS"

// ErrInvalid wraps every validation failure reported by Validate.
var ErrInvalid = errors.New("config: invalid")

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	Path      string // config file; empty means environment and defaults only
	EnvPrefix string // environment variable prefix, DefaultEnvPrefix if empty
	EnvFile   string // optional dotenv file loaded before reading the environment
}

// Load reads the configuration described by opts, applies defaults and
// validates the result.
func Load(opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s failed: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetDefault("log.format", "json")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.report_caller", false)
	v.SetDefault("mapper.disable_defaults", false)

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Path != "" {
		v.SetConfigFile(opts.Path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}
	cfg.Log.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the log settings and builds the mapper once to catch bad
// rules. All problems are reported together.
func (c *Config) Validate() error {
	var err error
	switch c.Log.Format {
	case "json", "text":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: log.format %q (want json or text)", ErrInvalid, c.Log.Format))
	}
	if _, lerr := logrus.ParseLevel(c.Log.Level); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: log.level: %w", ErrInvalid, lerr))
	}
	if _, merr := c.Mapper.Build(); merr != nil {
		err = multierr.Append(err, merr)
	}
	return err
}
