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

// Config is the root configuration document.
type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Mapper MapperConfig `yaml:"mapper" mapstructure:"mapper"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Format       string `yaml:"format" mapstructure:"format"` // json | text
	Level        string `yaml:"level" mapstructure:"level"`
	ReportCaller bool   `yaml:"report_caller" mapstructure:"report_caller"`
}

// MapperConfig holds transport mapping rules on top of the library defaults.
type MapperConfig struct {
	// DisableDefaults drops the built-in per-code and per-category rules.
	DisableDefaults bool `yaml:"disable_defaults" mapstructure:"disable_defaults"`

	// Codes lists per-code rules.
	Codes []CodeRule `yaml:"codes" mapstructure:"codes"`

	// Prefixes lists category prefix rules ("storage", "query.*").
	Prefixes []PrefixRule `yaml:"prefixes" mapstructure:"prefixes"`

	// Fallback replaces the statuses used when nothing matches.
	Fallback *Statuses `yaml:"fallback" mapstructure:"fallback"`
}

// Statuses is an HTTP status and a gRPC code name. Zero values mean "leave
// unchanged".
type Statuses struct {
	HTTP int    `yaml:"http" mapstructure:"http"`
	GRPC string `yaml:"grpc" mapstructure:"grpc"` // e.g. "NOT_FOUND" or "5"
}

// CodeRule maps one code, given by symbolic name or number.
type CodeRule struct {
	Code     string `yaml:"code" mapstructure:"code"`
	Override bool   `yaml:"override" mapstructure:"override"`
	Statuses `yaml:",inline" mapstructure:",squash"`
}

// PrefixRule maps every code whose category starts with Prefix.
type PrefixRule struct {
	Prefix   string `yaml:"prefix" mapstructure:"prefix"`
	Statuses `yaml:",inline" mapstructure:",squash"`
}

// ApplyDefaults fills unset log settings.
func (l *LogConfig) ApplyDefaults() {
	if l.Format == "" {
		l.Format = "json"
	}
	if l.Level == "" {
		l.Level = "info"
	}
}
