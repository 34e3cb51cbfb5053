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

// Package commands implements dstatusctl, an operator tool to browse the
// error catalog and inspect how codes map onto HTTP and gRPC.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/catalog"
	"dirpx.dev/dstatus/code"
	"dirpx.dev/dstatus/config"
	"dirpx.dev/dstatus/logx"
)

const (
	flagConfig    = "config"
	flagEnvPrefix = "env-prefix"
	flagEnvFile   = "env-file"
	flagOutput    = "output"

	outputText = "text"
	outputJSON = "json"
)

// env is the state shared by all subcommands once the root pre-run hook
// has loaded the configuration.
type env struct {
	cfg     *config.Config
	mapper  apis.Mapper
	catalog *catalog.Catalog
	logger  *log.Logger
	output  string
}

// NewRootCmd builds the dstatusctl command tree.
func NewRootCmd() *cobra.Command {
	e := &env{catalog: catalog.Default(), logger: log.New()}

	root := &cobra.Command{
		Use:          "dstatusctl",
		Short:        "Browse error codes, message templates and transport mappings",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.load(cmd)
		},
	}
	root.PersistentFlags().String(flagConfig, "", "config file (yaml, json or toml)")
	root.PersistentFlags().String(flagEnvPrefix, config.DefaultEnvPrefix, "environment variable prefix")
	root.PersistentFlags().String(flagEnvFile, "", "dotenv file to load before reading the environment")
	root.PersistentFlags().StringP(flagOutput, "o", outputText, "output format: text or json")

	root.AddCommand(
		newListCmd(e),
		newDescribeCmd(e),
		newSearchCmd(e),
		newRenderCmd(e),
		newExplainCmd(e),
	)
	return root
}

func (e *env) load(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString(flagConfig)
	prefix, _ := flags.GetString(flagEnvPrefix)
	envFile, _ := flags.GetString(flagEnvFile)
	e.output, _ = flags.GetString(flagOutput)

	switch e.output {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("unknown output format %q", e.output)
	}

	cfg, err := config.Load(config.LoadOptions{Path: path, EnvPrefix: prefix, EnvFile: envFile})
	if err != nil {
		return err
	}
	m, err := cfg.Mapper.Build()
	if err != nil {
		return err
	}

	e.logger.SetOutput(cmd.ErrOrStderr())
	logx.Init(e.logger, cfg.Log)
	e.logger.WithField("config", path).Debug("configuration loaded")

	e.cfg, e.mapper = cfg, m
	return nil
}

// parseCode resolves a CLI argument into a catalogued code.
func (e *env) parseCode(s string) (catalog.Descriptor, error) {
	c, err := code.Parse(s)
	if err != nil {
		return catalog.Descriptor{}, err
	}
	d, ok := e.catalog.Describe(c)
	if !ok {
		return catalog.Descriptor{}, fmt.Errorf("%s has no catalog entry", c)
	}
	return d, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
