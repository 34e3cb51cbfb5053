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

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/dstatus"
	"dirpx.dev/dstatus/adapter"
	"dirpx.dev/dstatus/category"
	"dirpx.dev/dstatus/logx"
)

func newRenderCmd(e *env) *cobra.Command {
	var logIt bool
	cmd := &cobra.Command{
		Use:   "render <code> [args...]",
		Short: "Render the message of a code with the given arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := e.parseCode(args[0])
			if err != nil {
				return err
			}
			rest := args[1:]
			if len(rest) != d.Arity {
				return fmt.Errorf("%s takes %d argument(s), got %d", d.Name, d.Arity, len(rest))
			}
			vals := make([]any, len(rest))
			for i, a := range rest {
				vals[i] = a
			}
			st := dstatus.Make(d.Code, vals...)

			if logIt {
				logx.Log(e.logger.WithField("source", "dstatusctl"), st)
			}
			w := cmd.OutOrStdout()
			if e.output == outputJSON {
				return writeJSON(w, adapter.ToView(st))
			}
			_, err = fmt.Fprintln(w, st)
			return err
		},
	}
	cmd.Flags().BoolVar(&logIt, "log", false, "also log the status through the configured logger")
	return cmd
}

func newExplainCmd(e *env) *cobra.Command {
	var cat string
	cmd := &cobra.Command{
		Use:   "explain <code>",
		Short: "Show which mapping rule decides the HTTP and gRPC status of a code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := e.parseCode(args[0])
			if err != nil {
				return err
			}
			c := category.Empty
			if cat != "" {
				if c, err = category.Parse(cat); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), e.mapper.Explain(d.Code, c))
			return err
		},
	}
	cmd.Flags().StringVar(&cat, "category", "", "resolve as if the code belonged to this category")
	return cmd
}
