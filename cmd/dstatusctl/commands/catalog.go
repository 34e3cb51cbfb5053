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
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dirpx.dev/dstatus/adapter"
	"dirpx.dev/dstatus/apis"
	"dirpx.dev/dstatus/catalog"
	"dirpx.dev/dstatus/category"
)

func newListCmd(e *env) *cobra.Command {
	var cat string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every declared code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var prefix category.Category
			if cat != "" {
				p, err := category.Parse(cat)
				if err != nil {
					return err
				}
				prefix = p
			}
			var out []apis.ErrorDescriptor
			for _, d := range adapter.Describe(e.catalog, e.mapper) {
				if category.Category(d.Category).HasPrefix(prefix) {
					out = append(out, d)
				}
			}
			return e.printDescriptors(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&cat, "category", "", "only codes in this category or below, e.g. storage or query.dml")
	return cmd
}

func newSearchCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "search <pattern>",
		Short: "Find codes whose name, category or template matches a regular expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found := e.catalog.Search(args[0])
			out := make([]apis.ErrorDescriptor, 0, len(found))
			for _, d := range found {
				out = append(out, e.descriptor(d))
			}
			return e.printDescriptors(cmd.OutOrStdout(), out)
		},
	}
}

func newDescribeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <code>",
		Short: "Show one code by symbolic name or number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := e.parseCode(args[0])
			if err != nil {
				return err
			}
			desc := e.descriptor(d)
			w := cmd.OutOrStdout()
			if e.output == outputJSON {
				return writeJSON(w, desc)
			}
			_, err = fmt.Fprintf(w, "name:     %s\ncode:     %d\ncategory: %s\nhttp:     %d\ngrpc:     %d\narity:    %d\ntemplate: %s\n",
				desc.Name, desc.Code, desc.Category, desc.HTTPStatus, desc.GRPCCode, d.Arity, desc.Message)
			return err
		},
	}
}

func (e *env) descriptor(d catalog.Descriptor) apis.ErrorDescriptor {
	return adapter.ToDescriptor(d, e.mapper.Status(d.Code, d.Category))
}

func (e *env) printDescriptors(w io.Writer, ds []apis.ErrorDescriptor) error {
	if e.output == outputJSON {
		if ds == nil {
			ds = []apis.ErrorDescriptor{}
		}
		return writeJSON(w, ds)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "CODE\tNAME\tCATEGORY\tHTTP\tGRPC\tTEMPLATE")
	for _, d := range ds {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n", d.Code, d.Name, d.Category, d.HTTPStatus, d.GRPCCode, d.Message)
	}
	return tw.Flush()
}
