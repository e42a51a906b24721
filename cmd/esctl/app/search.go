/*
Copyright 2023 The KubeSphere Authors.

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

package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"kubesphere.io/esclient/cmd/esctl/app/options"
	"kubesphere.io/esclient/pkg/simple/client/es/request"
	"kubesphere.io/esclient/pkg/simple/client/es/response"
	"kubesphere.io/esclient/pkg/utils/esutil"
)

type searchOptions struct {
	query       string
	body        string
	from        int
	size        int
	indexPrefix string
	since       time.Duration
	sources     bool
}

func newSearchCommand(s *options.EsctlOptions) *cobra.Command {
	o := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search [INDEX [TYPE]]",
		Short: "Search documents",
		Long: `Search documents of an index, or of all indices when none is given.
A request body turns the search into a POST, otherwise it is a GET
with an optional query string query.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var index, ty string
			if len(args) > 0 {
				index = args[0]
			}
			if len(args) > 1 {
				ty = args[1]
			}

			if o.indexPrefix != "" {
				if index != "" {
					return fmt.Errorf("--index-prefix cannot be used together with an index")
				}
				if o.since < 0 {
					return fmt.Errorf("--since must not be negative, got %s", o.since)
				}
				var start time.Time
				if o.since > 0 {
					start = time.Now().Add(-o.since)
				}
				index = esutil.ResolveIndexNames(o.indexPrefix, start, time.Time{})
			}

			body, err := readBody(cmd.InOrStdin(), o.body)
			if err != nil {
				return err
			}

			c, params, err := s.NewClient()
			if err != nil {
				return err
			}
			if o.query != "" {
				params = params.URLParam("q", o.query)
			}
			if cmd.Flags().Changed("from") {
				params = params.URLParam("from", o.from)
			}
			if cmd.Flags().Changed("size") {
				params = params.URLParam("size", o.size)
			}

			var req request.Request
			if body != nil {
				req = request.Search(index, ty, body)
			} else {
				req = request.SimpleSearch(index, ty)
			}

			res, err := c.ElasticReq(cmd.Context(), params, req)
			if err != nil {
				return err
			}

			var result response.SearchResponse
			if err := response.Parse(res, &result); err != nil {
				return err
			}

			if !o.sources {
				return printJSON(cmd.OutOrStdout(), &result)
			}
			for _, hit := range result.Hits.Hits {
				fmt.Fprintln(cmd.OutOrStdout(), string(hit.Source))
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&o.query, "query", "q", "", "Query in the Lucene query string syntax.")
	fs.StringVar(&o.body, "body", "", "File holding the json request body, - reads standard input.")
	fs.IntVar(&o.from, "from", 0, "Offset of the first hit.")
	fs.IntVar(&o.size, "size", 10, "Number of hits to return.")
	fs.StringVar(&o.indexPrefix, "index-prefix", "", ""+
		"Search the daily indices <prefix>-yyyy.MM.dd instead of an index given as argument.")
	fs.DurationVar(&o.since, "since", 0, ""+
		"Only search the daily indices written in this duration, used with --index-prefix. "+
		"0 searches all of them.")
	fs.BoolVar(&o.sources, "sources", false, "Print the source of each hit on its own line.")

	return cmd
}
