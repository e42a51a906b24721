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
	"github.com/spf13/cobra"

	"kubesphere.io/esclient/cmd/esctl/app/options"
	"kubesphere.io/esclient/pkg/simple/client/es/request"
)

func newRequestCommand(s *options.EsctlOptions) *cobra.Command {
	var bodyFile string

	cmd := &cobra.Command{
		Use:   "request METHOD PATH",
		Short: "Send a request to any endpoint",
		Example: `  esctl request GET _cat/indices --url-param v=true
  esctl request PUT logs --body mapping.json
  esctl request HEAD logs`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := request.ParseHttpMethod(args[0])
			if err != nil {
				return err
			}

			body, err := readBody(cmd.InOrStdin(), bodyFile)
			if err != nil {
				return err
			}

			c, params, err := s.NewClient()
			if err != nil {
				return err
			}

			res, err := c.ElasticReq(cmd.Context(), params, request.Raw(method, args[1], body))
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVar(&bodyFile, "body", "", "File holding the request body, - reads standard input.")
	return cmd
}
