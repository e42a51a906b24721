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

	"github.com/spf13/cobra"

	"kubesphere.io/esclient/cmd/esctl/app/options"
	"kubesphere.io/esclient/pkg/simple/client/es/request"
	"kubesphere.io/esclient/pkg/simple/client/es/response"
	"kubesphere.io/esclient/pkg/version"
)

func newPingCommand(s *options.EsctlOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the node answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, params, err := s.NewClient()
			if err != nil {
				return err
			}

			res, err := c.ElasticReq(cmd.Context(), params, request.PingHead())
			if err != nil {
				return err
			}
			if err := response.Parse(res, nil); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is up\n", params.GetBaseURL())
			return nil
		},
	}
}

func newInfoCommand(s *options.EsctlOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the node name, cluster and version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, params, err := s.NewClient()
			if err != nil {
				return err
			}

			res, err := c.ElasticReqAsync(cmd.Context(), params, request.Info()).WaitContext(cmd.Context())
			if err != nil {
				return err
			}

			var info response.PingResponse
			if err := response.Parse(res, &info); err != nil {
				return err
			}
			if raw {
				return printJSON(cmd.OutOrStdout(), &info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", info.Name)
			fmt.Fprintf(out, "Cluster: %s\n", info.ClusterName)
			fmt.Fprintf(out, "Version: %s\n", info.Version.Number)
			if info.Version.Distribution != "" {
				fmt.Fprintf(out, "Distribution: %s\n", info.Version.Distribution)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "json", false, "Print the decoded response as json.")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of esctl",
		Args:  cobra.NoArgs,
		// the node settings are not used
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Get())
		},
	}
}
