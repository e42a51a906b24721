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
	"github.com/spf13/viper"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	cliflag "k8s.io/component-base/cli/flag"
	"k8s.io/component-base/term"
	"k8s.io/klog/v2"

	"kubesphere.io/esclient/cmd/esctl/app/options"
	"kubesphere.io/esclient/pkg/config"
)

func NewEsctlCommand() *cobra.Command {
	s := options.NewEsctlOptions()

	// Load configuration from file, flags given on the command line still win
	conf, err := config.TryLoadFromDisk()
	if err == nil {
		conf.ElasticsearchOptions.ApplyTo(s.ElasticsearchOptions)
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		klog.Warningf("ignoring configuration file: %v", err)
	}

	cmd := &cobra.Command{
		Use: "esctl",
		Long: `esctl sends requests to an Elasticsearch or OpenSearch node.
Connection settings are read from esclient.yaml in /etc/esclient or the
working directory and may be overridden by flags.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if errs := s.Validate(); len(errs) != 0 {
				return utilerrors.NewAggregate(errs)
			}
			return nil
		},
		SilenceUsage: true,
	}

	fs := cmd.PersistentFlags()
	namedFlagSets := s.Flags()
	for _, f := range namedFlagSets.FlagSets {
		fs.AddFlagSet(f)
	}

	usageFmt := "Usage:\n  %s\n"
	cols, _, _ := term.TerminalSize(cmd.OutOrStdout())
	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n"+usageFmt, cmd.Long, cmd.UseLine())
		if cmd.HasAvailableSubCommands() {
			fmt.Fprintln(cmd.OutOrStdout(), "\nAvailable Commands:")
			for _, c := range cmd.Commands() {
				if c.IsAvailableCommand() {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", c.Name(), c.Short)
				}
			}
		}
		if local := cmd.LocalNonPersistentFlags(); local.HasFlags() {
			fmt.Fprintf(cmd.OutOrStdout(), "\nFlags:\n%s", local.FlagUsagesWrapped(cols))
		}
		cliflag.PrintSections(cmd.OutOrStdout(), namedFlagSets, cols)
	})

	cmd.AddCommand(
		newPingCommand(s),
		newInfoCommand(s),
		newSearchCommand(s),
		newRequestCommand(s),
		newVersionCommand(),
	)

	return cmd
}
