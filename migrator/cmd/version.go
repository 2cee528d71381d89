/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"k8s.io/cli-runtime/pkg/genericiooptions"
	kyaml "sigs.k8s.io/yaml"

	"github.com/sap/argocd-app-migrator/internal/version"
)

const versionUsage = `Show argocd-app-migrator version`

type versionOptions struct {
	outputFormat string
}

func newVersionCmd(streams genericiooptions.IOStreams) *cobra.Command {
	options := &versionOptions{}

	cmd := &cobra.Command{
		Use:          "version",
		Short:        "Show version",
		Long:         versionUsage,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) error {
			format, _, err := parseFormat("output", options.outputFormat, formatShort, formatYaml, formatJson)
			options.outputFormat = format
			return err
		},
		Run: func(c *cobra.Command, args []string) {
			buildInfo := version.GetBuildInfo()
			switch options.outputFormat {
			case formatShort:
				fmt.Fprintf(streams.Out, "%s\n", buildInfo.Version)
			case formatYaml:
				fmt.Fprintf(streams.Out, "%s", string(must(kyaml.Marshal(buildInfo))))
			case formatJson:
				fmt.Fprintf(streams.Out, "%s\n", string(must(json.MarshalIndent(buildInfo, "", "  "))))
			default:
				panic("this cannot happen")
			}
		},
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&options.outputFormat, "output", "o", formatShort, "Output format; one of \"short\", \"yaml\" or \"json\"")

	return cmd
}
