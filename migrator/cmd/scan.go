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
	"sigs.k8s.io/controller-runtime/pkg/log"
	kyaml "sigs.k8s.io/yaml"

	"github.com/sap/argocd-app-migrator/internal/metrics"
	"github.com/sap/argocd-app-migrator/pkg/scanner"
)

const scanUsage = `List the YAML files (*.yaml, *.yml) found in a directory`

type scanOptions struct {
	scanner.Options
	outputFormat string
}

func newScanCmd(streams genericiooptions.IOStreams) *cobra.Command {
	options := &scanOptions{}

	cmd := &cobra.Command{
		Use:          "scan DIR",
		Short:        "List YAML files",
		Long:         scanUsage,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		PreRunE: func(c *cobra.Command, args []string) (err error) {
			options.outputFormat, _, err = parseFormat("output", options.outputFormat, formatPlain, formatYaml, formatJson)
			return err
		},
		RunE: func(c *cobra.Command, args []string) error {
			dir, err := checkDirectory(args[0])
			if err != nil {
				return err
			}
			files, err := scanner.Scan(dir, options.Options)
			if err != nil {
				return err
			}
			metrics.ObserveScan(len(files))
			log.FromContext(c.Context()).V(1).Info("scan completed", "dir", dir, "files", len(files))

			if files == nil {
				files = []string{}
			}
			switch options.outputFormat {
			case formatPlain:
				for _, file := range files {
					fmt.Fprintf(streams.Out, "%s\n", file)
				}
			case formatYaml:
				fmt.Fprintf(streams.Out, "%s", string(must(kyaml.Marshal(files))))
			case formatJson:
				fmt.Fprintf(streams.Out, "%s\n", string(must(json.MarshalIndent(files, "", "  "))))
			}
			return nil
		},
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return nil, cobra.ShellCompDirectiveFilterDirs
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
	}

	flags := cmd.Flags()
	addScanFlags(flags, &options.Options)
	flags.StringVarP(&options.outputFormat, "output", "o", formatPlain, "Output format; one of \"plain\", \"yaml\" or \"json\"")

	return cmd
}
