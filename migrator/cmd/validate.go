/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"

	"github.com/sap/go-generics/slices"
	"github.com/spf13/cobra"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/sap/argocd-app-migrator/internal/metrics"
	"github.com/sap/argocd-app-migrator/pkg/parser"
)

const validateUsage = `Check that the given files are valid Argo CD Application manifests`

type validateOptions struct {
	workers      int
	outputFormat string
	template     string
}

func newValidateCmd(streams genericiooptions.IOStreams, rootOptions *rootOptions) *cobra.Command {
	options := &validateOptions{}

	cmd := &cobra.Command{
		Use:          "validate FILE...",
		Short:        "Validate Application manifests",
		Long:         validateUsage,
		SilenceUsage: true,
		Args:         cobra.MinimumNArgs(1),
		PreRunE: func(c *cobra.Command, args []string) (err error) {
			if options.outputFormat, options.template, err = parseFormat("format", options.outputFormat, formatSummary, formatTable, formatYaml, formatJson, formatTemplate); err != nil {
				return err
			}
			if options.workers < 1 {
				return fmt.Errorf("invalid value for flag --%s: %d", "workers", options.workers)
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			results := parser.ParseBatchConcurrently(c.Context(), args, options.workers)
			metrics.ObserveResults(results)

			if options.outputFormat == formatSummary {
				p := newPrinter(streams.Out, rootOptions.noColor)
				for _, result := range results {
					if result.Succeeded() {
						p.printf("%s %s\n", p.success.Render("OK"), result.Path)
					} else {
						p.printf("%s %s: %s\n", p.failure.Render("FAILED"), result.Path, result.Message())
					}
				}
			} else if err := printResults(streams.Out, options.outputFormat, options.template, results); err != nil {
				return err
			}

			if n := slices.Count(results, func(result *parser.Result) bool { return !result.Succeeded() }); n > 0 {
				return fmt.Errorf("%d of %d file(s) failed validation", n, len(results))
			}
			return nil
		},
		ValidArgsFunction: func(c *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return []string{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&options.workers, "workers", 1, "Number of files parsed in parallel")
	flags.StringVar(&options.outputFormat, "format", formatSummary, "Output format; one of \"summary\", \"table\", \"yaml\", \"json\" or \"template=TEMPLATE\"")

	return cmd
}
