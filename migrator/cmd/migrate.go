/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sap/go-generics/slices"
	"github.com/spf13/cobra"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/cli-runtime/pkg/genericiooptions"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/sap/argocd-app-migrator/internal/metrics"
	"github.com/sap/argocd-app-migrator/internal/version"
	"github.com/sap/argocd-app-migrator/pkg/parser"
	"github.com/sap/argocd-app-migrator/pkg/scanner"
)

const migrateUsage = `Migrate Argo CD Application manifests to ApplicationSet configs

Scans the input directory for Application manifests (*.yaml, *.yml), validates them,
and extracts the fields needed to generate the ApplicationSet configs.

Examples:
  # Scan the top level of a directory
  argocd-app-migrator migrate -i ./apps

  # Scan recursively, and show details about all files
  argocd-app-migrator migrate -i ./apps --recursive --dry-run

  # Print a report of all files as json
  argocd-app-migrator migrate -i ./apps -r --format json
`

type migrateOptions struct {
	inputDir     string
	outputDir    string
	scanOptions  scanner.Options
	dryRun       bool
	workers      int
	outputFormat string
	template     string
	metricsFile  string
	failOnError  bool
}

func newMigrateCmd(streams genericiooptions.IOStreams, rootOptions *rootOptions) *cobra.Command {
	options := &migrateOptions{}

	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Migrate Application manifests",
		Long:         migrateUsage,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PreRunE: func(c *cobra.Command, args []string) (err error) {
			if options.outputFormat, options.template, err = parseFormat("format", options.outputFormat, formatSummary, formatTable, formatYaml, formatJson, formatTemplate); err != nil {
				return err
			}
			if options.workers < 1 {
				return fmt.Errorf("invalid value for flag --%s: %d", "workers", options.workers)
			}
			if options.inputDir, err = checkDirectory(options.inputDir); err != nil {
				return err
			}
			if options.outputDir == "" {
				if options.outputDir, err = os.Getwd(); err != nil {
					return err
				}
			} else if options.outputDir, err = filepath.Abs(options.outputDir); err != nil {
				return err
			}
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			p := newPrinter(streams.Out, rootOptions.noColor)
			err := options.run(c.Context(), p)
			if options.metricsFile != "" {
				err = utilerrors.NewAggregate([]error{err, metrics.WriteToTextfile(options.metricsFile)})
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&options.inputDir, "input-dir", "i", "", "Directory containing Argo CD Application manifests")
	flags.StringVarP(&options.outputDir, "output-dir", "o", "", "Output directory for the generated configs (default: current directory)")
	addScanFlags(flags, &options.scanOptions)
	flags.BoolVar(&options.dryRun, "dry-run", false, "Print details to the terminal without writing files")
	flags.IntVar(&options.workers, "workers", 1, "Number of files parsed in parallel")
	flags.StringVar(&options.outputFormat, "format", formatSummary, "Output format; one of \"summary\", \"table\", \"yaml\", \"json\" or \"template=TEMPLATE\"")
	flags.StringVar(&options.metricsFile, "metrics-file", "", "Write metrics to this file (prometheus text format)")
	flags.BoolVar(&options.failOnError, "fail-on-error", false, "Exit with an error if any file cannot be parsed")

	if err := cmd.MarkFlagRequired("input-dir"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagDirname("input-dir"); err != nil {
		panic(err)
	}
	if err := cmd.MarkFlagDirname("output-dir"); err != nil {
		panic(err)
	}

	return cmd
}

func (o *migrateOptions) run(ctx context.Context, p *printer) error {
	log := log.FromContext(ctx)
	summary := o.outputFormat == formatSummary

	if summary {
		p.printf("%s\n", p.banner.Render(fmt.Sprintf("ArgoCD Application Migrator v%s", version.GetVersion())))
		p.section(p.heading, "Configuration:")
		p.printf("  Input Directory: %s\n", p.accent.Render(o.inputDir))
		p.printf("  Recursive Scan: %s\n", p.accent.Render(fmt.Sprint(o.scanOptions.Recursive)))
		p.printf("  Dry Run: %s\n", p.accent.Render(fmt.Sprint(o.dryRun)))
		p.printf("  Output Directory: %s\n", p.accent.Render(o.outputDir))
	}

	log.V(1).Info("scanning directory", "dir", o.inputDir, "recursive", o.scanOptions.Recursive)
	files, err := scanner.Scan(o.inputDir, o.scanOptions)
	if err != nil {
		if summary {
			p.printf("%s %s\n", p.failure.Render("Error:"), err)
		}
		return err
	}
	metrics.ObserveScan(len(files))
	log.V(1).Info("scan completed", "files", len(files))

	if !summary {
		results := parser.ParseBatchConcurrently(ctx, files, o.workers)
		metrics.ObserveResults(results)
		if err := printResults(p.out, o.outputFormat, o.template, results); err != nil {
			return err
		}
		return o.checkResults(results)
	}

	p.section(p.heading, "Scan Results:")
	p.printf("  Found %d YAML file(s)\n", len(files))
	if len(files) == 0 {
		p.printf("%s No YAML files found in input directory\n", p.warning.Render("Warning:"))
		return nil
	}

	if o.dryRun {
		p.section(p.heading, "YAML Files Found:")
		for _, file := range files {
			p.printf("  - %s\n", file)
		}
	}

	results := parser.ParseBatchConcurrently(ctx, files, o.workers)
	metrics.ObserveResults(results)
	successful := slices.Select(results, func(result *parser.Result) bool { return result.Succeeded() })
	failed := slices.Select(results, func(result *parser.Result) bool { return !result.Succeeded() })
	log.V(1).Info("parse completed", "succeeded", len(successful), "failed", len(failed))

	p.section(p.heading, "Parse Results:")
	p.printf("  Successfully parsed: %d\n", len(successful))
	p.printf("  Failed to parse: %d\n", len(failed))

	if len(failed) > 0 {
		p.section(p.warning, "Failed Files:")
		for _, result := range failed {
			p.printf("  - %s\n", filepath.Base(result.Path))
			if o.dryRun {
				p.printf("    Error: %s\n", result.Message())
			}
		}
	}

	if len(successful) > 0 && o.dryRun {
		p.section(p.success, "Successfully Parsed:")
		for _, result := range successful {
			p.printf("  - %s\n", filepath.Base(result.Path))
			p.printf("    App: %s\n", result.Application.Metadata.Name)
			p.printf("    Project: %s\n", result.Application.Project)
		}
	}

	if len(successful) == 0 {
		p.printf("\n%s\n", p.warning.Render("No valid ArgoCD Applications found"))
		return o.checkResults(results)
	}

	p.printf("\n%s %d Application(s) ready for migration\n", p.warning.Render("Note:"), len(successful))
	p.printf("  - Generating the ApplicationSet configs is handled by the emission stage\n")
	p.printf("  - Configs are to be written to %s\n", o.outputDir)

	return o.checkResults(results)
}

func (o *migrateOptions) checkResults(results []*parser.Result) error {
	if !o.failOnError {
		return nil
	}
	if n := slices.Count(results, func(result *parser.Result) bool { return !result.Succeeded() }); n > 0 {
		return fmt.Errorf("%d of %d file(s) failed to parse", n, len(results))
	}
	return nil
}
