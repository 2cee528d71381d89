/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"k8s.io/cli-runtime/pkg/genericiooptions"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

const shortName = "argocd-app-migrator"

const rootUsage = `Migrate Argo CD Application manifests to ApplicationSet configs

Common actions for argocd-app-migrator:
- argocd-app-migrator migrate -i DIR    Scan and parse the Application manifests in DIR
- argocd-app-migrator scan DIR          List the YAML files found in DIR
- argocd-app-migrator validate FILE...  Check single Application manifests
`

type rootOptions struct {
	debug   bool
	noColor bool
}

func newRootCmd(streams genericiooptions.IOStreams) *cobra.Command {
	options := &rootOptions{}

	cmd := &cobra.Command{
		Use:          shortName,
		Short:        "An Argo CD Application migrator",
		Long:         rootUsage,
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			logger := logr.Discard()
			if options.debug {
				logger = zap.New(zap.UseDevMode(true), zap.WriteTo(streams.ErrOut))
			}
			c.SetContext(log.IntoContext(c.Context(), logger.WithName(shortName)))
		},
	}

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)

	cmd.Flags().SortFlags = false
	flags := cmd.PersistentFlags()
	flags.BoolVar(&options.debug, "debug", false, "Write debug logs to stderr")
	flags.BoolVar(&options.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		newVersionCmd(streams),
		newMigrateCmd(streams, options),
		newScanCmd(streams),
		newValidateCmd(streams, options),
	)

	return cmd
}

func Execute(ctx context.Context) error {
	return newRootCmd(genericiooptions.IOStreams{In: os.Stdin, Out: os.Stdout, ErrOut: os.Stderr}).ExecuteContext(ctx)
}
