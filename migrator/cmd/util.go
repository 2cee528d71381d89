/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and argocd-app-migrator contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iancoleman/strcase"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/sap/go-generics/slices"
	"github.com/spf13/pflag"

	kyaml "sigs.k8s.io/yaml"

	"github.com/sap/argocd-app-migrator/internal/templatex"
	"github.com/sap/argocd-app-migrator/pkg/parser"
	"github.com/sap/argocd-app-migrator/pkg/scanner"
)

const (
	formatSummary  = "summary"
	formatTable    = "table"
	formatYaml     = "yaml"
	formatJson     = "json"
	formatTemplate = "template"
	formatShort    = "short"
	formatPlain    = "plain"
)

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}

// Validate and normalize the value of an output format flag; format names are case-insensitive
// (e.g. JSON, Json and json are equivalent). The template format takes its template text after an equal sign,
// as in template={{ . }}.
func parseFormat(flag string, value string, allowed ...string) (string, string, error) {
	name, text, hasText := strings.Cut(value, "=")
	name = strcase.ToKebab(strings.TrimSpace(name))
	if !slices.Contains(allowed, name) || (name == formatTemplate) != hasText || (hasText && text == "") {
		return "", "", fmt.Errorf("invalid value for flag --%s: %s", flag, value)
	}
	return name, text, nil
}

// Add the flags controlling directory scans to flags.
func addScanFlags(flags *pflag.FlagSet, options *scanner.Options) {
	flags.BoolVarP(&options.Recursive, "recursive", "r", false, "Scan subdirectories recursively")
	flags.StringArrayVar(&options.Exclude, "exclude", nil, "Glob pattern (relative to the scanned directory) of files to skip; can be repeated")
	flags.StringVar(&options.IgnoreFile, "ignore-file", "", "File with gitignore-style patterns of files to skip; relative paths are resolved against the scanned directory")
}

// Return the absolute path of dir, if it is an existing directory.
func checkDirectory(dir string) (string, error) {
	absoluteDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(absoluteDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("directory %s does not exist", dir)
		}
		return "", errors.Wrapf(err, "error checking directory %s", dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	return absoluteDir, nil
}

type resultDetails struct {
	Path        string              `json:"path"`
	Status      string              `json:"status"`
	Message     string              `json:"message,omitempty"`
	Application *parser.Application `json:"application,omitempty"`
}

func getResultDetails(result *parser.Result) *resultDetails {
	details := &resultDetails{
		Path:        result.Path,
		Status:      statusSucceeded,
		Application: result.Application,
	}
	if !result.Succeeded() {
		details.Status = statusFailed
		details.Message = result.Message()
	}
	return details
}

// Print a machine readable report of the given results; format must be one of table, yaml, json or template.
func printResults(out io.Writer, format string, text string, results []*parser.Result) error {
	details := slices.Collect(results, getResultDetails)
	if details == nil {
		details = []*resultDetails{}
	}
	switch format {
	case formatTable:
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", "FILE", "STATUS", "NAME", "PROJECT", "MESSAGE")
		for _, d := range details {
			name, project := "", ""
			if d.Application != nil {
				name, project = d.Application.Metadata.Name, d.Application.Project
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t\n", d.Path, d.Status, name, project, d.Message)
		}
		return w.Flush()
	case formatYaml:
		_, err := fmt.Fprintf(out, "%s", string(must(kyaml.Marshal(details))))
		return err
	case formatJson:
		_, err := fmt.Fprintf(out, "%s\n", string(must(json.MarshalIndent(details, "", "  "))))
		return err
	case formatTemplate:
		return renderTemplate(out, text, details)
	default:
		panic("this cannot happen")
	}
}

func renderTemplate(out io.Writer, text string, data any) error {
	t, err := templatex.Parse("format", text)
	if err != nil {
		return err
	}
	output, err := templatex.Execute(t, data)
	if err != nil {
		return err
	}
	_, err = out.Write(output)
	return err
}

type printer struct {
	out     io.Writer
	banner  lipgloss.Style
	heading lipgloss.Style
	accent  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func newPrinter(out io.Writer, noColor bool) *printer {
	renderer := lipgloss.NewRenderer(out)
	if noColor {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &printer{
		out:     out,
		banner:  renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("4")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("4")).Padding(0, 1),
		heading: renderer.NewStyle().Bold(true),
		accent:  renderer.NewStyle().Foreground(lipgloss.Color("6")),
		success: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		warning: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		failure: renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Print an empty line, followed by the rendered title.
func (p *printer) section(style lipgloss.Style, title string) {
	p.printf("\n%s\n", style.Render(title))
}
