package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/pthm/slottable"
	"github.com/pthm/slottable/lib/definition"
	"github.com/pthm/slottable/lib/textview"
)

const (
	formatHTML = "html"
	formatText = "text"
)

type renderParams struct {
	format     string
	page       bool
	outputFile string
}

func newRenderCommand() *cobra.Command {
	params := renderParams{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a table definition as HTML or text",
		Long: `Render a table definition as HTML or text.

The definition is a YAML document listing the table options, column groups,
columns and rows. With --page the HTML is wrapped in a standalone document.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			switch params.format {
			case formatHTML, formatText:
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", params.format, formatHTML, formatText)
			}
			if params.page && params.format != formatHTML {
				return fmt.Errorf("--page requires --format %s", formatHTML)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if params.outputFile != "" {
				f, err := os.Create(params.outputFile)
				if err != nil {
					return err
				}
				if err := renderDefinition(cmd, f, args[0], params); err != nil {
					f.Close()
					return err
				}
				return f.Close()
			}
			return renderDefinition(cmd, out, args[0], params)
		},
	}

	cmd.Flags().StringVarP(&params.format, "format", "f", formatHTML, "set output format: html or text")
	cmd.Flags().BoolVar(&params.page, "page", false, "wrap HTML output in a standalone page")
	cmd.Flags().StringVarP(&params.outputFile, "output", "o", "", "write output to a file instead of stdout")
	return cmd
}

func renderDefinition(cmd *cobra.Command, out io.Writer, path string, params renderParams) error {
	def, err := definition.Load(path)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if params.format == formatText {
		return textview.Write(ctx, out, def.Model(), def.Rows, def.Options())
	}

	var c templ.Component = slottable.Render(def.Model(), def.Rows, def.Options())
	if params.page {
		c = page(tableTitle(def, path), c)
	}
	if err := c.Render(ctx, out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

// tableTitle is the caption, or the file name without extension.
func tableTitle(def *definition.Definition, path string) string {
	if def.Caption != "" {
		return def.Caption
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
