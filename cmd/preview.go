package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkgstrap/pkgstrap/internal/template"
	"github.com/pkgstrap/pkgstrap/internal/watcher"
)

var (
	previewData  []string
	previewWatch bool
)

// previewCmd renders one template file to stdout, for authoring custom
// template sets before pointing "new --templates" at them.
var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render a template file to stdout",
	Long: `Render a single template file against ad-hoc data and print the
result, re-rendering on change with --watch.

Examples:
  pkgstrap preview README.md.tmpl --data name=widget --data license=MIT
  pkgstrap preview LICENSE.tmpl --data license=MIT --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringArrayVarP(&previewData, "data", "d", nil, "data binding as key=value (repeatable)")
	previewCmd.Flags().BoolVarP(&previewWatch, "watch", "w", false, "re-render whenever the file changes")
}

func runPreview(cmd *cobra.Command, args []string) error {
	data, err := parseDataFlags(previewData)
	if err != nil {
		return err
	}

	render := func(path string) error {
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out, err := template.Render(string(body), data)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if !previewWatch {
		return render(args[0])
	}

	if err := render(args[0]); err != nil {
		// Keep watching; the next save may fix the template.
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", color.RedString("error:"), err)
	}
	log := newLogger(viper.GetString("log_level"))
	fw, err := watcher.New(args[0], 0, log)
	if err != nil {
		return err
	}
	color.New(color.Faint).Fprintf(cmd.ErrOrStderr(), "watching %s, ctrl-c to stop\n", args[0])
	return fw.Watch(cmd.Context(), func(path string) error {
		fmt.Fprintln(cmd.ErrOrStderr(), strings.Repeat("-", 40))
		if err := render(path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", color.RedString("error:"), err)
		}
		return nil
	})
}

// parseDataFlags turns repeated key=value flags into a data mapping.
// Values are strings; templates coerce them as needed.
func parseDataFlags(pairs []string) (map[string]any, error) {
	data := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --data %q, expected key=value", pair)
		}
		data[key] = value
	}
	return data, nil
}
