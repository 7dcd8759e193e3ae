package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgstrap/pkgstrap/internal/version"
)

var (
	versionFormat string
	versionShort  bool
)

// versionCmd reports build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the pkgstrap version, git commit, build time, Go version and
target platform.

Examples:
  pkgstrap version
  pkgstrap version --short
  pkgstrap version --format json`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().StringVarP(&versionFormat, "format", "f", "text", "output format (text, json)")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "show short version only")
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch versionFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(version.GetBuildInfo())
	case "text":
		if versionShort {
			fmt.Fprintln(out, version.GetShortVersion())
			return nil
		}
		info := version.GetBuildInfo()
		fmt.Fprintf(out, "pkgstrap %s\n", info.Version)
		if info.GitCommit != "unknown" {
			fmt.Fprintf(out, "  commit:   %s\n", info.GitCommit)
		}
		if !info.BuildTime.IsZero() {
			fmt.Fprintf(out, "  built:    %s\n", info.BuildTime.Format("2006-01-02 15:04:05 MST"))
		}
		fmt.Fprintf(out, "  go:       %s\n", info.GoVersion)
		fmt.Fprintf(out, "  platform: %s\n", info.Platform)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json)", versionFormat)
	}
}
