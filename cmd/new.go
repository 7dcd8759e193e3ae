package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pkgstrap/pkgstrap/internal/config"
	"github.com/pkgstrap/pkgstrap/internal/pkgmanager"
	"github.com/pkgstrap/pkgstrap/internal/scaffold"
)

var (
	newAnswersFile string
	newNoVCS       bool
	newNoTools     bool
	newKeepSelf    bool
)

// newCmd bootstraps a project.
var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new Go package",
	Long: `Create a new Go package directory with go.mod, license, lint config,
readme and source stubs, then initialize git and install the configured
linters.

Examples:
  pkgstrap new widget --module github.com/you/widget
  pkgstrap new widget --module github.com/you/widget --binary
  pkgstrap new widget --answers answers.yml --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("dir", ".", "parent directory for the new project")
	newCmd.Flags().String("module", "", "module path (e.g. github.com/you/widget)")
	newCmd.Flags().String("author", "", "author name for license and readme")
	newCmd.Flags().String("email", "", "author email")
	license := licenseValue("MIT")
	newCmd.Flags().Var(&license, "license", "license (MIT, Apache-2.0, BSD-3-Clause, Unlicense)")
	newCmd.Flags().String("description", "", "one-line project description")
	newCmd.Flags().String("templates", "", "directory of custom templates to render instead of the built-ins")
	newCmd.Flags().Bool("binary", false, "also scaffold cmd/<name>/main.go")
	newCmd.Flags().Bool("dry-run", false, "print what would be written without writing")
	newCmd.Flags().StringVar(&newAnswersFile, "answers", "", "YAML answers file for non-interactive runs")
	newCmd.Flags().BoolVar(&newNoVCS, "no-vcs", false, "skip git init")
	newCmd.Flags().BoolVar(&newNoTools, "no-tools", false, "skip linter installation")
	newCmd.Flags().BoolVar(&newKeepSelf, "keep-self", false, "do not delete the pkgstrap binary afterwards")

	viper.BindPFlag("scaffold.output_dir", newCmd.Flags().Lookup("dir"))
	viper.BindPFlag("scaffold.template_dir", newCmd.Flags().Lookup("templates"))
	viper.BindPFlag("scaffold.dry_run", newCmd.Flags().Lookup("dry-run"))
	viper.BindPFlag("project.module", newCmd.Flags().Lookup("module"))
	viper.BindPFlag("project.author", newCmd.Flags().Lookup("author"))
	viper.BindPFlag("project.email", newCmd.Flags().Lookup("email"))
	viper.BindPFlag("project.license", newCmd.Flags().Lookup("license"))
	viper.BindPFlag("project.description", newCmd.Flags().Lookup("description"))
	viper.BindPFlag("project.binary", newCmd.Flags().Lookup("binary"))
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Project.Name = args[0]
	if newNoVCS {
		cfg.Scaffold.VCS = false
	}
	if newNoTools {
		cfg.Tools.Install = false
	}
	if newKeepSelf {
		cfg.Cleanup.SelfDelete = false
	}
	if newAnswersFile != "" {
		answers, err := scaffold.LoadAnswers(newAnswersFile)
		if err != nil {
			return err
		}
		answers.Apply(cfg)
		cfg.Project.Name = args[0]
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	log := newLogger(cfg.LogLevel)
	manager := pkgmanager.NewManager(pkgmanager.NewRunner(), log)

	result, err := scaffold.New(cfg, log, manager).Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Scaffold.DryRun {
		color.New(color.FgYellow).Fprintln(out, "dry run, nothing written")
	}
	for _, file := range result.Files {
		fmt.Fprintf(out, "  %s %s\n", color.GreenString("create"), file)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "  %s %s\n", color.YellowString("warn"), warning.Error())
	}
	color.New(color.Bold).Fprintf(out, "\n%s ready at %s\n", cfg.Project.Name, result.ProjectDir)

	if cfg.Cleanup.SelfDelete && !cfg.Scaffold.DryRun {
		scaffold.SelfDelete(ctx, log, cfg.Scaffold.TemplateDir)
	}
	return nil
}
