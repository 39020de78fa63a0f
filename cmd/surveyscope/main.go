package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"surveyscope/adapters/excel"
	"surveyscope/adapters/prompt"
	"surveyscope/adapters/report"
	"surveyscope/app"
	"surveyscope/domain/survey"
	"surveyscope/internal"
	"surveyscope/internal/config"
	"surveyscope/ports"
)

func main() {
	// Optional .env overlay (LOG_LEVEL and friends); absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "surveyscope",
		Short: "Likert survey analysis: category scores, comparisons and reports",
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newGroupsCmd(),
		newInitConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var configPath string
	var team, location string
	var outDir string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the analysis pipeline and write reports",
		Long: `Run the full analysis pipeline: load the data file, match configured
questions to columns, convert Likert responses, score categories for the
selected team/location combination and write the report artifacts.

Without --team/--location the selection is prompted interactively; "all"
is the wildcard for either dimension.

Example: surveyscope analyze --config config.yaml --team Platform --location all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := internal.DefaultLogger

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.Output.Directory = outDir
			}

			loader := excel.NewTableReader(cfg.DataSource.FilePath, cfg.DataSource.SheetName)
			service := app.NewAnalysisService(loader, log)

			prepared, err := service.Prepare(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			var provider ports.SelectionProvider
			if cmd.Flags().Changed("team") || cmd.Flags().Changed("location") {
				provider = prompt.StaticSelector{Selector: survey.Selector{Team: team, Location: location}}
			} else {
				provider = prompt.NewConsoleSelector(os.Stdin, os.Stdout)
			}
			sel, err := provider.Select(prepared.GroupInfo)
			if err != nil {
				return err
			}

			result, err := service.Analyze(cmd.Context(), cfg, prepared, sel)
			if err != nil {
				return err
			}

			runDir, err := report.CreateRunDir(cfg.Output.Directory, sel,
				result.Bundle.Metadata.GeneratedAt, cfg.Output.IncludeTimestamp)
			if err != nil {
				return err
			}

			renderers := []ports.Renderer{
				report.NewJSONRenderer(),
				report.NewTextRenderer(),
				report.NewMarkdownRenderer(),
				report.NewDashboardRenderer(),
			}
			paths, err := service.Render(cmd.Context(), result, cfg, renderers, runDir)
			if err != nil {
				return err
			}

			for _, rec := range result.Recommendations {
				fmt.Fprintf(cmd.OutOrStdout(), "* %s\n", rec)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nAnalysis complete for %s + %s.\n",
				sel.TeamDisplay(), sel.LocationDisplay())
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d files in %s\n", len(paths), runDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML configuration file")
	cmd.Flags().StringVar(&team, "team", survey.Wildcard, "Team to analyze, or \"all\"")
	cmd.Flags().StringVar(&location, "location", survey.Wildcard, "Location to analyze, or \"all\"")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory (overrides configuration)")

	return cmd
}

func newGroupsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List the teams and locations available in the data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			loader := excel.NewTableReader(cfg.DataSource.FilePath, cfg.DataSource.SheetName)
			service := app.NewAnalysisService(loader, internal.DefaultLogger)

			prepared, err := service.Prepare(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Teams (%d):\n", len(prepared.GroupInfo.Teams))
			for _, g := range prepared.GroupInfo.Teams {
				fmt.Fprintf(out, "   %s (%d responses)\n", g.Name, g.Count)
			}
			fmt.Fprintf(out, "Locations (%d):\n", len(prepared.GroupInfo.Locations))
			for _, g := range prepared.GroupInfo.Locations {
				fmt.Fprintf(out, "   %s (%d responses)\n", g.Name, g.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML configuration file")

	return cmd
}

func newInitConfigCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a commented starter configuration file",
		Long: `Write a starter configuration to the given path (default config.yaml).
Creating the file is always explicit; loading a configuration never writes
one as a side effect.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "config.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Starter configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
