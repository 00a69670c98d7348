// Command gitstat analyzes a repository's recent commit history and prints
// a report covering commit patterns, message quality, file churn, and
// author contributions.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mdresser/devtools/internal/config"
	"github.com/mdresser/devtools/internal/git"
	"github.com/mdresser/devtools/internal/pretty"
	"github.com/mdresser/devtools/internal/report"
)

var Version = "unknown"

type options struct {
	repoPath string
	days     int
	author   string
	export   string
	limit    int
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options
	var verbose bool

	cmd := &cobra.Command{
		Use:     "gitstat",
		Short:   "Analyze git commit history and generate insights",
		Version: Version,
		Long: `gitstat analyzes a git repository's commit history over a lookback
window: commit frequency by hour and day, commit message quality,
file change statistics, author contributions, and a composite
productivity score.

Defaults can be set per repository in a .gitstat.yml file; flags
given explicitly always win.`,
		Example: `  # Analyze the current repository for the last 30 days
  gitstat

  # Analyze a specific repository for the last 90 days
  gitstat --repo-path /path/to/repo --days 90

  # Only commits by a specific author, exported as JSON
  gitstat --author "John Doe" --export analysis.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(verbose)
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(
		&opts.repoPath,
		"repo-path",
		".",
		"Path to the git repository",
	)
	cmd.Flags().IntVar(&opts.days, "days", 30, "Number of days to analyze")
	cmd.Flags().StringVar(
		&opts.author,
		"author",
		"",
		"Only count commits by this author",
	)
	cmd.Flags().StringVar(
		&opts.export,
		"export",
		"",
		"Export the analysis to this JSON file",
	)
	cmd.Flags().IntVarP(
		&opts.limit,
		"limit",
		"n",
		5,
		"Rows shown in the top author and file listings",
	)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts options) (err error) {
	if !git.IsRepository(opts.repoPath) {
		return fmt.Errorf("%s is not a git repository", opts.repoPath)
	}

	cfg, err := config.Load(opts.repoPath)
	if err != nil {
		return err
	}
	opts = applyConfig(cmd, opts, cfg)

	if opts.days < 1 {
		return errors.New("--days must be a positive integer")
	}
	if opts.limit < 1 {
		return errors.New("--limit must be a positive integer")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	since := time.Now().AddDate(0, 0, -opts.days)
	commits, err := git.Commits(ctx, opts.repoPath, git.LogFilters{
		Since:  since,
		Author: opts.author,
	})
	if err != nil {
		return err
	}

	analysis := report.Analyze(opts.repoPath, opts.days, opts.author, commits)

	width := pretty.Width(os.Stdout, report.DefaultWidth)
	analysis.Render(os.Stdout, width, opts.limit)

	if opts.export != "" {
		if err := analysis.ExportJSON(opts.export, time.Now()); err != nil {
			return err
		}

		fmt.Printf("Analysis exported to %s\n", opts.export)
	}

	return nil
}

// applyConfig fills in defaults from .gitstat.yml for every flag the user
// did not set explicitly.
func applyConfig(
	cmd *cobra.Command,
	opts options,
	cfg config.GitStat,
) options {
	flags := cmd.Flags()

	if !flags.Changed("days") && cfg.Days > 0 {
		opts.days = cfg.Days
	}
	if !flags.Changed("author") && cfg.Author != "" {
		opts.author = cfg.Author
	}
	if !flags.Changed("export") && cfg.Export != "" {
		opts.export = cfg.Export
	}
	if !flags.Changed("limit") && cfg.Limit > 0 {
		opts.limit = cfg.Limit
	}

	return opts
}

func configureLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	slog.SetDefault(slog.New(handler))
}
