// Renders the commit analysis as a text report.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/mdresser/devtools/internal/format"
	"github.com/mdresser/devtools/internal/git"
	"github.com/mdresser/devtools/internal/stats"
)

const DefaultWidth = 62

// Analysis bundles every aggregate derived from one commit query. All
// fields are computed up front by Analyze; rendering and export only read
// them.
type Analysis struct {
	RepoPath  string
	Days      int
	Author    string
	Commits   []git.Commit
	Frequency stats.Frequency
	Messages  stats.Messages
	Files     stats.Files
	Authors   stats.Authors
	Score     float64
}

func Analyze(
	repoPath string,
	days int,
	author string,
	commits []git.Commit,
) Analysis {
	absPath, err := filepath.Abs(repoPath)
	if err != nil {
		absPath = repoPath
	}

	return Analysis{
		RepoPath:  absPath,
		Days:      days,
		Author:    author,
		Commits:   commits,
		Frequency: stats.AnalyzeFrequency(commits),
		Messages:  stats.AnalyzeMessages(commits),
		Files:     stats.AnalyzeFiles(commits),
		Authors:   stats.AnalyzeAuthors(commits),
		Score:     stats.ProductivityScore(commits, days),
	}
}

func (a Analysis) Empty() bool {
	return len(a.Commits) == 0
}

// Render writes the text report. Section titles are plain ASCII; limit caps
// the author and file listings.
func (a Analysis) Render(w io.Writer, width int, limit int) {
	if a.Empty() {
		fmt.Fprintln(w, "No commits found in the specified time range.")
		return
	}

	title := color.New(color.Bold)
	rule := strings.Repeat("=", width)
	sectionRule := strings.Repeat("-", width)

	header := func(name string) {
		fmt.Fprintln(w)
		title.Fprintln(w, name)
		fmt.Fprintln(w, sectionRule)
	}

	fmt.Fprintln(w, rule)
	title.Fprintf(w, "%*s\n", (width+len("GIT COMMIT ANALYSIS REPORT"))/2,
		"GIT COMMIT ANALYSIS REPORT")
	fmt.Fprintln(w, rule)

	header("OVERVIEW")
	fmt.Fprintf(w, "  Repository: %s\n", a.RepoPath)
	fmt.Fprintf(w, "  Analysis Period: Last %d days\n", a.Days)
	if a.Author != "" {
		fmt.Fprintf(w, "  Author Filter: %s\n", a.Author)
	}
	fmt.Fprintf(w, "  Total Commits: %s\n",
		format.Number(a.Messages.TotalCommits))
	fmt.Fprintf(w, "  Productivity Score: %.2f/100\n", a.Score)

	header("AUTHOR STATISTICS")
	fmt.Fprintf(w, "  Total Authors: %d\n", a.Authors.TotalAuthors)
	for _, c := range stats.Limit(a.Authors.Ranked(), limit) {
		stat := a.Authors.AuthorStats[c.Key]
		fmt.Fprintf(w, "  * %s: %d commits (+%s -%s)\n",
			format.Abbrev(c.Key, width/2),
			c.N,
			format.Number(stat.Additions),
			format.Number(stat.Deletions),
		)
	}

	header("COMMIT PATTERNS")
	if hour, count, ok := a.Frequency.PeakHour(); ok {
		fmt.Fprintf(w, "  Most Productive Hour: %d:00 (%d commits)\n",
			hour,
			count,
		)
	}
	if day, count, ok := a.Frequency.PeakDay(); ok {
		fmt.Fprintf(w, "  Most Productive Day: %s (%d commits)\n", day, count)
	}

	header("COMMIT MESSAGE QUALITY")
	fmt.Fprintf(w, "  Average Message Length: %.1f characters\n",
		a.Messages.AvgMessageLength)
	fmt.Fprintf(w, "  Conventional Commits: %d/%d (%s)\n",
		a.Messages.ConventionalCommits,
		a.Messages.TotalCommits,
		format.Percent(a.Messages.ConventionalPercentage),
	)

	breakdown := a.Messages.TypeBreakdown()
	if len(breakdown) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Commit Type Breakdown:")
		for _, c := range breakdown {
			fmt.Fprintf(w, "    %s: %d\n", c.Key, c.N)
		}
	}

	header("FILE CHANGES")
	fmt.Fprintf(w, "  Total Lines Added: %s\n",
		format.Number(a.Files.TotalAdditions))
	fmt.Fprintf(w, "  Total Lines Deleted: %s\n",
		format.Number(a.Files.TotalDeletions))
	fmt.Fprintf(w, "  Net Change: %s\n", format.Signed(a.Files.NetLines))
	fmt.Fprintf(w, "  Avg Changes per Commit: +%.1f -%.1f\n",
		a.Files.AvgAdditionsPerCommit,
		a.Files.AvgDeletionsPerCommit,
	)

	extensions := stats.Limit(stats.RankCounts(a.Files.FileExtensions), limit)
	if len(extensions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Top File Types:")
		for _, c := range extensions {
			name := c.Key
			if name == "" {
				name = "(no extension)"
			}
			fmt.Fprintf(w, "    %s: %d files\n", name, c.N)
		}
	}

	changed := stats.Limit(stats.RankCounts(a.Files.MostChangedFiles), limit)
	if len(changed) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Most Changed Files:")
		for _, c := range changed {
			fmt.Fprintf(w, "    %s: %d changes\n",
				format.Abbrev(c.Key, width-12),
				c.N,
			)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
}
