package stats

import (
	"regexp"

	"github.com/mdresser/devtools/internal/git"
)

// Conventional Commits: a recognized type tag, an optional parenthesized
// scope, then a colon.
var conventionalRegexp = regexp.MustCompile(
	`^(feat|fix|docs|style|refactor|test|chore)(\(.+\))?:`,
)

var commitTypes = []string{
	"feat", "fix", "docs", "style", "refactor", "test", "chore",
}

// Messages summarizes commit message quality and convention adherence.
type Messages struct {
	TotalCommits           int            `json:"total_commits"`
	AvgMessageLength       float64        `json:"avg_message_length"`
	ConventionalCommits    int            `json:"conventional_commits"`
	ConventionalPercentage float64        `json:"conventional_percentage"`
	CommitTypes            map[string]int `json:"commit_types"`
}

func AnalyzeMessages(commits []git.Commit) Messages {
	// All recognized types are always present, even at zero.
	types := make(map[string]int, len(commitTypes))
	for _, t := range commitTypes {
		types[t] = 0
	}

	var conventional int
	var totalLength int

	for _, commit := range commits {
		totalLength += len(commit.Message)

		match := conventionalRegexp.FindStringSubmatch(commit.Message)
		if match != nil {
			conventional += 1
			types[match[1]] += 1
		}
	}

	msgs := Messages{
		TotalCommits:        len(commits),
		ConventionalCommits: conventional,
		CommitTypes:         types,
	}

	if len(commits) > 0 {
		msgs.AvgMessageLength = float64(totalLength) / float64(len(commits))
		msgs.ConventionalPercentage =
			float64(conventional) / float64(len(commits)) * 100
	}

	return msgs
}

// TypeBreakdown lists the commit types that actually occurred, in the
// canonical type order.
func (m Messages) TypeBreakdown() []Count {
	breakdown := []Count{}
	for _, t := range commitTypes {
		if m.CommitTypes[t] > 0 {
			breakdown = append(breakdown, Count{Key: t, N: m.CommitTypes[t]})
		}
	}

	return breakdown
}
