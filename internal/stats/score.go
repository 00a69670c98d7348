package stats

import (
	"math"

	"github.com/mdresser/devtools/internal/git"
)

// ProductivityScore blends commit frequency, message-convention adherence,
// and average change size into a heuristic 0-100 score.
//
//	commit score:  min(commits per day * 10, 40)
//	message score: conventional percentage * 0.3 (at most 30)
//	change score:  min(avg additions per commit / 10, 30)
//
// Purely informational; an empty commit set scores 0.
func ProductivityScore(commits []git.Commit, days int) float64 {
	if len(commits) == 0 || days <= 0 {
		return 0
	}

	commitScore := min(float64(len(commits))/float64(days)*10, 40)
	messageScore := AnalyzeMessages(commits).ConventionalPercentage * 0.3
	changeScore := min(AnalyzeFiles(commits).AvgAdditionsPerCommit/10, 30)

	score := commitScore + messageScore + changeScore
	return math.Round(score*100) / 100
}
