package stats

import (
	"github.com/mdresser/devtools/internal/git"
)

type AuthorStat struct {
	Commits   int `json:"commits"`
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
}

// Authors summarizes per-author contributions.
type Authors struct {
	TotalAuthors  int                   `json:"total_authors"`
	AuthorCommits map[string]int        `json:"author_commits"`
	AuthorStats   map[string]AuthorStat `json:"author_stats"`
}

func AnalyzeAuthors(commits []git.Commit) Authors {
	authorCommits := map[string]int{}
	authorStats := map[string]AuthorStat{}

	for _, commit := range commits {
		authorCommits[commit.Author] += 1

		stat := authorStats[commit.Author]
		stat.Commits += 1
		stat.Additions += commit.Additions
		stat.Deletions += commit.Deletions
		authorStats[commit.Author] = stat
	}

	return Authors{
		TotalAuthors:  len(authorCommits),
		AuthorCommits: authorCommits,
		AuthorStats:   authorStats,
	}
}

// Ranked returns authors ordered by commit count, most prolific first.
func (a Authors) Ranked() []Count {
	return RankCounts(a.AuthorCommits)
}
