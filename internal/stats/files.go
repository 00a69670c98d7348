package stats

import (
	"path"

	"github.com/mdresser/devtools/internal/git"
)

const topFiles = 10

// Files summarizes line churn and which files and file types change most.
//
// FileExtensions counts file occurrences per extension; files without an
// extension are counted under the empty key and labeled only at render
// time. MostChangedFiles counts how many commits touched each path. Both
// keep only the ten highest counts.
type Files struct {
	TotalAdditions        int            `json:"total_additions"`
	TotalDeletions        int            `json:"total_deletions"`
	NetLines              int            `json:"net_lines"`
	AvgAdditionsPerCommit float64        `json:"avg_additions_per_commit"`
	AvgDeletionsPerCommit float64        `json:"avg_deletions_per_commit"`
	FileExtensions        map[string]int `json:"file_extensions"`
	MostChangedFiles      map[string]int `json:"most_changed_files"`
}

func AnalyzeFiles(commits []git.Commit) Files {
	var totalAdditions, totalDeletions int
	extensions := map[string]int{}
	changed := map[string]int{}

	for _, commit := range commits {
		totalAdditions += commit.Additions
		totalDeletions += commit.Deletions

		// Count each path once per commit that touches it.
		seen := map[string]bool{}
		for _, file := range commit.Files {
			extensions[path.Ext(file.Name)] += 1

			if !seen[file.Name] {
				seen[file.Name] = true
				changed[file.Name] += 1
			}
		}
	}

	files := Files{
		TotalAdditions:   totalAdditions,
		TotalDeletions:   totalDeletions,
		NetLines:         totalAdditions - totalDeletions,
		FileExtensions:   topCounts(extensions, topFiles),
		MostChangedFiles: topCounts(changed, topFiles),
	}

	if len(commits) > 0 {
		files.AvgAdditionsPerCommit =
			float64(totalAdditions) / float64(len(commits))
		files.AvgDeletionsPerCommit =
			float64(totalDeletions) / float64(len(commits))
	}

	return files
}
