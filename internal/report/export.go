package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mdresser/devtools/internal/stats"
)

type Metadata struct {
	RepoPath     string `json:"repo_path"`
	AnalysisDate string `json:"analysis_date"`
	DaysAnalyzed int    `json:"days_analyzed"`
	AuthorFilter string `json:"author_filter"`
}

// Document is the JSON export shape. It mirrors every aggregate that feeds
// the text report.
type Document struct {
	Metadata          Metadata        `json:"metadata"`
	Frequency         stats.Frequency `json:"frequency"`
	Messages          stats.Messages  `json:"messages"`
	Files             stats.Files     `json:"files"`
	Authors           stats.Authors   `json:"authors"`
	ProductivityScore float64         `json:"productivity_score"`
}

func (a Analysis) Document(now time.Time) Document {
	return Document{
		Metadata: Metadata{
			RepoPath:     a.RepoPath,
			AnalysisDate: now.Format(time.RFC3339),
			DaysAnalyzed: a.Days,
			AuthorFilter: a.Author,
		},
		Frequency:         a.Frequency,
		Messages:          a.Messages,
		Files:             a.Files,
		Authors:           a.Authors,
		ProductivityScore: a.Score,
	}
}

// ExportJSON writes the full analysis document to path.
func (a Analysis) ExportJSON(path string, now time.Time) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error exporting analysis: %w", err)
		}
	}()

	data, err := json.MarshalIndent(a.Document(now), "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0644)
}
