/*
* Wraps access to data needed from Git.
*
* We invoke Git directly as a subprocess and parse the output rather than
* using git2go/libgit2.
 */
package git

import (
	"context"
	"fmt"
	"time"
)

// A file that was changed in a Commit.
type FileChange struct {
	Name      string `json:"name"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

type Commit struct {
	Hash      string
	Author    string
	Date      time.Time
	Message   string
	Files     []FileChange
	Additions int // Sum over Files
	Deletions int // Sum over Files
}

func (c Commit) Name() string {
	if c.Hash != "" {
		return c.Hash
	}

	return "unknown"
}

func (c Commit) String() string {
	return fmt.Sprintf(
		"{ hash:%s author:%s date:%s message:%s files:%d }",
		c.Name(),
		c.Author,
		c.Date.Format("Jan 2, 2006"),
		c.Message,
		len(c.Files),
	)
}

// Commits runs git log over the lookback window and parses the output into
// an ordered slice of commits, newest first (git's native log order).
func Commits(
	ctx context.Context,
	repoPath string,
	filters LogFilters,
) (_ []Commit, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error retrieving commits: %w", err)
		}
	}()

	subprocess, err := RunLog(ctx, repoPath, filters)
	if err != nil {
		return nil, err
	}

	lines, finish := subprocess.StdoutLines()
	commits := ParseCommits(lines)

	if err := finish(); err != nil {
		return nil, err
	}

	if err := subprocess.Wait(); err != nil {
		return nil, err
	}

	return commits, nil
}
