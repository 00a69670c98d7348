/*
* Handles invoking git log as a subprocess.
 */
package git

import (
	"context"
	"fmt"
	"slices"
	"time"
)

// Marker lines come out as hash|author|date|subject. The numstat rows for
// each commit follow its marker line.
const logFormat = "--pretty=format:%H|%an|%ai|%s"

type LogFilters struct {
	Since  time.Time
	Author string
}

// Turn into CLI args we can pass to `git log`.
func (f LogFilters) ToArgs() []string {
	args := []string{}

	if !f.Since.IsZero() {
		args = append(args, "--since="+f.Since.Format(time.DateOnly))
	}

	if f.Author != "" {
		args = append(args, "--author="+f.Author)
	}

	return args
}

// Runs git log.
func RunLog(
	ctx context.Context,
	repoPath string,
	filters LogFilters,
) (*Subprocess, error) {
	baseArgs := []string{
		"log",
		logFormat,
		"--numstat",
	}

	args := slices.Concat(baseArgs, filters.ToArgs())

	subprocess, err := run(ctx, repoPath, args)
	if err != nil {
		return nil, fmt.Errorf("failed to run git log: %w", err)
	}

	return subprocess, nil
}
