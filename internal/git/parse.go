package git

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Timestamp layout used by git log %ai.
const isoDateLayout = "2006-01-02 15:04:05 -0700"

var commitHashRegexp = regexp.MustCompile(`^[a-f0-9]+$`)

// Returns true if this is a (full-length) Git revision hash, false otherwise.
func isHash(s string) bool {
	return commitHashRegexp.MatchString(s) && (len(s) == 40 || len(s) == 64)
}

// parseMarker parses a commit boundary line of the form
// hash|author|date|subject. The subject may itself contain "|".
//
// isMarker reports whether the line was a boundary at all; ok whether its
// fields parsed. A marker that fails to parse still closes the previous
// commit, so that its stat rows are not attached to the wrong one.
func parseMarker(line string) (commit Commit, ok bool, isMarker bool) {
	parts := strings.SplitN(line, "|", 4)
	if len(parts) != 4 || !isHash(parts[0]) {
		return Commit{}, false, false
	}

	date, err := time.Parse(isoDateLayout, parts[2])
	if err != nil {
		logger().Debug(
			"skipping commit with unparsable date",
			"commit", parts[0],
			"date", parts[2],
		)
		return Commit{}, false, true
	}

	return Commit{
		Hash:    parts[0],
		Author:  parts[1],
		Date:    date,
		Message: parts[3],
	}, true, true
}

// parseStat parses a numstat row of the form additions\tdeletions\tname.
//
// A "-" count (binary file) counts as zero lines, but the file itself still
// counts. Any other malformed row returns false and is skipped by the
// caller.
func parseStat(line string) (FileChange, bool) {
	parts := strings.Split(line, "\t")
	if len(parts) != 3 {
		return FileChange{}, false
	}

	added, ok := parseLinesChanged(parts[0])
	if !ok {
		return FileChange{}, false
	}

	deleted, ok := parseLinesChanged(parts[1])
	if !ok {
		return FileChange{}, false
	}

	return FileChange{
		Name:      parts[2],
		Additions: added,
		Deletions: deleted,
	}, true
}

func parseLinesChanged(s string) (int, bool) {
	if s == "-" {
		return 0, true
	}

	changed, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return changed, true
}

// Turns an iterator over lines from git log into a slice of commits.
//
// Commit boundaries are detected by marker lines; the rows until the next
// marker are numstat rows for that commit. Malformed rows are skipped
// silently, preserving as much of the log as possible.
func ParseCommits(lines iter.Seq[string]) []Commit {
	commits := []Commit{}

	var current *Commit
	for line := range lines {
		if line == "" {
			continue
		}

		if commit, ok, isMarker := parseMarker(line); isMarker {
			if current != nil {
				commits = append(commits, *current)
				current = nil
			}

			if ok {
				current = &commit
			}
			continue
		}

		if current == nil {
			// Stat row with no (valid) commit to attach it to.
			logger().Debug("skipping orphaned log line", "line", line)
			continue
		}

		change, ok := parseStat(line)
		if !ok {
			logger().Debug(
				"skipping malformed stat row",
				"commit", current.Name(),
				"line", line,
			)
			continue
		}

		current.Files = append(current.Files, change)
		current.Additions += change.Additions
		current.Deletions += change.Deletions
	}

	if current != nil {
		commits = append(commits, *current)
	}

	return commits
}
