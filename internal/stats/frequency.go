package stats

import (
	"time"

	"github.com/mdresser/devtools/internal/git"
)

// Frequency counts commits by hour of day, weekday, and calendar date.
// Keys are present only when their count is nonzero.
type Frequency struct {
	ByHour map[int]int    `json:"by_hour"`
	ByDay  map[string]int `json:"by_day"`
	ByDate map[string]int `json:"by_date"`
}

func AnalyzeFrequency(commits []git.Commit) Frequency {
	freq := Frequency{
		ByHour: map[int]int{},
		ByDay:  map[string]int{},
		ByDate: map[string]int{},
	}

	for _, commit := range commits {
		freq.ByHour[commit.Date.Hour()] += 1
		freq.ByDay[commit.Date.Weekday().String()] += 1
		freq.ByDate[commit.Date.Format(time.DateOnly)] += 1
	}

	return freq
}

// PeakHour returns the hour of day with the most commits. Ties go to the
// earlier hour. ok is false when there are no commits at all.
func (f Frequency) PeakHour() (hour int, count int, ok bool) {
	for h := range 24 {
		if n := f.ByHour[h]; n > count {
			hour, count, ok = h, n, true
		}
	}

	return hour, count, ok
}

// PeakDay returns the weekday with the most commits. Ties go to the earlier
// weekday, counting from Sunday.
func (f Frequency) PeakDay() (day string, count int, ok bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if n := f.ByDay[d.String()]; n > count {
			day, count, ok = d.String(), n, true
		}
	}

	return day, count, ok
}
