package screenshot

import (
	"sort"
	"time"
)

// Group is the set of screenshots sharing one calendar date, ordered by
// capture time.
type Group struct {
	Date  time.Time
	Files []File
}

// GroupByDate partitions files into per-date groups. Groups come back in
// ascending date order; within a group, files are ordered by timestamp with
// filename as the tie-breaker. Time of day never affects which group a file
// lands in. Pure function, no I/O.
func GroupByDate(files []File) []Group {
	byDate := make(map[time.Time][]File)
	for _, f := range files {
		d := f.Date()
		byDate[d] = append(byDate[d], f)
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	groups := make([]Group, 0, len(dates))
	for _, d := range dates {
		fs := byDate[d]
		sortFiles(fs)
		groups = append(groups, Group{Date: d, Files: fs})
	}

	return groups
}
