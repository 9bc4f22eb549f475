package catalog

import (
	"slices"
	"sort"

	"course-planner/internal/domain"
)

// Changes lists what a load did to the previous catalog content.
type Changes struct {
	Added   []string // present only in the new content
	Updated []string // present in both but different
	Removed []string // present only in the previous content
}

func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Updated) == 0 && len(c.Removed) == 0
}

// diff compares two catalog maps by identifier. Results are sorted.
func diff(prev, next map[string]domain.Course) Changes {
	var ch Changes
	for id, nc := range next {
		pc, ok := prev[id]
		if !ok {
			ch.Added = append(ch.Added, id)
			continue
		}
		if needsUpdate(pc, nc) {
			ch.Updated = append(ch.Updated, id)
		}
	}
	for id := range prev {
		if _, ok := next[id]; !ok {
			ch.Removed = append(ch.Removed, id)
		}
	}

	sort.Strings(ch.Added)
	sort.Strings(ch.Updated)
	sort.Strings(ch.Removed)
	return ch
}

func needsUpdate(p, n domain.Course) bool {
	return p.Title != n.Title || !slices.Equal(p.Prerequisites, n.Prerequisites)
}
