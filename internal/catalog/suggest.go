package catalog

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"course-planner/internal/record"
)

// maxSuggestDistance bounds how far a suggestion may be from the query.
const maxSuggestDistance = 2

// Suggest returns up to limit identifiers close to query, nearest first.
// An exact match is not a suggestion.
func (c *Catalog) Suggest(query string, limit int) []string {
	q := record.Normalize(query)
	if q == "" || limit <= 0 {
		return nil
	}

	type candidate struct {
		id   string
		dist int
	}
	var cands []candidate
	for id := range c.courses {
		d := levenshtein.ComputeDistance(q, id)
		if d == 0 || d > maxSuggestDistance {
			continue
		}
		cands = append(cands, candidate{id: id, dist: d})
	}

	if len(cands) == 0 {
		return nil
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].id < cands[j].id
	})

	if len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]string, len(cands))
	for i, cd := range cands {
		out[i] = cd.id
	}
	return out
}
