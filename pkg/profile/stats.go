package profile

import "sort"

// SummaryGroup is one bucket of a roster summary.
type SummaryGroup struct {
	Label string
	Count int
}

// Summary aggregates a collection for the stats view.
type Summary struct {
	Total      int
	WithPhoto  int
	Programmes []SummaryGroup
	Years      []SummaryGroup
	Interests  []SummaryGroup
}

// Summarize groups the collection by programme, year, and interest.
// Buckets are sorted by label so repeated runs print identically.
func Summarize(all []Profile) Summary {
	s := Summary{Total: len(all)}
	progs := make(map[string]int)
	years := make(map[string]int)
	interests := make(map[string]int)
	for _, p := range all {
		if p.HasPhoto() {
			s.WithPhoto++
		}
		progs[p.Prog]++
		years[p.Year]++
		for _, i := range p.Interests {
			interests[i]++
		}
	}
	s.Programmes = sortedGroups(progs)
	s.Years = sortedGroups(years)
	s.Interests = sortedGroups(interests)
	return s
}

func sortedGroups(counts map[string]int) []SummaryGroup {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	groups := make([]SummaryGroup, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, SummaryGroup{Label: label, Count: counts[label]})
	}
	return groups
}
