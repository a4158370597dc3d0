package tracefile

import "sort"

// Summary aggregates hit counts over a set of records.
type Summary struct {
	Records int
	Hits    map[string]int // per function label
}

// FunctionHits is one row of a ranked summary.
type FunctionHits struct {
	Label string
	Count int
}

// Summarize counts how often each function label appears.
func Summarize(recs []Record) Summary {
	s := Summary{Records: len(recs), Hits: make(map[string]int, 64)}
	for _, r := range recs {
		s.Hits[r.Label]++
	}
	return s
}

// Top returns the n most-executed functions, ties broken by label so the
// output is stable.
func (s Summary) Top(n int) []FunctionHits {
	rows := make([]FunctionHits, 0, len(s.Hits))
	for label, count := range s.Hits {
		rows = append(rows, FunctionHits{Label: label, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}
