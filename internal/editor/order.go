package editor

import (
	"sort"

	"resume-cli/internal/model"
)

// indexOf returns the position of id in order, or -1 when absent.
func indexOf(order []int, id int) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}

// moveID returns a copy of order with the id at position from reinserted at to,
// where to indexes the sequence *after* the id has been removed.
func moveID(order []int, from, to int) []int {
	id := order[from]
	rest := make([]int, 0, len(order))
	rest = append(rest, order[:from]...)
	rest = append(rest, order[from+1:]...)

	out := make([]int, 0, len(order))
	out = append(out, rest[:to]...)
	out = append(out, id)
	out = append(out, rest[to:]...)
	return out
}

// SortByOrder returns a copy of entries sorted by each id's position in order.
// Ids missing from order sort as position -1, ahead of every indexed entry; ties keep
// their relative order.
func SortByOrder(entries []model.Entry, order []int) []model.Entry {
	pos := make(map[int]int, len(order))
	for i, id := range order {
		if _, dup := pos[id]; !dup {
			pos[id] = i
		}
	}
	rank := func(e model.Entry) int {
		if p, ok := pos[e.ID]; ok {
			return p
		}
		return -1
	}

	out := append([]model.Entry{}, entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i]) < rank(out[j])
	})
	return out
}
