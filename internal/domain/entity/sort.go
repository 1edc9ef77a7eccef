package entity

import "sort"

// SortByDate orders records by the coerced instant found in the named
// field and returns a new slice; the input is never mutated. The sort is
// stable, so records whose field fails coercion keep their original
// relative order among themselves. Their placement against valid records
// is unspecified.
func SortByDate(data []map[string]any, field string, order SortOrder) []map[string]any {
	sorted := make([]map[string]any, len(data))
	copy(sorted, data)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, iok := Coerce(sorted[i][field])
		tj, jok := Coerce(sorted[j][field])
		if !iok || !jok {
			return false
		}
		if order == SortAscending {
			return ti.UnixMilli() < tj.UnixMilli()
		}
		return tj.UnixMilli() < ti.UnixMilli()
	})

	return sorted
}
