package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortByDate(t *testing.T) {
	records := []map[string]any{
		{"id": "b", "published": "2024-03-07"},
		{"id": "a", "published": "2024-01-15"},
		{"id": "c", "published": "2024-06-20"},
	}

	ids := func(sorted []map[string]any) []string {
		out := make([]string, 0, len(sorted))
		for _, r := range sorted {
			out = append(out, r["id"].(string))
		}
		return out
	}

	t.Run("Ascending order", func(t *testing.T) {
		sorted := SortByDate(records, "published", SortAscending)
		assert.Equal(t, []string{"a", "b", "c"}, ids(sorted))
	})

	t.Run("Descending order", func(t *testing.T) {
		sorted := SortByDate(records, "published", SortDescending)
		assert.Equal(t, []string{"c", "b", "a"}, ids(sorted))
	})

	t.Run("Input slice is never mutated", func(t *testing.T) {
		SortByDate(records, "published", SortAscending)
		assert.Equal(t, []string{"b", "a", "c"}, ids(records))
	})

	t.Run("Mixed value shapes sort together", func(t *testing.T) {
		base := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
		mixed := []map[string]any{
			{"id": "late", "at": base.AddDate(0, 0, 2)},
			{"id": "early", "at": base.UnixMilli() - 1000},
			{"id": "middle", "at": "2024-03-08"},
		}
		sorted := SortByDate(mixed, "at", SortAscending)
		assert.Equal(t, []string{"early", "middle", "late"}, ids(sorted))
	})

	t.Run("Invalid values keep their relative order", func(t *testing.T) {
		withBad := []map[string]any{
			{"id": "x", "published": "not a date"},
			{"id": "y", "published": nil},
			{"id": "z", "published": "also bad"},
		}
		sorted := SortByDate(withBad, "published", SortDescending)
		assert.Equal(t, []string{"x", "y", "z"}, ids(sorted))
	})

	t.Run("Empty input", func(t *testing.T) {
		sorted := SortByDate(nil, "published", SortAscending)
		assert.Empty(t, sorted)
		assert.NotNil(t, sorted)
	})

	t.Run("Missing field leaves order untouched", func(t *testing.T) {
		sorted := SortByDate(records, "nonexistent", SortAscending)
		assert.Equal(t, []string{"b", "a", "c"}, ids(sorted))
	})
}
