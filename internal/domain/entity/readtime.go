package entity

import "strings"

// DefaultWordsPerMinute is the reading speed assumed when the caller
// does not supply one.
const DefaultWordsPerMinute = 265

// ReadTime estimates the whole minutes needed to read content at the
// given speed. A word is a run of non-whitespace characters. Empty or
// whitespace-only content reads in zero minutes; the result is always
// rounded up so any non-empty content takes at least a minute.
func ReadTime(content string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
