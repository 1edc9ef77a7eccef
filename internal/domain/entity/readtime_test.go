package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadTime(t *testing.T) {
	testCases := []struct {
		name           string
		content        string
		wordsPerMinute int
		expected       int
	}{
		{"empty content", "", DefaultWordsPerMinute, 0},
		{"whitespace only", "  \n\t  ", DefaultWordsPerMinute, 0},
		{"single word", "hello", DefaultWordsPerMinute, 1},
		{"exactly one minute", strings.Repeat("word ", 265), DefaultWordsPerMinute, 1},
		{"one word over a minute", strings.Repeat("word ", 266), DefaultWordsPerMinute, 2},
		{"two full minutes", strings.Repeat("word ", 530), DefaultWordsPerMinute, 2},
		{"custom speed", strings.Repeat("word ", 100), 50, 2},
		{"zero speed falls back to default", strings.Repeat("word ", 300), 0, 2},
		{"negative speed falls back to default", "hello world", -10, 1},
		{"collapsed whitespace between words", "one\n\ntwo\t three", DefaultWordsPerMinute, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ReadTime(tc.content, tc.wordsPerMinute))
		})
	}
}
