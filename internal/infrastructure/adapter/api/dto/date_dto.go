package dto

// FormatResponse carries the result of a formatting operation. Sentinel
// values such as "Invalid date" are returned in the body with HTTP 200.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// DateResponse carries a single computed date string
type DateResponse struct {
	Date string `json:"date"`
}

// DifferenceResponse carries a whole-unit date difference
type DifferenceResponse struct {
	Difference int64  `json:"difference"`
	Unit       string `json:"unit"`
}

// BoolResponse carries the result of a date predicate
type BoolResponse struct {
	Result bool `json:"result"`
}

// RangeRequest is the body for POST /dates/range
type RangeRequest struct {
	Start     any    `json:"start"`
	End       any    `json:"end"`
	Format    string `json:"format"`
	Separator string `json:"separator"`
}

// SortRequest is the body for POST /dates/sort
type SortRequest struct {
	Data  []map[string]any `json:"data" binding:"required"`
	Field string           `json:"field" binding:"required"`
	Order string           `json:"order"`
}

// SortResponse carries the sorted records
type SortResponse struct {
	Data []map[string]any `json:"data"`
}

// ReadTimeRequest is the body for POST /read-time
type ReadTimeRequest struct {
	Content        string `json:"content"`
	WordsPerMinute int    `json:"wordsPerMinute"`
}

// ReadTimeResponse carries the estimated reading minutes
type ReadTimeResponse struct {
	Minutes int `json:"minutes"`
}
