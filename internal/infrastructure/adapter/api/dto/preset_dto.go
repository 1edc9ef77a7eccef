package dto

import "time"

// PresetRequest is the body for POST /presets
type PresetRequest struct {
	Name   string `json:"name" binding:"required"`
	Format string `json:"format" binding:"required"`
}

// PresetResponse represents a stored preset
type PresetResponse struct {
	Name      string    `json:"name"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PresetListResponse carries all stored presets
type PresetListResponse struct {
	Presets []PresetResponse `json:"presets"`
}
