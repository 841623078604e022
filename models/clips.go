package models

import "time"

// Clip is a candidate stock video matched to a chunk keyword.
type Clip struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ChunkID  uint `gorm:"not null;index" json:"chunk_id"`
	PexelsID int  `json:"pexels_id"`

	URL          string  `gorm:"size:512" json:"url"`
	ThumbnailURL string  `gorm:"size:512" json:"thumbnail_url"`
	DurationSec  float64 `json:"duration_sec"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Attribution  string  `json:"attribution"`

	CreatedAt time.Time `json:"created_at"`
}

func (Clip) TableName() string {
	return "chunk_clips"
}
