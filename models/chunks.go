package models

import "time"

// Chunk is one time-coded segment of a script's transcript, annotated
// with keywords and a summary for stock footage matching.
type Chunk struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	ScriptID uint    `gorm:"not null;index" json:"script_id"`
	Position int     `gorm:"not null" json:"position"`
	StartSec float64 `gorm:"not null" json:"start_sec"`
	EndSec   float64 `gorm:"not null" json:"end_sec"`
	Text     string  `gorm:"type:text;not null" json:"text"`

	Keywords []string `gorm:"serializer:json" json:"keywords"`
	Summary  string   `gorm:"type:text" json:"summary"`

	Clips []Clip `gorm:"foreignKey:ChunkID" json:"clips,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Chunk) TableName() string {
	return "script_chunks"
}
