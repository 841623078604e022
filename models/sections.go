package models

import "time"

// Section is one outline point of a script and, once expanded, its
// narration prose.
type Section struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ScriptID uint   `gorm:"not null;index" json:"script_id"`
	Position int    `gorm:"not null" json:"position"`
	Heading  string `gorm:"not null" json:"heading"`
	Summary  string `gorm:"type:text" json:"summary"`
	Body     string `gorm:"type:text" json:"body"`

	CreatedAt time.Time `json:"created_at"`
}

func (Section) TableName() string {
	return "script_sections"
}
