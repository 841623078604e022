package models

import "time"

// Script is one narrated video script moving through the pipeline:
// headline -> outline -> sections -> voiceover -> transcript -> chunks
// -> footage. Status follows the pending_*/processing_*/failed_*
// convention used by the worker.
type Script struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ProjectID  uint   `gorm:"not null;index" json:"project_id"`
	Headline   string `gorm:"size:255" json:"headline"`
	Article    string `gorm:"type:text" json:"article,omitempty"`
	AudioPath  string `gorm:"size:512" json:"audio_path,omitempty"`
	Transcript string `gorm:"type:text" json:"transcript,omitempty"`
	Status     string `gorm:"default:'pending'" json:"status"`

	Sections []Section `gorm:"foreignKey:ScriptID" json:"sections,omitempty"`
	Chunks   []Chunk   `gorm:"foreignKey:ScriptID" json:"chunks,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Script) TableName() string {
	return "scripts"
}
