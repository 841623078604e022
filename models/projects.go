package models

import (
	"time"
)

// Project is a recurring news topic a user wants narrated videos for.
type Project struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	User         User      `gorm:"foreignKey:UserID" json:"-"`
	Topic        string    `gorm:"not null" json:"topic"`
	Description  string    `json:"description"`
	Language     string    `gorm:"default:en" json:"language"`
	VideosPerDay int       `gorm:"not null;default:1" json:"videos_per_day"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Script count (computed field, not persisted)
	ScriptCount int `gorm:"-" json:"script_count"`
}

func (Project) TableName() string {
	return "projects"
}
